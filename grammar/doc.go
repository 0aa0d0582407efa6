// Package grammar loads, validates, and indexes probabilistic context-free
// grammars in Chomsky normal form (CNF) for CKY parsing.
//
// Overview:
//
//   - A grammar source is plain text, one declaration per line:
//     "A -> B C ; 0.9" (binary), "N -> dog ; 0.4" (lexical, terminal
//     right-hand side), "# ..." comments, and an optional "S ; 1.0" line
//     naming the start symbol. The probability clause may be omitted and
//     defaults to 1.0.
//   - Load validates everything up front — probabilities finite and in
//     (0, 1], CNF arity, no unit rules, no undefined right-hand symbols —
//     and fails fast with the offending line, so parsing never has to
//     defend against a malformed grammar.
//   - The result is immutable. Nonterminals are interned to dense integer
//     ids, binary rules are indexed by right-hand pair and lexical rules by
//     terminal, which is the access pattern of the CKY inner loop.
//
// Start symbol resolution:
//
//   - an explicit "SYM ; prob" declaration line wins;
//   - otherwise the first left-hand nonterminal declared is the start;
//   - a parse call may still override either via cky.WithStartSymbol.
//
// Errors (sentinel):
//
//   - ErrRuleFormat, ErrBadProbability, ErrNotCNF, ErrUnitRule,
//     ErrUndefinedSymbol, ErrUnknownStart, ErrEmptyGrammar — load-time,
//     each wrapped with the line number and rule text;
//   - ErrDistribution — from the optional CheckDistribution pass.
//
// Concurrency:
//
//	A *Grammar is read-only after Load and safe to share across any number
//	of goroutines; parallel parses need no locks around it.
package grammar
