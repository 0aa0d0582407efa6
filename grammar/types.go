// Package grammar defines the rule types, sentinel errors, and the immutable
// Grammar container produced by Load.
package grammar

import "errors"

// Sentinel errors returned while loading or checking a grammar.
// Every load-time failure wraps one of these with the offending line number
// and rule text, so callers can match with errors.Is and still report detail.
var (
	// ErrRuleFormat indicates a line that does not match the
	// "LHS -> RHS ; prob" shape (missing parts, stray tokens, extra ';').
	ErrRuleFormat = errors.New("grammar: malformed rule")

	// ErrBadProbability indicates a rule probability outside (0, 1],
	// or one that failed to parse as a finite float.
	ErrBadProbability = errors.New("grammar: probability must be a finite number in (0, 1]")

	// ErrNotCNF indicates the right-hand side has zero symbols or more than
	// two; only A -> B C and A -> w productions are accepted.
	ErrNotCNF = errors.New("grammar: rule not in Chomsky normal form")

	// ErrUnitRule indicates a unary rule whose right-hand symbol is itself a
	// nonterminal (A -> B). CNF allows unary rules over terminals only.
	ErrUnitRule = errors.New("grammar: unit rule over a nonterminal")

	// ErrUndefinedSymbol indicates a binary rule referencing a right-hand
	// symbol that never occurs as a left-hand nonterminal.
	ErrUndefinedSymbol = errors.New("grammar: undefined right-hand symbol")

	// ErrUnknownStart indicates the declared start symbol has no rules.
	ErrUnknownStart = errors.New("grammar: start symbol is not a known nonterminal")

	// ErrEmptyGrammar indicates the source contained no rules at all.
	ErrEmptyGrammar = errors.New("grammar: no rules")

	// ErrDistribution is reported by CheckDistribution when the probability
	// mass of some left-hand nonterminal does not sum to one.
	ErrDistribution = errors.New("grammar: rule probabilities do not sum to one")
)

// BinaryRule is an interned production A -> B C.
// LHS, Left and Right are nonterminal ids; resolve names via Grammar.Name.
type BinaryRule struct {
	// LHS is the id of the left-hand nonterminal A.
	LHS int

	// Left and Right are the ids of the child nonterminals B and C.
	Left, Right int

	// Prob is the rule probability as written in the grammar file, in (0, 1].
	Prob float64

	// LogProb is math.Log(Prob), precomputed once at load time because the
	// parser accumulates scores in log space.
	LogProb float64

	// Line is the 1-based line number of the rule in its source, kept for
	// error reporting and distribution diagnostics.
	Line int
}

// LexicalRule is an interned production A -> w for a terminal token w.
type LexicalRule struct {
	// LHS is the id of the left-hand nonterminal A.
	LHS int

	// Token is the terminal this rule emits.
	Token string

	// Prob is the rule probability as written in the grammar file, in (0, 1].
	Prob float64

	// LogProb is math.Log(Prob), precomputed at load time.
	LogProb float64

	// Line is the 1-based source line number.
	Line int
}

// Stats summarizes a loaded grammar for reporting (the check verb).
type Stats struct {
	Nonterminals int
	Terminals    int
	BinaryRules  int
	LexicalRules int
}
