package grammar

// Grammar is a validated, immutable PCFG in Chomsky normal form.
//
// Nonterminals are interned to small integer ids in declaration order
// (the order their first rule appears in the source). Binary rules are
// indexed by their right-hand pair and lexical rules by their terminal
// token, which is exactly what the CKY inner loop asks for.
//
// A Grammar never changes after Load returns, so a single instance may be
// shared by any number of concurrent parses without locking.
type Grammar struct {
	names []string       // id → nonterminal name, declaration order
	ids   map[string]int // nonterminal name → id
	start int            // id of the start symbol

	binary  []BinaryRule  // declaration order
	lexical []LexicalRule // declaration order

	byPair  map[int][]BinaryRule     // packed (Left, Right) key → rules, declaration order
	byLeft  [][]BinaryRule           // LHS id → binary rules, declaration order
	byToken map[string][]LexicalRule // terminal token → rules, declaration order

	terms []string // terminal vocabulary, first-seen order
}

// pairKey packs a (left, right) nonterminal id pair into a single map key.
// len(g.names) is final before any key is computed (all LHS symbols are
// interned in the first assembly pass).
func (g *Grammar) pairKey(left, right int) int {
	return left*len(g.names) + right
}

// NumSymbols reports how many nonterminals the grammar interned.
// Valid ids are 0 .. NumSymbols()-1.
func (g *Grammar) NumSymbols() int { return len(g.names) }

// Name resolves a nonterminal id to its name.
func (g *Grammar) Name(id int) string { return g.names[id] }

// ID resolves a nonterminal name to its id.
// The second result is false when the name is not a known nonterminal.
func (g *Grammar) ID(name string) (int, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// Start returns the name of the start symbol: the one declared by a
// "SYM ; 1.0" line in the source, or the first left-hand nonterminal
// when no declaration is present.
func (g *Grammar) Start() string { return g.names[g.start] }

// StartID returns the interned id of the start symbol.
func (g *Grammar) StartID() int { return g.start }

// PairRules returns every binary rule A -> B C for the given (B, C) id pair,
// in declaration order. The returned slice is shared, not copied — it sits on
// the parser's hot path — and must be treated as read-only.
func (g *Grammar) PairRules(left, right int) []BinaryRule {
	return g.byPair[g.pairKey(left, right)]
}

// TokenRules returns every lexical rule A -> w for the given token w, in
// declaration order. Unknown tokens yield nil, which the parser treats as
// "seeds no cell", not as an error. Read-only, like PairRules.
func (g *Grammar) TokenRules(token string) []LexicalRule {
	return g.byToken[token]
}

// BinaryRulesFor returns the binary rules whose left-hand side is the named
// nonterminal, in declaration order. Unknown names yield nil. Read-only.
func (g *Grammar) BinaryRulesFor(lhs string) []BinaryRule {
	id, ok := g.ids[lhs]
	if !ok {
		return nil
	}
	return g.byLeft[id]
}

// LexicalRulesFor returns the lexical rules matching the given terminal,
// in declaration order. It is the name-level alias of TokenRules.
func (g *Grammar) LexicalRulesFor(token string) []LexicalRule {
	return g.byToken[token]
}

// Nonterminals returns the nonterminal names in declaration order.
// The slice is a copy; callers may keep or reorder it freely.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Terminals returns the terminal vocabulary in first-seen order, as a copy.
func (g *Grammar) Terminals() []string {
	out := make([]string, len(g.terms))
	copy(out, g.terms)
	return out
}

// Stats reports rule and symbol counts for this grammar.
func (g *Grammar) Stats() Stats {
	return Stats{
		Nonterminals: len(g.names),
		Terminals:    len(g.terms),
		BinaryRules:  len(g.binary),
		LexicalRules: len(g.lexical),
	}
}
