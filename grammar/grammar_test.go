package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pcfg/grammar"
)

func TestGrammar_PairRulesDeclarationOrder(t *testing.T) {
	g, err := grammar.ParseString(`
S -> A B ; 0.3
X -> A B ; 0.2
S -> A B ; 0.5
A -> a
B -> b
`)
	require.NoError(t, err)

	aID, ok := g.ID("A")
	require.True(t, ok)
	bID, ok := g.ID("B")
	require.True(t, ok)

	rules := g.PairRules(aID, bID)
	require.Len(t, rules, 3, "all rules over the pair (A, B), duplicates included")
	assert.Equal(t, []float64{0.3, 0.2, 0.5}, []float64{rules[0].Prob, rules[1].Prob, rules[2].Prob},
		"declaration order is preserved — the tie-break policy depends on it")

	sID, _ := g.ID("S")
	xID, _ := g.ID("X")
	assert.Equal(t, sID, rules[0].LHS)
	assert.Equal(t, xID, rules[1].LHS)
	assert.Equal(t, sID, rules[2].LHS)
}

func TestGrammar_TokenRules(t *testing.T) {
	g, err := grammar.ParseString(toyGrammar)
	require.NoError(t, err)

	lex := g.TokenRules("dog")
	require.Len(t, lex, 1)
	nID, _ := g.ID("N")
	assert.Equal(t, nID, lex[0].LHS)
	assert.Equal(t, 0.5, lex[0].Prob)

	assert.Nil(t, g.TokenRules("unicorn"), "unknown tokens seed nothing")
	assert.Equal(t, lex, g.LexicalRulesFor("dog"))
}

func TestGrammar_SymbolTables(t *testing.T) {
	g, err := grammar.ParseString(toyGrammar)
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "NP", "VP", "D", "N", "V"}, g.Nonterminals(),
		"nonterminal ids follow declaration order")
	assert.Equal(t, []string{"the", "dog", "cat", "saw"}, g.Terminals())
	assert.Equal(t, 6, g.NumSymbols())

	for i, name := range g.Nonterminals() {
		id, ok := g.ID(name)
		require.True(t, ok)
		assert.Equal(t, i, id)
		assert.Equal(t, name, g.Name(id))
	}

	_, ok := g.ID("dog")
	assert.False(t, ok, "terminals are not interned")
}

func TestGrammar_QueryCopiesAreIndependent(t *testing.T) {
	g, err := grammar.ParseString(toyGrammar)
	require.NoError(t, err)

	names := g.Nonterminals()
	names[0] = "MUTATED"
	assert.Equal(t, "S", g.Nonterminals()[0], "Nonterminals returns a copy")

	terms := g.Terminals()
	terms[0] = "MUTATED"
	assert.Equal(t, "the", g.Terminals()[0], "Terminals returns a copy")
}

func TestGrammar_BinaryRulesFor(t *testing.T) {
	g, err := grammar.ParseString(toyGrammar)
	require.NoError(t, err)

	rules := g.BinaryRulesFor("S")
	require.Len(t, rules, 1)
	npID, _ := g.ID("NP")
	vpID, _ := g.ID("VP")
	assert.Equal(t, npID, rules[0].Left)
	assert.Equal(t, vpID, rules[0].Right)

	assert.Nil(t, g.BinaryRulesFor("D"), "D has only lexical rules")
	assert.Nil(t, g.BinaryRulesFor("nope"))
}

func TestCheckDistribution(t *testing.T) {
	g, err := grammar.ParseString(toyGrammar)
	require.NoError(t, err)
	assert.NoError(t, g.CheckDistribution(0), "toy grammar is a proper distribution")

	leaky, err := grammar.ParseString(`
S -> A B ; 0.6
A -> a ; 1.0
B -> b ; 1.0
`)
	require.NoError(t, err, "load does not require sums of one")
	err = leaky.CheckDistribution(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, grammar.ErrDistribution)
	assert.Contains(t, err.Error(), "S", "offending nonterminal is named")
}

func TestCheckDistribution_Tolerance(t *testing.T) {
	g, err := grammar.ParseString(`
S -> A B ; 0.9
A -> a ; 1.0
B -> b ; 1.0
`)
	require.NoError(t, err)

	assert.Error(t, g.CheckDistribution(1e-9))
	assert.NoError(t, g.CheckDistribution(0.2), "loose tolerance accepts the gap")
}
