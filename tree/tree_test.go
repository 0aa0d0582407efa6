package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pcfg/tree"
)

// dogTree builds (S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))
// by hand, spans included.
func dogTree() *tree.Node {
	return tree.NewInternal("S",
		tree.NewInternal("NP",
			tree.NewInternal("D", tree.NewLeaf("the", 0)),
			tree.NewInternal("N", tree.NewLeaf("dog", 1)),
		),
		tree.NewInternal("VP",
			tree.NewInternal("V", tree.NewLeaf("saw", 2)),
			tree.NewInternal("NP",
				tree.NewInternal("D", tree.NewLeaf("the", 3)),
				tree.NewInternal("N", tree.NewLeaf("cat", 4)),
			),
		),
	)
}

func TestNode_String(t *testing.T) {
	n := dogTree()
	assert.Equal(t,
		"(S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))",
		n.String())
}

func TestNode_SpansFromConstruction(t *testing.T) {
	n := dogTree()
	assert.Equal(t, tree.Span{Start: 0, End: 5}, n.Span)
	assert.Equal(t, tree.Span{Start: 0, End: 2}, n.Children[0].Span, "subject NP")
	assert.Equal(t, tree.Span{Start: 2, End: 5}, n.Children[1].Span, "VP")
	assert.Equal(t, 5, n.Span.Len())
}

func TestNode_Leaves(t *testing.T) {
	assert.Equal(t, []string{"the", "dog", "saw", "the", "cat"}, dogTree().Leaves())
}

func TestNode_Depth(t *testing.T) {
	assert.Equal(t, 1, tree.NewLeaf("x", 0).Depth())
	assert.Equal(t, 2, tree.NewInternal("X", tree.NewLeaf("x", 0)).Depth())
	assert.Equal(t, 4, dogTree().Depth())
}

func TestNode_Preterminal(t *testing.T) {
	n := dogTree()
	assert.False(t, n.Preterminal())
	assert.True(t, n.Children[0].Children[0].Preterminal(), "(D the)")
	assert.False(t, n.Children[0].Children[0].Children[0].Preterminal(), "a leaf is not a preterminal")
}

func TestNode_Equal(t *testing.T) {
	a, b := dogTree(), dogTree()
	assert.True(t, a.Equal(b))
	assert.True(t, (*tree.Node)(nil).Equal(nil))
	assert.False(t, a.Equal(nil))

	b.Children[1].Label = "VB"
	assert.False(t, a.Equal(b))
}

func TestParseBracketed_RoundTrip(t *testing.T) {
	want := dogTree()
	got, err := tree.ParseBracketed(want.String())
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "String then ParseBracketed is the identity")
}

func TestParseBracketed_NonBinary(t *testing.T) {
	got, err := tree.ParseBracketed("(S (NP (D the) (A big) (N dog)) (V barks))")
	require.NoError(t, err)
	assert.Equal(t, tree.Span{Start: 0, End: 4}, got.Span)
	assert.Equal(t, 3, len(got.Children[0].Children), "ternary NP parses")
	assert.Equal(t, []string{"the", "big", "dog", "barks"}, got.Leaves())
}

func TestParseBracketed_Whitespace(t *testing.T) {
	got, err := tree.ParseBracketed("  ( S\n\t( N dog )\n ( V barks ) )  ")
	require.NoError(t, err)
	assert.Equal(t, "(S (N dog) (V barks))", got.String())
}

func TestParseBracketed_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"blank":         "   ",
		"no paren":      "dog",
		"unbalanced":    "(S (N dog)",
		"trailing":      "(S (N dog)) extra",
		"two roots":     "(S (N dog)) (S (N cat))",
		"missing label": "( (N dog))",
		"no children":   "(S)",
	}
	for name, in := range cases {
		_, err := tree.ParseBracketed(in)
		assert.ErrorIs(t, err, tree.ErrBracketSyntax, "case %s", name)
	}
}

func TestNode_Pretty(t *testing.T) {
	n := tree.NewInternal("S",
		tree.NewInternal("NP",
			tree.NewInternal("D", tree.NewLeaf("the", 0)),
			tree.NewInternal("N", tree.NewLeaf("dog", 1)),
		),
		tree.NewInternal("VP", tree.NewInternal("V", tree.NewLeaf("barks", 2))),
	)
	want := "(S\n" +
		"  (NP\n" +
		"    (D the)\n" +
		"    (N dog))\n" +
		"  (VP\n" +
		"    (V barks)))"
	assert.Equal(t, want, n.Pretty())

	// A lone preterminal needs no indentation at all.
	assert.Equal(t, "(N dog)", tree.NewInternal("N", tree.NewLeaf("dog", 0)).Pretty())
}
