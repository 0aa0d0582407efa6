package parseval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pcfg/parseval"
	"github.com/katalvlaran/pcfg/tree"
)

func mustTree(t *testing.T, s string) *tree.Node {
	t.Helper()
	n, err := tree.ParseBracketed(s)
	require.NoError(t, err)
	return n
}

func TestSpans_DefaultConvention(t *testing.T) {
	root := mustTree(t, "(S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))")

	got := parseval.Spans(root)
	want := map[parseval.LabeledSpan]struct{}{
		{Start: 0, End: 5, Label: "S"}:  {},
		{Start: 0, End: 2, Label: "NP"}: {},
		{Start: 2, End: 5, Label: "VP"}: {},
		{Start: 3, End: 5, Label: "NP"}: {},
	}
	assert.Equal(t, want, got, "preterminals out, root in")
}

func TestSpans_WithPreterminals(t *testing.T) {
	root := mustTree(t, "(S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))")

	got := parseval.Spans(root, parseval.WithPreterminals())
	assert.Len(t, got, 9)
	assert.Contains(t, got, parseval.LabeledSpan{Start: 0, End: 1, Label: "D"})
	assert.Contains(t, got, parseval.LabeledSpan{Start: 2, End: 3, Label: "V"})
}

func TestSpans_WithoutRoot(t *testing.T) {
	root := mustTree(t, "(S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))")

	got := parseval.Spans(root, parseval.WithoutRoot())
	assert.Len(t, got, 3)
	assert.NotContains(t, got, parseval.LabeledSpan{Start: 0, End: 5, Label: "S"})
}

func TestSpans_NilAndPreterminalRoot(t *testing.T) {
	assert.Empty(t, parseval.Spans(nil), "no parse, no spans")

	pos := mustTree(t, "(D the)")
	assert.Empty(t, parseval.Spans(pos), "a preterminal root follows the preterminal setting")
	assert.Equal(t,
		map[parseval.LabeledSpan]struct{}{{Start: 0, End: 1, Label: "D"}: {}},
		parseval.Spans(pos, parseval.WithPreterminals()))
}

func TestResult_WorkedExample(t *testing.T) {
	// Predicted spans {(0,2,NP),(0,3,S)} against reference spans
	// {(0,2,NP),(1,3,VP),(0,3,S)}: two matches.
	r := parseval.Result{Matched: 2, Predicted: 2, Reference: 3, Parsed: true}

	assert.InDelta(t, 1.0, r.Precision(), 1e-9)
	assert.InDelta(t, 2.0/3.0, r.Recall(), 1e-9)
	assert.InDelta(t, 0.8, r.F1(), 1e-9)
}

func TestScore_TreePair(t *testing.T) {
	pred := mustTree(t, "(S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))")
	ref := mustTree(t, "(S (NP (D the) (N dog)) (VP (V saw) (D the) (N cat)))")

	r := parseval.Score(pred, ref)
	assert.True(t, r.Parsed)
	assert.Equal(t, 3, r.Matched, "S, subject NP, VP")
	assert.Equal(t, 4, r.Predicted)
	assert.Equal(t, 3, r.Reference)
	assert.InDelta(t, 0.75, r.Precision(), 1e-9)
	assert.InDelta(t, 1.0, r.Recall(), 1e-9)
	assert.InDelta(t, 6.0/7.0, r.F1(), 1e-9)
}

func TestScore_IdenticalTrees(t *testing.T) {
	s := "(S (NP (D the) (N dog)) (VP (V barks)))"
	r := parseval.Score(mustTree(t, s), mustTree(t, s))

	assert.Equal(t, r.Predicted, r.Matched)
	assert.InDelta(t, 1.0, r.Precision(), 1e-9)
	assert.InDelta(t, 1.0, r.Recall(), 1e-9)
	assert.InDelta(t, 1.0, r.F1(), 1e-9)
}

func TestScore_NoParse(t *testing.T) {
	ref := mustTree(t, "(S (NP (D the) (N dog)) (VP (V barks)))")

	r := parseval.Score(nil, ref)
	assert.False(t, r.Parsed)
	assert.True(t, math.IsNaN(r.Precision()), "precision undefined without a parse")
	assert.InDelta(t, 0.0, r.Recall(), 1e-9, "every reference span was missed")
	assert.InDelta(t, 0.0, r.F1(), 1e-9)
}

func TestScore_EmptyPrediction(t *testing.T) {
	// A bare part-of-speech parse has no scorable spans by default.
	pred := mustTree(t, "(D the)")
	ref := mustTree(t, "(NP (D the))")

	r := parseval.Score(pred, ref)
	assert.True(t, r.Parsed)
	assert.Equal(t, 0, r.Predicted)
	assert.True(t, math.IsNaN(r.Precision()))
	assert.InDelta(t, 0.0, r.F1(), 1e-9)
}

func TestScore_ConventionChangesCounts(t *testing.T) {
	pred := mustTree(t, "(S (NP (D the) (N dog)) (VP (V barks)))")
	ref := mustTree(t, "(S (NP (D the) (N dog)) (VP (V barks)))")

	strict := parseval.Score(pred, ref)
	loose := parseval.Score(pred, ref, parseval.WithPreterminals(), parseval.WithoutRoot())

	assert.Equal(t, 3, strict.Reference, "S, NP, VP")
	assert.Equal(t, 5, loose.Reference, "NP, VP, D, N, V")
}

func TestAggregate(t *testing.T) {
	var agg parseval.Aggregate

	perfect := parseval.Result{Matched: 4, Predicted: 4, Reference: 4, Parsed: true}
	partial := parseval.Result{Matched: 3, Predicted: 4, Reference: 3, Parsed: true}
	unparsed := parseval.Result{Reference: 3}

	agg.Add(perfect)
	agg.Add(partial)
	agg.Add(unparsed)

	assert.Equal(t, 3, agg.Population)
	assert.Equal(t, 2, agg.Parsed)
	assert.InDelta(t, 2.0/3.0, agg.Coverage(), 1e-9)
	assert.InDelta(t, (1.0+6.0/7.0)/2.0, agg.MeanFParsed(), 1e-9)
	assert.InDelta(t, (1.0+6.0/7.0)/3.0, agg.MeanFAll(), 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	var agg parseval.Aggregate

	assert.True(t, math.IsNaN(agg.Coverage()))
	assert.True(t, math.IsNaN(agg.MeanFParsed()))
	assert.True(t, math.IsNaN(agg.MeanFAll()))
}

func TestAggregate_NothingParsed(t *testing.T) {
	var agg parseval.Aggregate
	agg.Add(parseval.Result{Reference: 2})
	agg.Add(parseval.Result{Reference: 5})

	assert.InDelta(t, 0.0, agg.Coverage(), 1e-9)
	assert.True(t, math.IsNaN(agg.MeanFParsed()), "no parsed sentences to average")
	assert.InDelta(t, 0.0, agg.MeanFAll(), 1e-9)
}
