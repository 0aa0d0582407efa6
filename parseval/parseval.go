package parseval

import (
	"math"

	"github.com/katalvlaran/pcfg/tree"
)

// LabeledSpan identifies one constituent: the half-open token range it
// covers and its nonterminal label. Two constituents match iff all three
// fields are equal.
type LabeledSpan struct {
	Start, End int
	Label      string
}

// Spans collects the labeled constituent spans of a tree under the given
// convention. A nil root (no parse) yields an empty set. Leaves never
// produce spans; preterminals and the root are included or excluded per
// Options.
func Spans(root *tree.Node, opts ...Option) map[LabeledSpan]struct{} {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out := make(map[LabeledSpan]struct{})
	if root == nil {
		return out
	}
	collect(root, root, &o, out)
	return out
}

func collect(n, root *tree.Node, o *Options, out map[LabeledSpan]struct{}) {
	if n.IsLeaf() {
		return
	}
	include := true
	switch {
	case n.Preterminal():
		include = o.Preterminals
	case n == root:
		include = o.Root
	}
	if include {
		out[LabeledSpan{Start: n.Span.Start, End: n.Span.End, Label: n.Label}] = struct{}{}
	}
	for _, child := range n.Children {
		collect(child, root, o, out)
	}
}

// Result holds the labeled-bracket counts for one sentence. Matched is the
// size of the intersection of the predicted and reference span sets;
// Parsed records whether the parser produced a tree at all.
type Result struct {
	Matched   int
	Predicted int
	Reference int
	Parsed    bool
}

// Score compares a predicted tree against a reference tree and returns the
// span counts. A nil pred means the sentence went unparsed; its precision
// is undefined while its recall is zero. Both trees are walked under the
// same convention.
func Score(pred, ref *tree.Node, opts ...Option) Result {
	predSpans := Spans(pred, opts...)
	refSpans := Spans(ref, opts...)
	r := Result{
		Predicted: len(predSpans),
		Reference: len(refSpans),
		Parsed:    pred != nil,
	}
	for s := range predSpans {
		if _, ok := refSpans[s]; ok {
			r.Matched++
		}
	}
	return r
}

// Precision returns Matched/Predicted. It is NaN when undefined: the
// sentence went unparsed, or the prediction contains no scorable spans.
// Report NaN as "not applicable", never as zero.
func (r Result) Precision() float64 {
	if !r.Parsed || r.Predicted == 0 {
		return math.NaN()
	}
	return float64(r.Matched) / float64(r.Predicted)
}

// Recall returns Matched/Reference, or NaN when the reference contains no
// scorable spans. An unparsed sentence has recall zero, not NaN: every
// reference span was missed.
func (r Result) Recall() float64 {
	if r.Reference == 0 {
		return math.NaN()
	}
	return float64(r.Matched) / float64(r.Reference)
}

// F1 returns the harmonic mean of precision and recall. It is zero, not
// NaN, when either component is undefined or both are zero, so unparsed
// sentences drag a mean down instead of poisoning it.
func (r Result) F1() float64 {
	p, rec := r.Precision(), r.Recall()
	if math.IsNaN(p) || math.IsNaN(rec) || p+rec == 0 {
		return 0
	}
	return 2 * p * rec / (p + rec)
}

// Aggregate accumulates per-sentence results into corpus-level numbers.
// Add every scored sentence, parsed or not; the two mean-F readings answer
// different questions and are reported side by side.
type Aggregate struct {
	// Population counts every sentence added.
	Population int

	// Parsed counts the sentences that had a parse.
	Parsed int

	fParsedSum float64
	fAllSum    float64
}

// Add folds one sentence's result into the aggregate.
func (a *Aggregate) Add(r Result) {
	a.Population++
	f := r.F1()
	a.fAllSum += f
	if r.Parsed {
		a.Parsed++
		a.fParsedSum += f
	}
}

// Coverage returns the fraction of sentences that received a parse, or NaN
// before any sentence is added.
func (a *Aggregate) Coverage() float64 {
	if a.Population == 0 {
		return math.NaN()
	}
	return float64(a.Parsed) / float64(a.Population)
}

// MeanFParsed returns the mean F1 over parsed sentences only, or NaN when
// nothing parsed. It measures quality where the parser committed to an
// answer.
func (a *Aggregate) MeanFParsed() float64 {
	if a.Parsed == 0 {
		return math.NaN()
	}
	return a.fParsedSum / float64(a.Parsed)
}

// MeanFAll returns the mean F1 over all sentences, unparsed ones counting
// as zero, or NaN before any sentence is added. It penalizes low coverage.
func (a *Aggregate) MeanFAll() float64 {
	if a.Population == 0 {
		return math.NaN()
	}
	return a.fAllSum / float64(a.Population)
}
