package cky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pcfg/grammar"
)

// BackpointerKind tags the variant of a Backpointer.
type BackpointerKind uint8

const (
	// BackpointerNone is the zero value: no derivation recorded. It is what
	// Get reports on charts built without backpointer storage.
	BackpointerNone BackpointerKind = iota

	// BackpointerBinary records a binary rule application: the entry was
	// built from two child constituents meeting at Split.
	BackpointerBinary

	// BackpointerLexical records a lexical rule application: the entry is a
	// preterminal over the single token of its span.
	BackpointerLexical
)

// Backpointer records how the best-scoring derivation of a symbol over a
// span was formed. For the Binary kind, Split is the boundary between the
// two children and Left, Right are their interned symbol ids; the Lexical
// kind needs no payload because the span pins the token.
type Backpointer struct {
	Kind        BackpointerKind
	Split       int
	Left, Right int
}

// cell holds one span's entries, dense over interned symbol ids.
// Slices stay nil until the first proposal touches the cell, so empty
// regions of the chart cost nothing. order lists symbol ids in the order
// they were first proposed; the fill loop iterates cells in that order,
// which keeps tie-breaking deterministic across runs.
type cell struct {
	score   []float64
	bp      []Backpointer
	present []bool
	order   []int
}

// Chart is the triangular CKY table for a sentence of n tokens: one cell
// per span (i, j) with 0 <= i < j <= n, each holding the best known
// log-probability per nonterminal. Scores are natural-log probabilities, so
// every stored value is <= 0 and absence means "no derivation found", never
// "probability zero".
//
// A Chart is built by ParseChart (with backpointers) or internally by
// Recognize (scores only) and is not safe for concurrent mutation; once
// filled it is read-only and may be shared.
type Chart struct {
	g      *grammar.Grammar
	n      int
	cells  []cell
	withBP bool
}

// newChart allocates the triangular arena for n tokens. Cell payloads are
// allocated lazily on first proposal.
func newChart(g *grammar.Grammar, n int, withBP bool) *Chart {
	return &Chart{
		g:      g,
		n:      n,
		cells:  make([]cell, n*(n+1)/2),
		withBP: withBP,
	}
}

// idx maps a span (i, j) to its flat arena slot. Spans with the same start
// are adjacent, ordered by increasing end.
func (c *Chart) idx(i, j int) int {
	return i*c.n - i*(i-1)/2 + (j - i - 1)
}

// at returns the cell for span (i, j); the span must be in range.
func (c *Chart) at(i, j int) *cell {
	return &c.cells[c.idx(i, j)]
}

// alloc makes the cell's dense payload on first touch.
func (cl *cell) alloc(nsym int, withBP bool) {
	cl.score = make([]float64, nsym)
	cl.present = make([]bool, nsym)
	if withBP {
		cl.bp = make([]Backpointer, nsym)
	}
}

// Len returns the sentence length n the chart was built for.
func (c *Chart) Len() int { return c.n }

// Grammar returns the grammar the chart was filled against.
func (c *Chart) Grammar() *grammar.Grammar { return c.g }

// Get reports the best log-probability and backpointer for nonterminal sym
// over the span (i, j). The third result is false when the span is out of
// range, the symbol is unknown, or no derivation was found. On score-only
// charts the backpointer is always the zero Backpointer.
func (c *Chart) Get(i, j int, sym string) (float64, Backpointer, bool) {
	id, ok := c.g.ID(sym)
	if !ok {
		return 0, Backpointer{}, false
	}
	return c.get(i, j, id)
}

// get is the id-level lookup behind Get and the extractor.
func (c *Chart) get(i, j, sym int) (float64, Backpointer, bool) {
	if i < 0 || j > c.n || i >= j {
		return 0, Backpointer{}, false
	}
	cl := c.at(i, j)
	if cl.present == nil || !cl.present[sym] {
		return 0, Backpointer{}, false
	}
	if cl.bp == nil {
		return cl.score[sym], Backpointer{}, true
	}
	return cl.score[sym], cl.bp[sym], true
}

// propose offers a derivation of sym over (i, j) with the given
// log-probability. The entry is kept iff the cell has no entry for sym or
// the new score is strictly greater; an equal score keeps the incumbent, so
// the first derivation discovered wins ties.
func (c *Chart) propose(i, j, sym int, score float64, bp Backpointer) {
	cl := c.at(i, j)
	if cl.present == nil {
		cl.alloc(c.g.NumSymbols(), c.withBP)
	}
	if cl.present[sym] && cl.score[sym] >= score {
		return
	}
	if !cl.present[sym] {
		cl.present[sym] = true
		cl.order = append(cl.order, sym)
	}
	cl.score[sym] = score
	if cl.bp != nil {
		cl.bp[sym] = bp
	}
}

// proposeLexical seeds the length-1 span at token position i from a lexical
// rule.
func (c *Chart) proposeLexical(i int, r grammar.LexicalRule) {
	c.propose(i, i+1, r.LHS, r.LogProb, Backpointer{Kind: BackpointerLexical})
}

// proposeBinary offers rule's LHS over (i, j) split at k with the combined
// log-probability score.
func (c *Chart) proposeBinary(i, k, j int, r grammar.BinaryRule, score float64) {
	c.propose(i, j, r.LHS, score, Backpointer{
		Kind:  BackpointerBinary,
		Split: k,
		Left:  r.Left,
		Right: r.Right,
	})
}

// Validate checks the chart's structural invariants and returns
// ErrChartCorrupt (wrapped with the offending cell) on the first violation:
//
//   - every recorded score is a log-probability, i.e. <= 0 and not NaN;
//   - the per-cell proposal order and presence flags agree;
//   - lexical backpointers appear only on length-1 spans, binary ones only
//     on longer spans with an interior split;
//   - binary backpointers reference entries actually present in both child
//     cells, whose spans are strictly smaller.
//
// A fully filled chart always passes; Validate exists so tests and
// debugging sessions can pin down where a hand-modified or miswired chart
// went bad.
func (c *Chart) Validate() error {
	for i := 0; i < c.n; i++ {
		for j := i + 1; j <= c.n; j++ {
			if err := c.validateCell(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Chart) validateCell(i, j int) error {
	cl := c.at(i, j)
	if cl.present == nil {
		if cl.order != nil {
			return fmt.Errorf("%w: cell (%d,%d) has order but no payload", ErrChartCorrupt, i, j)
		}
		return nil
	}
	count := 0
	for _, ok := range cl.present {
		if ok {
			count++
		}
	}
	if count != len(cl.order) {
		return fmt.Errorf("%w: cell (%d,%d) has %d entries but %d ordered symbols",
			ErrChartCorrupt, i, j, count, len(cl.order))
	}
	for _, sym := range cl.order {
		if sym < 0 || sym >= len(cl.present) || !cl.present[sym] {
			return fmt.Errorf("%w: cell (%d,%d) orders absent symbol id %d", ErrChartCorrupt, i, j, sym)
		}
		if err := c.validateEntry(i, j, sym, cl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chart) validateEntry(i, j, sym int, cl *cell) error {
	name := c.g.Name(sym)
	if s := cl.score[sym]; s > 0 || math.IsNaN(s) {
		return fmt.Errorf("%w: cell (%d,%d) symbol %s has score %v, want a log-probability <= 0",
			ErrChartCorrupt, i, j, name, s)
	}
	if cl.bp == nil {
		return nil
	}
	switch bp := cl.bp[sym]; bp.Kind {
	case BackpointerLexical:
		if j-i != 1 {
			return fmt.Errorf("%w: cell (%d,%d) symbol %s has a lexical backpointer on a length-%d span",
				ErrChartCorrupt, i, j, name, j-i)
		}
	case BackpointerBinary:
		if j-i < 2 {
			return fmt.Errorf("%w: cell (%d,%d) symbol %s has a binary backpointer on a length-1 span",
				ErrChartCorrupt, i, j, name)
		}
		if bp.Split <= i || bp.Split >= j {
			return fmt.Errorf("%w: cell (%d,%d) symbol %s splits outside the span at %d",
				ErrChartCorrupt, i, j, name, bp.Split)
		}
		if _, _, ok := c.get(i, bp.Split, bp.Left); !ok {
			return fmt.Errorf("%w: cell (%d,%d) symbol %s references absent left child (%d,%d,%s)",
				ErrChartCorrupt, i, j, name, i, bp.Split, c.g.Name(bp.Left))
		}
		if _, _, ok := c.get(bp.Split, j, bp.Right); !ok {
			return fmt.Errorf("%w: cell (%d,%d) symbol %s references absent right child (%d,%d,%s)",
				ErrChartCorrupt, i, j, name, bp.Split, j, c.g.Name(bp.Right))
		}
	default:
		return fmt.Errorf("%w: cell (%d,%d) symbol %s has no backpointer", ErrChartCorrupt, i, j, name)
	}
	return nil
}
