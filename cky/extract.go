package cky

import (
	"fmt"

	"github.com/katalvlaran/pcfg/tree"
)

// Extract resolves a filled chart's backpointers into the best parse tree.
//
// Description:
//
//	Starting from the whole-sentence span and the given start symbol,
//	Extract follows each entry's backpointer: a binary backpointer yields
//	an internal node over the two recursively extracted children, a lexical
//	backpointer yields a preterminal node over the token at that position.
//	The chart is read, never mutated; labels, spans and tokens are copied
//	into fresh nodes, so the returned tree shares nothing with the chart.
//
// Termination: each recursive step descends to a strictly shorter span, so
// the recursion depth never exceeds the sentence length.
//
// Errors:
//   - ErrTokenMismatch    — len(tokens) differs from the chart dimension.
//   - ErrStartNotFound    — start is not a nonterminal of the chart's grammar.
//   - ErrNoParse          — the whole-sentence cell has no entry for start.
//   - ErrNeedBackpointers — the chart stores scores only (built by Recognize).
//   - ErrChartCorrupt     — a backpointer references an absent child entry.
func Extract(c *Chart, tokens []string, start string) (*tree.Node, error) {
	if len(tokens) != c.Len() {
		return nil, fmt.Errorf("%w: chart spans %d tokens, sentence has %d",
			ErrTokenMismatch, c.Len(), len(tokens))
	}
	id, ok := c.g.ID(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	return extract(c, tokens, id)
}

// extract is the id-level entry shared with Parse.
func extract(c *Chart, tokens []string, start int) (*tree.Node, error) {
	n := c.Len()
	if _, _, ok := c.get(0, n, start); !ok {
		return nil, ErrNoParse
	}
	if !c.withBP {
		return nil, ErrNeedBackpointers
	}
	return extractNode(c, tokens, 0, n, start)
}

// extractNode builds the node for sym over (i, j). Entries below the root
// are guaranteed present on a chart filled by this package; a miss here
// means the chart was modified behind the parser's back.
func extractNode(c *Chart, tokens []string, i, j, sym int) (*tree.Node, error) {
	_, bp, ok := c.get(i, j, sym)
	if !ok {
		return nil, fmt.Errorf("%w: dangling backpointer to (%d,%d,%s)",
			ErrChartCorrupt, i, j, c.g.Name(sym))
	}
	switch bp.Kind {
	case BackpointerLexical:
		return tree.NewInternal(c.g.Name(sym), tree.NewLeaf(tokens[i], i)), nil
	case BackpointerBinary:
		left, err := extractNode(c, tokens, i, bp.Split, bp.Left)
		if err != nil {
			return nil, err
		}
		right, err := extractNode(c, tokens, bp.Split, j, bp.Right)
		if err != nil {
			return nil, err
		}
		return tree.NewInternal(c.g.Name(sym), left, right), nil
	default:
		return nil, fmt.Errorf("%w: entry (%d,%d,%s) has no backpointer",
			ErrChartCorrupt, i, j, c.g.Name(sym))
	}
}
