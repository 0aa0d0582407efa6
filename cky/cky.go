// Package cky implements probabilistic CKY parsing over grammars in
// Chomsky normal form, returning Viterbi (highest-probability) parse trees.
package cky

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pcfg/grammar"
	"github.com/katalvlaran/pcfg/tree"
)

// prepare validates the grammar pointer, applies options, and resolves the
// start symbol to its interned id.
func prepare(g *grammar.Grammar, opts []Option) (Options, int, error) {
	if g == nil {
		return Options{}, 0, ErrGrammarNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, 0, o.err
	}
	start := g.StartID()
	if o.Start != "" {
		id, ok := g.ID(o.Start)
		if !ok {
			return Options{}, 0, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
		}
		start = id
	}
	return o, start, nil
}

// filler encapsulates the mutable state of one chart fill.
type filler struct {
	g      *grammar.Grammar
	tokens []string
	chart  *Chart
	ctx    context.Context
}

// fill runs the CKY dynamic program: seed length-1 spans from lexical
// rules, then widen span by span. Cancellation is checked between
// span-length passes.
func (f *filler) fill() error {
	f.seed()
	n := len(f.tokens)
	for length := 2; length <= n; length++ {
		select {
		case <-f.ctx.Done():
			return f.ctx.Err()
		default:
		}
		for start := 0; start+length <= n; start++ {
			f.combine(start, start+length)
		}
	}
	return nil
}

// seed applies every lexical rule matching each token to its length-1
// span. A token with no matching rule seeds nothing; that is not an error,
// recognition simply fails later.
func (f *filler) seed() {
	for i, tok := range f.tokens {
		for _, r := range f.g.TokenRules(tok) {
			f.chart.proposeLexical(i, r)
		}
	}
}

// combine fills cell (i, j) by trying every interior split point k and
// every binary rule joining a constituent over (i, k) with one over (k, j).
// Splits ascend, cell symbols iterate in first-proposal order, and rules in
// declaration order, so candidate order is fixed and ties resolve the same
// way on every run.
func (f *filler) combine(i, j int) {
	for k := i + 1; k < j; k++ {
		left := f.chart.at(i, k)
		if left.present == nil {
			continue
		}
		right := f.chart.at(k, j)
		if right.present == nil {
			continue
		}
		for _, ls := range left.order {
			lscore := left.score[ls]
			for _, rs := range right.order {
				combined := lscore + right.score[rs]
				for _, rule := range f.g.PairRules(ls, rs) {
					f.chart.proposeBinary(i, k, j, rule, combined+rule.LogProb)
				}
			}
		}
	}
}

// Recognize — CKY membership test
//
// Description:
//
//	Recognize reports whether the token sequence can be derived from the
//	start symbol at all. It runs the same dynamic program as Parse but
//	stores scores only, skipping backpointer allocation, so use it when the
//	tree itself is not needed.
//
// Complexity:
//
//	Time   = O(n³ · R)   where n = len(tokens), R = rules per symbol pair
//	Memory = O(n² · N)   where N = |nonterminals|
//
// Errors:
//   - ErrGrammarNil      — g is nil.
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrStartNotFound   — WithStartSymbol named an unknown nonterminal.
//   - context errors     — the context was cancelled mid-fill.
//
// An unparsable sentence is (false, nil), never an error.
func Recognize(g *grammar.Grammar, tokens []string, opts ...Option) (bool, error) {
	o, start, err := prepare(g, opts)
	if err != nil {
		return false, err
	}
	f := &filler{g: g, tokens: tokens, chart: newChart(g, len(tokens), false), ctx: o.Ctx}
	if err := f.fill(); err != nil {
		return false, err
	}
	_, _, ok := f.chart.get(0, len(tokens), start)
	return ok, nil
}

// ParseChart fills and returns the complete chart for the sentence,
// backpointers included, without extracting a tree. Use it when several
// readouts of one sentence are needed: different start symbols, direct
// cell inspection via Get, or structural checks via Validate. Errors match
// Recognize.
func ParseChart(g *grammar.Grammar, tokens []string, opts ...Option) (*Chart, error) {
	o, _, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	f := &filler{g: g, tokens: tokens, chart: newChart(g, len(tokens), true), ctx: o.Ctx}
	if err := f.fill(); err != nil {
		return nil, err
	}
	return f.chart, nil
}

// Parse — Viterbi CKY parse
//
// Description:
//
//	Parse finds the single highest-probability derivation of the sentence
//	under the grammar and returns it as a tree together with its
//	log-probability (natural log). Probabilities multiply along a
//	derivation, so scores add in log space and never underflow.
//
// Algorithm Outline:
//  1. For each token position i, enter every lexical rule LHS -> token
//     into cell (i, i+1) with score log p.
//  2. For span lengths 2..n, for each span (i, j) and split k, combine
//     each symbol pair from cells (i, k) and (k, j) through every binary
//     rule, keeping per (span, symbol) only the best score and the
//     backpointer that achieved it. Equal scores keep the incumbent, so
//     the first derivation discovered wins ties deterministically.
//  3. Read cell (0, n, start); absent means no parse. Otherwise resolve
//     backpointers into the tree.
//
// Complexity:
//
//	Time   = O(n³ · R)
//	Memory = O(n² · N)
//
// Errors:
//   - ErrGrammarNil      — g is nil.
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrStartNotFound   — WithStartSymbol named an unknown nonterminal.
//   - ErrNoParse         — no derivation exists; empty sentences and
//     sentences with out-of-vocabulary tokens end here.
//   - context errors     — the context was cancelled mid-fill.
func Parse(g *grammar.Grammar, tokens []string, opts ...Option) (*tree.Node, float64, error) {
	o, start, err := prepare(g, opts)
	if err != nil {
		return nil, 0, err
	}
	f := &filler{g: g, tokens: tokens, chart: newChart(g, len(tokens), true), ctx: o.Ctx}
	if err := f.fill(); err != nil {
		return nil, 0, err
	}
	score, _, ok := f.chart.get(0, len(tokens), start)
	if !ok {
		return nil, 0, ErrNoParse
	}
	root, err := extract(f.chart, f.tokens, start)
	if err != nil {
		return nil, 0, err
	}
	return root, score, nil
}
