package cky

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pcfg/grammar"
	"github.com/katalvlaran/pcfg/tree"
)

// Result is the outcome of one sentence in a batch parse. On success Tree
// is the best parse and LogProb its natural-log probability; otherwise Err
// carries the per-sentence outcome, ErrNoParse included.
type Result struct {
	Tree    *tree.Node
	LogProb float64
	Err     error
}

// ParseAll parses independent sentences concurrently and returns one
// Result per sentence, in input order.
//
// The grammar is immutable after load, so all workers share it without
// locking; each sentence owns a private chart. WithWorkers bounds the
// number of sentences in flight (default: one per CPU).
//
// Per-sentence outcomes, including ErrNoParse, land in Result.Err and
// never abort the batch. The returned error is non-nil only for a nil
// grammar, invalid options, an unknown start symbol, or context
// cancellation; on cancellation the partial results are discarded.
func ParseAll(g *grammar.Grammar, sentences [][]string, opts ...Option) ([]Result, error) {
	o, _, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(sentences))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)

	// Rebuild the option list once with the group context appended last, so
	// it overrides any caller-supplied context for the worker parses.
	perSentence := append(append(make([]Option, 0, len(opts)+1), opts...), WithContext(ctx))

	for i := range sentences {
		i := i // per-iteration copy: required under go <1.22 loop semantics
		eg.Go(func() error {
			root, logProb, err := Parse(g, sentences[i], perSentence...)
			if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				return err
			}
			results[i] = Result{Tree: root, LogProb: logProb, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
