// Package cky defines configuration options and sentinel errors for the
// CKY chart parser.
package cky

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for chart construction, parsing, and extraction.
var (
	// ErrGrammarNil is returned if a nil grammar pointer is passed.
	ErrGrammarNil = errors.New("cky: grammar is nil")

	// ErrNoParse reports that no derivation of the whole sentence from the
	// start symbol exists. It is an expected outcome, not a failure: unknown
	// tokens and empty sentences end here too.
	ErrNoParse = errors.New("cky: no parse")

	// ErrStartNotFound is returned when the configured start symbol is not a
	// nonterminal of the grammar.
	ErrStartNotFound = errors.New("cky: start symbol not found in grammar")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cky: invalid option supplied")

	// ErrNeedBackpointers is returned by Extract on a chart built by
	// Recognize, which stores scores only.
	ErrNeedBackpointers = errors.New("cky: extraction requires a chart built with backpointers")

	// ErrTokenMismatch is returned by Extract when the sentence length does
	// not match the chart dimension.
	ErrTokenMismatch = errors.New("cky: sentence length does not match chart")

	// ErrChartCorrupt is returned by Validate, and by Extract on a dangling
	// backpointer, when the chart breaks a structural invariant.
	ErrChartCorrupt = errors.New("cky: chart invariant violated")
)

// Option configures parsing via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the parser is invoked.
type Option func(*Options)

// Options holds parameters shared by Recognize, Parse, and ParseAll.
type Options struct {
	// Ctx allows cancellation and deadlines. Cancellation is checked between
	// span-length passes of the fill loop.
	Ctx context.Context

	// Start overrides the grammar's start symbol when non-empty.
	// Resolution order: this option, then the grammar file's declaration,
	// then the first rule's left-hand side.
	Start string

	// Workers bounds ParseAll parallelism. 0 means one worker per CPU.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - the grammar's own start symbol (Start == "")
//   - one worker per CPU for batch parsing.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Start:   "",
		Workers: runtime.GOMAXPROCS(0),
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartSymbol overrides the start symbol for this invocation.
// The name must be non-empty; whether it exists in the grammar is checked
// at invocation, yielding ErrStartNotFound.
func WithStartSymbol(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: start symbol must be non-empty", ErrOptionViolation)
			return
		}
		o.Start = name
	}
}

// WithWorkers bounds the number of concurrent sentence parses in ParseAll.
//
//	n > 0:  use exactly n workers
//	n == 0: explicit default, one worker per CPU
//	n < 0:  invalid option, surfaced as ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}
