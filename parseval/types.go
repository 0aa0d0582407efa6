// Package parseval defines the scoring conventions and accumulator types
// for labeled-bracket evaluation.
package parseval

// Options selects which constituent spans participate in scoring.
// The zero value is not the default; use DefaultOptions.
type Options struct {
	// Preterminals includes part-of-speech spans (internal nodes whose only
	// child is a token) when true. The usual convention scores phrase
	// structure only, so the default is false.
	Preterminals bool

	// Root includes the whole-sentence span when true (the default).
	// A root that is itself a preterminal follows the Preterminals setting
	// instead.
	Root bool
}

// Option adjusts the scoring convention via functional arguments.
type Option func(*Options)

// DefaultOptions returns the standard convention: phrase spans only,
// preterminals excluded, root included.
func DefaultOptions() Options {
	return Options{
		Preterminals: false,
		Root:         true,
	}
}

// WithPreterminals includes part-of-speech spans in the comparison.
func WithPreterminals() Option {
	return func(o *Options) { o.Preterminals = true }
}

// WithoutRoot excludes the whole-sentence span from the comparison.
func WithoutRoot() Option {
	return func(o *Options) { o.Root = false }
}
