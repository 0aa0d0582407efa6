package grammar

import (
	"fmt"
	"math"
)

// DefaultTolerance is the relative tolerance CheckDistribution applies when
// no explicit tolerance is given.
const DefaultTolerance = 1e-9

// CheckDistribution verifies that, for every left-hand nonterminal, the
// probabilities of its rules sum to one within the given relative tolerance
// (tol <= 0 selects DefaultTolerance).
//
// Load deliberately does not require this: a grammar whose per-symbol mass
// is not a proper distribution still parses, the Viterbi scores just stop
// being true probabilities. The check is surfaced separately so strict
// callers (the check --strict verb) can opt in.
//
// The first offending nonterminal is reported, wrapped in ErrDistribution
// together with its accumulated mass.
func (g *Grammar) CheckDistribution(tol float64) error {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	sums := make([]float64, len(g.names))
	comps := make([]float64, len(g.names))
	add := func(lhs int, p float64) {
		// Kahan compensated summation; rule counts per symbol can be large
		// and the comparison tolerance is tight.
		y := p - comps[lhs]
		t := sums[lhs] + y
		comps[lhs] = (t - sums[lhs]) - y
		sums[lhs] = t
	}
	for _, br := range g.binary {
		add(br.LHS, br.Prob)
	}
	for _, lr := range g.lexical {
		add(lr.LHS, lr.Prob)
	}

	for id, sum := range sums {
		if math.Abs(sum-1) > tol*math.Max(math.Abs(sum), 1) {
			return fmt.Errorf("%w: %s sums to %.12g", ErrDistribution, g.names[id], sum)
		}
	}

	return nil
}
