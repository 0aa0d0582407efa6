// Package cky parses sentences with probabilistic context-free grammars in
// Chomsky normal form, using the CKY dynamic program with Viterbi scoring.
//
// 🚀 What is CKY?
//
//	CKY fills a triangular chart bottom-up: first every grammar preterminal
//	over each single token, then every constituent over longer spans by
//	joining two adjacent shorter ones through a binary rule.  With Viterbi
//	scoring each chart entry keeps only the most probable derivation, so
//	the top cell holds the best parse of the whole sentence.  It's the
//	textbook engine behind:
//	  • Constituency parsing & treebank experiments
//	  • Grammar debugging (which reading wins, and by how much)
//	  • Membership testing for formal languages
//
// ✨ Key features:
//   - log-space scores: probabilities multiply, scores add, nothing underflows
//   - score-only mode (Recognize) skips backpointer storage entirely
//   - full mode (Parse / ParseChart) recovers the best tree via backpointers
//   - deterministic tie-breaking: equal-probability readings resolve the
//     same way on every run
//   - batch mode (ParseAll) parses independent sentences concurrently
//   - context cancellation between span-length passes
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/pcfg/cky"
//	  "github.com/katalvlaran/pcfg/grammar"
//	)
//
//	g, err := grammar.LoadFile("toy.gr")
//	if err != nil { ... }
//
//	root, logProb, err := cky.Parse(g, []string{"the", "dog", "barks"})
//	switch {
//	case errors.Is(err, cky.ErrNoParse):
//	  // expected outcome, not a failure
//	case err != nil:
//	  // misconfiguration or cancellation
//	default:
//	  fmt.Println(root, logProb)
//	}
//
// Performance:
//
//   - Time:   O(n³ · R) for n tokens and R rules per symbol pair
//   - Memory: O(n² · N) for N nonterminals; Recognize stores no backpointers
//
// See example_test.go for runnable examples.
package cky
