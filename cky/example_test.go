package cky_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pcfg/cky"
	"github.com/katalvlaran/pcfg/grammar"
)

// ExampleParse parses a five-token sentence and prints the Viterbi tree
// with its natural-log probability.
func ExampleParse() {
	g, err := grammar.ParseString(toyGrammar)
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	root, logProb, err := cky.Parse(g, strings.Fields("the dog saw the cat"))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Println(root)
	fmt.Printf("log-probability: %.4f\n", logProb)
	// Output:
	// (S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))
	// log-probability: -1.3863
}

// ExampleParse_noParse shows that an out-of-vocabulary token is an expected
// outcome, reported through the ErrNoParse sentinel.
func ExampleParse_noParse() {
	g, err := grammar.ParseString(toyGrammar)
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	_, _, err = cky.Parse(g, strings.Fields("the zebra saw the cat"))
	fmt.Println(errors.Is(err, cky.ErrNoParse))
	// Output:
	// true
}

// ExampleRecognize answers membership only, without building a tree.
func ExampleRecognize() {
	g, err := grammar.ParseString(toyGrammar)
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	ok, _ := cky.Recognize(g, strings.Fields("the dog saw the cat"))
	fmt.Println("in language:", ok)
	ok, _ = cky.Recognize(g, strings.Fields("dog the"))
	fmt.Println("in language:", ok)
	// Output:
	// in language: true
	// in language: false
}

// ExampleParseAll parses a small batch concurrently; results come back in
// input order with per-sentence outcomes.
func ExampleParseAll() {
	g, err := grammar.ParseString(toyGrammar)
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	results, err := cky.ParseAll(g, [][]string{
		strings.Fields("the dog saw the cat"),
		strings.Fields("the zebra saw the cat"),
	}, cky.WithWorkers(2))
	if err != nil {
		fmt.Println("batch:", err)
		return
	}
	for _, r := range results {
		if errors.Is(r.Err, cky.ErrNoParse) {
			fmt.Println("NOPARSE")
			continue
		}
		fmt.Println(r.Tree)
	}
	// Output:
	// (S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat))))
	// NOPARSE
}
