// Package pcfg is an in-memory toolkit for probabilistic context-free
// grammars: from grammar files to Viterbi parse trees and PARSEVAL
// scores.
//
// 🚀 What is pcfg?
//
//	A small, deterministic library that brings together:
//		• Grammar loading: a line-oriented PCFG format with strict CNF validation
//		• CKY parsing: exact Viterbi chart parsing in natural-log space
//		• Recognition: cheap membership tests without tree extraction
//		• Trees: bracketed parse trees with token spans, read and written as text
//		• Treebanks: line-oriented corpus I/O with a NOPARSE convention
//		• Evaluation: labeled-bracket precision, recall and F1
//
// ✨ Why choose pcfg?
//
//   - Deterministic – equal inputs give identical parses, tie-breaks included
//   - Exact – max-product Viterbi in log space, no probability underflow
//   - Concurrent – batch parsing fans out over a bounded worker pool
//   - Extensible – functional options (WithStartSymbol, WithWorkers…) on every entry point
//
// Under the hood, everything is organized under five subpackages:
//
//	grammar/  — the PCFG model: loading, validation, interned symbols, rule lookups
//	tree/     — parse-tree nodes and the bracketed text round-trip
//	treebank/ — corpus I/O: sentences in, trees out
//	cky/      — the chart parser: Parse, Recognize, ParseChart, ParseAll
//	parseval/ — labeled-span evaluation and corpus aggregates
//
// Quick bracketed example:
//
//	(S (NP (D the) (N dog)) (VP (V barks)))
//
//	reads as: S spans the whole sentence and splits into an NP and a VP.
//
// The pcfg command under cmd/pcfg wires the subpackages into a check /
// parse / evaluate pipeline; the files under examples/ walk through the
// library API scenario by scenario.
//
//	go get github.com/katalvlaran/pcfg
package pcfg
