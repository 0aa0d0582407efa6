// Package tree holds the parse-tree data model shared by the parser, the
// treebank reader, and the evaluator, together with the bracketed-string
// codec.
//
// A tree is its root *Node. Internal nodes carry a nonterminal label and a
// half-open token Span; leaves carry the terminal token and a span of
// length one. Node.String renders the standard single-line bracketed form
// and ParseBracketed reads it back, so parser output round-trips through
// plain text files.
//
// Nodes are plain data with no back-references: once a tree is built it is
// independent of whatever produced it and safe to pass between goroutines
// that do not mutate it.
package tree
