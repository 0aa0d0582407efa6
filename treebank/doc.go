// Package treebank reads and writes the line-oriented corpus files the
// parsing pipeline exchanges.
//
// Two file shapes exist. A sentence file carries one whitespace-tokenized
// sentence per line and feeds the parser. A tree file carries one bracketed
// parse per line, in the form produced by tree.Node.String, and appears on
// both sides of evaluation: parser output and gold reference. In both shapes
// blank lines and lines starting with '#' are comments.
//
// A tree file may also contain the NoParseMarker line, which records that
// the parser found no derivation for the corresponding sentence; readers
// surface it as an Entry with a nil Tree. Malformed tree lines do not abort
// reading: each becomes an Entry carrying its own error, so callers decide
// per line whether to skip or fail.
package treebank
