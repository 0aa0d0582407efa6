package tree

import "strings"

// Span is a half-open token interval [Start, End) over a sentence.
type Span struct {
	Start, End int
}

// Len returns the number of tokens the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Node is one node of a parse tree.
//
// Internal nodes carry a nonterminal Label, a Span, and at least one child.
// Leaves carry the terminal Token and a span of length one; their Children
// slice is nil and their Label is empty. Nodes own their data — extraction
// copies labels and spans out of the chart, so a tree never aliases parser
// state.
type Node struct {
	// Label is the nonterminal of an internal node; empty on leaves.
	Label string

	// Span is the token range this node derives.
	Span Span

	// Children are the ordered constituents of an internal node; nil on leaves.
	Children []*Node

	// Token is the terminal of a leaf; empty on internal nodes.
	Token string
}

// NewLeaf builds a leaf for token at position pos.
func NewLeaf(token string, pos int) *Node {
	return &Node{Token: token, Span: Span{Start: pos, End: pos + 1}}
}

// NewInternal builds an internal node labeled label over the given children,
// spanning from the first child's start to the last child's end.
func NewInternal(label string, children ...*Node) *Node {
	n := &Node{Label: label, Children: children}
	if len(children) > 0 {
		n.Span = Span{
			Start: children[0].Span.Start,
			End:   children[len(children)-1].Span.End,
		}
	}
	return n
}

// IsLeaf reports whether n is a terminal leaf.
func (n *Node) IsLeaf() bool { return n.Children == nil }

// Preterminal reports whether n is a part-of-speech node: an internal node
// whose only child is a leaf. Evaluation conventions treat these specially.
func (n *Node) Preterminal() bool {
	return len(n.Children) == 1 && n.Children[0].IsLeaf()
}

// String renders the tree on a single line in the usual bracketed form,
// e.g. (S (NP (D the) (N dog)) (VP (V saw) (NP (D the) (N cat)))).
// This is the parse-output format; ParseBracketed reads it back.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Token)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, child := range n.Children {
		b.WriteByte(' ')
		child.write(b)
	}
	b.WriteByte(')')
}

// Pretty renders the tree with two-space indentation, one constituent per
// line. Preterminals stay on one line with their token.
func (n *Node) Pretty() string {
	var b strings.Builder
	n.pretty(&b, 0)
	return b.String()
}

func (n *Node) pretty(b *strings.Builder, level int) {
	if n.IsLeaf() {
		b.WriteString(n.Token)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	if n.Preterminal() {
		b.WriteByte(' ')
		b.WriteString(n.Children[0].Token)
		b.WriteByte(')')
		return
	}
	for _, child := range n.Children {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", level+1))
		child.pretty(b, level+1)
	}
	b.WriteByte(')')
}

// Leaves returns the terminal tokens in sentence order.
func (n *Node) Leaves() []string {
	var out []string
	n.appendLeaves(&out)
	return out
}

func (n *Node) appendLeaves(out *[]string) {
	if n.IsLeaf() {
		*out = append(*out, n.Token)
		return
	}
	for _, child := range n.Children {
		child.appendLeaves(out)
	}
}

// Depth returns the number of levels in the tree; a bare leaf has depth 1.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Equal reports structural equality: same labels, tokens, spans, and
// children. Two nil nodes are equal.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Label != o.Label || n.Token != o.Token || n.Span != o.Span {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
