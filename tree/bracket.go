package tree

import (
	"errors"
	"fmt"
)

// ErrBracketSyntax is returned by ParseBracketed for malformed input.
// The wrapped message pinpoints the byte offset of the problem.
var ErrBracketSyntax = errors.New("tree: malformed bracketed tree")

// ParseBracketed reads a tree in the single-line bracketed form produced by
// Node.String: "(Label child child ...)" where a child is either a nested
// constituent or a bare terminal token. Leaf spans are assigned from token
// positions left to right; internal spans are the hull of their children.
//
// The input must contain exactly one tree and nothing else. Reference trees
// are not required to be binary — any constituent arity parses.
func ParseBracketed(s string) (*Node, error) {
	p := &bracketParser{src: s}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: empty input", ErrBracketSyntax)
	}
	if p.src[p.pos] != '(' {
		return nil, fmt.Errorf("%w: expected '(' at byte %d", ErrBracketSyntax, p.pos)
	}
	root, err := p.constituent()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w: trailing input at byte %d", ErrBracketSyntax, p.pos)
	}
	return root, nil
}

// bracketParser is a single-pass recursive-descent reader over src.
// nextLeaf counts terminals seen so far, which is exactly the token
// position of the next leaf.
type bracketParser struct {
	src      string
	pos      int
	nextLeaf int
}

func (p *bracketParser) eof() bool { return p.pos >= len(p.src) }

func (p *bracketParser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// atom consumes a maximal run of non-space, non-parenthesis bytes.
func (p *bracketParser) atom() string {
	start := p.pos
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '(', ')':
			return p.src[start:p.pos]
		default:
			p.pos++
		}
	}
	return p.src[start:p.pos]
}

// constituent parses "(Label child...)" with p.pos on the opening '('.
func (p *bracketParser) constituent() (*Node, error) {
	p.pos++ // consume '('
	p.skipSpace()

	label := p.atom()
	if label == "" {
		return nil, fmt.Errorf("%w: missing label at byte %d", ErrBracketSyntax, p.pos)
	}

	var children []*Node
	for {
		p.skipSpace()
		if p.eof() {
			return nil, fmt.Errorf("%w: unbalanced parentheses", ErrBracketSyntax)
		}
		if p.src[p.pos] == ')' {
			p.pos++
			break
		}
		if p.src[p.pos] == '(' {
			child, err := p.constituent()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}
		tok := p.atom()
		children = append(children, NewLeaf(tok, p.nextLeaf))
		p.nextLeaf++
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: constituent %q has no children", ErrBracketSyntax, label)
	}

	return NewInternal(label, children...), nil
}
