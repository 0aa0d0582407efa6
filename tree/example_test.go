package tree_test

import (
	"fmt"

	"github.com/katalvlaran/pcfg/tree"
)

// ExampleParseBracketed reads a bracketed tree back into the Node model and
// inspects it.
func ExampleParseBracketed() {
	n, err := tree.ParseBracketed("(S (NP (D the) (N dog)) (VP (V barks)))")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Println(n)
	fmt.Println("span:", n.Span.Start, n.Span.End)
	fmt.Println("leaves:", n.Leaves())
	// Output:
	// (S (NP (D the) (N dog)) (VP (V barks)))
	// span: 0 3
	// leaves: [the dog barks]
}

// ExampleNewInternal assembles a constituent by hand; the span is the hull
// of the children.
func ExampleNewInternal() {
	np := tree.NewInternal("NP",
		tree.NewInternal("D", tree.NewLeaf("the", 0)),
		tree.NewInternal("N", tree.NewLeaf("dog", 1)),
	)
	fmt.Println(np)
	fmt.Printf("covers tokens [%d, %d)\n", np.Span.Start, np.Span.End)
	// Output:
	// (NP (D the) (N dog))
	// covers tokens [0, 2)
}
