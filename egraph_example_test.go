package egraph_test

import (
	"fmt"

	"github.com/egraph-go/egraph"
)

// This example builds e-nodes for mul(a, b) and mul(b, a), asserts
// commutativity by merging the two application classes directly, then
// shows that after Rebuild, both Find to the same class.
func Example() {
	g := egraph.New()
	a, _ := g.Add(Sym{"a"})
	b, _ := g.Add(Sym{"b"})
	mulAB, _ := g.Add(App{"mul", []egraph.Id{a, b}})
	mulBA, _ := g.Add(App{"mul", []egraph.Id{b, a}})

	if _, err := g.Merge(mulAB, mulBA); err != nil {
		panic(err)
	}
	g.Rebuild()

	fmt.Println(g.Find(mulAB) == g.Find(mulBA))
	// Output:
	// true
}
