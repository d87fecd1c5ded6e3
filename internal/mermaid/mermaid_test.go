package mermaid_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/egraph-go/egraph/internal/mermaid"
)

type g struct {
	edges map[int][]int
	nodes []int
}

func (g g) EdgesFrom(n int) ([]int, bool) {
	e, ok := g.edges[n]
	return e, ok
}

func (g g) Nodes(e int) (from, to int) { return 0, e }

func (g g) AllNodes() []int { return g.nodes }

func (g g) NodeInfo(n int) mermaid.NodeInfo {
	return mermaid.NodeInfo{ID: "n", Text: "node"}
}

func TestMarshalMermaidRendersEdges(t *testing.T) {
	gr := g{
		edges: map[int][]int{1: {2}},
		nodes: []int{1, 2},
	}
	out, err := mermaid.NewGraph[int, int](gr).MarshalMermaid()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(out), "graph TD\n")))
	qt.Assert(t, qt.IsTrue(strings.Contains(string(out), "-->")))
}
