// Package mermaid renders a graph as a Mermaid flowchart, adapted from
// github.com/rogpeppe/generic/mermaid. [egraph.EGraph.MarshalMermaid] uses
// it to render the e-class/e-node dependency graph for debugging: e-graphs
// are exactly the kind of densely cross-referenced structure that's hard
// to read as text but easy to read as a diagram once classes above a
// trivial size are involved.
package mermaid

import (
	"bytes"
	"fmt"

	"github.com/egraph-go/egraph/internal/graph"
)

// Marshaler renders an object as Mermaid diagram source.
type Marshaler interface {
	MarshalMermaid() ([]byte, error)
}

// GraphInterface is what NewGraph needs on top of graph.EnumerableGraph:
// per-node display metadata.
type GraphInterface[Node comparable, Edge any] interface {
	graph.EnumerableGraph[Node, Edge]
	NodeInfo(Node) NodeInfo
}

// NodeInfo is a node's Mermaid display metadata.
type NodeInfo struct {
	ID    string
	Text  string
	Style string
}

// NewGraph returns a Marshaler that renders g as a top-down Mermaid
// flowchart.
func NewGraph[Node comparable, Edge any](g GraphInterface[Node, Edge]) Marshaler {
	return &graphImpl[Node, Edge]{g}
}

type graphImpl[Node comparable, Edge any] struct {
	g GraphInterface[Node, Edge]
}

func (g *graphImpl[Node, Edge]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.g.NodeInfo(n)
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[%s]\n", info.ID, info.Text)
		}
		if info.Style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, info.Style)
		}
		edges, ok := g.g.EdgesFrom(n)
		if ok {
			for _, e := range edges {
				_, to := g.g.Nodes(e)
				fmt.Fprintf(&buf, "  %s-->%s\n", info.ID, g.g.NodeInfo(to).ID)
			}
		}
	}
	return buf.Bytes(), nil
}
