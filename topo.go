package egraph

import (
	"fmt"
	"sort"

	"github.com/egraph-go/egraph/internal/graph"
	"github.com/egraph-go/egraph/internal/mermaid"
)

// classGraph adapts EGraph to internal/graph's Graph shape: an edge from
// a class to one of the child classes any of its member e-nodes
// references. Rogpeppe-generic's EdgesFrom graphs carry an edge type
// distinct from the node type (Node, Edge), but here an edge out of a
// class is fully described by its destination, so Edge is just Id too.
type classGraph struct{ e *EGraph }

func (g classGraph) EdgesFrom(n Id) ([]Id, bool) {
	var out []Id
	for _, node := range g.e.classes.Nodes(n) {
		out = append(out, node.Children()...)
	}
	return out, true
}

func (g classGraph) Nodes(e Id) (from, to Id) { return 0, e }

// AllNodes returns every live class id in ascending order. internal/graph's
// TopoSort is deterministic only given a deterministic AllNodes order, and
// classmem.Ids ranges over a Go map, so the ids are sorted here the same
// way debug.go's snapshot sorts them for the same reason.
func (g classGraph) AllNodes() []Id {
	ids := g.e.classes.Ids()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g classGraph) NodeInfo(id Id) mermaid.NodeInfo {
	nodes := g.e.classes.Nodes(id)
	text := id.String()
	if len(nodes) > 0 {
		text = fmt.Sprintf("%s (%d nodes)", id, len(nodes))
	}
	return mermaid.NodeInfo{ID: id.String(), Text: text}
}

// TopoOrder returns the graph's e-classes ordered so that every class
// appears after all of its children's classes, along with any cycles
// found along the way. Equality saturation can and does close cycles (a
// class merged with one of its own ancestors), so, like
// internal/graph.TopoSort, this never fails on a cyclic graph: it
// reports the cycles it found and still orders everything outside them
// correctly.
func (e *EGraph) TopoOrder() (sorted []Id, cycles [][]Id) {
	return graph.TopoSort[Id, Id](classGraph{e})
}

// DumpCycles renders the cycles returned by TopoOrder, one bracketed
// chain per cycle, using each class's canonical id.
func DumpCycles(cycles [][]Id) string {
	return graph.DumpCycles(cycles, func(id Id) string { return id.String() })
}

// MarshalMermaid renders the e-graph's class dependency graph (the same
// edges TopoOrder sorts by) as a Mermaid flowchart, for pasting into
// debug notes or documentation.
func (e *EGraph) MarshalMermaid() ([]byte, error) {
	return mermaid.NewGraph[Id, Id](classGraph{e}).MarshalMermaid()
}
