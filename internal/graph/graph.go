// Package graph adapts github.com/rogpeppe/generic/graph's topological
// sort (graph/topo.go, itself derived from v.io/x/lib/toposort) to the
// Graph shape [egraph.EGraph] actually has: EdgesFrom a node rather than
// Edges, since an e-class only knows its own outgoing child edges, not
// an edge list addressed by two endpoints.
//
// Equality saturation routinely closes cycles (merging a class with one
// of its own ancestors), so, like the teacher's TopoSort, this reports
// cycles instead of failing on them: the acyclic part of the graph still
// gets a correct partial order, and DumpCycles renders whatever cyclic
// components were found.
package graph

// Graph is the minimal capability [TopoSort] needs: given a node, the
// edges leading away from it, and given an edge, its endpoints.
type Graph[Node comparable, Edge any] interface {
	EdgesFrom(n Node) ([]Edge, bool)
	Nodes(e Edge) (from, to Node)
}

// EnumerableGraph additionally knows the full set of its nodes, needed to
// seed a full traversal (a graph with only EdgesFrom could be walked from
// a single root, but TopoSort visits everything).
type EnumerableGraph[Node comparable, Edge any] interface {
	Graph[Node, Edge]
	AllNodes() []Node
}

// TopoSort returns the topologically sorted nodes, along with any cycles
// encountered. len(cycles) == 0 iff the graph is acyclic; otherwise an
// arbitrary but non-empty list of cycles is returned and the sort is
// best-effort: the acyclic portions are still ordered correctly.
//
// TopoSort is deterministic given a deterministic AllNodes order.
func TopoSort[Node comparable, Edge any](g EnumerableGraph[Node, Edge]) (sorted []Node, cycles [][]Node) {
	v := &visitor[Node, Edge]{
		g:    g,
		done: make(map[Node]bool),
	}
	for _, n := range g.AllNodes() {
		v.visiting = make(map[Node]bool)
		cycles = append(cycles, v.visit(n)...)
	}
	return v.sorted, cycles
}

type visitor[Node comparable, Edge any] struct {
	g        Graph[Node, Edge]
	done     map[Node]bool
	visiting map[Node]bool
	sorted   []Node
}

func (v *visitor[Node, Edge]) visit(n Node) (cycles [][]Node) {
	if v.done[n] {
		return nil
	}
	if v.visiting[n] {
		return [][]Node{{n}}
	}
	v.visiting[n] = true
	if edges, ok := v.g.EdgesFrom(n); ok {
		for _, edge := range edges {
			_, child := v.g.Nodes(edge)
			cycles = append(cycles, v.visit(child)...)
		}
	}
	v.done[n] = true
	v.sorted = append(v.sorted, n)
	for cx := range cycles {
		clen := len(cycles[cx])
		if clen == 1 || cycles[cx][0] != cycles[cx][clen-1] {
			cycles[cx] = append(cycles[cx], n)
		}
	}
	return cycles
}

// DumpCycles renders the cycles returned by TopoSort using toString to
// convert each node to a string, for debug output.
func DumpCycles[Node any](cycles [][]Node, toString func(n Node) string) string {
	var str string
	for cyclex, cycle := range cycles {
		if cyclex > 0 {
			str += " "
		}
		str += "["
		for nodex, node := range cycle {
			if nodex > 0 {
				str += " <= "
			}
			str += toString(node)
		}
		str += "]"
	}
	return str
}
