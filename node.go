package egraph

import "hash/maphash"

// Node is the term surface this package requires a caller to implement: a
// single e-node, a term constructor applied to zero or more e-class ids.
//
// Two shapes exist. Leaf nodes (IsLeaf returns true) are literals or
// symbols with no children. Application nodes have an ordered sequence of
// child e-class ids, returned by Children. A node is canonical iff every
// child id equals Find(child); [EGraph.Add] canonicalizes a node before
// interning it.
//
// Equal and Hash must consider the operator plus the ordered child ids,
// and must agree with each other: Equal(x, y) implies x and y hash the
// same. Implementations are expected to be immutable; WithChildren
// returns a rewritten copy rather than mutating the receiver, which is
// what lets the hashcons intern a node and later replace it with a
// re-canonicalized copy during [EGraph.Rebuild] without aliasing bugs.
type Node interface {
	// IsLeaf reports whether the node has no children.
	IsLeaf() bool

	// Children returns the node's child e-class ids, in order. It
	// returns nil for a leaf node. Callers must not mutate the
	// returned slice.
	Children() []Id

	// WithChildren returns a copy of the node with its children
	// replaced, in order, by newChildren. len(newChildren) must equal
	// len(Children()). It must not mutate the receiver.
	WithChildren(newChildren []Id) Node

	// Equal reports whether the node is structurally equal to other:
	// the same operator applied to equal, ordered children.
	Equal(other Node) bool

	// Hash writes a hash of the node (operator plus ordered children)
	// to h. It must be consistent with Equal.
	Hash(h *maphash.Hash)
}

// canonicalize returns n with every child id replaced by its current
// Find-canonical form. Leaf nodes are returned unchanged. canonicalize is
// a pure function of the union-find: it never mutates e.classes, the
// hashcons or the parent index.
func (e *EGraph) canonicalize(n Node) Node {
	if n.IsLeaf() {
		return n
	}
	children := n.Children()
	canon := make([]Id, len(children))
	changed := false
	for i, c := range children {
		canon[i] = e.Find(c)
		if canon[i] != c {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return n.WithChildren(canon)
}

// nodeHasher adapts the [Node] interface's own Equal/Hash methods to the
// Hasher capability internal/hashcons expects, the same way
// anyhash.ComparableHasher adapts == for comparable types.
type nodeHasher struct{}

func (nodeHasher) Hash(h *maphash.Hash, n Node) { n.Hash(h) }
func (nodeHasher) Equal(a, b Node) bool         { return a.Equal(b) }
