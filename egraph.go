package egraph

import (
	"reflect"

	"github.com/egraph-go/egraph/internal/classmem"
	"github.com/egraph-go/egraph/internal/dirty"
	"github.com/egraph-go/egraph/internal/hashcons"
	"github.com/egraph-go/egraph/internal/heap"
	"github.com/egraph-go/egraph/internal/idset"
	"github.com/egraph-go/egraph/internal/parentindex"
	"github.com/egraph-go/egraph/internal/unionfind"
)

// EGraph is an e-graph over [Node] values: a congruence-closed set of
// e-classes, each holding one or more structurally-equal-modulo-congruence
// e-nodes.
//
// The zero value is not usable; construct one with [New] or
// [NewFromTerm]. An EGraph is not safe for concurrent use without external
// synchronization.
type EGraph struct {
	uf       unionfind.U
	hash     *hashcons.Table[Node, Id, nodeHasher]
	classes  *classmem.Table[Id, Node]
	parents  *parentindex.Table[Id, Node]
	dirty    dirty.Worklist
	analyses []*analysisState

	// root is the id of the term NewFromTerm was built from. Merge never
	// touches it directly; Root (and Rebuild, opportunistically) resolve
	// it to its current canonical id via Find, so it reflects merges that
	// moved its class elsewhere without mergeIds needing to track root
	// specially. It is zero (unset) for a graph built with New.
	root Id
}

func nodeEqual(a, b Node) bool { return a.Equal(b) }

// New returns an empty EGraph.
func New() *EGraph {
	return &EGraph{
		hash:    hashcons.NewTable[Node, Id, nodeHasher](nodeHasher{}),
		classes: classmem.New[Id, Node](nodeEqual),
		parents: parentindex.New[Id, Node](nodeEqual),
	}
}

// Term is the host's term tree type, translated into e-nodes by AddExpr.
// Unlike [Node], whose Children are already e-class ids, a Term's
// Children are sub-Terms: AddExpr walks them depth-first and calls ToNode
// once a term's children have all been interned, giving ToNode their
// freshly minted ids.
//
// A host language with richer walking needs (skipping quoted
// sub-expressions, rewriting call syntax, and the like) is expected to
// do its own walk and call [EGraph.Add] directly node by node instead of
// implementing Term; Term exists to make the common, structurally
// recursive case require no boilerplate.
type Term interface {
	IsLeaf() bool
	Children() []Term
	ToNode(children []Id) Node
}

// NewFromTerm builds a fresh EGraph by interning t depth-first via
// AddExpr, and remembers the resulting id as the graph's root (see
// [EGraph.Root]).
func NewFromTerm(t Term) (*EGraph, error) {
	e := New()
	id, err := e.AddExpr(t)
	if err != nil {
		return nil, err
	}
	e.root = id
	return e, nil
}

// Root returns the id NewFromTerm's term was interned as, re-canonicalized.
// It is zero for a graph built with New, or one whose root was never set.
func (e *EGraph) Root() Id {
	if e.root == 0 {
		return 0
	}
	return e.Find(e.root)
}

// AddExpr interns t's whole tree, depth first, translating each subterm
// into a [Node] via its ToNode method once its children have been
// interned, and returns the id of t's top-level node.
func (e *EGraph) AddExpr(t Term) (Id, error) {
	return e.addTermPostOrder(t)
}

func (e *EGraph) addTermPostOrder(t Term) (Id, error) {
	var childIds []Id
	if !t.IsLeaf() {
		for _, c := range t.Children() {
			id, err := e.addTermPostOrder(c)
			if err != nil {
				return 0, err
			}
			childIds = append(childIds, id)
		}
	}
	return e.Add(t.ToNode(childIds))
}

// Find returns the current canonical representative of id's e-class.
// Find is idempotent and constant amortized time, and safe to call on any
// id this EGraph has ever allocated (via Add or AddExpr).
//
// Find panics if id was never allocated by this EGraph: an id a caller
// invented rather than received back from the graph is a programming
// error, not a recoverable condition, per this package's two-tier error
// model (see [Error]).
func (e *EGraph) Find(id Id) Id {
	return Id(e.uf.Find(int(id)-1) + 1)
}

// validId reports whether id was allocated by this EGraph's union-find.
// Ids start at 1 (internal/unionfind's are 0-based array indices; egraph
// shifts by one so that the zero Id can mean "unset", see [Id]).
func (e *EGraph) validId(id Id) bool {
	return int(id) >= 1 && int(id)-1 < e.uf.Len()
}

// Add interns n, returning the id of its e-class. If an e-node congruent
// to n (same operator, same canonical children) already exists, its
// existing class id is returned unchanged and the graph is not mutated
// (spec §4.3's idempotence guarantee); otherwise a fresh class is
// allocated for it.
//
// n need not already be canonical: Add re-canonicalizes n's children
// through Find before interning, since in ordinary use a caller builds n
// from ids obtained earlier, which may have since been merged away. Add
// returns a *Error with [CodeIllFormedNode] if n references a child id
// this EGraph never allocated, since that can't be fixed by
// canonicalizing and is always a caller bug.
func (e *EGraph) Add(n Node) (Id, error) {
	for _, c := range n.Children() {
		if !e.validId(c) {
			return 0, newError(CodeIllFormedNode, "node references a class id this EGraph never allocated")
		}
	}
	canon := e.canonicalize(n)

	if id, ok := e.hash.Lookup(canon); ok {
		return e.Find(id), nil
	}

	id := Id(e.uf.Make() + 1)
	for _, c := range canon.Children() {
		e.parents.Add(e.Find(c), parentindex.Parent[Id, Node]{Node: canon, Class: id})
	}
	e.hash.Insert(canon, id)
	e.classes.Add(id, canon)
	e.parents.EnsureExists(id)

	for _, st := range e.analyses {
		id = e.Find(id)
		if st.analysis.IsLazy() {
			continue
		}
		st.set(id, st.analysis.Make(e, canon))
		st.analysis.Modify(e, id)
	}
	return e.Find(id), nil
}

// Merge asserts that a and b denote the same value, unioning their
// e-classes. It returns the id of the surviving class. Merging a class
// with itself is a no-op that returns that class's id.
//
// Merge unions the two classes, moves their member nodes, parents and
// analysis values onto the surviving class, and queues that class for
// repair; it does not restore the congruence invariant by itself. Call
// [EGraph.Rebuild] once a batch of merges is done, before relying on
// [EGraph.Find] results to reflect the merges' downstream consequences
// (newly-congruent parents, updated analysis values).
//
// Merge returns a *Error with [CodeUnknownId] if a or b was never
// allocated by this EGraph.
func (e *EGraph) Merge(a, b Id) (Id, error) {
	if !e.validId(a) {
		return 0, newError(CodeUnknownId, "Merge: id "+a.String()+" was never allocated by this EGraph")
	}
	if !e.validId(b) {
		return 0, newError(CodeUnknownId, "Merge: id "+b.String()+" was never allocated by this EGraph")
	}
	return e.mergeIds(a, b), nil
}

// mergeIds implements spec §4.5's merge algorithm. It assumes a and b are
// already known-valid ids.
func (e *EGraph) mergeIds(a, b Id) Id {
	ra, rb := e.Find(a), e.Find(b)
	if ra == rb {
		return ra
	}

	kept := Id(e.uf.Union(int(ra)-1, int(rb)-1) + 1)
	other := ra
	if kept == ra {
		other = rb
	}

	e.dirty.Push(int(kept))

	// Re-canonicalize and re-hashcons every node in both classes under
	// the surviving id, then rebuild class membership as their
	// deduplicated union (spec §4.5 step 4).
	rewrite := func(cls Id) []Node {
		nodes := e.classes.Nodes(cls)
		out := make([]Node, len(nodes))
		for i, n := range nodes {
			canon := e.canonicalize(n)
			e.hash.Delete(n)
			e.hash.Insert(canon, kept)
			out[i] = canon
		}
		return out
	}
	keptNodes := rewrite(kept)
	otherNodes := rewrite(other)
	e.classes.Delete(kept)
	e.classes.Delete(other)
	for _, n := range keptNodes {
		e.classes.Add(kept, n)
	}
	for _, n := range otherNodes {
		e.classes.Add(kept, n)
	}

	e.parents.Union(other, kept)

	for _, st := range e.analyses {
		va, hasVa := st.get(other)
		vk, hasVk := st.get(kept)
		switch {
		case hasVa && hasVk:
			st.set(kept, st.analysis.Join(va, vk))
			st.delete(other)
		case hasVa:
			st.set(kept, va)
			st.delete(other)
		}
	}

	return kept
}

// Rebuild restores the congruence invariant (spec §3) after a batch of
// merges, draining the dirty worklist and repairing each affected class
// until no class is left dirty; a repair can itself dirty further
// classes (an upward-merging chain reaction), so Rebuild loops until the
// worklist is empty rather than processing one fixed batch.
//
// Within a single drained batch, classes are repaired in ascending id
// order (via internal/heap) so that replaying the same sequence of
// Add/Merge calls always produces the same sequence of repair side
// effects, including which Modify callbacks fire and in what order.
//
// Rebuild is not reentrant: an [Analysis.Modify] hook must not call
// Rebuild itself (spec §5).
func (e *EGraph) Rebuild() {
	for e.dirty.Len() > 0 {
		todo := e.dirty.Drain()
		seen := idset.Set{}
		unique := make([]Id, 0, len(todo))
		for _, raw := range todo {
			id := e.Find(Id(raw))
			if seen.Add(int(id)) {
				unique = append(unique, id)
			}
		}
		h := heap.New(unique, func(a, b Id) bool { return a < b }, nil)
		for h.Len() > 0 {
			e.repair(h.Pop())
		}
	}
	if e.root != 0 {
		e.root = e.Find(e.root)
	}
}

// repair restores the congruence invariant for a single e-class,
// following spec §4.8.
func (e *EGraph) repair(id Id) {
	id = e.Find(id)

	// Re-hashcons every parent of id under its current canonical form.
	for _, p := range e.parents.Parents(id) {
		e.hash.Delete(p.Node)
		canon := e.canonicalize(p.Node)
		e.hash.Insert(canon, e.Find(p.Class))
	}

	// Deduplicate congruent parents: two parents that canonicalize to
	// the same node must belong to the same class. Kept as a small,
	// order-preserving vector rather than a second hashcons table, per
	// spec §9's implementation note, since a class's parent list is
	// normally small.
	var newParents []parentindex.Parent[Id, Node]
	findExisting := func(canon Node) int {
		for i := range newParents {
			if newParents[i].Node.Equal(canon) {
				return i
			}
		}
		return -1
	}
	for _, p := range e.parents.Parents(id) {
		canon := e.canonicalize(p.Node)
		cls := e.Find(p.Class)
		if i := findExisting(canon); i >= 0 {
			kept := e.mergeIds(cls, newParents[i].Class)
			for j := range newParents {
				if newParents[j].Node.Equal(canon) {
					newParents[j].Class = kept
				}
			}
		} else {
			newParents = append(newParents, parentindex.Parent[Id, Node]{Node: canon, Class: cls})
		}
	}
	e.parents.Replace(id, newParents)

	id = e.Find(id)
	for _, st := range e.analyses {
		if _, ok := st.get(id); ok {
			st.analysis.Modify(e, id)
			id = e.Find(id)
		}
		for _, p := range e.parents.Parents(id) {
			cls := e.Find(p.Class)
			curVal, hasC := st.get(cls)
			if !hasC {
				if st.analysis.IsLazy() {
					continue
				}
				st.set(cls, st.analysis.Make(e, p.Node))
				continue
			}
			newVal := st.analysis.Join(curVal, st.analysis.Make(e, p.Node))
			if !valuesEqual(newVal, curVal) {
				st.set(cls, newVal)
				e.dirty.Push(int(cls))
			}
		}
	}
}

// valuesEqual compares two analysis lattice values. Analysis doesn't ask
// implementers for an Equal method (most lattices are plain Go values:
// ints, small structs, bitsets), so reflect.DeepEqual is the pragmatic
// default; an analysis whose values are expensive or never converge to
// equal should make IsLazy and its own Join idempotent-check cheap
// enough that this doesn't matter.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Reachable returns every e-class reachable from id's class by following
// child edges of its member e-nodes, transitively, including id's own
// class. It terminates even when the graph has cycles (which equality
// saturation routinely creates, e.g. by merging a class with one of its
// own descendants) by tracking visited classes explicitly rather than
// recursing.
//
// Reachable returns a *Error with [CodeUnknownId] if id was never
// allocated by this EGraph.
func (e *EGraph) Reachable(id Id) ([]Id, error) {
	if !e.validId(id) {
		return nil, newError(CodeUnknownId, "Reachable: id "+id.String()+" was never allocated by this EGraph")
	}
	start := e.Find(id)
	var visited idset.Set
	visited.Add(int(start))
	stack := []Id{start}
	var order []Id
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		for _, n := range e.classes.Nodes(cur) {
			for _, c := range n.Children() {
				child := e.Find(c)
				if visited.Add(int(child)) {
					stack = append(stack, child)
				}
			}
		}
	}
	return order, nil
}

// ClassIds returns the id of every live e-class, in unspecified order.
func (e *EGraph) ClassIds() []Id {
	return e.classes.Ids()
}

// NodesOf returns the e-nodes belonging to id's class. The caller must
// not mutate the returned slice.
func (e *EGraph) NodesOf(id Id) []Node {
	return e.classes.Nodes(e.Find(id))
}

// ParentsOf returns the (parent node, owning class) pairs that reference
// id's class as a child, in the order they were first recorded.
func (e *EGraph) ParentsOf(id Id) []parentindex.Parent[Id, Node] {
	return e.parents.Parents(e.Find(id))
}

// AnalysisValue returns the lattice value a has computed for id's class,
// and whether one is bound yet. It panics if a was never registered via
// [EGraph.RegisterAnalysis].
func (e *EGraph) AnalysisValue(a Analysis, id Id) (any, bool) {
	for _, st := range e.analyses {
		if st.analysis == a {
			return st.get(e.Find(id))
		}
	}
	panic("egraph: AnalysisValue called with an unregistered Analysis")
}
