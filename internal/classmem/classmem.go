// Package classmem implements the e-graph's class memory: the mapping
// from an e-class id to the set of e-nodes that belong to it.
//
// It is a thin, Id-keyed companion to internal/hashcons: where hashcons
// needs a custom Hasher because its keys (e-nodes) aren't Go-comparable,
// classmem's keys (ids) are plain comparable integers, so a Go map
// suffices and the only thing this package adds over map[Id][]Node is
// the Equal-based set semantics a class's node membership needs (dedup on
// Add, dedup on Union when two classes are spliced together by a merge).
package classmem

// Table maps an e-class id to its member e-nodes, deduplicated according
// to equal.
type Table[Id comparable, Node any] struct {
	equal func(a, b Node) bool
	m     map[Id][]Node
}

// New returns an empty Table that uses equal to decide whether two nodes
// belong together in the same member set.
func New[Id comparable, Node any](equal func(a, b Node) bool) *Table[Id, Node] {
	return &Table[Id, Node]{equal: equal, m: make(map[Id][]Node)}
}

// Add adds n to id's member set, reporting whether it was not already
// present (by equal).
func (t *Table[Id, Node]) Add(id Id, n Node) bool {
	for _, existing := range t.m[id] {
		if t.equal(existing, n) {
			return false
		}
	}
	t.m[id] = append(t.m[id], n)
	return true
}

// Nodes returns id's member nodes. The returned slice must not be
// mutated by the caller except through Replace.
func (t *Table[Id, Node]) Nodes(id Id) []Node {
	return t.m[id]
}

// Replace overwrites id's member set wholesale, used by repair once it
// has re-canonicalized a class's nodes.
func (t *Table[Id, Node]) Replace(id Id, nodes []Node) {
	if len(nodes) == 0 {
		delete(t.m, id)
		return
	}
	t.m[id] = nodes
}

// Delete removes id's entry entirely.
func (t *Table[Id, Node]) Delete(id Id) {
	delete(t.m, id)
}

// Union merges from's member set into to's, deduplicating by equal, then
// deletes from's entry. It is the class-memory half of a merge's splice
// step (spec §4.5.4): "M[kept] ← M[other] ∪ M[kept]; delete M[other]".
func (t *Table[Id, Node]) Union(from, to Id) {
	for _, n := range t.m[from] {
		t.Add(to, n)
	}
	delete(t.m, from)
}

// Ids returns every id with a non-empty member set, in unspecified
// order.
func (t *Table[Id, Node]) Ids() []Id {
	ids := make([]Id, 0, len(t.m))
	for id := range t.m {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of ids with a non-empty member set.
func (t *Table[Id, Node]) Len() int {
	return len(t.m)
}
