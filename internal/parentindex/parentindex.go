// Package parentindex implements the e-graph's parent index: the reverse
// lookup from a child e-class id to the (parent e-node, owning class)
// pairs that reference it.
//
// Unlike internal/hashcons and internal/classmem, iteration order here is
// load-bearing: repair (spec §4.8) walks a class's parents "in insertion
// order" while deduplicating congruent ones, so entries are kept in an
// append-only slice per id rather than a Go map.
package parentindex

// Parent is a single (parent e-node, owning e-class) pair: Node is a
// parent that has the indexed id as one of its children, and Class is
// the id of the e-class Node belongs to (modulo pending rebuild).
type Parent[Id comparable, Node any] struct {
	Node  Node
	Class Id
}

// Table maps an e-class id to the ordered, deduplicated list of its
// parents.
type Table[Id comparable, Node any] struct {
	equal func(a, b Node) bool
	m     map[Id][]Parent[Id, Node]
}

// New returns an empty Table that uses equal to decide whether two
// parent nodes are the same e-node.
func New[Id comparable, Node any](equal func(a, b Node) bool) *Table[Id, Node] {
	return &Table[Id, Node]{equal: equal, m: make(map[Id][]Parent[Id, Node])}
}

// Add appends p to id's parent list if an equal (Node, Class) pair isn't
// already present, preserving insertion order. It reports whether p was
// newly added.
func (t *Table[Id, Node]) Add(id Id, p Parent[Id, Node]) bool {
	for _, existing := range t.m[id] {
		if existing.Class == p.Class && t.equal(existing.Node, p.Node) {
			return false
		}
	}
	t.m[id] = append(t.m[id], p)
	return true
}

// Parents returns id's parents in insertion order. The returned slice
// must not be mutated by the caller except through Replace.
func (t *Table[Id, Node]) Parents(id Id) []Parent[Id, Node] {
	return t.m[id]
}

// Replace overwrites id's parent list wholesale, preserving the order of
// the given slice. Used by repair once it has built the deduplicated
// parent set for a class.
func (t *Table[Id, Node]) Replace(id Id, parents []Parent[Id, Node]) {
	if len(parents) == 0 {
		delete(t.m, id)
		return
	}
	t.m[id] = parents
}

// Delete removes id's entry entirely.
func (t *Table[Id, Node]) Delete(id Id) {
	delete(t.m, id)
}

// Union appends from's parents after to's, preserving to's insertion
// order first and deduplicating, then deletes from's entry. It is the
// parent-index half of a merge's splice step (spec §4.5.6):
// "P[kept] ← P[kept] ∪ P[other]; delete P[other]".
func (t *Table[Id, Node]) Union(from, to Id) {
	for _, p := range t.m[from] {
		t.Add(to, p)
	}
	delete(t.m, from)
}

// EnsureExists makes sure id has an entry, even an empty one, matching
// spec §4.3 step 5 ("Ensure P[id] exists (empty)").
func (t *Table[Id, Node]) EnsureExists(id Id) {
	if _, ok := t.m[id]; !ok {
		t.m[id] = nil
	}
}
