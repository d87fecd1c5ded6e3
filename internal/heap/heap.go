// Package heap provides a generic binary heap, adapted from
// github.com/rogpeppe/generic/heap (itself adapted from the standard
// library's container/heap).
//
// [egraph.EGraph.Rebuild] uses it to drain a rebuild round's dirty class
// ids in ascending order: the dirty worklist drains in push order and
// Rebuild dedupes the drained ids, but neither fixes an order by id, and
// processing ids in a fixed order is what makes repeated
// runs of the same merge sequence produce byte-identical repair traces
// (spec §9's "deterministic union choice" note applies just as much to
// the order repair visits classes in).
package heap

// New returns a binary heap on the items slice, using less to compare.
// If setIndex is non-nil, it's called whenever an item moves, with a
// pointer to the item and its new index.
func New[E any](items []E, less func(E, E) bool, setIndex func(e *E, i int)) *Heap[E] {
	h := &Heap[E]{
		Items:    items,
		less:     less,
		setIndex: setIndex,
	}
	h.Init()
	return h
}

// Heap implements a binary heap over a slice of items.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item is the
	// least, according to less.
	Items    []E
	less     func(E, E) bool
	setIndex func(*E, int)
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariant. It's idempotent and may be called
// whenever the invariant may have been violated.
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push pushes x onto the heap.
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	if h.setIndex != nil {
		index := len(h.Items) - 1
		h.setIndex(&h.Items[index], index)
	}
	h.up(len(h.Items) - 1)
}

// Pop removes and returns the least element from the heap.
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop()
}

// Fix re-establishes the heap ordering after the element at index i has
// changed.
func (h *Heap[E]) Fix(i int) {
	if !h.down(i, len(h.Items)) {
		h.up(i)
	}
}

func (h *Heap[E]) swap(i, j int) {
	h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
	if h.setIndex != nil {
		h.setIndex(&h.Items[i], i)
		h.setIndex(&h.Items[j], j)
	}
}

func (h *Heap[E]) pop() E {
	n := len(h.Items) - 1
	x := h.Items[n]
	h.Items = h.Items[0:n]
	return x
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(h.Items[j2], h.Items[j1]) {
			j = j2
		}
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
