// Package hashcons implements the e-graph's hashcons: an injective
// mapping from canonical e-node to e-class id.
//
// An e-node's children are a slice, so e-nodes are not Go-comparable and
// can't be map keys directly. This is exactly the problem
// github.com/rogpeppe/generic/anyhash solves for arbitrary non-comparable
// types; Table here is anyhash.Map specialized to the hashcons's
// lookup/insert/delete vocabulary (H[n] exists, H[n] = id, delete H[p])
// instead of a general Set/At/Delete map API, keeping the same
// bucket-table-with-holes layout and maphash-based hashing.
package hashcons

import "hash/maphash"

// Hasher defines a hash function and an equivalence relation over values
// of type K, the same capability anyhash.Hasher requires.
type Hasher[K any] interface {
	Hash(*maphash.Hash, K)
	Equal(a, b K) bool
}

// Table is a mapping from canonical keys of type K (e-nodes) to values of
// type V (e-class ids), parameterized by a stateless Hasher H.
//
// The zero Table is empty and ready to use.
type Table[K, V any, H Hasher[K]] struct {
	hasher H
	seed   maphash.Seed
	seeded bool
	bucket map[uint64][]slot[K, V]
	length int
}

type slot[K, V any] struct {
	key  K
	val  V
	used bool
}

// Len returns the number of entries in the table.
func (t *Table[K, V, H]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

func (t *Table[K, V, H]) hashOf(k K) uint64 {
	if !t.seeded {
		t.seed = maphash.MakeSeed()
		t.seeded = true
	}
	var h maphash.Hash
	h.SetSeed(t.seed)
	t.hasher.Hash(&h, k)
	return h.Sum64()
}

func (t *Table[K, V, H]) find(k K) ([]slot[K, V], int) {
	if t == nil || t.bucket == nil {
		return nil, -1
	}
	b := t.bucket[t.hashOf(k)]
	for i := range b {
		if b[i].used && t.hasher.Equal(k, b[i].key) {
			return b, i
		}
	}
	return b, -1
}

// Lookup returns the value stored for k (H[k]) and whether it was
// present.
func (t *Table[K, V, H]) Lookup(k K) (V, bool) {
	if b, i := t.find(k); i >= 0 {
		return b[i].val, true
	}
	return *new(V), false
}

// Insert sets H[k] = v, overwriting any previous value, and reports the
// previous value if there was one. This is allowed to overwrite: the
// e-graph's merge and repair steps rely on Insert clobbering a stale
// entry left by a previous canonical form of the same key.
func (t *Table[K, V, H]) Insert(k K, v V) (prev V, hadPrev bool) {
	if t.bucket == nil {
		t.bucket = make(map[uint64][]slot[K, V])
	}
	hv := t.hashOf(k)
	b := t.bucket[hv]
	hole := -1
	for i := range b {
		if !b[i].used {
			if hole == -1 {
				hole = i
			}
			continue
		}
		if t.hasher.Equal(k, b[i].key) {
			prev, hadPrev = b[i].val, true
			b[i].val = v
			return prev, hadPrev
		}
	}
	if hole != -1 {
		b[hole] = slot[K, V]{key: k, val: v, used: true}
	} else {
		t.bucket[hv] = append(b, slot[K, V]{key: k, val: v, used: true})
	}
	t.length++
	return prev, hadPrev
}

// Delete removes the entry for k, if present, and reports whether it was
// found.
func (t *Table[K, V, H]) Delete(k K) bool {
	if b, i := t.find(k); i >= 0 {
		b[i] = slot[K, V]{}
		t.length--
		return true
	}
	return false
}

// All calls f for every (key, value) pair in the table, in unspecified
// order, stopping early if f returns false. The e-graph itself does not
// call it; no repair logic depends on iteration order here, unlike the
// parent index.
func (t *Table[K, V, H]) All(f func(K, V) bool) {
	if t == nil {
		return
	}
	for _, b := range t.bucket {
		for _, s := range b {
			if s.used && !f(s.key, s.val) {
				return
			}
		}
	}
}

// NewTable returns an empty table using h as the hasher.
func NewTable[K, V any, H Hasher[K]](h H) *Table[K, V, H] {
	return &Table[K, V, H]{hasher: h}
}
