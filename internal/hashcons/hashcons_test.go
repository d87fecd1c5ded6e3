package hashcons_test

import (
	"hash/maphash"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/egraph-go/egraph/internal/hashcons"
)

// key is a non-comparable test key (it embeds a slice), standing in for
// an e-node whose children make it non-comparable.
type key struct {
	op       string
	children []int
}

type keyHasher struct{}

func (keyHasher) Equal(a, b key) bool {
	return a.op == b.op && slices.Equal(a.children, b.children)
}

func (keyHasher) Hash(h *maphash.Hash, k key) {
	h.WriteString(k.op)
	for _, c := range k.children {
		maphash.WriteComparable(h, c)
	}
}

func TestLookupMiss(t *testing.T) {
	var tbl hashcons.Table[key, int, keyHasher]
	_, ok := tbl.Lookup(key{op: "f"})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestInsertLookup(t *testing.T) {
	var tbl hashcons.Table[key, int, keyHasher]
	tbl.Insert(key{op: "f", children: []int{1, 2}}, 10)
	v, ok := tbl.Lookup(key{op: "f", children: []int{1, 2}})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 10))
	qt.Assert(t, qt.Equals(tbl.Len(), 1))
}

func TestInsertOverwrites(t *testing.T) {
	var tbl hashcons.Table[key, int, keyHasher]
	k := key{op: "f", children: []int{1}}
	tbl.Insert(k, 1)
	prev, had := tbl.Insert(k, 2)
	qt.Assert(t, qt.IsTrue(had))
	qt.Assert(t, qt.Equals(prev, 1))
	qt.Assert(t, qt.Equals(tbl.Len(), 1))
	v, _ := tbl.Lookup(k)
	qt.Assert(t, qt.Equals(v, 2))
}

func TestDelete(t *testing.T) {
	var tbl hashcons.Table[key, int, keyHasher]
	k := key{op: "a"}
	tbl.Insert(k, 5)
	qt.Assert(t, qt.IsTrue(tbl.Delete(k)))
	qt.Assert(t, qt.IsFalse(tbl.Delete(k)))
	qt.Assert(t, qt.Equals(tbl.Len(), 0))
}

func TestAllVisitsEveryEntry(t *testing.T) {
	var tbl hashcons.Table[key, int, keyHasher]
	tbl.Insert(key{op: "a"}, 1)
	tbl.Insert(key{op: "b"}, 2)
	seen := map[string]int{}
	tbl.All(func(k key, v int) bool {
		seen[k.op] = v
		return true
	})
	qt.Assert(t, qt.DeepEquals(seen, map[string]int{"a": 1, "b": 2}))
}
