package unionfind_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/egraph-go/egraph/internal/unionfind"
)

func TestMakeFind(t *testing.T) {
	var u unionfind.U
	a := u.Make()
	b := u.Make()
	qt.Assert(t, qt.Not(qt.Equals(a, b)))
	qt.Assert(t, qt.Equals(u.Find(a), a))
	qt.Assert(t, qt.Equals(u.Find(b), b))
}

func TestUnionNoOpWhenAlreadySame(t *testing.T) {
	var u unionfind.U
	a := u.Make()
	qt.Assert(t, qt.Equals(u.Union(a, a), a))
}

func TestUnionDeterministicTieBreak(t *testing.T) {
	var u unionfind.U
	a := u.Make() // 0
	b := u.Make() // 1
	// Equal rank (both freshly made): lower id wins.
	kept := u.Union(b, a)
	qt.Assert(t, qt.Equals(kept, a))
	qt.Assert(t, qt.Equals(u.Find(a), a))
	qt.Assert(t, qt.Equals(u.Find(b), a))
}

func TestUnionByRank(t *testing.T) {
	var u unionfind.U
	a := u.Make()
	b := u.Make()
	c := u.Make()
	// a gains rank 1 by absorbing b.
	root := u.Union(a, b)
	qt.Assert(t, qt.Equals(root, a))
	// Now union with c: a has higher rank, so a wins regardless of id order.
	root2 := u.Union(c, a)
	qt.Assert(t, qt.Equals(root2, a))
	qt.Assert(t, qt.Equals(u.Find(c), a))
}

func TestFindPathCompression(t *testing.T) {
	var u unionfind.U
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = u.Make()
	}
	for i := 1; i < len(ids); i++ {
		u.Union(ids[0], ids[i])
	}
	root := u.Find(ids[0])
	for _, id := range ids {
		qt.Assert(t, qt.Equals(u.Find(id), root))
	}
}

func TestFindPanicsOnUnknownId(t *testing.T) {
	var u unionfind.U
	u.Make()
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	u.Find(42)
}
