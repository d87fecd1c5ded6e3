package classmem_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/egraph-go/egraph/internal/classmem"
)

func eq(a, b string) bool { return a == b }

func TestAddDedups(t *testing.T) {
	tbl := classmem.New[int, string](eq)
	qt.Assert(t, qt.IsTrue(tbl.Add(1, "a")))
	qt.Assert(t, qt.IsFalse(tbl.Add(1, "a")))
	qt.Assert(t, qt.DeepEquals(tbl.Nodes(1), []string{"a"}))
}

func TestUnionDedupsAndDeletesFrom(t *testing.T) {
	tbl := classmem.New[int, string](eq)
	tbl.Add(1, "a")
	tbl.Add(1, "b")
	tbl.Add(2, "a")
	tbl.Add(2, "c")
	tbl.Union(1, 2)
	qt.Assert(t, qt.DeepEquals(tbl.Nodes(1), []string(nil)))
	got := append([]string(nil), tbl.Nodes(2)...)
	qt.Assert(t, qt.HasLen(got, 3))
}

func TestReplaceEmptyDeletes(t *testing.T) {
	tbl := classmem.New[int, string](eq)
	tbl.Add(1, "a")
	tbl.Replace(1, nil)
	qt.Assert(t, qt.Equals(tbl.Len(), 0))
}

func TestIds(t *testing.T) {
	tbl := classmem.New[int, string](eq)
	tbl.Add(1, "a")
	tbl.Add(2, "b")
	ids := tbl.Ids()
	qt.Assert(t, qt.HasLen(ids, 2))
}
