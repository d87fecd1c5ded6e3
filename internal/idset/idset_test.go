package idset_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/egraph-go/egraph/internal/idset"
)

func TestAddContains(t *testing.T) {
	var s idset.Set
	qt.Assert(t, qt.IsFalse(s.Contains(3)))
	qt.Assert(t, qt.IsTrue(s.Add(3)))
	qt.Assert(t, qt.IsTrue(s.Contains(3)))
	qt.Assert(t, qt.IsFalse(s.Add(3)))
}

func TestRemove(t *testing.T) {
	var s idset.Set
	s.Add(5)
	s.Remove(5)
	qt.Assert(t, qt.IsFalse(s.Contains(5)))
	// removing an absent id, or an id beyond capacity, is a no-op
	s.Remove(100)
}

func TestAllAscending(t *testing.T) {
	var s idset.Set
	for _, id := range []int{70, 3, 64, 0, 130} {
		s.Add(id)
	}
	qt.Assert(t, qt.DeepEquals(s.All(), []int{0, 3, 64, 70, 130}))
	qt.Assert(t, qt.Equals(s.Len(), 5))
}

func TestClear(t *testing.T) {
	var s idset.Set
	s.Add(1)
	s.Add(200)
	s.Clear()
	qt.Assert(t, qt.Equals(s.Len(), 0))
	qt.Assert(t, qt.IsFalse(s.Contains(1)))
}

func TestNextSetNoneFound(t *testing.T) {
	var s idset.Set
	s.Add(2)
	_, ok := s.NextSet(3)
	qt.Assert(t, qt.IsFalse(ok))
}
