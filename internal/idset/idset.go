// Package idset implements a compact bitset over small non-negative
// integer ids.
//
// It is a simplified, Id-specialized version of the bitset in
// github.com/gaissmai/bart (internal/bitset): a slice of uint64 words
// rather than a map, so that deduplicating a worklist of e-class ids (the
// dirty worklist D, or the visited set of a reachability walk) doesn't pay
// for Go map bucket overhead on every insert.
//
// All bugs belong to us, not to bart.
package idset

import "math/bits"

const wordSize = 64
const log2WordSize = 6

// Set is a bitset over non-negative integer ids. The zero Set is empty
// and ready to use.
type Set struct {
	words []uint64
}

func wordsNeeded(i int) int {
	return (i + wordSize) >> log2WordSize
}

func bitIndex(i int) uint {
	return uint(i) & (wordSize - 1)
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id int) bool {
	if id < 0 || id>>log2WordSize >= len(s.words) {
		return false
	}
	return s.words[id>>log2WordSize]&(1<<bitIndex(id)) != 0
}

// Add adds id to the set, growing the backing storage if needed. It
// reports whether id was not already present.
func (s *Set) Add(id int) bool {
	if s.Contains(id) {
		return false
	}
	s.extend(id)
	s.words[id>>log2WordSize] |= 1 << bitIndex(id)
	return true
}

// Remove removes id from the set.
func (s *Set) Remove(id int) {
	if id < 0 || id>>log2WordSize >= len(s.words) {
		return
	}
	s.words[id>>log2WordSize] &^= 1 << bitIndex(id)
}

// Clear empties the set without releasing its backing storage.
func (s *Set) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Len returns the number of ids currently in the set. It is O(words).
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// All returns the ids in the set in ascending order.
func (s *Set) All() []int {
	ids := make([]int, 0, s.Len())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		ids = append(ids, i)
	}
	return ids
}

// NextSet returns the smallest id >= from that is in the set, and
// whether one was found.
func (s *Set) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	x := from >> log2WordSize
	if x >= len(s.words) {
		return 0, false
	}
	word := s.words[x] >> bitIndex(from)
	if word != 0 {
		return from + bits.TrailingZeros64(word), true
	}
	for x++; x < len(s.words); x++ {
		if s.words[x] != 0 {
			return x*wordSize + bits.TrailingZeros64(s.words[x]), true
		}
	}
	return 0, false
}

func (s *Set) extend(id int) {
	need := wordsNeeded(id)
	if len(s.words) >= need {
		return
	}
	words := make([]uint64, need)
	copy(words, s.words)
	s.words = words
}
