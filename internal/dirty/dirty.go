// Package dirty implements the e-graph's dirty worklist D: a multiset of
// class ids awaiting repair, pushed to during merge and drained in
// batches by rebuild.
//
// It's a ring-buffer queue in the style of
// github.com/rogpeppe/generic/ring.Buffer, trimmed to the push-at-end,
// drain-all-at-once access pattern rebuild actually uses (no
// PushStart/PopStart/Copy/SetCap: the worklist is never accessed from the
// front one element at a time, nor shrunk back down).
package dirty

import "math/bits"

// Worklist is a FIFO multiset of ids. The zero Worklist is empty and
// ready to use.
type Worklist struct {
	buf []int
	len int
}

// Push appends id to the worklist. Duplicates are allowed: rebuild
// dedupes via Find when it drains, not on push, since a class can be
// independently dirtied by more than one parent repair before the next
// drain.
func (w *Worklist) Push(id int) {
	w.ensureCap(w.len + 1)
	buf, _, i1 := w.get()
	buf[i1] = id
	w.len++
}

// Len returns the number of ids currently queued, counting duplicates.
func (w *Worklist) Len() int {
	return w.len
}

// Drain returns every queued id, in push order, and empties the
// worklist.
func (w *Worklist) Drain() []int {
	if w.len == 0 {
		return nil
	}
	out := make([]int, w.len)
	s0, s1 := w.slices()
	n := copy(out, s0)
	copy(out[n:], s1)
	w.buf = w.buf[:0]
	w.len = 0
	return out
}

func (w *Worklist) ensureCap(n int) {
	if n <= cap(w.buf) {
		return
	}
	newCap := 1 << bits.Len(uint(n-1))
	buf, i0, i1 := w.get()
	next := make([]int, newCap)
	if i0 < i1 {
		copy(next, buf[i0:i1])
	} else {
		k := copy(next, buf[i0:])
		copy(next[k:], buf[:i1])
	}
	w.buf = next[:0]
}

// get returns the full backing slice and the start/end indexes of the
// live data within it, following ring.Buffer's own (len(buf), computed
// end) convention: the buffer's length field is repurposed to hold the
// start offset of the data.
func (w *Worklist) get() ([]int, int, int) {
	return w.buf[:cap(w.buf)], len(w.buf), w.mod(len(w.buf) + w.len)
}

func (w *Worklist) slices() ([]int, []int) {
	data, i0, i1 := w.get()
	if i1 > i0 || w.len == 0 {
		return data[i0:i1:i1], nil
	}
	return data[i0:], data[:i1]
}

func (w *Worklist) mod(x int) int {
	if cap(w.buf) == 0 {
		return 0
	}
	return x & (cap(w.buf) - 1)
}
