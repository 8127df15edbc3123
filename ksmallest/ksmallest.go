package ksmallest

import (
	"cmp"
	"container/heap"
	"slices"
)

// Tracker retains the k smallest values offered to it so far.
//
// Internally the retained values form a max-heap: the root is the largest
// retained value, i.e. the first candidate for displacement. The zero
// value is not usable; construct with New.
type Tracker[T cmp.Ordered] struct {
	k    int
	heap maxHeap[T]
}

// New constructs a Tracker retaining at most k values.
// Returns ErrBadK if k < 1.
func New[T cmp.Ordered](k int) (*Tracker[T], error) {
	if k < 1 {
		return nil, ErrBadK
	}

	return &Tracker[T]{
		k:    k,
		heap: make(maxHeap[T], 0, k),
	}, nil
}

// Add offers one stream value to the tracker:
//
//  1. fewer than k values retained – v is always kept;
//  2. v smaller than the largest retained value – v displaces it via a
//     single heap-replace (swap the root, sift down);
//  3. otherwise – v is discarded.
//
// Complexity: O(log k).
func (t *Tracker[T]) Add(v T) {
	if len(t.heap) < t.k {
		heap.Push(&t.heap, v)

		return
	}
	if v < t.heap[0] {
		t.heap[0] = v
		heap.Fix(&t.heap, 0)
	}
}

// Snapshot returns the retained values in ascending order, length ≤ k.
// The result is a fresh copy: callers may mutate it, and internal state is
// untouched, so Snapshot is idempotent and can interleave with Add.
//
// Complexity: O(k log k).
func (t *Tracker[T]) Snapshot() []T {
	out := make([]T, len(t.heap))
	copy(out, t.heap)
	slices.Sort(out)

	return out
}

// Max returns the largest retained value (the next displacement candidate)
// and false when nothing has been retained yet.
//
// Complexity: O(1).
func (t *Tracker[T]) Max() (T, bool) {
	if len(t.heap) == 0 {
		var zero T
		return zero, false
	}

	return t.heap[0], true
}

// Len returns how many values are currently retained (≤ k).
func (t *Tracker[T]) Len() int { return len(t.heap) }

// K returns the fixed retention bound the tracker was constructed with.
func (t *Tracker[T]) K() int { return t.k }

// maxHeap is a binary max-heap: the root is the largest retained value.
type maxHeap[T cmp.Ordered] []T

func (h maxHeap[T]) Len() int           { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *maxHeap[T]) Push(x any) { *h = append(*h, x.(T)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *maxHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
