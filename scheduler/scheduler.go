package scheduler

import (
	"cmp"
	"container/heap"
)

// Task is a (priority, payload) pair as returned by Drain.
type Task[P cmp.Ordered, V any] struct {
	Priority P
	Payload  V
}

// Scheduler is a stable min-ordered queue of tasks. Lower priority values
// are more urgent; equal priorities are served in arrival order.
//
// The zero value is ready to use, but New reads better at call sites.
type Scheduler[P cmp.Ordered, V any] struct {
	pq  taskHeap[P, V]
	seq uint64 // monotonic insertion counter, owned by this instance
}

// New constructs an empty Scheduler.
func New[P cmp.Ordered, V any]() *Scheduler[P, V] {
	return &Scheduler[P, V]{}
}

// Push inserts a task with the given priority. The task is stamped with
// the next sequence number, which is never re-used and never reordered
// retroactively; it is what guarantees FIFO order among equal priorities.
//
// Complexity: O(log n).
func (s *Scheduler[P, V]) Push(priority P, payload V) {
	heap.Push(&s.pq, task[P, V]{
		priority: priority,
		seq:      s.seq,
		payload:  payload,
	})
	s.seq++
}

// Pop removes and returns the most urgent task: smallest priority first,
// earliest arrival among equals. ok is false when the scheduler is empty;
// an empty pop is a defined outcome, not a failure.
//
// Complexity: O(log n).
func (s *Scheduler[P, V]) Pop() (priority P, payload V, ok bool) {
	if s.pq.Len() == 0 {
		return priority, payload, false
	}
	t := heap.Pop(&s.pq).(task[P, V])

	return t.priority, t.payload, true
}

// Peek returns the task Pop would return next, without removing it.
//
// Complexity: O(1).
func (s *Scheduler[P, V]) Peek() (priority P, payload V, ok bool) {
	if s.pq.Len() == 0 {
		return priority, payload, false
	}

	return s.pq[0].priority, s.pq[0].payload, true
}

// Len returns the number of pending tasks.
func (s *Scheduler[P, V]) Len() int { return s.pq.Len() }

// Drain pops every pending task and returns them in service order:
// non-decreasing priority, FIFO within equal priorities. The scheduler is
// empty afterwards.
//
// Complexity: O(n log n).
func (s *Scheduler[P, V]) Drain() []Task[P, V] {
	if s.pq.Len() == 0 {
		return nil
	}
	out := make([]Task[P, V], 0, s.pq.Len())
	for s.pq.Len() > 0 {
		t := heap.Pop(&s.pq).(task[P, V])
		out = append(out, Task[P, V]{Priority: t.priority, Payload: t.payload})
	}

	return out
}

// task is a heap entry. The (priority, seq) pair is the full ordering key;
// the payload never participates in comparison.
type task[P cmp.Ordered, V any] struct {
	priority P
	seq      uint64
	payload  V
}

// taskHeap is a binary min-heap of tasks ordered by (priority, seq).
type taskHeap[P cmp.Ordered, V any] []task[P, V]

// Len returns the number of items in the heap.
func (h taskHeap[P, V]) Len() int { return len(h) }

// Less defines the composite total order: priority first, then insertion
// sequence. Sequence numbers are unique, so no two entries ever compare
// equal and the pop order is fully deterministic.
func (h taskHeap[P, V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h taskHeap[P, V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *taskHeap[P, V]) Push(x any) { *h = append(*h, x.(task[P, V])) }

// Pop removes and returns the last element. Called by heap.Pop after the
// minimum has been swapped into the final position.
func (h *taskHeap[P, V]) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	var zero task[P, V]
	old[n-1] = zero // drop payload references for the GC
	*h = old[:n-1]

	return t
}
