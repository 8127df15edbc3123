// Package scheduler implements a stable priority queue: tasks are popped
// in non-decreasing priority order, and tasks with equal priority come out
// in the exact order they were pushed.
//
// 🚀 What is scheduler?
//
//	A binary min-heap keyed on the composite pair (priority, sequence).
//	The sequence number is assigned at Push time from a monotonic counter
//	owned by the scheduler instance, which makes the heap's ordering total
//	and deterministic: pure priority comparison alone would leave the tie
//	order unspecified, which this package forbids.
//
// ✨ Key features:
//   - O(log n) Push and Pop, O(1) Peek
//   - Deterministic FIFO tie-breaking – stability is part of the contract,
//     not an accident of heap layout
//   - Ordering lives in the composite key, never in payload comparison:
//     payloads are opaque and need not be comparable
//   - Pop/Peek on an empty scheduler report emptiness (ok == false),
//     never panic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bounded/scheduler"
//
//	s := scheduler.New[int, string]()
//	s.Push(2, "X")
//	s.Push(1, "Y")
//	s.Push(1, "Z")
//
//	p, v, ok := s.Pop() // 1, "Y", true  – lowest priority, earliest arrival
//	p, v, ok = s.Pop()  // 1, "Z", true
//	p, v, ok = s.Pop()  // 2, "X", true
//
// Complexity:
//
//   - Time:  O(log n) per Push/Pop (array-backed sift-up/sift-down),
//     O(1) Peek and Len
//   - Space: O(n) for the heap array
//
// Not safe for concurrent use; see the module doc for the caller-side
// locking model.
package scheduler
