// Package ksmallest tracks the k smallest values seen so far in a stream,
// using O(k) memory and O(log k) work per sample.
//
// 🚀 What is ksmallest?
//
//	A streaming tracker bounded by a max-heap of size k. While fewer than
//	k values have been retained, every sample is kept. Once full, a new
//	sample either displaces the largest retained value (when strictly
//	smaller than it) or is discarded. The retained set is therefore always
//	exactly the k smallest values of the stream so far.
//
// ✨ Key features:
//   - O(log k) per Add – displacement is a single heap-replace (swap the
//     root, sift down), never a rebuild
//   - O(k log k) Snapshot – returns an ascending copy without mutating
//     internal state, so snapshots can interleave freely with Add calls
//   - Fixed memory – the heap never grows past k
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bounded/ksmallest"
//
//	tr, err := ksmallest.New[int](3)
//	if err != nil { ... }
//	for _, v := range []int{5, 2, 8, 1, 9, 3, 7} {
//	    tr.Add(v)
//	}
//	fmt.Println(tr.Snapshot()) // [1 2 3]
//
// Complexity:
//
//   - Time:  O(log k) per Add, O(k log k) per Snapshot, O(1) Len/K
//   - Space: O(k)
//
// Not safe for concurrent use; see the module doc for the caller-side
// locking model.
package ksmallest
