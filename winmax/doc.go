// Package winmax reports the maximum of the last w stream values,
// updated incrementally in amortized O(1) per sample.
//
// 🚀 What is winmax?
//
//	A sliding-window maximum tracker backed by a monotonic deque: a
//	double-ended queue of (index, value) pairs kept strictly decreasing
//	in value from front to back. Each incoming sample evicts dominated
//	entries from the back (they can never be a window maximum again) and
//	expired entries from the front (they fell out of the trailing window),
//	leaving the current maximum at the front.
//
// ✨ Key features:
//   - Amortized O(1) per Advance – every sample is pushed and popped at
//     most once over the stream's lifetime
//   - O(w) memory bound – the deque never holds more than w entries
//   - Explicit partial-window policy: Advance always returns the maximum
//     of the samples currently in the window, plus a flag telling whether
//     w samples have been seen yet, so callers can adopt either reporting
//     convention without ambiguity
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bounded/winmax"
//
//	tr, err := winmax.New[int](3)
//	if err != nil { ... }
//	for _, v := range []int{1, 3, -1, -3, 5, 3, 6, 7} {
//	    if max, full := tr.Advance(v); full {
//	        fmt.Print(max, " ") // 3 3 5 5 6 7
//	    }
//	}
//
// Complexity:
//
//   - Time:  amortized O(1) per Advance, O(1) Max/Count/Window
//   - Space: O(w)
//
// Not safe for concurrent use; see the module doc for the caller-side
// locking model.
package winmax
