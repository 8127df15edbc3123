// Package bounded is a family of bounded, order-sensitive in-memory
// collections: each structure maintains an ordering invariant over a
// fixed-size working set under continuous mutation, with strict O(1)
// or O(log n) per-operation guarantees.
//
// 🚀 What is bounded?
//
//	A small, focused library of four independent structures:
//		• lru/       — fixed-capacity least-recently-used cache, O(1) Get/Put,
//		               arena-backed recency list, pluggable eviction metrics
//		• scheduler/ — stable priority queue over (priority, sequence) keys,
//		               O(log n) Push/Pop with deterministic FIFO tie-breaking
//		• ksmallest/ — streaming "k smallest values seen so far" tracker,
//		               O(log k) per sample via a bounded max-heap
//		• winmax/    — sliding-window maximum over the last w samples,
//		               amortized O(1) per sample via a monotonic deque
//
// ✨ Why choose bounded?
//
//   - Predictable costs – every operation is a bounded in-memory computation;
//     complexity is documented per package and enforced by the design
//   - Deterministic order – tie-breaking and eviction are fully specified,
//     never left to map iteration order or comparator dispatch
//   - Zero magic – no background goroutines, no hidden allocation spikes,
//     no internal locking; each instance is owned by its creator
//   - Observability ready – the cache accepts a Metrics sink with a
//     Prometheus adapter under metrics/prom
//
// Concurrency model: every structure is single-threaded by design. A caller
// that shares an instance across goroutines must guard it with its own
// mutex, or confine it to one goroutine and communicate via channels; see
// cmd/bench for the locking pattern under a concurrent workload.
//
// Quick taste:
//
//	c, _ := lru.New[string, int](2)
//	c.Put("a", 1)
//	c.Put("b", 2)
//	c.Get("a")      // refresh "a"
//	c.Put("x", 9)   // evicts "b", the least recently used
//
// Dive into each package's doc.go for contracts, complexity bullets and
// worked examples.
//
//	go get github.com/katalvlaran/bounded
package bounded
