// Package lru implements a fixed-capacity least-recently-used cache with
// O(1) access and O(1) eviction.
//
// 🚀 What is lru?
//
//	A key→value store holding at most Capacity entries. Every Get or Put
//	on an existing key marks it most-recently-used; inserting a new key
//	into a full cache evicts the least-recently-used entry first. Lookup
//	misses are a defined outcome (zero value + false), never an error.
//
// ✨ Key features:
//   - O(1) Get / Put / Remove – a map lookup plus constant-time splices
//   - Arena-backed recency list – nodes live in an indexed slot arena with
//     a free-list, so splicing never allocates and no pointer cycles exist
//   - Map and list mutate atomically – they can never go out of sync
//   - Optional eviction callback and Metrics sink (see metrics/prom for a
//     Prometheus adapter)
//   - No implicit growth – capacity is fixed at construction for the
//     cache's lifetime
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bounded/lru"
//
//	c, err := lru.New[string, int](128,
//	    lru.WithOnEvict[string, int](func(k string, v int) {
//	        fmt.Println("dropped", k)
//	    }),
//	)
//	if err != nil { ... }
//
//	c.Put("answer", 42)
//	if v, ok := c.Get("answer"); ok { ... }
//
// Complexity:
//
//   - Time:  O(1) per Get/Put/Remove (amortized; map operations dominate)
//   - Space: O(Capacity) – the slot arena and map are sized once
//
// Not safe for concurrent use; guard a shared instance with a caller-owned
// mutex (see cmd/bench) or confine it to one goroutine.
package lru
