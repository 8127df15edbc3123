package lru

// none marks an empty list link or an exhausted free-list.
const none = -1

// slot is one cell of the recency arena. Links are arena indices rather
// than pointers: splicing is still O(1), but there are no pointer cycles
// to leak and no node can outlive the arena that owns it.
type slot[K comparable, V any] struct {
	key  K
	val  V
	prev int // neighbor towards MRU
	next int // neighbor towards LRU; doubles as the free-list link
}

// Cache is a fixed-capacity least-recently-used key→value store.
//
// The recency order is a doubly-linked sequence threaded through an arena
// of indexed slots: head is the most-recently-used entry, tail the least.
// A map from key to arena index gives O(1) lookup; map and list are
// mutated together in every operation, so they can never diverge.
//
// The zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	opts  Options[K, V]
	index map[K]int    // key → arena index of its slot
	arena []slot[K, V] // fixed backing storage, len == capacity
	head  int          // MRU slot index, none when empty
	tail  int          // LRU slot index, none when empty
	free  int          // head of the free-list, none when arena is full
	size  int          // resident entries, 0..capacity
}

// New constructs a Cache holding at most capacity entries.
// Returns ErrBadCapacity if capacity < 1. The arena and index are sized
// once here; no allocation happens on the Get/Put path afterwards.
//
// Complexity: O(capacity) construction, O(1) per subsequent operation.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	// 1) Fail fast on invalid configuration (never discovered later).
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	// 2) Build and apply options over library defaults.
	cfg := DefaultOptions[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NoopMetrics{}
	}

	// 3) Allocate the arena and thread every slot onto the free-list.
	c := &Cache[K, V]{
		opts:  cfg,
		index: make(map[K]int, capacity),
		arena: make([]slot[K, V], capacity),
		head:  none,
		tail:  none,
		free:  0,
	}
	for i := range c.arena {
		c.arena[i].next = i + 1
		c.arena[i].prev = none
	}
	c.arena[capacity-1].next = none

	return c, nil
}

// Get returns the value stored under k and a presence flag.
// On hit the entry becomes most-recently-used. A miss is a defined
// outcome (zero value, false), never an error.
//
// Complexity: O(1).
func (c *Cache[K, V]) Get(k K) (V, bool) {
	i, ok := c.index[k]
	if !ok {
		c.opts.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.moveToFront(i)
	c.opts.Metrics.Hit()

	return c.arena[i].val, true
}

// Peek returns the value stored under k without refreshing its recency.
// Useful for inspection that must not disturb eviction order.
//
// Complexity: O(1).
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	i, ok := c.index[k]
	if !ok {
		var zero V
		return zero, false
	}

	return c.arena[i].val, true
}

// Put inserts or overwrites k→v and marks the entry most-recently-used.
// When k is new and the cache is full, the least-recently-used entry is
// evicted first: its slot is unlinked, the map entry removed, OnEvict and
// Metrics.Evict fire, and only then is the new entry inserted.
//
// Complexity: O(1) amortized.
func (c *Cache[K, V]) Put(k K, v V) {
	// Existing key: update in place and refresh recency.
	if i, ok := c.index[k]; ok {
		c.arena[i].val = v
		c.moveToFront(i)

		return
	}

	// New key into a full cache: make room by dropping the LRU entry.
	if c.size == len(c.arena) {
		c.evictLRU()
	}

	// Take a slot off the free-list and link it in at MRU.
	i := c.free
	c.free = c.arena[i].next
	c.arena[i].key = k
	c.arena[i].val = v
	c.pushFront(i)
	c.index[k] = i
	c.size++
}

// Remove deletes k if present and reports whether it was resident.
// Explicit removal is not an eviction: OnEvict and Metrics.Evict do not
// fire.
//
// Complexity: O(1).
func (c *Cache[K, V]) Remove(k K) bool {
	i, ok := c.index[k]
	if !ok {
		return false
	}
	c.unlink(i)
	delete(c.index, k)
	c.release(i)
	c.size--

	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return c.size }

// Cap returns the fixed capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int { return len(c.arena) }

// evictLRU removes the tail (least-recently-used) entry: unlink, map
// delete, callbacks, slot back onto the free-list. Callers guarantee the
// cache is non-empty.
func (c *Cache[K, V]) evictLRU() {
	i := c.tail
	k, v := c.arena[i].key, c.arena[i].val

	c.unlink(i)
	delete(c.index, k)
	c.release(i)
	c.size--

	c.opts.Metrics.Evict()
	if c.opts.OnEvict != nil {
		c.opts.OnEvict(k, v)
	}
}

// release zeroes a slot (dropping any references held by key/value so the
// GC can reclaim them) and pushes it onto the free-list.
func (c *Cache[K, V]) release(i int) {
	var zero slot[K, V]
	c.arena[i] = zero
	c.arena[i].next = c.free
	c.arena[i].prev = none
	c.free = i
}

// unlink splices slot i out of the recency list, fixing head/tail.
func (c *Cache[K, V]) unlink(i int) {
	p, n := c.arena[i].prev, c.arena[i].next
	if p == none {
		c.head = n
	} else {
		c.arena[p].next = n
	}
	if n == none {
		c.tail = p
	} else {
		c.arena[n].prev = p
	}
	c.arena[i].prev = none
	c.arena[i].next = none
}

// pushFront links slot i in at the MRU end.
func (c *Cache[K, V]) pushFront(i int) {
	c.arena[i].prev = none
	c.arena[i].next = c.head
	if c.head != none {
		c.arena[c.head].prev = i
	}
	c.head = i
	if c.tail == none {
		c.tail = i
	}
}

// moveToFront promotes slot i to MRU; no-op when already there.
func (c *Cache[K, V]) moveToFront(i int) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}
