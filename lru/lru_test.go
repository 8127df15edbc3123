package lru_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bounded/lru"
)

// countingMetrics records hit/miss/evict calls for assertions.
type countingMetrics struct {
	hits, misses, evicts int
}

func (m *countingMetrics) Hit()   { m.hits++ }
func (m *countingMetrics) Miss()  { m.misses++ }
func (m *countingMetrics) Evict() { m.evicts++ }

// TestNew_BadCapacity verifies that construction fails fast with
// ErrBadCapacity for any capacity below one.
func TestNew_BadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		c, err := lru.New[string, int](capacity)
		assert.ErrorIs(t, err, lru.ErrBadCapacity, "capacity %d must be rejected", capacity)
		assert.Nil(t, c, "no cache must be returned on bad capacity")
	}
}

// TestPutGet_RoundTrip verifies that a value just stored is returned by an
// immediate Get, and that a missing key yields the zero value and false.
func TestPutGet_RoundTrip(t *testing.T) {
	c, err := lru.New[string, int](4)
	require.NoError(t, err)

	c.Put("answer", 42)
	v, ok := c.Get("answer")
	assert.True(t, ok, "stored key must be a hit")
	assert.Equal(t, 42, v, "round-trip must preserve the value")

	v, ok = c.Get("absent")
	assert.False(t, ok, "missing key must be a miss, not an error")
	assert.Zero(t, v, "miss must return the zero value")
}

// TestEviction_DropsOldest verifies that inserting capacity+1 distinct keys
// evicts exactly the first-inserted key.
func TestEviction_DropsOldest(t *testing.T) {
	const capacity = 3
	c, err := lru.New[int, string](capacity)
	require.NoError(t, err)

	for i := 0; i <= capacity; i++ {
		c.Put(i, fmt.Sprintf("v%d", i))
	}

	_, ok := c.Get(0)
	assert.False(t, ok, "first-inserted key must have been evicted")
	for i := 1; i <= capacity; i++ {
		_, ok = c.Get(i)
		assert.True(t, ok, "key %d must still be resident", i)
	}
	assert.Equal(t, capacity, c.Len(), "cache must stay at capacity")
}

// TestGet_RefreshesRecency verifies that reading a key protects it from the
// next eviction: after put(a), put(b), get(a), put(c) at capacity 2, the
// victim is b, not a.
func TestGet_RefreshesRecency(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	_, ok := c.Get("a") // a becomes most-recently-used
	require.True(t, ok)
	c.Put("c", 3) // must evict b

	_, ok = c.Get("b")
	assert.False(t, ok, "b must have been evicted")
	v, ok := c.Get("a")
	assert.True(t, ok, "a must survive, it was refreshed")
	assert.Equal(t, 1, v)
	_, ok = c.Get("c")
	assert.True(t, ok, "c was just inserted")
}

// TestPut_ExistingKeyUpdates verifies that Put on a resident key overwrites
// the value and counts as a recency refresh.
func TestPut_ExistingKeyUpdates(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 9) // update + refresh; a is now MRU
	c.Put("c", 3) // must evict b

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 9, v, "update must overwrite the stored value")
	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used and must be gone")
}

// TestPeek_DoesNotRefresh verifies that Peek leaves the recency order
// untouched: a peeked key is still the eviction victim.
func TestPeek_DoesNotRefresh(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	v, ok := c.Peek("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	c.Put("c", 3) // a was not refreshed, so a is the victim

	_, ok = c.Get("a")
	assert.False(t, ok, "peeked key must not gain recency")
	_, ok = c.Get("b")
	assert.True(t, ok, "b must survive")
}

// TestRemove verifies explicit invalidation and its reported outcome.
func TestRemove(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	assert.True(t, c.Remove("a"), "removing a resident key reports true")
	assert.False(t, c.Remove("a"), "removing an absent key reports false")
	assert.Equal(t, 0, c.Len())

	// The freed slot must be reusable.
	c.Put("b", 2)
	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())
}

// TestCapacityOne verifies the degenerate bound: every new key evicts the
// single resident entry.
func TestCapacityOne(t *testing.T) {
	c, err := lru.New[string, int](1)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok, "a must have been displaced by b")
	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Cap())
}

// TestOnEvict verifies that the eviction callback fires with the evicted
// pair, in eviction order, and only for capacity evictions.
func TestOnEvict(t *testing.T) {
	type pair struct {
		k string
		v int
	}
	var evicted []pair

	c, err := lru.New[string, int](2,
		lru.WithOnEvict[string, int](func(k string, v int) {
			evicted = append(evicted, pair{k, v})
		}),
	)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts a
	c.Put("d", 4) // evicts b
	c.Remove("c") // explicit removal, no callback

	assert.Equal(t, []pair{{"a", 1}, {"b", 2}}, evicted,
		"callback must fire per capacity eviction, in LRU order, and not on Remove")
}

// TestMetrics verifies hit/miss/evict accounting through the Metrics sink.
func TestMetrics(t *testing.T) {
	m := &countingMetrics{}
	c, err := lru.New[string, int](2, lru.WithMetrics[string, int](m))
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // hit
	c.Get("nope") // miss
	c.Put("c", 3) // evicts b

	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.evicts)
}

// TestCallerLock_ConcurrentSmoke exercises the documented concurrency
// model: the cache itself is single-threaded, so concurrent callers wrap
// it in their own mutex. The invariant under load is that residency never
// exceeds capacity and every guarded operation completes.
func TestCallerLock_ConcurrentSmoke(t *testing.T) {
	const capacity = 64
	c, err := lru.New[int, int](capacity)
	require.NoError(t, err)

	var mu sync.Mutex
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				k := (w*1000 + i) % 200
				mu.Lock()
				if i%3 == 0 {
					c.Put(k, i)
				} else {
					c.Get(k)
				}
				mu.Unlock()
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.LessOrEqual(t, c.Len(), capacity, "residency must never exceed capacity")
}
