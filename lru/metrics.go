package lru

// Metrics exposes cache-level observability hooks. Implementations must be
// cheap: the cache invokes them synchronously on the hot path.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()   // Get found the key
	Miss()  // Get did not find the key
	Evict() // an entry was removed by capacity pressure
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()   {}
func (NoopMetrics) Miss()  {}
func (NoopMetrics) Evict() {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
