// Package lru defines configuration types and sentinel errors for the
// bounded least-recently-used cache.
package lru

import "errors"

// Sentinel errors returned by the lru constructor.
var (
	// ErrBadCapacity indicates that New was called with capacity < 1.
	// A zero-capacity cache could never hold an entry, so the mistake is
	// rejected at construction time rather than discovered later.
	ErrBadCapacity = errors.New("lru: capacity must be >= 1")
)

// Options configures optional cache behavior. The zero value is valid:
// no eviction callback and a no-op metrics sink.
//
// OnEvict – invoked for every entry removed by capacity pressure, with the
// evicted key and value. It runs synchronously inside Put; keep it cheap.
// Explicit Remove calls do not trigger OnEvict.
//
// Metrics – observability sink for hit/miss/eviction counters; nil means
// NoopMetrics.
type Options[K comparable, V any] struct {
	OnEvict func(k K, v V) // eviction callback (capacity evictions only)
	Metrics Metrics        // hit/miss/evict sink; nil => NoopMetrics
}

// Option represents a functional option for configuring the cache.
type Option[K comparable, V any] func(*Options[K, V])

// WithOnEvict registers a callback invoked for every capacity eviction.
// The callback receives the evicted key and value and runs synchronously
// inside the Put that caused the eviction.
func WithOnEvict[K comparable, V any](fn func(k K, v V)) Option[K, V] {
	return func(o *Options[K, V]) {
		o.OnEvict = fn
	}
}

// WithMetrics sets the Metrics sink recording hits, misses and evictions.
// Passing nil restores the default NoopMetrics.
func WithMetrics[K comparable, V any](m Metrics) Option[K, V] {
	return func(o *Options[K, V]) {
		o.Metrics = m
	}
}

// DefaultOptions returns an Options struct with library defaults:
// no eviction callback, NoopMetrics sink.
func DefaultOptions[K comparable, V any]() Options[K, V] {
	return Options[K, V]{
		OnEvict: nil,
		Metrics: NoopMetrics{},
	}
}
