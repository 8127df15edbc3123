package ksmallest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bounded/ksmallest"
)

// benchmarkAdd streams b.N random samples into a tracker of the given k.
func benchmarkAdd(b *testing.B, k int) {
	rng := rand.New(rand.NewSource(1))
	tr, err := ksmallest.New[int](k)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Add(rng.Int())
	}
}

// BenchmarkTracker_K8 measures Add with a small retained set.
func BenchmarkTracker_K8(b *testing.B) { benchmarkAdd(b, 8) }

// BenchmarkTracker_K1024 measures Add with a large retained set.
func BenchmarkTracker_K1024(b *testing.B) { benchmarkAdd(b, 1024) }

// BenchmarkTracker_Snapshot measures the sorted-copy read path.
func BenchmarkTracker_Snapshot(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	tr, err := ksmallest.New[int](256)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 10_000; i++ {
		tr.Add(rng.Int())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Snapshot()
	}
}
