// Command bench runs a synthetic workload against a mutex-guarded cache and
// exposes a Prometheus metrics endpoint. The structures in this library are
// single-threaded; this driver demonstrates the intended caller-side locking
// model (one exclusive lock per instance) under concurrent load.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bounded/lru"
	pmet "github.com/katalvlaran/bounded/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys  = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr (empty = disabled)")
	)
	flag.Parse()

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "bounded", "bench", nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build the cache and its caller-owned lock ----
	c, err := lru.New[string, string](*capacity, lru.WithMetrics[string, string](metrics))
	if err != nil {
		log.Fatalf("lru.New: %v", err)
	}
	var mu sync.Mutex

	// ---- Preload half capacity to get a realistic hit-rate ----
	for i := 0; i < *capacity/2; i++ {
		c.Put("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal, zipfVVal := *zipfS, *zipfV

	// ---- Load generation ----
	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var g errgroup.Group
	for id := 0; id < workersN; id++ {
		id := id
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					k := keyByZipf()
					mu.Lock()
					_, ok := c.Get(k)
					mu.Unlock()
					if ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					v := "v" + strconv.Itoa(localR.Int())
					mu.Lock()
					c.Put(k, v)
					mu.Unlock()
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("workers: %v", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("cap=%d workers=%d keys=%d dur=%v seed=%d\n",
		*capacity, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s) reads=%d writes=%d hits=%d misses=%d hit_rate=%.1f%% len=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN, hitsN, missesN, hitRate, c.Len())
}
