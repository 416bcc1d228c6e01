package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/bwt"
)

type variant struct {
	name   string
	config func(*bwt.IndexBuilder) *bwt.IndexBuilder
}

var variants = map[string]variant{
	"doubling":          {name: "doubling", config: func(b *bwt.IndexBuilder) *bwt.IndexBuilder { return b }},
	"doubling_no_lcp":   {name: "doubling_no_lcp", config: func(b *bwt.IndexBuilder) *bwt.IndexBuilder { return b.SkipLCP() }},
	"comparison":        {name: "comparison", config: func(b *bwt.IndexBuilder) *bwt.IndexBuilder { return b.UseComparisonSort() }},
	"comparison_no_lcp": {name: "comparison_no_lcp", config: func(b *bwt.IndexBuilder) *bwt.IndexBuilder { return b.UseComparisonSort().SkipLCP() }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// genInput builds a terminated test string of length n+1. Low density is
// uniform random lowercase; high density repeats a short motif with sparse
// mutations, which is the regime where the transform produces long runs.
func genInput(n int, density densityType, r *rand.Rand) []byte {
	text := make([]byte, n, n+1)
	if density == densityHigh {
		motif := make([]byte, 32)
		for i := range motif {
			motif[i] = byte(r.Intn(26) + 'a')
		}
		for i := range text {
			text[i] = motif[i%len(motif)]
		}
		for i := 0; i < n/64; i++ {
			text[r.Intn(n)] = byte(r.Intn(26) + 'a')
		}
	} else {
		for i := range text {
			text[i] = byte(r.Intn(26) + 'a')
		}
	}
	return append(text, 0)
}

func measureBuild(text []byte, config func(*bwt.IndexBuilder) *bwt.IndexBuilder) (time.Duration, uint64, uint64, *bwt.Index) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := config(bwt.NewBuilder(text))
	idx, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, idx
}

func measureRoundTrip(text []byte, idx *bwt.Index) (time.Duration, time.Duration) {
	start := time.Now()
	transformed, primary := idx.Transform()
	forward := time.Since(start)

	start = time.Now()
	original, err := bwt.Inverse(transformed, primary)
	backward := time.Since(start)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(original, text) {
		panic("round trip mismatch")
	}
	return forward, backward
}

func runBenchmark(v variant, n, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := genInput(n, density, r)
		bt, bp, ba, idx := measureBuild(text, v.config)
		ft, it := measureRoundTrip(text, idx)
		fmt.Printf("%s,%d,%s,%.0f,%d,%d,%.0f,%.0f\n",
			v.name, n, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(ft.Nanoseconds()), float64(it.Nanoseconds()))
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Input length N")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *runs, densityType(*d))
}
