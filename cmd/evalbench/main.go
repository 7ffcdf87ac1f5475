package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"sudoku-forge/internal/sudoku/evaluator"
)

func main() {
	input := flag.String("f", "", "genome corpus file (JSON array of 81-int arrays); defaults to stdin")
	diagonal := flag.Bool("diagonal", false, "enable the diagonal variant")
	colorConstrained := flag.Bool("color-constrained", false, "enable the color-constrained variant")
	solveMax := flag.Int("solve-max", 0, "solve cap (0 uses the evaluator default)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", *input, err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	var genomes [][81]int
	if err := json.NewDecoder(r).Decode(&genomes); err != nil {
		fmt.Fprintf(os.Stderr, "decode genome corpus: %v\n", err)
		os.Exit(1)
	}

	e := evaluator.New(evaluator.Config{
		Diagonal:         *diagonal,
		ColorConstrained: *colorConstrained,
		SolveMax:         *solveMax,
	})

	latencies := make([]time.Duration, 0, len(genomes))
	cacheHits := 0

	start := time.Now()
	for _, g := range genomes {
		t0 := time.Now()
		res, err := e.Evaluate(evaluator.Genome(g))
		elapsed := time.Since(t0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
			os.Exit(1)
		}
		latencies = append(latencies, elapsed)
		if res.CacheHit {
			cacheHits++
		}
	}
	total := time.Since(start)

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	fmt.Printf("genomes:     %d\n", len(genomes))
	fmt.Printf("total time:  %v\n", total)
	fmt.Printf("cache hits:  %d (%.1f%%)\n", cacheHits, 100*float64(cacheHits)/float64(len(genomes)))
	fmt.Printf("cache size:  %d\n", e.CacheSize())
	if len(latencies) > 0 {
		fmt.Printf("p50 latency: %v\n", percentile(latencies, 0.50))
		fmt.Printf("p90 latency: %v\n", percentile(latencies, 0.90))
		fmt.Printf("p99 latency: %v\n", percentile(latencies, 0.99))
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
