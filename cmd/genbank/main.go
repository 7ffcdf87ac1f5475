package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"sudoku-forge/internal/genbank"
)

// BankFile is the top-level structure for the JSON puzzle bank written to
// disk. cmd/evalbench does not read this layout: it takes a bare JSON array
// of 81-int arrays.
type BankFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Entries []genbank.Entry `json:"entries"`
}

func main() {
	count := flag.Int("n", 1000, "number of puzzles to generate")
	output := flag.String("o", "puzzlebank.json", "output file path")
	workers := flag.Int("w", 0, "worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	var progress int64
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&progress)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  Progress: %d/%d (%.1f/sec)\n", g, *count, rate)
			case <-done:
				return
			}
		}
	}()

	entries, err := genbank.GenerateBank(*count, *workers, *startSeed, &progress)
	close(done)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := BankFile{Version: 1, Count: *count, Entries: entries}
	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	fmt.Printf("Done! Wrote %s (%.2f MB)\n", *output, float64(info.Size())/1024/1024)
}
