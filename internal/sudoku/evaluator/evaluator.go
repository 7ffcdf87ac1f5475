// Package evaluator turns an 81-integer genome into a Sudoku fitness score
// by materializing it as a puzzle.Puzzle, solving it, and mapping
// (filled-cell-count, solution-count) to a scalar the GA minimizes.
package evaluator

import "sudoku-forge/internal/sudoku/puzzle"

// Genome is an ordered sequence of 81 integers in [0, 9]; values outside
// that range are clamped to 0 at phenotype time (a legacy-input safety
// valve).
type Genome [81]int

// Config selects the variant flags and solve cap an Evaluator runs with.
// All genomes evaluated by one Evaluator share these flags.
type Config struct {
	Diagonal         bool
	ColorConstrained bool
	SolveMax         int // 0 means puzzle.DefaultSolveMax
}

// Result is what Evaluate reports for one genome.
type Result struct {
	Fitness    float64
	Count      int // number of non-zero (given) cells
	SolveCount int // on a cache hit, the solve count stored with the cached fitness
	CacheHit   bool
}

// Evaluator evaluates genomes against a fixed Config, memoizing fitness (and
// the solve count that produced it) by the genome's 81-tuple contents.
type Evaluator struct {
	cfg   Config
	cache *Cache
}

// New builds an Evaluator with its own cache; the cache is not shared with
// other Evaluators. The cache's writes are monotonic: a key, once set, is never overwritten, so
// sharing one Evaluator across goroutines is safe without additional
// synchronization from the caller.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg, cache: NewCache()}
}

// Evaluate computes the fitness of genome, consulting and then populating
// the cache.
func (e *Evaluator) Evaluate(genome Genome) (Result, error) {
	grid, count := phenotype(genome)

	if entry, ok := e.cache.Get(grid); ok {
		return Result{Fitness: entry.Fitness, Count: count, SolveCount: entry.SolveCount, CacheHit: true}, nil
	}

	p, err := puzzle.New(grid, puzzle.Config{
		Diagonal:         e.cfg.Diagonal,
		ColorConstrained: e.cfg.ColorConstrained,
		SolveMax:         e.solveMax(),
	})
	if err != nil {
		return Result{}, err
	}
	if err := p.Solve(); err != nil {
		return Result{}, err
	}

	solveCount := p.SolveCount()
	fitness := fitnessOf(count, solveCount)
	e.cache.Put(grid, CacheEntry{Fitness: fitness, SolveCount: solveCount})

	return Result{Fitness: fitness, Count: count, SolveCount: solveCount, CacheHit: false}, nil
}

// CacheSize reports how many distinct genomes this Evaluator has memoized.
func (e *Evaluator) CacheSize() int {
	return e.cache.Len()
}

func (e *Evaluator) solveMax() int {
	if e.cfg.SolveMax > 0 {
		return e.cfg.SolveMax
	}
	return puzzle.DefaultSolveMax
}

// fitnessOf is the piecewise fitness objective a genetic algorithm outer
// loop would minimize:
//   - solveCount == 0: 1000 * count^2          (discourage invalid givens)
//   - solveCount == 1: count                   (minimize givens)
//   - otherwise:       1000 - count + solveCount (weak sparsity preference)
func fitnessOf(count, solveCount int) float64 {
	switch {
	case solveCount == 0:
		return 1000 * float64(count) * float64(count)
	case solveCount == 1:
		return float64(count)
	default:
		return float64(1000 - count + solveCount)
	}
}

// phenotype materializes a genome into a grid, coercing out-of-range digits
// to 0, and counts the surviving givens.
func phenotype(genome Genome) ([81]int, int) {
	var grid [81]int
	count := 0
	for i, v := range genome {
		if v < 0 || v > 9 {
			v = 0
		}
		grid[i] = v
		if v != 0 {
			count++
		}
	}
	return grid, count
}
