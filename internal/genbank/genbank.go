// Package genbank produces a bank of minimal-clue Sudoku puzzles: a seeded,
// deterministic full-grid filler followed by a carver that removes cells one
// at a time and confirms uniqueness with puzzle.Puzzle.Solve, the same
// uniqueness contract the evaluator relies on.
package genbank

import (
	"sudoku-forge/internal/sudoku/puzzle"
)

// Entry is one generated puzzle: its complete solution grid and a carved
// grid from which no further given can be removed without losing
// uniqueness. The carver has no target clue count.
type Entry struct {
	Seed     int64   `json:"seed"`
	Solution [81]int `json:"solution"`
	Givens   [81]int `json:"givens"`
}

// rng is a small linear congruential generator, chosen (over math/rand) so
// that a puzzle bank built from a given seed is reproducible across Go
// versions without depending on the standard library's source algorithm.
type rng struct {
	state int64
}

func newRNG(seed int64) *rng {
	return &rng{state: seed}
}

func (r *rng) next() int64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

func (r *rng) shuffle(arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := int(r.next()) % (i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// GenerateFullGrid fills a complete, valid classical Sudoku grid
// deterministically from seed.
func GenerateFullGrid(seed int64) [81]int {
	var grid [81]int
	r := newRNG(seed)
	fillGrid(&grid, r)
	return grid
}

func fillGrid(grid *[81]int, r *rng) bool {
	idx := -1
	for i := 0; i < 81; i++ {
		if grid[i] == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	row, col := idx/9, idx%9

	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.shuffle(digits)

	for _, d := range digits {
		if rowColBoxSafe(grid, row, col, d) {
			grid[idx] = d
			if fillGrid(grid, r) {
				return true
			}
			grid[idx] = 0
		}
	}
	return false
}

func rowColBoxSafe(grid *[81]int, row, col, digit int) bool {
	for c := 0; c < 9; c++ {
		if grid[row*9+c] == digit {
			return false
		}
	}
	for rr := 0; rr < 9; rr++ {
		if grid[rr*9+col] == digit {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for rr := boxRow; rr < boxRow+3; rr++ {
		for cc := boxCol; cc < boxCol+3; cc++ {
			if grid[rr*9+cc] == digit {
				return false
			}
		}
	}
	return true
}

// CarveGivens removes cells from a complete grid in a seeded random order,
// keeping each removal only if the resulting grid still solves to a unique
// solution (checked via puzzle.Puzzle with SolveMax=2). It stops once no
// further cell can be removed without losing uniqueness.
func CarveGivens(fullGrid [81]int, seed int64) ([81]int, error) {
	grid := fullGrid
	r := newRNG(seed + 1)

	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	r.shuffle(positions)

	for _, pos := range positions {
		old := grid[pos]
		grid[pos] = 0

		unique, err := hasUniqueSolution(grid)
		if err != nil {
			return grid, err
		}
		if !unique {
			grid[pos] = old
		}
	}
	return grid, nil
}

func hasUniqueSolution(grid [81]int) (bool, error) {
	p, err := puzzle.New(grid, puzzle.Config{SolveMax: 2})
	if err != nil {
		return false, err
	}
	if err := p.Solve(); err != nil {
		return false, err
	}
	return p.SolveCount() == 1, nil
}

// Generate produces one bank Entry from seed: a full grid and its carved,
// minimal-clue form.
func Generate(seed int64) (Entry, error) {
	full := GenerateFullGrid(seed)
	givens, err := CarveGivens(full, seed)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Seed: seed, Solution: full, Givens: givens}, nil
}
