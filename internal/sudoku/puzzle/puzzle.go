// Package puzzle provides the external, user-facing view of a Sudoku board:
// the input grid, variant flags, the recursive search that drives the
// constraint package to a solution count, and the board text format.
package puzzle

import (
	"errors"
	"fmt"

	"sudoku-forge/internal/sudoku/constraint"
)

// Statistics is re-exported from constraint: Alternatives writes directly
// into it during invert, so the type has to live where Alternatives can
// reach it without an import cycle back up to this package.
type Statistics = constraint.Statistics

// ErrInvalidInput is constraint.ErrInvalidInput, re-exported; New also wraps
// it for the conflicting-flags case: kikagaku is incompatible with
// colorconstrained, since
// colorconstrained's "same position within block" regions don't have a
// meaning once blocks are replaced by an irregular partition.
var ErrInvalidInput = constraint.ErrInvalidInput

// DefaultSolveMax is the evaluator's early-out knob, kept from
// original_source/maker.py's hard-coded 50.
const DefaultSolveMax = 50

// Puzzle is the user-facing facade: an 81-cell input grid, variant flags, a
// solution counter, and the solvemax cap.
type Puzzle struct {
	grid             [81]int
	diagonal         bool
	colorConstrained bool
	kikagaku         *constraint.KikagakuPartition
	kikagakuColors   *[81]byte

	solvemax   int
	solvecount int
	solutions  [][81]int
	stats      *Statistics
}

// Config bundles the variant flags and options a Puzzle is built with.
type Config struct {
	Diagonal         bool
	ColorConstrained bool
	KikagakuColors   *[81]byte // nil disables kikagaku mode
	SolveMax         int       // 0 means DefaultSolveMax
}

// New builds a Puzzle from an 81-cell grid (row-major, 0 = blank) and a
// Config. It validates the grid's digits and the kikagaku partition (if
// any) up front; it does not run any solving.
func New(grid [81]int, cfg Config) (*Puzzle, error) {
	for idx, v := range grid {
		if v < 0 || v > 9 {
			return nil, fmt.Errorf("%w: cell %d has out-of-range digit %d", ErrInvalidInput, idx, v)
		}
	}
	if cfg.KikagakuColors != nil && cfg.ColorConstrained {
		return nil, fmt.Errorf("%w: kikagaku and colorconstrained are mutually exclusive", ErrInvalidInput)
	}
	p := &Puzzle{
		grid:             grid,
		diagonal:         cfg.Diagonal,
		colorConstrained: cfg.ColorConstrained,
		kikagakuColors:   cfg.KikagakuColors,
		solvemax:         cfg.SolveMax,
	}
	if p.solvemax <= 0 {
		p.solvemax = DefaultSolveMax
	}
	if cfg.KikagakuColors != nil {
		part, err := constraint.NewKikagakuPartition(*cfg.KikagakuColors)
		if err != nil {
			return nil, err
		}
		p.kikagaku = part
	}
	return p, nil
}

// Set places a given at (row, col); it only edits the input grid, it does
// not trigger solving.
func (p *Puzzle) Set(row, col, v int) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return errors.New("puzzle: row/col out of range")
	}
	if v < 0 || v > 9 {
		return fmt.Errorf("%w: value %d out of range", ErrInvalidInput, v)
	}
	p.grid[cellIndex(row, col)] = v
	return nil
}

// Grid returns a copy of the input grid.
func (p *Puzzle) Grid() [81]int { return p.grid }

// SolveMax returns the solution cap.
func (p *Puzzle) SolveMax() int { return p.solvemax }

// SolveCount returns the number of solutions found by the last Solve call.
func (p *Puzzle) SolveCount() int { return p.solvecount }

// Solutions returns every solution grid found by the last Solve call, up to
// SolveMax.
func (p *Puzzle) Solutions() [][81]int { return p.solutions }

// Stats returns the per-depth search/inference counters from the last
// Solve call, or nil if Solve has not run.
func (p *Puzzle) Stats() *Statistics { return p.stats }

// Solve resets the solution counter, builds a fresh Alternatives from the
// input grid (which runs full propagation and inference), and drives the
// recursive MRV search to completion or to SolveMax solutions.
func (p *Puzzle) Solve() error {
	p.solvecount = 0
	p.solutions = nil
	p.stats = constraint.NewStatistics()

	alt, err := constraint.NewAlternatives(p.grid, constraint.Options{
		Diagonal:         p.diagonal,
		ColorConstrained: p.colorConstrained,
		Kikagaku:         p.kikagaku,
		Stats:            p.stats,
		Depth:            0,
	})
	if err != nil {
		return err
	}
	p.search(alt, 0)
	return nil
}

func cellIndex(r, c int) int { return r*9 + c }
