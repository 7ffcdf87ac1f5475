// Package core holds the small set of domain types shared across the
// transport layer that don't belong to any one package: cell coordinates and
// the request/response DTOs for the HTTP API.
package core

import "sudoku-forge/internal/sudoku/constraint"

// CellRef identifies a single cell by zero-based row and column.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveRequest carries an 81-cell grid (row-major, 0 for blank) plus the
// optional variant flags accepted by puzzle.Config.
type SolveRequest struct {
	Grid             [81]int `json:"grid"`
	Diagonal         bool    `json:"diagonal,omitempty"`
	ColorConstrained bool    `json:"color_constrained,omitempty"`
	SolveMax         int     `json:"solve_max,omitempty"`
}

// SolveResponse reports how many solutions were found (capped at SolveMax)
// and returns them.
type SolveResponse struct {
	SolveCount int       `json:"solve_count"`
	Solutions  [][81]int `json:"solutions"`
	Stats      any       `json:"stats,omitempty"`
}

// EvaluateRequest carries a genome to score.
type EvaluateRequest struct {
	Genome           [81]int `json:"genome"`
	Diagonal         bool    `json:"diagonal,omitempty"`
	ColorConstrained bool    `json:"color_constrained,omitempty"`
	SolveMax         int     `json:"solve_max,omitempty"`
}

// EvaluateResponse is the scalar fitness result for one genome.
type EvaluateResponse struct {
	Fitness    float64 `json:"fitness"`
	Count      int     `json:"count"`
	SolveCount int     `json:"solve_count"`
	CacheHit   bool    `json:"cache_hit"`
}

// StatsResponse reports the shared evaluator's process-lifetime cache usage
// alongside the per-depth search/inference counters from the most recent
// /api/v1/solve call. Cumulative and Records are both nil until the first
// solve.
type StatsResponse struct {
	CacheSize  int                      `json:"cache_size"`
	Cumulative *constraint.DepthRecord  `json:"cumulative,omitempty"`
	Records    []constraint.DepthRecord `json:"records,omitempty"`
}

// HealthResponse is the liveness payload served at /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
