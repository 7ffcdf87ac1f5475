package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"sudoku-forge/internal/core"
	"sudoku-forge/internal/sudoku/constraint"
	"sudoku-forge/internal/sudoku/evaluator"
	"sudoku-forge/internal/sudoku/puzzle"
	"sudoku-forge/pkg/config"
	"sudoku-forge/pkg/constants"
)

// sharedEvaluator is reused across requests so the fitness cache
// (evaluator.Cache) builds up hits across calls instead of starting cold on
// every request, mirroring the single long-lived GA run this endpoint
// stands in for.
var sharedEvaluator = evaluator.New(evaluator.Config{})

// lastStats holds the Statistics snapshot from the most recent /api/v1/solve
// call, for /api/v1/stats to report. Guarded separately from the evaluator
// cache since it's a single diagnostic slot, not a growing map.
var (
	lastStatsMu sync.Mutex
	lastStats   *constraint.Statistics
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", healthHandler)

	api := r.Group("/api/v1")
	{
		api.POST("/solve", solveHandler(cfg))
		api.POST("/evaluate", evaluateHandler(cfg))
		api.GET("/stats", statsHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, core.HealthResponse{
		Status:  "ok",
		Version: constants.ServiceVersion,
	})
}

func solveHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req core.SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		solveMax := req.SolveMax
		if solveMax <= 0 {
			solveMax = cfg.EvaluatorSolveMax
		}

		p, err := puzzle.New(req.Grid, puzzle.Config{
			Diagonal:         req.Diagonal,
			ColorConstrained: req.ColorConstrained,
			SolveMax:         solveMax,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := p.Solve(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		lastStatsMu.Lock()
		lastStats = p.Stats()
		lastStatsMu.Unlock()

		var sb strings.Builder
		p.Stats().Display(&sb)

		c.JSON(http.StatusOK, core.SolveResponse{
			SolveCount: p.SolveCount(),
			Solutions:  p.Solutions(),
			Stats:      sb.String(),
		})
	}
}

func evaluateHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req core.EvaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		e := sharedEvaluator
		if req.Diagonal || req.ColorConstrained || req.SolveMax > 0 {
			solveMax := req.SolveMax
			if solveMax <= 0 {
				solveMax = cfg.EvaluatorSolveMax
			}
			e = evaluator.New(evaluator.Config{
				Diagonal:         req.Diagonal,
				ColorConstrained: req.ColorConstrained,
				SolveMax:         solveMax,
			})
		}

		result, err := e.Evaluate(evaluator.Genome(req.Genome))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, core.EvaluateResponse{
			Fitness:    result.Fitness,
			Count:      result.Count,
			SolveCount: result.SolveCount,
			CacheHit:   result.CacheHit,
		})
	}
}

// statsHandler reports the shared evaluator's cache size plus the last
// solve's per-depth Statistics snapshot, if any solve has happened yet in
// this process.
func statsHandler(c *gin.Context) {
	lastStatsMu.Lock()
	stats := lastStats
	lastStatsMu.Unlock()

	resp := core.StatsResponse{CacheSize: sharedEvaluator.CacheSize()}
	if stats != nil {
		cumulative := stats.Cumulative()
		resp.Cumulative = &cumulative
		resp.Records = stats.Records()
	}
	c.JSON(http.StatusOK, resp)
}
