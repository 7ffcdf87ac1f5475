package config

import (
	"os"
	"strconv"

	"sudoku-forge/pkg/constants"
)

type Config struct {
	Port              string
	LogLevel          string
	EvaluatorSolveMax int
}

// Load loads configuration from environment variables, falling back to
// sensible defaults for anything unset.
func Load() (*Config, error) {
	return &Config{
		Port:              getEnv("PORT", constants.DefaultPort),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		EvaluatorSolveMax: getEnvInt("EVALUATOR_SOLVE_MAX", constants.DefaultEvaluatorSolveMax),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
