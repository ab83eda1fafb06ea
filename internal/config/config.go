// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and OUTFIT_ env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultCount is used when a request omits count.
	DefaultCount int `koanf:"default_count"`

	// MaxCount caps the count a request may ask for.
	MaxCount int `koanf:"max_count"`

	// CombinationBudget caps base combinations enumerated per run.
	CombinationBudget int `koanf:"combination_budget"`

	// Hemisphere drives the "current" season: north or south.
	Hemisphere string `koanf:"hemisphere"`

	// Seed makes every engine deterministic when non-zero.
	Seed uint64 `koanf:"seed"`

	// BatchConcurrency bounds parallel runs inside one batch call.
	BatchConcurrency int `koanf:"batch_concurrency"`

	// MaxBatchSize caps requests per batch call.
	MaxBatchSize int `koanf:"max_batch_size"`

	// RateLimitRPS and RateLimitBurst configure the suggestion endpoints'
	// token bucket. A non-positive rate disables limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		DefaultCount:      5,
		MaxCount:          100,
		CombinationBudget: 100,
		Hemisphere:        "north",
		Seed:              0,
		BatchConcurrency:  runtime.NumCPU(),
		MaxBatchSize:      20,
		RateLimitRPS:      0,
		RateLimitBurst:    10,
	}
}
