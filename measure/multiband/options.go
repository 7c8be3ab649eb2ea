package multiband

import (
	"runtime"

	"github.com/cwbudde/algo-loudness/dsp/filter/crossover"
)

// Config defines configuration for a multiband analysis.
type Config struct {
	Crossover   crossover.Config
	Concurrency int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the 250 Hz / 4 kHz split with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Crossover:   crossover.DefaultConfig(),
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLowCrossover sets the low/mid corner in Hz.
func WithLowCrossover(hz float64) Option {
	return func(cfg *Config) {
		crossover.WithLowCrossover(hz)(&cfg.Crossover)
	}
}

// WithHighCrossover sets the mid/high corner in Hz.
func WithHighCrossover(hz float64) Option {
	return func(cfg *Config) {
		crossover.WithHighCrossover(hz)(&cfg.Crossover)
	}
}

// WithConcurrency sets the maximum number of channels processed at once.
func WithConcurrency(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Concurrency = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (c Config) crossoverOptions() []crossover.Option {
	return []crossover.Option{
		crossover.WithLowCrossover(c.Crossover.Low),
		crossover.WithHighCrossover(c.Crossover.High),
	}
}
