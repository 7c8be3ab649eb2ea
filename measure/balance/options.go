package balance

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/filter/crossover"
)

// Frame defaults in samples.
const (
	DefaultFrameSize = 4096
	DefaultHop       = 2048
)

// Config defines configuration for a balance analysis.
type Config struct {
	FrameSize int
	Hop       int
	Low       float64
	High      float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 4096-sample frames with 50 % overlap and the
// 250 Hz / 4 kHz band edges.
func DefaultConfig() Config {
	return Config{
		FrameSize: DefaultFrameSize,
		Hop:       DefaultHop,
		Low:       crossover.DefaultLowCrossover,
		High:      crossover.DefaultHighCrossover,
	}
}

// WithFrameSize sets the analysis frame length. Values that are not a power
// of two of at least 16 are ignored.
func WithFrameSize(n int) Option {
	return func(cfg *Config) {
		if n >= 16 && n&(n-1) == 0 {
			cfg.FrameSize = n
		}
	}
}

// WithHop sets the distance between frame starts.
func WithHop(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Hop = n
		}
	}
}

// WithBands sets the low/mid and mid/high band edges in Hz. Pairs that do
// not satisfy 0 < low < high are ignored.
func WithBands(low, high float64) Option {
	return func(cfg *Config) {
		if low > 0 && low < high && !math.IsInf(high, 0) {
			cfg.Low, cfg.High = low, high
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
