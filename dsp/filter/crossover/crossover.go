package crossover

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
	"github.com/cwbudde/algo-loudness/dsp/filter/design"
	"github.com/cwbudde/algo-loudness/dsp/filter/iir"
)

// Default crossover frequencies in Hz.
const (
	DefaultLowCrossover  = 250.0
	DefaultHighCrossover = 4000.0
)

var (
	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("crossover: sample rate must be positive and finite")
	// ErrInvalidCrossover indicates crossover frequencies that are not
	// 0 < low < high.
	ErrInvalidCrossover = errors.New("crossover: crossover frequencies must satisfy 0 < low < high")
)

// Config holds splitter parameters.
type Config struct {
	Low  float64
	High float64
}

// Option mutates splitter configuration.
type Option func(*Config)

// DefaultConfig returns the 250 Hz / 4 kHz split.
func DefaultConfig() Config {
	return Config{Low: DefaultLowCrossover, High: DefaultHighCrossover}
}

// WithLowCrossover sets the low-pass corner. Non-positive or non-finite
// values are ignored.
func WithLowCrossover(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 && !math.IsInf(hz, 0) {
			cfg.Low = hz
		}
	}
}

// WithHighCrossover sets the high-pass corner. Non-positive or non-finite
// values are ignored.
func WithHighCrossover(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 && !math.IsInf(hz, 0) {
			cfg.High = hz
		}
	}
}

// ApplyOptions applies opts to the default configuration.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Splitter holds the three band filters. It is immutable and safe for
// concurrent use; every Split call starts each filter from zero state.
type Splitter struct {
	cfg        Config
	sampleRate float64

	low  *iir.Filter
	mid  *iir.Filter
	high *iir.Filter
}

// NewSplitter designs the band filters for sampleRate.
//
// A corner at or above Nyquist is not an error: the affected filter cannot
// be realised and its band comes out silent.
func NewSplitter(sampleRate float64, opts ...Option) (*Splitter, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := ApplyOptions(opts...)
	if cfg.Low >= cfg.High {
		return nil, fmt.Errorf("%w: low %v Hz, high %v Hz", ErrInvalidCrossover, cfg.Low, cfg.High)
	}

	center := cfg.Center()

	s := &Splitter{cfg: cfg, sampleRate: sampleRate}

	var err error
	if s.low, err = fromBiquad(design.Lowpass(cfg.Low, design.ButterworthQ, sampleRate)); err != nil {
		return nil, err
	}

	if s.mid, err = fromBiquad(design.BandpassPeak(center, center/(cfg.High-cfg.Low), sampleRate)); err != nil {
		return nil, err
	}

	if s.high, err = fromBiquad(design.Highpass(cfg.High, design.ButterworthQ, sampleRate)); err != nil {
		return nil, err
	}

	return s, nil
}

// Center returns the band-pass centre frequency, the geometric mean of the
// two crossovers.
func (c Config) Center() float64 {
	return math.Sqrt(c.Low * c.High)
}

func fromBiquad(c biquad.Coefficients) (*iir.Filter, error) {
	f, err := iir.New(c.Polynomials())
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}

	return f, nil
}

// Split filters x through the three bands and returns fresh slices of the
// same length. x is not modified.
func (s *Splitter) Split(x []float64) (low, mid, high []float64) {
	return s.low.Apply(x), s.mid.Apply(x), s.high.Apply(x)
}

// Bands returns the low, mid and high filters.
func (s *Splitter) Bands() (low, mid, high *iir.Filter) {
	return s.low, s.mid, s.high
}

// Config returns the crossover configuration in use.
func (s *Splitter) Config() Config {
	return s.cfg
}

// SampleRate returns the design sample rate.
func (s *Splitter) SampleRate() float64 {
	return s.sampleRate
}
