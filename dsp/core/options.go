package core

import "runtime"

// DefaultChunkSize is the number of samples scanned per chunk by the
// peak and oversampling stages.
const DefaultChunkSize = 1 << 20

// ProcessorConfig defines settings shared by the offline analysis stages.
//
// ChunkSize and Concurrency bound memory and parallelism only; neither
// changes a numeric result.
type ProcessorConfig struct {
	SampleRate  float64
	ChunkSize   int
	Concurrency int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline analysis.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  48000,
		ChunkSize:   DefaultChunkSize,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChunkSize sets the scan chunk length in samples.
func WithChunkSize(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.ChunkSize = n
		}
	}
}

// WithConcurrency sets the maximum number of concurrent channel tasks.
func WithConcurrency(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.Concurrency = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
