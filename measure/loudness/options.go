package loudness

import "github.com/cwbudde/algo-loudness/dsp/core"

// Config defines configuration for a loudness analysis. The sample rate is
// taken from the analysed signal.
type Config struct {
	core.ProcessorConfig
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{ProcessorConfig: core.DefaultProcessorConfig()}
}

// WithChunkSize sets how many input samples the true-peak stage oversamples
// at a time. It bounds memory only; results do not depend on it.
func WithChunkSize(n int) Option {
	return func(cfg *Config) {
		core.WithChunkSize(n)(&cfg.ProcessorConfig)
	}
}

// WithConcurrency sets the maximum number of channels processed at once.
func WithConcurrency(n int) Option {
	return func(cfg *Config) {
		core.WithConcurrency(n)(&cfg.ProcessorConfig)
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
