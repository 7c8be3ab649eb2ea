package multiband

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/filter/crossover"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/cwbudde/algo-loudness/internal/parallel"
)

// Result holds the per-band levels in dB.
type Result struct {
	Low  float64
	Mid  float64
	High float64
}

// LowMidRatio returns the amplitude ratio of the low band to the mid band.
func (r Result) LowMidRatio() float64 {
	return core.DBToLinear(r.Low - r.Mid)
}

// MidHighRatio returns the amplitude ratio of the mid band to the high band.
func (r Result) MidHighRatio() float64 {
	return core.DBToLinear(r.Mid - r.High)
}

// Analyze measures the band levels of sig. Every channel takes part.
func Analyze(sig signal.Signal, opts ...Option) (Result, error) {
	return AnalyzeContext(context.Background(), sig, opts...)
}

// AnalyzeContext is like Analyze but stops starting channel work once ctx is
// done and returns its error.
func AnalyzeContext(ctx context.Context, sig signal.Signal, opts ...Option) (Result, error) {
	if err := sig.Validate(); err != nil {
		return Result{}, fmt.Errorf("multiband: %w", err)
	}

	cfg := ApplyOptions(opts...)

	splitter, err := crossover.NewSplitter(sig.SampleRate, cfg.crossoverOptions()...)
	if err != nil {
		return Result{}, fmt.Errorf("multiband: %w", err)
	}

	n := sig.NumChannels()
	levels := make([]Result, n)

	err = parallel.ForEach(ctx, n, cfg.Concurrency, func(ch int) {
		levels[ch] = channelLevels(splitter, sig.Channels[ch], sig.SampleRate)
	})
	if err != nil {
		return Result{}, fmt.Errorf("multiband: %w", err)
	}

	res := Result{Low: math.Inf(-1), Mid: math.Inf(-1), High: math.Inf(-1)}
	for _, l := range levels {
		res.Low = math.Max(res.Low, l.Low)
		res.Mid = math.Max(res.Mid, l.Mid)
		res.High = math.Max(res.High, l.High)
	}

	return res, nil
}

func channelLevels(s *crossover.Splitter, x []float64, sampleRate float64) Result {
	low, mid, high := s.Split(x)

	return Result{
		Low:  BlockRMS(low, sampleRate),
		Mid:  BlockRMS(mid, sampleRate),
		High: BlockRMS(high, sampleRate),
	}
}
