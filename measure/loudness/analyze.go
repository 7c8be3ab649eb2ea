package loudness

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/filter/weighting"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/cwbudde/algo-loudness/internal/parallel"
)

// Result holds the loudness measurements of one signal.
type Result struct {
	// Integrated is the gated programme loudness in LUFS.
	Integrated float64
	// ShortTermMax is the loudest gated 3 s block in LUFS.
	ShortTermMax float64
	// Range is the loudness range in LU.
	Range float64
	// SamplePeak is the highest sample magnitude in dBFS.
	SamplePeak float64
	// TruePeak is the highest reconstructed magnitude in dBFS.
	TruePeak float64
}

// Analyze measures the loudness of sig.
func Analyze(sig signal.Signal, opts ...Option) (Result, error) {
	return AnalyzeContext(context.Background(), sig, opts...)
}

// AnalyzeContext is like Analyze but stops starting channel work once ctx is
// done and returns its error.
func AnalyzeContext(ctx context.Context, sig signal.Signal, opts ...Option) (Result, error) {
	if err := sig.Validate(); err != nil {
		return Result{}, fmt.Errorf("loudness: %w", err)
	}

	cfg := ApplyOptions(opts...)
	n := sig.NumChannels()
	weights := ChannelWeights(n)

	contributes := make([]bool, n)
	for _, w := range weights {
		contributes[w.Index] = true
	}

	k := weighting.K()
	weighted := make([][]float64, n)
	samplePeaks := make([]float64, n)
	truePeaks := make([]float64, n)

	err := parallel.ForEach(ctx, n, cfg.Concurrency, func(ch int) {
		x := sig.Channels[ch]

		if contributes[ch] {
			weighted[ch] = k.Apply(x)
		}

		samplePeaks[ch] = channelSamplePeak(x, cfg.ChunkSize)
		truePeaks[ch] = channelTruePeak(x, sig.SampleRate, cfg.ChunkSize)
	})
	if err != nil {
		return Result{}, fmt.Errorf("loudness: %w", err)
	}

	integrated := BlockLoudness(weighted, weights, sig.SampleRate, IntegratedBlock)
	shortTerm := BlockLoudness(weighted, weights, sig.SampleRate, ShortTermBlock)

	samplePeak, truePeak := 0.0, 0.0
	for ch := range n {
		samplePeak = math.Max(samplePeak, samplePeaks[ch])
		truePeak = math.Max(truePeak, truePeaks[ch])
	}

	return Result{
		Integrated:   IntegratedLoudness(integrated),
		ShortTermMax: ShortTermMax(shortTerm),
		Range:        LoudnessRange(shortTerm),
		SamplePeak:   core.LinearToDB(samplePeak),
		TruePeak:     core.LinearToDB(truePeak),
	}, nil
}
