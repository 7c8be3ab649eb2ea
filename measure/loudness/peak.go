package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	timestats "github.com/cwbudde/algo-loudness/stats/time"
)

// SamplePeak returns the largest absolute sample value over all channels in
// dBFS, or -Inf for silence. The LFE channel is included.
func SamplePeak(sig signal.Signal, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)

	peak := 0.0
	for _, ch := range sig.Channels {
		peak = math.Max(peak, channelSamplePeak(ch, cfg.ChunkSize))
	}

	return core.LinearToDB(peak)
}

// channelSamplePeak scans x in chunks of at most chunk samples.
func channelSamplePeak(x []float64, chunk int) float64 {
	chunk = max(1, chunk)

	peak := 0.0
	for start := 0; start < len(x); start += chunk {
		end := min(start+chunk, len(x))
		peak = math.Max(peak, timestats.Peak(x[start:end]))
	}

	return peak
}
