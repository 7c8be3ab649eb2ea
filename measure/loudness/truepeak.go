package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
	"github.com/cwbudde/algo-loudness/dsp/filter/design"
	"github.com/cwbudde/algo-loudness/dsp/resample"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	timestats "github.com/cwbudde/algo-loudness/stats/time"
)

// True-peak reconstruction parameters. The interpolated stream is smoothed
// by a low-pass at TruePeakCutoff times the input rate.
const (
	TruePeakFactor = 4
	TruePeakCutoff = 0.45
	TruePeakQ      = 0.54
)

// TruePeak estimates the inter-sample peak over all channels in dBFS, or
// -Inf for silence. The LFE channel is included.
//
// Each channel is oversampled 4x and low-pass filtered. A channel's peak is
// the larger of the reconstructed peak and its sample peak, so TruePeak is
// never below SamplePeak.
func TruePeak(sig signal.Signal, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)

	peak := 0.0
	for _, ch := range sig.Channels {
		peak = math.Max(peak, channelTruePeak(ch, sig.SampleRate, cfg.ChunkSize))
	}

	return core.LinearToDB(peak)
}

// truePeakEstimator holds the reconstruction state of one channel.
type truePeakEstimator struct {
	up  *resample.Oversampler
	lp  *biquad.Section
	buf []float64
}

func newTruePeakEstimator(sampleRate float64) *truePeakEstimator {
	up, err := resample.NewOversampler(TruePeakFactor)
	if err != nil {
		panic("loudness: " + err.Error())
	}

	upRate := TruePeakFactor * sampleRate

	return &truePeakEstimator{
		up: up,
		lp: biquad.NewSection(design.Lowpass(TruePeakCutoff*sampleRate, TruePeakQ, upRate)),
	}
}

// process feeds the next chunk and returns the largest reconstructed
// magnitude within it.
func (e *truePeakEstimator) process(chunk []float64) float64 {
	e.buf = core.EnsureLen(e.buf, TruePeakFactor*len(chunk))

	out := e.buf
	e.up.ProcessTo(out, chunk)
	e.lp.ProcessBlock(out)

	return timestats.Peak(out)
}

// flush feeds zeros until the last input sample has left the interpolator
// history and returns the largest reconstructed magnitude of the tail.
func (e *truePeakEstimator) flush() float64 {
	return e.process(make([]float64, e.up.TapsPerPhase()-1))
}

// channelTruePeak returns the linear true peak of one channel. State is
// carried across chunks so the chunk size does not affect the result.
func channelTruePeak(x []float64, sampleRate float64, chunk int) float64 {
	if len(x) == 0 {
		return 0
	}

	chunk = max(1, chunk)
	est := newTruePeakEstimator(sampleRate)

	peak := 0.0
	for start := 0; start < len(x); start += chunk {
		end := min(start+chunk, len(x))
		block := x[start:end]

		peak = math.Max(peak, est.process(block))
		peak = math.Max(peak, timestats.Peak(block))
	}

	return math.Max(peak, est.flush())
}
