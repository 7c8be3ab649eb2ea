package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// ErrInvalidFactor indicates an oversampling factor below 1.
var ErrInvalidFactor = errors.New("resample: oversampling factor must be >= 1")

// Oversampler raises the sample rate of a stream by an integer factor.
// It is not safe for concurrent use.
type Oversampler struct {
	factor  int
	quality Quality

	taps   []float64
	phases [][]float64

	// history holds the last tapsPerPhase-1 input samples, oldest first.
	history []float64
	work    []float64
}

// NewOversampler creates an oversampler producing factor output samples per
// input sample.
func NewOversampler(factor int, opts ...Option) (*Oversampler, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	cfg := newConfig(opts)

	taps, phases, err := designPolyphase(factor, cfg)
	if err != nil {
		return nil, err
	}

	return &Oversampler{
		factor:  factor,
		quality: cfg.quality,
		taps:    taps,
		phases:  phases,
		history: make([]float64, cfg.tapsPerPhase-1),
	}, nil
}

// Oversample is a one-shot helper that interpolates input by factor.
func Oversample(input []float64, factor int, opts ...Option) ([]float64, error) {
	o, err := NewOversampler(factor, opts...)
	if err != nil {
		return nil, err
	}

	return o.Process(input), nil
}

// Process interpolates an input block and returns factor*len(input) samples,
// continuing from the state left by the previous call.
func (o *Oversampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}

	out := make([]float64, o.factor*len(input))
	o.ProcessTo(out, input)

	return out
}

// ProcessTo writes factor*len(src) samples into dst, which must be at least
// that long.
func (o *Oversampler) ProcessTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[o.factor*len(src)-1]

	h := len(o.history)
	o.work = append(append(o.work[:0], o.history...), src...)

	for i := range src {
		newest := h + i
		base := i * o.factor

		for p, taps := range o.phases {
			var y float64
			for k, c := range taps {
				y += c * o.work[newest-k]
			}

			dst[base+p] = y
		}
	}

	copy(o.history, o.work[len(o.work)-h:])
}

// Reset returns the oversampler to silence.
func (o *Oversampler) Reset() {
	core.Zero(o.history)
}

// Factor returns the oversampling factor.
func (o *Oversampler) Factor() int {
	return o.factor
}

// Quality returns the configured quality mode.
func (o *Oversampler) Quality() Quality {
	return o.quality
}

// TapsPerPhase returns the length of each polyphase branch.
func (o *Oversampler) TapsPerPhase() int {
	return len(o.phases[0])
}

// Latency returns the group delay of the prototype in output samples.
func (o *Oversampler) Latency() float64 {
	return 0.5 * float64(len(o.taps)-1)
}

// Prototype returns a copy of the underlying prototype FIR taps.
func (o *Oversampler) Prototype() []float64 {
	return append([]float64(nil), o.taps...)
}
