package weighting

import "github.com/cwbudde/algo-loudness/dsp/filter/iir"

// BS.1770-4 K-weighting coefficients.
var (
	shelfB = []float64{1.53512485958697, -2.69169618940638, 1.19839281085285}
	shelfA = []float64{1, -1.69065929318241, 0.73248077421585}

	highpassB = []float64{1, -2, 1}
	highpassA = []float64{1, -1.99004745483398, 0.99007225036621}
)

// KWeighting is the two-stage K-weighting filter. It is immutable and safe
// for concurrent use.
type KWeighting struct {
	shelf    *iir.Filter
	highpass *iir.Filter
}

var k = &KWeighting{
	shelf:    iir.MustNew(shelfB, shelfA),
	highpass: iir.MustNew(highpassB, highpassA),
}

// K returns the shared K-weighting filter.
func K() *KWeighting {
	return k
}

// Stages returns the shelf and high-pass stages in processing order.
func (w *KWeighting) Stages() [2]*iir.Filter {
	return [2]*iir.Filter{w.shelf, w.highpass}
}

// Apply returns x filtered by the shelf stage and then the high-pass stage.
// Each call starts from zero state.
func (w *KWeighting) Apply(x []float64) []float64 {
	out := w.shelf.Apply(x)
	w.highpass.ApplyTo(out, out)

	return out
}

// MagnitudeDB returns the combined magnitude response at freqHz for a
// signal sampled at sampleRate.
func (w *KWeighting) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return w.shelf.MagnitudeDB(freqHz, sampleRate) + w.highpass.MagnitudeDB(freqHz, sampleRate)
}
