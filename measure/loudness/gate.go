package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// Gate thresholds. Absolute gates are in LUFS, relative gates in LU below
// the mean of the blocks that passed the absolute gate.
const (
	AbsoluteGate      = -70.0
	RelativeGate      = -10.0
	ShortTermGate     = -40.0
	RangeRelativeGate = -20.0
)

// IntegratedLoudness applies the two-stage gate to a 400 ms block series.
//
// Blocks below -70 LUFS are dropped; with none left the result is -70.
// Blocks more than 10 LU below the mean of the survivors are dropped next;
// with none left the result is that mean. Otherwise the result is the mean
// of the blocks that passed both gates.
func IntegratedLoudness(series []float64) float64 {
	absolute := gate(series, AbsoluteGate)
	if len(absolute) == 0 {
		return AbsoluteGate
	}

	mean := core.Mean(absolute)

	relative := gate(absolute, mean+RelativeGate)
	if len(relative) == 0 {
		return mean
	}

	return core.Mean(relative)
}

// ShortTermMax returns the loudest 3 s block at or above -40 LUFS, or -Inf
// if no block reaches the gate.
func ShortTermMax(series []float64) float64 {
	peak := math.Inf(-1)
	for _, v := range gate(series, ShortTermGate) {
		peak = math.Max(peak, v)
	}

	return peak
}

// gate returns the values at or above threshold, in order.
func gate(values []float64, threshold float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= threshold {
			kept = append(kept, v)
		}
	}

	return kept
}
