package loudness

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// Percentiles bounding the loudness range.
const (
	RangeLowPercentile  = 0.10
	RangeHighPercentile = 0.95
)

// LoudnessRange returns the spread in LU of a 3 s block series.
//
// The series passes the -40 LUFS gate and then a gate 20 LU below the mean
// of the survivors. The range is the difference between the values at the
// 95th and 10th percentile of what remains, indexed as floor(n*p). Fewer
// than two values at any stage give 0.
func LoudnessRange(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	absolute := gate(series, ShortTermGate)
	if len(absolute) < 2 {
		return 0
	}

	relative := gate(absolute, core.Mean(absolute)+RangeRelativeGate)
	if len(relative) < 2 {
		return 0
	}

	slices.Sort(relative)

	n := len(relative)
	lo := relative[core.ClampIndex(int(math.Floor(float64(n)*RangeLowPercentile)), n)]
	hi := relative[core.ClampIndex(int(math.Floor(float64(n)*RangeHighPercentile)), n)]

	return hi - lo
}
