package multiband

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	timestats "github.com/cwbudde/algo-loudness/stats/time"
)

// Floor is the level in dB reported for a band without measurable energy.
const Floor = -100.0

// Block window in seconds.
const (
	BlockSeconds = 3.0
	HopSeconds   = 1.0
)

// BlockRMS returns the loudest block RMS of x in dB (20*log10).
//
// Blocks of 3 s start every 1 s while the start lies inside x. A block that
// runs past the end is padded with zeros to the full length. Silent blocks
// are skipped; if every block is silent the result is Floor.
func BlockRMS(x []float64, sampleRate float64) float64 {
	block := int(math.Floor(BlockSeconds * sampleRate))
	hop := max(1, int(math.Floor(HopSeconds*sampleRate)))

	if block <= 0 || len(x) == 0 {
		return Floor
	}

	peak := math.Inf(-1)

	for start := 0; start < len(x); start += hop {
		end := min(start+block, len(x))

		rms := math.Sqrt(timestats.Energy(x[start:end]) / float64(block))
		if db := core.LinearToDB(rms); core.IsFinite(db) {
			peak = math.Max(peak, db)
		}
	}

	if math.IsInf(peak, -1) {
		return Floor
	}

	return peak
}
