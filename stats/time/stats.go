// Package time computes time-domain level statistics of sample blocks.
//
//nolint:revive
package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Levels summarises the level of one channel.
//
//nolint:revive
type Levels struct {
	Length         int
	Peak           float64 // max |x|
	Peak_dB        float64
	RMS            float64
	RMS_dB         float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	DC             float64 // mean
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Measure computes the level summary of signal. An empty signal reports
// -Inf for every dB field.
func Measure(signal []float64) Levels {
	if len(signal) == 0 {
		return Levels{
			Peak_dB:        math.Inf(-1),
			RMS_dB:         math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	peak := Peak(signal)
	rms := RMS(signal)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Levels{
		Length:         len(signal),
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		CrestFactor:    crest,
		CrestFactor_dB: ampTodB(crest),
		DC:             vecmath.Sum(signal) / float64(len(signal)),
	}
}

// Peak returns the peak absolute amplitude of the signal, 0 when empty.
func Peak(signal []float64) float64 {
	return vecmath.MaxAbs(signal)
}

// Energy returns the sum of squares of the signal.
func Energy(signal []float64) float64 {
	return vecmath.DotProduct(signal, signal)
}

// MeanSquare returns Energy / len(signal), 0 when empty.
func MeanSquare(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return Energy(signal) / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	return math.Sqrt(MeanSquare(signal))
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}
