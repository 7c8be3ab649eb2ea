// Package frequency computes shape descriptors of one-sided magnitude
// spectra.
//
// The magnitude slice holds bins 0 (DC) to Nyquist, so the FFT size is
// 2*(len(magnitude)-1) and bin i sits at i*sampleRate/fftSize Hz.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultRolloff is the energy fraction used by [Describe].
const DefaultRolloff = 0.85

// Shape holds spectral shape descriptors.
type Shape struct {
	Centroid float64 // amplitude-weighted mean frequency (Hz)
	Spread   float64 // standard deviation around the centroid (Hz)
	Flatness float64 // geometric / arithmetic mean, 0..1
	Rolloff  float64 // frequency below which DefaultRolloff of the energy lies (Hz)
}

// Describe computes all shape descriptors of a magnitude spectrum. An empty,
// single-bin or all-zero spectrum yields the zero Shape.
func Describe(magnitude []float64, sampleRate float64) Shape {
	if len(magnitude) < 2 {
		return Shape{}
	}

	sum := vecmath.Sum(magnitude)
	cent := centroid(magnitude, sampleRate, sum)

	return Shape{
		Centroid: cent,
		Spread:   spread(magnitude, sampleRate, cent, sum),
		Flatness: Flatness(magnitude),
		Rolloff:  rolloff(magnitude, sampleRate, DefaultRolloff, vecmath.DotProduct(magnitude, magnitude)),
	}
}

// binFreq returns the frequency in Hz of a given bin index.
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	return centroid(magnitude, sampleRate, vecmath.Sum(magnitude))
}

func centroid(magnitude []float64, sampleRate, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}

	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}

	return weightedSum / sumMag
}

func spread(magnitude []float64, sampleRate, cent, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}

	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := binFreq(i, sampleRate, n) - cent
		weightedSqSum += diff * diff * v
	}

	return math.Sqrt(weightedSqSum / sumMag)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin is excluded. A zero bin makes the geometric mean, and so the
// flatness, zero.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	bins := magnitude[1:]

	meanLin := vecmath.Sum(bins) / float64(len(bins))
	if meanLin == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}

		sumLog += math.Log(v)
	}

	return math.Exp(sumLog/float64(len(bins))) / meanLin
}

// Rolloff returns the frequency below which the given fraction (0..1) of
// spectral energy lies. Energy is the sum of squared magnitudes.
func Rolloff(magnitude []float64, sampleRate, percent float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	return rolloff(magnitude, sampleRate, percent, vecmath.DotProduct(magnitude, magnitude))
}

func rolloff(magnitude []float64, sampleRate, percent, totalEnergy float64) float64 {
	n := len(magnitude)
	if n < 2 || totalEnergy == 0 {
		return 0
	}

	threshold := percent * totalEnergy
	cumEnergy := 0.0

	for i, v := range magnitude {
		cumEnergy += v * v
		if cumEnergy >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}

// BandEnergy returns the summed squared magnitude of the bins whose centre
// frequency lies in [lo, hi) Hz.
func BandEnergy(magnitude []float64, sampleRate, lo, hi float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	energy := 0.0
	for i, v := range magnitude {
		if f := binFreq(i, sampleRate, n); f >= lo && f < hi {
			energy += v * v
		}
	}

	return energy
}
