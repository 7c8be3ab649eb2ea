// Package testutil holds deterministic signal fixtures and tolerance
// assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Square generates a square wave alternating between +amplitude and
// -amplitude every half period.
func Square(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	half := sampleRate / freqHz / 2
	for i := range out {
		if int(math.Floor(float64(i)/half))%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Channels returns n independent copies of ch.
func Channels(ch []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = append([]float64(nil), ch...)
	}

	return out
}

// Concat joins the given segments into one slice.
func Concat(parts ...[]float64) []float64 {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]float64, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
