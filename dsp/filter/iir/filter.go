package iir

import (
	"errors"
	"math"
	"math/cmplx"
)

var (
	// ErrEmptyCoefficients indicates a missing numerator or denominator.
	ErrEmptyCoefficients = errors.New("iir: coefficient vectors must not be empty")
	// ErrZeroLeadingDenominator indicates a[0] == 0, which cannot be normalized.
	ErrZeroLeadingDenominator = errors.New("iir: a[0] must be non-zero")
)

// Filter is an immutable IIR transfer function B(z)/A(z).
type Filter struct {
	b []float64
	a []float64 // a[0] == 1
}

// New creates a filter from feed-forward coefficients b and feed-back
// coefficients a. Both are copied and scaled by 1/a[0].
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}

	if a[0] == 0 {
		return nil, ErrZeroLeadingDenominator
	}

	f := &Filter{
		b: make([]float64, len(b)),
		a: make([]float64, len(a)),
	}

	inv := 1 / a[0]
	for i, v := range b {
		f.b[i] = v * inv
	}

	for i, v := range a {
		f.a[i] = v * inv
	}

	f.a[0] = 1

	return f, nil
}

// MustNew is like New but panics on invalid coefficients. It is intended
// for package-level filters built from constant tables.
func MustNew(b, a []float64) *Filter {
	f, err := New(b, a)
	if err != nil {
		panic(err)
	}

	return f
}

// Apply filters x from a zero initial state and returns a new slice of the
// same length. x is not modified.
func (f *Filter) Apply(x []float64) []float64 {
	out := make([]float64, len(x))
	f.ApplyTo(out, x)

	return out
}

// ApplyTo filters src into dst from a zero initial state. dst must be at
// least as long as src and may alias src for in-place filtering.
//
// The recursion is evaluated in transposed direct form II, which is
// algebraically identical to the difference equation.
func (f *Filter) ApplyTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]

	order := f.Order()
	if order == 0 {
		for i, x := range src {
			dst[i] = f.b[0] * x
		}

		return
	}

	b := f.padded(f.b, order)
	a := f.padded(f.a, order)
	state := make([]float64, order)

	for i, x := range src {
		y := b[0]*x + state[0]
		for k := 1; k < order; k++ {
			state[k-1] = b[k]*x - a[k]*y + state[k]
		}

		state[order-1] = b[order]*x - a[order]*y
		dst[i] = y
	}
}

func (f *Filter) padded(c []float64, order int) []float64 {
	if len(c) == order+1 {
		return c
	}

	out := make([]float64, order+1)
	copy(out, c)

	return out
}

// Order returns max(len(b), len(a)) - 1.
func (f *Filter) Order() int {
	return max(len(f.b), len(f.a)) - 1
}

// B returns a copy of the normalized feed-forward coefficients.
func (f *Filter) B() []float64 {
	return append([]float64(nil), f.b...)
}

// A returns a copy of the normalized feed-back coefficients (A()[0] == 1).
func (f *Filter) A() []float64 {
	return append([]float64(nil), f.a...)
}

// Response evaluates H(e^jw) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return polyval(f.b, w) / polyval(f.a, w)
}

// MagnitudeDB returns 20*log10|H(e^jw)| at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// polyval evaluates sum c[k] * e^{-jwk}.
func polyval(c []float64, w float64) complex128 {
	var sum complex128
	for k, v := range c {
		sum += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return sum
}
