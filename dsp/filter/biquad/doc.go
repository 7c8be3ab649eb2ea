// Package biquad provides second-order IIR section primitives.
//
// [Coefficients] describe one section with a0 normalized to 1. They convert
// to the polynomial form used by dsp/filter/iir via [Coefficients.Polynomials],
// which also evaluates their frequency response.
//
// A [Section] runs Direct Form II Transposed with persistent state, so a long
// signal can be filtered chunk by chunk and produce the same output as a
// single pass. Block processing dispatches to the best kernel registered for
// the running CPU.
package biquad
