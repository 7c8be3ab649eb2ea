// Package design provides RBJ cookbook biquad coefficient designers.
//
// The designers return [biquad.Coefficients] with a0 normalized to 1. A
// frequency outside (0, Nyquist) or an invalid sample rate yields the zero
// value, which filters every input to silence. A non-positive or non-finite
// Q falls back to 1/sqrt(2).
package design
