// Package iir applies fixed-coefficient recursive (IIR) filters to whole
// sample sequences.
//
// A [Filter] holds a feed-forward polynomial b and a feed-back polynomial a
// (normalized so a[0] == 1) and evaluates
//
//	y[n] = sum_{k>=0} b[k]*x[n-k] - sum_{k>=1} a[k]*y[n-k]
//
// from a zero initial state on every call. The filter keeps no state between
// calls, so one Filter value can be shared by concurrent goroutines.
package iir
