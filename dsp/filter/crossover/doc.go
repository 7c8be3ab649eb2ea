// Package crossover splits a signal into low, mid and high bands.
//
// A [Splitter] runs three independent second-order filters over the same
// source: a Butterworth low-pass at the low crossover, a band-pass centred
// on the geometric mean of both crossovers with a bandwidth equal to their
// distance, and a Butterworth high-pass at the high crossover. The bands do
// not sum back to the input; they are intended for per-band level analysis.
//
// Example:
//
//	s, _ := crossover.NewSplitter(48000) // 250 Hz / 4 kHz
//	low, mid, high := s.Split(x)
package crossover
