// Package multiband reports the loudest block RMS level of the low, mid and
// high frequency bands of a signal.
//
// Each channel is split by a [crossover.Splitter] (defaults 250 Hz and
// 4 kHz). [BlockRMS] slides a 3 s window with a 1 s hop over each band and
// keeps the loudest block; the band level of the signal is the maximum over
// channels. Bands with no measurable energy report [Floor].
package multiband
