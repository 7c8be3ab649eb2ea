// Package balance describes the long-term tonal balance of a signal.
//
// The channels are averaged to mono and a Welch long-term average spectrum
// is taken with Hann-windowed frames. The spectrum is summarised by its
// shape descriptors from [frequency.Describe] and by the share of energy
// falling into the low, mid and high bands used by the multiband analysis.
package balance
