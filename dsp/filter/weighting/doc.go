// Package weighting provides the K frequency weighting of ITU-R BS.1770.
//
// K-weighting is a cascade of two second-order sections: a high shelf of
// about +4 dB above 1.5 kHz that models the acoustic effect of the head,
// followed by a high-pass near 38 Hz (the "RLB" curve). The coefficients are
// the published 48 kHz constants and are used as-is at every sample rate.
package weighting
