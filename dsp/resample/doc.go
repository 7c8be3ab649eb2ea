// Package resample provides integer-factor oversampling using a polyphase
// Kaiser-windowed sinc FIR.
//
// An [Oversampler] is a streaming interpolator: it keeps the tail of the
// previous block as filter history, so processing a signal in chunks yields
// exactly the samples of a single pass. The stream starts from silence.
//
// Quality modes:
//   - QualityFast: lower CPU, lower attenuation
//   - QualityBalanced: default mode
//   - QualityBest: higher attenuation and flatter passband
//
// Default quality/performance matrix:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
package resample
