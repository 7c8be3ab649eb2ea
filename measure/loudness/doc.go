// Package loudness measures programme loudness following ITU-R BS.1770 and
// EBU R128 gating.
//
// [Analyze] takes a fully decoded [signal.Signal] and reports integrated
// loudness, the maximum short-term loudness, loudness range, sample peak and
// true peak. The building blocks are exported for callers that already hold
// K-weighted channels or block series:
//
//   - [ChannelWeights] lists the channels that contribute energy.
//   - [BlockLoudness] turns weighted channels into a per-block LUFS series.
//   - [IntegratedLoudness], [ShortTermMax] and [LoudnessRange] gate a series.
//   - [SamplePeak] and [TruePeak] scan for the highest level.
//
// Levels with nothing to measure keep distinct sentinels: integrated
// loudness falls back to the -70 LUFS absolute gate, short-term maximum and
// both peaks report -Inf, loudness range reports 0 LU.
//
// Block values are 10*log10 of the weighted mean square without the -0.691
// dB offset of BS.1770, so a full-scale 1 kHz sine reads about -2.3 LUFS.
package loudness
