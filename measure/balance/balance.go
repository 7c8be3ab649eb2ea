package balance

import (
	"context"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/cwbudde/algo-loudness/dsp/window"
	"github.com/cwbudde/algo-loudness/stats/frequency"
	"github.com/cwbudde/algo-vecmath"
)

// Result summarises the long-term spectrum of a signal.
type Result struct {
	frequency.Shape

	// Energy shares of the low, mid and high bands, summing to 1 unless
	// the signal is silent.
	LowShare  float64
	MidShare  float64
	HighShare float64

	// Spectrum is the averaged RMS magnitude from DC to Nyquist, scaled by
	// the window power gain so white noise of variance v reads sqrt(v) in
	// every bin.
	Spectrum []float64
	// Frames is the number of frames averaged.
	Frames int

	// BinWidth is the spacing of Spectrum in Hz.
	BinWidth float64
	// ENBW is the equivalent noise bandwidth of one bin in Hz.
	ENBW float64
}

// Analyze computes the spectral balance of sig.
//
// A signal shorter than one frame is zero-padded to a single frame. Samples
// after the last complete frame are not analysed. A silent signal yields
// zero descriptors and shares.
func Analyze(sig signal.Signal, opts ...Option) (Result, error) {
	return AnalyzeContext(context.Background(), sig, opts...)
}

// AnalyzeContext is like [Analyze] but stops between frames once ctx is
// done and returns ctx.Err().
func AnalyzeContext(ctx context.Context, sig signal.Signal, opts ...Option) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := sig.Validate(); err != nil {
		return Result{}, fmt.Errorf("balance: %w", err)
	}

	cfg := ApplyOptions(opts...)
	win := window.Generate(window.TypeHann, cfg.FrameSize, window.WithPeriodic())

	enbw, err := window.EquivalentNoiseBandwidth(win)
	if err != nil {
		return Result{}, fmt.Errorf("balance: %w", err)
	}

	spectrum, frames, err := averageSpectrum(ctx, mixdown(sig), win, cfg.Hop)
	if err != nil {
		return Result{}, err
	}

	binWidth := sig.SampleRate / float64(cfg.FrameSize)

	res := Result{
		Shape:    frequency.Describe(spectrum, sig.SampleRate),
		Spectrum: spectrum,
		Frames:   frames,
		BinWidth: binWidth,
		ENBW:     enbw * binWidth,
	}

	total := vecmath.DotProduct(spectrum, spectrum)
	if total > 0 {
		res.LowShare = frequency.BandEnergy(spectrum, sig.SampleRate, 0, cfg.Low) / total
		res.MidShare = frequency.BandEnergy(spectrum, sig.SampleRate, cfg.Low, cfg.High) / total
		res.HighShare = frequency.BandEnergy(spectrum, sig.SampleRate, cfg.High, math.Inf(1)) / total
	}

	return res, nil
}

// mixdown returns the per-sample mean of all channels.
func mixdown(sig signal.Signal) []float64 {
	if sig.NumChannels() == 1 {
		return sig.Channels[0]
	}

	mono := make([]float64, sig.Len())
	for _, ch := range sig.Channels {
		vecmath.AddBlockInPlace(mono, ch)
	}

	vecmath.ScaleBlockInPlace(mono, 1/float64(sig.NumChannels()))

	return mono
}

// averageSpectrum returns the magnitude of the mean frame power spectrum of
// x, windowed by win and advanced by hop samples per frame.
func averageSpectrum(ctx context.Context, x, win []float64, hop int) ([]float64, int, error) {
	size := len(win)
	bins := size/2 + 1

	gain, err := window.PowerGain(win)
	if err != nil {
		return nil, 0, fmt.Errorf("balance: %w", err)
	}

	if len(x) < size {
		padded := make([]float64, size)
		copy(padded, x)
		x = padded
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, 0, fmt.Errorf("balance: fft plan: %w", err)
	}

	frame := make([]float64, size)
	in := make([]complex128, size)
	out := make([]complex128, size)
	re := make([]float64, bins)
	im := make([]float64, bins)
	power := make([]float64, bins)
	acc := make([]float64, bins)

	frames := 0

	for start := 0; start+size <= len(x); start += hop {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		copy(frame, x[start:start+size])

		if err := window.ApplyCoefficientsInPlace(frame, win); err != nil {
			return nil, 0, fmt.Errorf("balance: %w", err)
		}

		for i, v := range frame {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, 0, fmt.Errorf("balance: fft: %w", err)
		}

		for k := range bins {
			re[k], im[k] = real(out[k]), imag(out[k])
		}

		vecmath.Power(power, re, im)
		vecmath.AddBlockInPlace(acc, power)

		frames++
	}

	vecmath.ScaleBlockInPlace(acc, 1/(float64(frames)*float64(size)*gain))

	for k, p := range acc {
		acc[k] = math.Sqrt(p)
	}

	return acc, frames, nil
}
