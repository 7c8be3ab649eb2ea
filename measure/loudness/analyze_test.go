package loudness

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-loudness/dsp/filter/weighting"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/cwbudde/algo-loudness/internal/testutil"
)

func analyze(t *testing.T, sig signal.Signal, opts ...Option) Result {
	t.Helper()

	res, err := Analyze(sig, opts...)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	return res
}

func scaled(x []float64, gain float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = gain * v
	}

	return out
}

func TestAnalyzeSilence(t *testing.T) {
	sig := mustSignal(t, make([]float64, 5*int(testRate)), make([]float64, 5*int(testRate)))
	res := analyze(t, sig)

	testutil.RequireNear(t, "integrated", res.Integrated, AbsoluteGate, 0)
	testutil.RequireNear(t, "short-term max", res.ShortTermMax, math.Inf(-1), 0)
	testutil.RequireNear(t, "range", res.Range, 0, 0)
	testutil.RequireNear(t, "sample peak", res.SamplePeak, math.Inf(-1), 0)
	testutil.RequireNear(t, "true peak", res.TruePeak, math.Inf(-1), 0)
}

func TestAnalyzeShorterThanBlock(t *testing.T) {
	x := testutil.DeterministicSine(1000, testRate, 0.5, 1000)
	res := analyze(t, mustSignal(t, x))

	testutil.RequireNear(t, "integrated", res.Integrated, AbsoluteGate, 0)
	testutil.RequireNear(t, "short-term max", res.ShortTermMax, math.Inf(-1), 0)
	testutil.RequireNear(t, "range", res.Range, 0, 0)
	testutil.RequireNear(t, "sample peak", res.SamplePeak, 20*math.Log10(0.5), 1e-9)
}

func TestAnalyzeEmptyChannel(t *testing.T) {
	res := analyze(t, mustSignal(t, []float64{}))

	testutil.RequireNear(t, "integrated", res.Integrated, AbsoluteGate, 0)
	testutil.RequireNear(t, "true peak", res.TruePeak, math.Inf(-1), 0)
}

func TestAnalyzeSine(t *testing.T) {
	x := testutil.DeterministicSine(1000, testRate, 1, 10*int(testRate))
	res := analyze(t, mustSignal(t, x))

	// Mean square 0.5 lifted by the K-weighting gain at 1 kHz.
	want := 10*math.Log10(0.5) + weighting.K().MagnitudeDB(1000, testRate)

	testutil.RequireNear(t, "integrated", res.Integrated, want, 0.05)
	testutil.RequireNear(t, "short-term max", res.ShortTermMax, want, 0.05)
	testutil.RequireNear(t, "range", res.Range, 0, 0.05)
	testutil.RequireNear(t, "sample peak", res.SamplePeak, 0, 1e-9)

	if res.TruePeak < res.SamplePeak {
		t.Fatalf("true peak %v < sample peak %v", res.TruePeak, res.SamplePeak)
	}
}

func TestAnalyzeStereoAddsChannelEnergy(t *testing.T) {
	x := testutil.DeterministicNoise(5, 0.3, 6*int(testRate))

	mono := analyze(t, mustSignal(t, x))
	stereo := analyze(t, mustSignal(t, x, x))

	testutil.RequireNear(t, "stereo - mono", stereo.Integrated-mono.Integrated, 10*math.Log10(2), 1e-9)
	testutil.RequireNear(t, "sample peak", stereo.SamplePeak, mono.SamplePeak, 0)
}

func TestAnalyzeGainShift(t *testing.T) {
	x := testutil.DeterministicNoise(9, 0.5, 8*int(testRate))

	loud := analyze(t, mustSignal(t, x))
	quiet := analyze(t, mustSignal(t, scaled(x, 0.5)))

	shift := 20 * math.Log10(0.5)
	testutil.RequireNear(t, "integrated shift", quiet.Integrated-loud.Integrated, shift, 1e-6)
	testutil.RequireNear(t, "short-term shift", quiet.ShortTermMax-loud.ShortTermMax, shift, 1e-6)
	testutil.RequireNear(t, "sample peak shift", quiet.SamplePeak-loud.SamplePeak, shift, 1e-9)
	testutil.RequireNear(t, "true peak shift", quiet.TruePeak-loud.TruePeak, shift, 1e-9)
	testutil.RequireNear(t, "range", quiet.Range, loud.Range, 1e-6)

	if quiet.Integrated >= loud.Integrated {
		t.Fatalf("quieter signal measured louder: %v >= %v", quiet.Integrated, loud.Integrated)
	}
}

func TestAnalyzeGateOrdering(t *testing.T) {
	fs := int(testRate)
	x := testutil.Concat(
		testutil.DeterministicNoise(1, 0.5, 4*fs),
		testutil.DeterministicNoise(2, 0.01, 4*fs),
		testutil.DeterministicNoise(3, 0.2, 4*fs),
	)

	res := analyze(t, mustSignal(t, x))

	if res.Integrated > res.ShortTermMax {
		t.Fatalf("integrated %v > short-term max %v", res.Integrated, res.ShortTermMax)
	}

	if res.Range <= 0 {
		t.Fatalf("range = %v, want > 0 for a signal with level changes", res.Range)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	x := testutil.DeterministicNoise(4, 0.4, 5*int(testRate))
	y := testutil.DeterministicSine(440, testRate, 0.3, len(x))
	sig := mustSignal(t, x, y)

	first := analyze(t, sig)
	second := analyze(t, sig)

	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestAnalyzeDoesNotModifyInput(t *testing.T) {
	x := testutil.DeterministicNoise(8, 0.4, 2*int(testRate))
	orig := append([]float64(nil), x...)

	_ = analyze(t, mustSignal(t, x))

	testutil.RequireSliceNearlyEqual(t, x, orig, 0)
}

func TestAnalyzeLFEExcludedFromLoudness(t *testing.T) {
	n := 4 * int(testRate)
	main := testutil.DeterministicNoise(12, 0.3, n)

	channels := func(lfe []float64) [][]float64 {
		out := make([][]float64, 6)
		for i := range out {
			out[i] = make([]float64, n)
		}

		out[0] = main
		out[lfeChannel] = lfe

		return out
	}

	quietLFE := analyze(t, mustSignal(t, channels(make([]float64, n))...))
	loudLFE := analyze(t, mustSignal(t, channels(testutil.DeterministicNoise(13, 0.99, n))...))

	if quietLFE.Integrated != loudLFE.Integrated {
		t.Fatalf("LFE changed integrated loudness: %v vs %v", quietLFE.Integrated, loudLFE.Integrated)
	}

	if quietLFE.ShortTermMax != loudLFE.ShortTermMax || quietLFE.Range != loudLFE.Range {
		t.Fatalf("LFE changed short-term results: %+v vs %+v", quietLFE, loudLFE)
	}

	if loudLFE.SamplePeak <= quietLFE.SamplePeak {
		t.Fatalf("LFE missing from sample peak: %v <= %v", loudLFE.SamplePeak, quietLFE.SamplePeak)
	}
}

func TestAnalyzeLFEOnly(t *testing.T) {
	n := 2 * int(testRate)
	channels := make([][]float64, 6)

	for i := range channels {
		channels[i] = make([]float64, n)
	}

	channels[lfeChannel] = testutil.DeterministicSine(60, testRate, 1, n)

	res := analyze(t, mustSignal(t, channels...))

	testutil.RequireNear(t, "integrated", res.Integrated, AbsoluteGate, 0)
	testutil.RequireNear(t, "short-term max", res.ShortTermMax, math.Inf(-1), 0)

	if math.IsInf(res.SamplePeak, -1) || math.IsInf(res.TruePeak, -1) {
		t.Fatalf("peaks ignore LFE: %+v", res)
	}
}

func TestAnalyzeSurroundWeight(t *testing.T) {
	n := 4 * int(testRate)
	x := testutil.DeterministicNoise(21, 0.3, n)

	layout := func(idx int) [][]float64 {
		out := make([][]float64, 6)
		for i := range out {
			out[i] = make([]float64, n)
		}

		out[idx] = x

		return out
	}

	front := analyze(t, mustSignal(t, layout(0)...))
	surround := analyze(t, mustSignal(t, layout(4)...))

	testutil.RequireNear(t, "surround - front", surround.Integrated-front.Integrated,
		10*math.Log10(surroundWeight), 1e-9)
}

func TestAnalyzeConcurrencyIndependence(t *testing.T) {
	n := 3 * int(testRate)
	channels := make([][]float64, 6)

	for i := range channels {
		channels[i] = testutil.DeterministicNoise(int64(30+i), 0.1*float64(i+1), n)
	}

	sig := mustSignal(t, channels...)
	want := analyze(t, sig, WithConcurrency(1))

	for _, workers := range []int{2, 3, 6, 16} {
		if got := analyze(t, sig, WithConcurrency(workers)); got != want {
			t.Fatalf("concurrency %d: %+v, want %+v", workers, got, want)
		}
	}
}

func TestAnalyzeChunkIndependence(t *testing.T) {
	x := testutil.DeterministicNoise(40, 0.7, 2*int(testRate)+17)
	sig := mustSignal(t, x, scaled(x, -0.5))

	want := analyze(t, sig)

	for _, chunk := range []int{1000, 4097, 1 << 16} {
		if got := analyze(t, sig, WithChunkSize(chunk)); got != want {
			t.Fatalf("chunk %d: %+v, want %+v", chunk, got, want)
		}
	}
}

func TestAnalyzeInvalidSignal(t *testing.T) {
	tests := []struct {
		name string
		sig  signal.Signal
		want error
	}{
		{name: "no channels", sig: signal.Signal{SampleRate: testRate}, want: signal.ErrNoChannels},
		{
			name: "length mismatch",
			sig:  signal.Signal{SampleRate: testRate, Channels: [][]float64{make([]float64, 10), make([]float64, 9)}},
			want: signal.ErrLengthMismatch,
		},
		{
			name: "zero sample rate",
			sig:  signal.Signal{Channels: [][]float64{make([]float64, 10)}},
			want: signal.ErrInvalidSampleRate,
		},
		{
			name: "NaN sample rate",
			sig:  signal.Signal{SampleRate: math.NaN(), Channels: [][]float64{make([]float64, 10)}},
			want: signal.ErrInvalidSampleRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.sig)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzeContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x := testutil.DeterministicNoise(1, 0.5, int(testRate))

	res, err := AnalyzeContext(ctx, mustSignal(t, x, x))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	if res != (Result{}) {
		t.Fatalf("partial result returned: %+v", res)
	}
}

func TestApplyOptionsIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := ApplyOptions(WithChunkSize(0), WithConcurrency(-1), nil)

	if cfg != def {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}

	cfg = ApplyOptions(WithChunkSize(512), WithConcurrency(3))
	if cfg.ChunkSize != 512 || cfg.Concurrency != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}
}
