package signal

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewValid(t *testing.T) {
	s, err := New(48000, []float64{0, 1, 0}, []float64{0, -1, 0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", s.NumChannels())
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sig  Signal
		want error
	}{
		{name: "no channels", sig: Signal{SampleRate: 48000}, want: ErrNoChannels},
		{name: "zero rate", sig: Signal{SampleRate: 0, Channels: [][]float64{{0}}}, want: ErrInvalidSampleRate},
		{name: "negative rate", sig: Signal{SampleRate: -1, Channels: [][]float64{{0}}}, want: ErrInvalidSampleRate},
		{name: "nan rate", sig: Signal{SampleRate: math.NaN(), Channels: [][]float64{{0}}}, want: ErrInvalidSampleRate},
		{name: "inf rate", sig: Signal{SampleRate: math.Inf(1), Channels: [][]float64{{0}}}, want: ErrInvalidSampleRate},
		{name: "length mismatch", sig: Signal{SampleRate: 48000, Channels: [][]float64{{0, 0}, {0}}}, want: ErrLengthMismatch},
		{name: "empty channels ok", sig: Signal{SampleRate: 48000, Channels: [][]float64{{}, {}}}, want: nil},
		{name: "out of range samples ok", sig: Signal{SampleRate: 48000, Channels: [][]float64{{2.5, -3}}}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sig.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}

				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	s := Signal{SampleRate: 48000, Channels: [][]float64{make([]float64, 72000)}}
	if got := s.Duration(); got != 1500*time.Millisecond {
		t.Fatalf("Duration() = %v, want 1.5s", got)
	}

	if (Signal{}).Duration() != 0 {
		t.Fatal("expected zero duration for zero signal")
	}
}
