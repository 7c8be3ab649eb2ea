package signal

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNoChannels indicates a signal without any channel.
	ErrNoChannels = errors.New("signal: at least one channel is required")
	// ErrLengthMismatch indicates channels of differing lengths.
	ErrLengthMismatch = errors.New("signal: channel lengths differ")
	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("signal: sample rate must be positive and finite")
)

// Signal is a decoded, fully buffered multi-channel sample sequence.
//
// Channels holds one slice per channel, all of equal length. Samples are
// nominally in [-1, 1]; larger magnitudes are allowed and only affect the
// measured peaks.
type Signal struct {
	SampleRate float64
	Channels   [][]float64
}

// New returns a validated Signal that references the given channel slices
// without copying them.
func New(sampleRate float64, channels ...[]float64) (Signal, error) {
	s := Signal{SampleRate: sampleRate, Channels: channels}
	if err := s.Validate(); err != nil {
		return Signal{}, err
	}

	return s, nil
}

// Validate reports whether s is well formed.
func (s Signal) Validate() error {
	if s.SampleRate <= 0 || math.IsNaN(s.SampleRate) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, s.SampleRate)
	}

	if len(s.Channels) == 0 {
		return ErrNoChannels
	}

	n := len(s.Channels[0])
	for ch := 1; ch < len(s.Channels); ch++ {
		if len(s.Channels[ch]) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrLengthMismatch, ch, len(s.Channels[ch]), n)
		}
	}

	return nil
}

// NumChannels returns the number of channels.
func (s Signal) NumChannels() int {
	return len(s.Channels)
}

// Len returns the number of samples per channel.
func (s Signal) Len() int {
	if len(s.Channels) == 0 {
		return 0
	}

	return len(s.Channels[0])
}

// Duration returns the playing time of the signal.
func (s Signal) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(s.Len()) / s.SampleRate * float64(time.Second))
}
