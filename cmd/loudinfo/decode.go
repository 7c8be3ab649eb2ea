package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV format tags.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

var errInvalidWAV = errors.New("not a valid WAV file")

// audioFile is a decoded file together with its container details.
type audioFile struct {
	Format     string
	SampleRate int
	BitDepth   int
	Size       int64
	Signal     signal.Signal
}

// Duration returns the playing time of the decoded samples.
func (f audioFile) Duration() time.Duration {
	return f.Signal.Duration()
}

func readFile(path string) (audioFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return audioFile{}, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return audioFile{}, err
	}

	af, err := decodeWAV(file)
	if err != nil {
		return audioFile{}, fmt.Errorf("%s: %w", path, err)
	}

	af.Size = info.Size()

	return af, nil
}

// decodeWAV reads a complete WAV stream into a Signal with samples scaled
// to [-1, 1).
func decodeWAV(r io.ReadSeeker) (audioFile, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return audioFile{}, fmt.Errorf("%w: %w", errInvalidWAV, err)
		}

		return audioFile{}, errInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return audioFile{}, fmt.Errorf("decode PCM: %w", err)
	}

	bitDepth := int(dec.BitDepth)

	var (
		format string
		scale  func(int) float64
	)

	switch {
	case dec.WavAudioFormat == wavFormatFloat && bitDepth == 32:
		format = "WAV (float)"
		scale = func(v int) float64 { return float64(math.Float32frombits(uint32(int32(v)))) }
	case dec.WavAudioFormat == wavFormatFloat:
		return audioFile{}, fmt.Errorf("unsupported float bit depth %d", bitDepth)
	case bitDepth == 8:
		format = "WAV (PCM)"
		scale = func(v int) float64 { return float64(v-128) / 128 }
	default:
		format = "WAV (PCM)"
		full := math.Ldexp(1, bitDepth-1)
		scale = func(v int) float64 { return float64(v) / full }
	}

	sig, err := deinterleave(buf, scale)
	if err != nil {
		return audioFile{}, err
	}

	return audioFile{
		Format:     format,
		SampleRate: int(dec.SampleRate),
		BitDepth:   bitDepth,
		Signal:     sig,
	}, nil
}

// deinterleave splits interleaved integer frames into scaled channels.
// A trailing partial frame is dropped.
func deinterleave(buf *audio.IntBuffer, scale func(int) float64) (signal.Signal, error) {
	if buf == nil || buf.Format == nil {
		return signal.Signal{}, errInvalidWAV
	}

	numCh := buf.Format.NumChannels
	if numCh < 1 {
		return signal.Signal{}, fmt.Errorf("%w: %d channels", errInvalidWAV, numCh)
	}

	frames := len(buf.Data) / numCh
	channels := make([][]float64, numCh)

	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}

	for i := range frames {
		frame := buf.Data[i*numCh : (i+1)*numCh]
		for ch, v := range frame {
			channels[ch][i] = scale(v)
		}
	}

	return signal.New(float64(buf.Format.SampleRate), channels...)
}
