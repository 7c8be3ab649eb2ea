package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	timestats "github.com/cwbudde/algo-loudness/stats/time"
)

// Block durations in seconds and the hop between blocks as a fraction of
// the block (75 % overlap).
const (
	ShortTermBlock  = 3.0
	IntegratedBlock = 0.4
	HopFraction     = 0.25
)

// BlockSize returns the block and hop length in samples for a block of
// blockSeconds at sampleRate. The hop is the block minus its floored 75 %
// overlap and is at least 1.
func BlockSize(blockSeconds, sampleRate float64) (block, hop int) {
	block = int(math.Floor(blockSeconds * sampleRate))
	overlap := int(math.Floor(float64(block) * (1 - HopFraction)))

	return block, max(1, block-overlap)
}

// BlockLoudness slides a block of blockSeconds over the weighted channels
// and returns the loudness of every complete block in LUFS.
//
// Only the channels named in weights are read. Each block value is
// 10*log10 of the weighted sum of channel mean squares; blocks whose value
// is not finite, silent blocks included, are left out of the series.
func BlockLoudness(weighted [][]float64, weights []ChannelWeight, sampleRate, blockSeconds float64) []float64 {
	if len(weights) == 0 {
		return nil
	}

	block, hop := BlockSize(blockSeconds, sampleRate)
	if block <= 0 {
		return nil
	}

	n := len(weighted[weights[0].Index])
	if n < block {
		return nil
	}

	series := make([]float64, 0, (n-block)/hop+1)

	for start := 0; start+block <= n; start += hop {
		var sum float64
		for _, w := range weights {
			sum += w.Weight * timestats.MeanSquare(weighted[w.Index][start:start+block])
		}

		if l := 10 * math.Log10(sum); core.IsFinite(l) {
			series = append(series, l)
		}
	}

	return series
}
