package loudness

const (
	lfeChannel     = 3
	surroundWeight = 1.41
)

// ChannelWeight is the gain applied to one channel's mean square before
// channels are summed.
type ChannelWeight struct {
	Index  int
	Weight float64
}

// ChannelWeights returns the contributing channels of an n-channel layout
// in channel order.
//
// Up to two channels all weigh 1. In larger layouts the LFE channel (index
// 3) is left out of the list so it is never read, and the surround channels
// at indices 4 and 5 weigh 1.41.
func ChannelWeights(n int) []ChannelWeight {
	weights := make([]ChannelWeight, 0, n)

	for i := range n {
		w := 1.0

		if n > 2 {
			switch i {
			case lfeChannel:
				continue
			case 4, 5:
				w = surroundWeight
			}
		}

		weights = append(weights, ChannelWeight{Index: i, Weight: w})
	}

	return weights
}
