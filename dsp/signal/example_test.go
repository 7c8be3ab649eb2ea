package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))

	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}

	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleNew() {
	_, err := signal.New(44100, []float64{0, 0}, []float64{0})
	fmt.Println(err)

	// Output:
	// signal: channel lengths differ: channel 1 has 1 samples, channel 0 has 2
}
