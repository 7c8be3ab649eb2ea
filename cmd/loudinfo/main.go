// Command loudinfo prints loudness and band level measurements of WAV files.
//
// Usage:
//
//	loudinfo [flags] file.wav ...
//
// For every file it prints the container details, per-channel levels,
// integrated loudness, short-term maximum, loudness range, sample and true
// peak, and the low/mid/high band levels.
//
// Examples:
//
//	loudinfo mix.wav
//	loudinfo -ratios -balance master.wav stems/*.wav
//	loudinfo -j 1 long.wav
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/cwbudde/algo-loudness/measure/balance"
	"github.com/cwbudde/algo-loudness/measure/loudness"
	"github.com/cwbudde/algo-loudness/measure/multiband"
	timestats "github.com/cwbudde/algo-loudness/stats/time"
)

type options struct {
	ratios      bool
	balance     bool
	concurrency int
}

func main() {
	var opts options

	flag.BoolVar(&opts.ratios, "ratios", false, "add low/mid and mid/high amplitude ratios to the band table")
	flag.BoolVar(&opts.balance, "balance", false, "print the long-term spectral balance")
	flag.IntVar(&opts.concurrency, "j", 0, "maximum channels analysed at once (0 = one per CPU)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loudinfo [flags] file.wav ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints loudness (LUFS), peaks and band levels of WAV files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  loudinfo mix.wav\n")
		fmt.Fprintf(os.Stderr, "  loudinfo -ratios -balance master.wav\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := false

	for i, path := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}

		if err := report(ctx, os.Stdout, path, opts); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
		}
	}

	if failed {
		stop()
		os.Exit(1)
	}
}

// report decodes one file and writes all its tables to w.
func report(ctx context.Context, w io.Writer, path string, opts options) error {
	af, err := readFile(path)
	if err != nil {
		return err
	}

	loud, err := loudness.AnalyzeContext(ctx, af.Signal, loudness.WithConcurrency(opts.concurrency))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	bands, err := multiband.AnalyzeContext(ctx, af.Signal, multiband.WithConcurrency(opts.concurrency))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var bal *balance.Result

	if opts.balance {
		res, err := balance.AnalyzeContext(ctx, af.Signal)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		bal = &res
	}

	if _, err := fmt.Fprintf(w, "== %s ==\n", path); err != nil {
		return err
	}

	if err := writeTables(w, af, loud, bands, bal, opts.ratios); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func writeTables(w io.Writer, af audioFile, loud loudness.Result, bands multiband.Result, bal *balance.Result, ratios bool) error {
	t := newTable(w)

	t.row("Format", "Sample Rate", "Bit Depth", "Channels", "Duration", "Size")
	t.row(
		af.Format,
		fmt.Sprintf("%d Hz", af.SampleRate),
		fmt.Sprintf("%d", af.BitDepth),
		fmt.Sprintf("%d", af.Signal.NumChannels()),
		formatDuration(af.Duration()),
		formatSize(af.Size),
	)
	t.blank()

	t.row("Channel", "Peak [dBFS]", "RMS [dBFS]", "Crest [dB]", "DC")
	for ch, x := range af.Signal.Channels {
		lv := timestats.Measure(x)
		t.row(
			fmt.Sprintf("%d", ch+1),
			formatLevel(lv.Peak_dB),
			formatLevel(lv.RMS_dB),
			formatLevel(lv.CrestFactor_dB),
			fmt.Sprintf("%+.5f", lv.DC),
		)
	}
	t.blank()

	t.row("Integrated [LUFS]", "Short-term Max [LUFS]", "Range [LU]", "Sample Peak [dBFS]", "True Peak [dBTP]")
	t.row(
		formatLevel(loud.Integrated),
		formatLevel(loud.ShortTermMax),
		formatLevel(loud.Range),
		formatLevel(loud.SamplePeak),
		formatLevel(loud.TruePeak),
	)
	t.blank()

	if ratios {
		t.row("Low [dB]", "Mid [dB]", "High [dB]", "Low/Mid", "Mid/High")
		t.row(
			formatLevel(bands.Low),
			formatLevel(bands.Mid),
			formatLevel(bands.High),
			fmt.Sprintf("%.2f", bands.LowMidRatio()),
			fmt.Sprintf("%.2f", bands.MidHighRatio()),
		)
	} else {
		t.row("Low [dB]", "Mid [dB]", "High [dB]")
		t.row(formatLevel(bands.Low), formatLevel(bands.Mid), formatLevel(bands.High))
	}

	if bal != nil {
		t.blank()
		t.row("Centroid [Hz]", "Rolloff [Hz]", "Flatness", "Low [%]", "Mid [%]", "High [%]", "ENBW [Hz]")
		t.row(
			fmt.Sprintf("%.0f", bal.Centroid),
			fmt.Sprintf("%.0f", bal.Rolloff),
			fmt.Sprintf("%.3f", bal.Flatness),
			fmt.Sprintf("%.1f", 100*bal.LowShare),
			fmt.Sprintf("%.1f", 100*bal.MidShare),
			fmt.Sprintf("%.1f", 100*bal.HighShare),
			fmt.Sprintf("%.1f", bal.ENBW),
		)
	}

	return t.flush()
}

// table writes tab-aligned rows and keeps the first write error.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *table) row(cols ...string) {
	if t.err != nil {
		return
	}

	for i, c := range cols {
		sep := "\t"
		if i == len(cols)-1 {
			sep = "\n"
		}

		if _, err := fmt.Fprint(t.tw, c, sep); err != nil {
			t.err = err
			return
		}
	}
}

// blank ends the current aligned block.
func (t *table) blank() {
	if t.err != nil {
		return
	}

	t.err = t.tw.Flush()
	if t.err == nil {
		_, t.err = fmt.Fprintln(t.tw)
	}
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}

	return t.tw.Flush()
}
