package main

import (
	"fmt"
	"math"
	"time"
)

// formatLevel prints a dB value with one decimal; infinities print as
// "-inf" or "+inf".
func formatLevel(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsNaN(v):
		return "n/a"
	}

	return fmt.Sprintf("%.1f", v)
}

// formatDuration prints whole minutes and seconds as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d / time.Second)

	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// formatSize prints a byte count in whole KB (1024 bytes) below 1 MB and in
// MB (1024*1024 bytes) with one decimal above.
func formatSize(bytes int64) string {
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.0f KB", float64(bytes)/1024)
	}

	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
