package chart

import (
	"math"
	"strings"
)

// eighths are the partial block glyphs, one to seven eighths high.
var eighths = []rune("▁▂▃▄▅▆▇")

const fullBlock = '█'

// Plot is a rasterized area chart.
type Plot struct {
	Rows []string // top to bottom, each at most width runes
	Min  float64
	Max  float64
}

// Rasterize renders series as a filled area of width×height cells. Longer
// series are resampled to the width; shorter ones use one column per point.
// A flat series renders as a baseline.
func Rasterize(series []float64, width, height int) Plot {
	if width < 1 || height < 1 || len(series) == 0 {
		return Plot{}
	}

	cols := resample(series, width)
	lo, hi := cols[0], cols[0]
	for _, v := range cols {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	levels := make([]int, len(cols))
	steps := height * 8
	for i, v := range cols {
		levels[i] = valueToLevel(v, lo, hi, steps)
	}

	rows := make([]string, height)
	var b strings.Builder
	for r := 0; r < height; r++ {
		b.Reset()
		base := (height - 1 - r) * 8
		for _, lv := range levels {
			fill := lv - base
			switch {
			case fill >= 8:
				b.WriteRune(fullBlock)
			case fill <= 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(eighths[fill-1])
			}
		}
		rows[r] = b.String()
	}
	return Plot{Rows: rows, Min: lo, Max: hi}
}

// valueToLevel maps v into [1, steps] eighth-cells above the bottom edge.
func valueToLevel(v, lo, hi float64, steps int) int {
	if hi == lo {
		return 1
	}
	ratio := (v - lo) / (hi - lo)
	lv := 1 + int(math.Round(ratio*float64(steps-1)))
	if lv < 1 {
		lv = 1
	}
	if lv > steps {
		lv = steps
	}
	return lv
}

func resample(series []float64, width int) []float64 {
	n := len(series)
	if n <= width {
		return series
	}
	if width == 1 {
		return series[n-1:]
	}
	out := make([]float64, width)
	for i := range out {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(width-1)))
		out[i] = series[idx]
	}
	return out
}
