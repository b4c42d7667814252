package heatmap

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// percentTicks places a labeled tick every step. There are no minor ticks.
type percentTicks struct {
	step float64
}

func (t percentTicks) Ticks(min, max float64) []plot.Tick {
	start := math.Ceil(min/t.step) * t.step
	var ticks []plot.Tick
	for i := 0; ; i++ {
		v := start + float64(i)*t.step
		if v > max+1e-9 {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: formatPercent(v)})
	}
	return ticks
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
