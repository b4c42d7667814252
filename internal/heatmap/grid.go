package heatmap

import (
	"github.com/K0NGR3SS/riskmap/internal/models"
)

// ScoreGrid is the severity x probability score field sampled on a regular
// grid. It satisfies plotter.GridXYZ.
type ScoreGrid struct {
	xs []float64
	ys []float64
}

// NewScoreGrid samples n evenly spaced points on each axis, endpoints
// included.
func NewScoreGrid(n int) *ScoreGrid {
	return &ScoreGrid{
		xs: Linspace(models.AxisMin, models.AxisMax, n),
		ys: Linspace(models.AxisMin, models.AxisMax, n),
	}
}

// Linspace returns n evenly spaced values over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Cells returns a view of the same field with one sample per cell centre, so
// that the cells of an n-sample grid tile the axis range exactly.
func (g *ScoreGrid) Cells() *ScoreGrid {
	return &ScoreGrid{
		xs: cellCentres(models.AxisMin, models.AxisMax, len(g.xs)),
		ys: cellCentres(models.AxisMin, models.AxisMax, len(g.ys)),
	}
}

func cellCentres(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	w := (hi - lo) / float64(n)
	for i := range out {
		out[i] = lo + (float64(i)+0.5)*w
	}
	return out
}

func (g *ScoreGrid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

func (g *ScoreGrid) X(c int) float64 { return g.xs[c] }

func (g *ScoreGrid) Y(r int) float64 { return g.ys[r] }

func (g *ScoreGrid) Z(c, r int) float64 { return models.Score(g.xs[c], g.ys[r]) }
