package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 100, 0))
	assert.Equal(t, []float64{0}, Linspace(0, 100, 1))
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, Linspace(0, 100, 5))

	xs := Linspace(0, 100, 100)
	require.Len(t, xs, 100)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 100.0, xs[99])
	assert.InDelta(t, 100.0/99, xs[1], 1e-12)
}

func TestScoreGridIsProduct(t *testing.T) {
	g := NewScoreGrid(100)
	c, r := g.Dims()
	require.Equal(t, 100, c)
	require.Equal(t, 100, r)

	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			assert.Equal(t, g.X(i)*g.Y(j), g.Z(i, j))
		}
	}
	assert.Equal(t, 0.0, g.Z(0, 0))
	assert.Equal(t, 10000.0, g.Z(99, 99))
}

func TestScoreGridKnownPoints(t *testing.T) {
	g := NewScoreGrid(101)
	assert.Equal(t, 6400.0, g.Z(80, 80))
	assert.Equal(t, 1425.0, g.Z(95, 15))
}

func TestCellsTileAxis(t *testing.T) {
	cells := NewScoreGrid(100).Cells()
	c, r := cells.Dims()
	require.Equal(t, 100, c)
	require.Equal(t, 100, r)
	assert.InDelta(t, 0.5, cells.X(0), 1e-12)
	assert.InDelta(t, 99.5, cells.X(99), 1e-12)
	assert.InDelta(t, 0.25, cells.Z(0, 0), 1e-12)
}
