package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// outlinedCircle is a filled circle glyph with a solid outline.
type outlinedCircle struct {
	Outline color.Color
	Width   vg.Length
}

func (g outlinedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()

	c.SetColor(sty.Color)
	c.Fill(p)

	c.SetColor(g.Outline)
	c.SetLineWidth(g.Width)
	c.SetLineDash(nil, 0)
	c.Stroke(p)
}

// markerRadius converts a marker size in points squared, the square of the
// marker's diameter, to a circle radius.
func markerRadius(size float64) vg.Length {
	return vg.Points(math.Sqrt(size) / 2)
}
