package heatmap

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Labels draws text at data coordinates, optionally over a rounded
// background box.
type Labels struct {
	plotter.XYs
	Text []string

	// Offset shifts every label along the X axis, in data units.
	Offset float64

	TextStyle text.Style

	// Fill is the box color. A nil Fill draws no box.
	Fill color.Color

	// Pad is the space between the text and the box edge, and the
	// corner radius of the box.
	Pad vg.Length
}

// NewLabels returns labels for the given points and strings.
func NewLabels(xys plotter.XYs, txt []string, sty text.Style) (*Labels, error) {
	if len(xys) != len(txt) {
		return nil, errors.New("heatmap: number of points does not match number of labels")
	}
	return &Labels{XYs: xys, Text: txt, TextStyle: sty}, nil
}

// Plot implements the plot.Plotter interface.
func (l *Labels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, xy := range l.XYs {
		txt := l.Text[i]
		if txt == "" {
			continue
		}
		pt := vg.Point{X: trX(xy.X + l.Offset), Y: trY(xy.Y)}
		if l.Fill != nil {
			box := l.TextStyle.Rectangle(txt)
			box.Min = box.Min.Add(pt).Sub(vg.Point{X: l.Pad, Y: l.Pad})
			box.Max = box.Max.Add(pt).Add(vg.Point{X: l.Pad, Y: l.Pad})
			c.SetColor(l.Fill)
			c.Fill(roundedRect(box, l.Pad))
		}
		c.FillText(l.TextStyle, pt, txt)
	}
}

func roundedRect(r vg.Rectangle, rad vg.Length) vg.Path {
	if limit := min(r.Max.X-r.Min.X, r.Max.Y-r.Min.Y) / 2; rad > limit {
		rad = limit
	}
	var p vg.Path
	p.Move(vg.Point{X: r.Min.X + rad, Y: r.Min.Y})
	p.Line(vg.Point{X: r.Max.X - rad, Y: r.Min.Y})
	p.Arc(vg.Point{X: r.Max.X - rad, Y: r.Min.Y + rad}, rad, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: r.Max.X, Y: r.Max.Y - rad})
	p.Arc(vg.Point{X: r.Max.X - rad, Y: r.Max.Y - rad}, rad, 0, math.Pi/2)
	p.Line(vg.Point{X: r.Min.X + rad, Y: r.Max.Y})
	p.Arc(vg.Point{X: r.Min.X + rad, Y: r.Max.Y - rad}, rad, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: r.Min.X, Y: r.Min.Y + rad})
	p.Arc(vg.Point{X: r.Min.X + rad, Y: r.Min.Y + rad}, rad, math.Pi, math.Pi/2)
	p.Close()
	return p
}
