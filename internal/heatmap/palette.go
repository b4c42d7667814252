package heatmap

import (
	"fmt"
	"image/color"
	"slices"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// solid is a single-color palette for plotters that require one.
func solid(c color.Color) palette.Palette {
	return colors{c, c}
}

// riskRamp returns a continuous green-yellow-red palette: ColorBrewer's
// RdYlGn reversed and linearly interpolated to steps colors, with alpha
// applied to every color.
func riskRamp(steps int, alpha float64) (palette.Palette, error) {
	base, err := brewer.GetPalette(brewer.TypeAny, "RdYlGn", 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load RdYlGn palette: %w", err)
	}
	stops := slices.Clone(base.Colors())
	slices.Reverse(stops)
	if steps < 2 {
		steps = 2
	}

	a := uint8(alpha*255 + 0.5)
	out := make(colors, steps)
	for i := range out {
		pos := float64(i) / float64(steps-1) * float64(len(stops)-1)
		lo := int(pos)
		if lo >= len(stops)-1 {
			lo = len(stops) - 2
		}
		out[i] = lerp(stops[lo], stops[lo+1], pos-float64(lo), a)
	}
	return out, nil
}

func lerp(from, to color.Color, t float64, alpha uint8) color.Color {
	c0 := color.NRGBAModel.Convert(from).(color.NRGBA)
	c1 := color.NRGBAModel.Convert(to).(color.NRGBA)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.NRGBA{R: mix(c0.R, c1.R), G: mix(c0.G, c1.G), B: mix(c0.B, c1.B), A: alpha}
}
