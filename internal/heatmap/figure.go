package heatmap

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Figure is an assembled heatmap plot. The artist fields point at the
// plotters added to Plot, in draw order.
type Figure struct {
	Plot *plot.Plot

	HeatMap       *plotter.HeatMap
	Grid          *plotter.Grid
	Contour       *plotter.Contour
	ContourLabels *Labels
	Markers       []*plotter.Scatter
	Labels        *Labels

	width  vg.Length
	height vg.Length
	dpi    int
}

var rasterFormats = map[string]func(*vgimg.Canvas) vg.CanvasWriterTo{
	"png":  func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.PngCanvas{Canvas: c} },
	"jpg":  func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: c} },
	"jpeg": func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: c} },
	"tif":  func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: c} },
	"tiff": func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: c} },
}

// EPS is absent: vgeps cannot draw the rasterized background.
var vectorFormats = map[string]bool{
	"svg": true,
	"pdf": true,
}

// SupportedFormat reports whether format can be written by a Figure.
func SupportedFormat(format string) bool {
	format = strings.ToLower(format)
	_, raster := rasterFormats[format]
	return raster || vectorFormats[format]
}

// WriteTo draws the figure in the given format and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := f.canvas(strings.ToLower(format))
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	if wrap, ok := rasterFormats[format]; ok {
		return wrap(vgimg.NewWith(
			vgimg.UseWH(f.width, f.height),
			vgimg.UseDPI(f.dpi),
			vgimg.UseBackgroundColor(color.White),
		)), nil
	}
	if vectorFormats[format] {
		return draw.NewFormattedCanvas(f.width, f.height, format)
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// Draw paints the figure on dc, cropping dc so that the data area is square.
func (f *Figure) Draw(dc draw.Canvas) {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())
	f.Plot.Draw(f.squareCrop(dc))
}

// squareCrop trims dc evenly on the longer side until the plot's data
// area is as wide as it is tall. Right and top crops are negative.
func (f *Figure) squareCrop(dc draw.Canvas) draw.Canvas {
	da := f.Plot.DataCanvas(dc)
	w := da.Max.X - da.Min.X
	h := da.Max.Y - da.Min.Y
	switch {
	case w > h:
		d := (w - h) / 2
		return draw.Crop(dc, d, -d, 0, 0)
	case h > w:
		d := (h - w) / 2
		return draw.Crop(dc, 0, 0, d, -d)
	}
	return dc
}
