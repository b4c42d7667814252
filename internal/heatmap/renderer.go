package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/K0NGR3SS/riskmap/internal/models"
	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	DefaultTitle  = "Risk Heatmap (Probability-Severity Matrix)"
	DefaultOutput = "updated_risk_heatmap.png"
)

const markerOutline = vg.Length(1.5)

type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	DPI    int

	// Samples is the number of grid samples per axis.
	Samples int

	// Levels are the contour score levels.
	Levels []float64

	// LabelOffset shifts risk labels right of their marker, in severity units.
	LabelOffset float64

	// BackgroundAlpha is the opacity of the score background.
	BackgroundAlpha float64
}

func DefaultOptions() Options {
	return Options{
		Title:           DefaultTitle,
		Width:           12 * vg.Inch,
		Height:          10 * vg.Inch,
		DPI:             100,
		Samples:         100,
		Levels:          ContourLevels(1000, models.Score(models.AxisMax, models.AxisMax)),
		LabelOffset:     2.5,
		BackgroundAlpha: 0.9,
	}
}

// ContourLevels returns 0, step, 2*step, ... up to and including top.
func ContourLevels(step, top float64) []float64 {
	var levels []float64
	for i := 0; float64(i)*step <= top; i++ {
		levels = append(levels, float64(i)*step)
	}
	return levels
}

type Renderer struct {
	logger *zap.Logger
	opts   Options
}

func NewRenderer(logger *zap.Logger, opts Options) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger, opts: opts}
}

// Build assembles the figure for reg without drawing it.
func (r *Renderer) Build(reg models.Register) (*Figure, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid register: %w", err)
	}
	if r.opts.Samples < 2 {
		return nil, fmt.Errorf("grid needs at least 2 samples per axis, got %d", r.opts.Samples)
	}

	p := plot.New()
	p.Title.Text = r.opts.Title
	setFont(&p.Title.TextStyle, 20, true)
	p.X.Label.Text = "Severity"
	p.Y.Label.Text = "Probability"
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		setFont(&ax.Label.TextStyle, 16, true)
		setFont(&ax.Tick.Label, 12, false)
		ax.Tick.Marker = percentTicks{step: 20}
		ax.Padding = 0
	}

	fig := &Figure{Plot: p, width: r.opts.Width, height: r.opts.Height, dpi: r.opts.DPI}

	grid := NewScoreGrid(r.opts.Samples)
	ramp, err := riskRamp(256, r.opts.BackgroundAlpha)
	if err != nil {
		return nil, err
	}
	fig.HeatMap = plotter.NewHeatMap(grid.Cells(), ramp)
	fig.HeatMap.Rasterized = true
	fig.HeatMap.Min = models.Score(models.AxisMin, models.AxisMin)
	fig.HeatMap.Max = models.Score(models.AxisMax, models.AxisMax)

	fig.Grid = plotter.NewGrid()
	gridLine := draw.LineStyle{
		Color:  color.Gray{Y: 128},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(2), vg.Points(1)},
	}
	fig.Grid.Vertical = gridLine
	fig.Grid.Horizontal = gridLine

	fig.Contour = plotter.NewContour(grid, r.opts.Levels, solid(color.White))
	fig.Contour.LineStyles = []draw.LineStyle{{Color: color.White, Width: vg.Points(0.7)}}

	fig.ContourLabels, err = r.contourLabels()
	if err != nil {
		return nil, err
	}

	p.Add(fig.HeatMap, fig.Grid, fig.Contour, fig.ContourLabels)

	xys := make(plotter.XYs, len(reg))
	names := make([]string, len(reg))
	for i, e := range reg {
		sc, err := newMarker(e)
		if err != nil {
			return nil, err
		}
		fig.Markers = append(fig.Markers, sc)
		p.Add(sc)

		xys[i] = plotter.XY{X: e.Severity, Y: e.Probability}
		names[i] = e.Name
	}

	labelStyle := newTextStyle(12, true, color.Black)
	labelStyle.XAlign = text.XLeft
	labelStyle.YAlign = text.YCenter
	fig.Labels, err = NewLabels(xys, names, labelStyle)
	if err != nil {
		return nil, err
	}
	fig.Labels.Offset = r.opts.LabelOffset
	fig.Labels.Fill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 153}
	fig.Labels.Pad = 0.2 * labelStyle.Font.Size
	p.Add(fig.Labels)

	// Limits go last: Add widens the axes to each plotter's data range.
	p.X.Min, p.X.Max = models.AxisMin, models.AxisMax
	p.Y.Min, p.Y.Max = models.AxisMin, models.AxisMax

	r.logger.Debug("Built heatmap figure",
		zap.Int("risks", len(reg)),
		zap.Int("samples", r.opts.Samples),
		zap.Int("contour_levels", len(r.opts.Levels)),
	)
	return fig, nil
}

// newMarker returns a one-point scatter drawing e as an outlined circle.
func newMarker(e models.RiskEntry) (*plotter.Scatter, error) {
	c, err := e.RGBA()
	if err != nil {
		return nil, fmt.Errorf("invalid color for %q: %w", e.Name, err)
	}
	sc, err := plotter.NewScatter(plotter.XYs{{X: e.Severity, Y: e.Probability}})
	if err != nil {
		return nil, fmt.Errorf("failed to create marker for %q: %w", e.Name, err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: markerRadius(e.MarkerSize),
		Shape:  outlinedCircle{Outline: color.Black, Width: markerOutline},
	}
	return sc, nil
}

// contourLabels places each level's value where its isoline crosses the
// diagonal. Levels whose isoline degenerates onto the plot border are skipped.
func (r *Renderer) contourLabels() (*Labels, error) {
	top := models.Score(models.AxisMax, models.AxisMax)
	var xys plotter.XYs
	var txt []string
	for _, level := range r.opts.Levels {
		if level <= 0 || level >= top {
			continue
		}
		v := math.Sqrt(level)
		xys = append(xys, plotter.XY{X: v, Y: v})
		txt = append(txt, fmt.Sprintf("%1.0f", level))
	}
	sty := newTextStyle(10, false, color.White)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter
	return NewLabels(xys, txt, sty)
}

// Render builds the figure for reg and writes it to path, replacing any
// existing file. The format follows the path's extension.
func (r *Renderer) Render(reg models.Register, path string) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	fig, err := r.Build(reg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	n, err := fig.WriteTo(f, format)
	if err != nil {
		return fmt.Errorf("failed to write heatmap: %w", err)
	}

	r.logger.Info("Heatmap written",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int64("bytes", n),
	)
	return nil
}

// FormatFor returns the image format implied by path's extension.
func FormatFor(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !SupportedFormat(format) {
		return "", fmt.Errorf("unsupported output format for %q", path)
	}
	return format, nil
}

func newTextStyle(size vg.Length, bold bool, c color.Color) text.Style {
	sty := text.Style{Color: c, Handler: plot.DefaultTextHandler}
	setFont(&sty, size, bold)
	return sty
}

func setFont(sty *text.Style, size vg.Length, bold bool) {
	sty.Font.Typeface = "Liberation"
	sty.Font.Variant = "Sans"
	sty.Font.Size = size
	if bold {
		sty.Font.Weight = xfont.WeightBold
	} else {
		sty.Font.Weight = xfont.WeightNormal
	}
}
