package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"

	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"benchreport/internal/telemetry"
)

// FileName is the chart written into the output directory.
const FileName = "comparison.png"

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Options control the figure.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func DefaultOptions() Options {
	return Options{
		Title:  "Performance Comparison",
		Width:  12 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    300,
	}
}

// bars draws one series with widths in data units, so a cluster spans
// exactly ClusterWidth on the x axis regardless of the canvas size.
// plotter.BarChart sizes bars in canvas units, which cannot do that.
type bars struct {
	series Series
	color  color.Color
}

func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := b.series.Width / 2
	for _, bar := range b.series.Bars {
		left, right := trX(bar.X-half), trX(bar.X+half)
		bottom, top := trY(0), trY(bar.Value)
		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		c.FillPolygon(b.color, c.ClipPolygonXY(pts))
	}
}

func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, bar := range b.series.Bars {
		xmin = math.Min(xmin, bar.X-b.series.Width/2)
		xmax = math.Max(xmax, bar.X+b.series.Width/2)
		ymax = math.Max(ymax, bar.Value)
	}
	if len(b.series.Bars) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, 0, ymax
}

// Thumbnail draws the legend swatch.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, c.ClipPolygonY(pts))
}

// valueLabels places the formatted value above every non-zero bar.
func valueLabels(series []Series) (*plotter.Labels, error) {
	var data plotter.XYLabels
	for _, s := range series {
		for _, bar := range s.Bars {
			if bar.Label == "" {
				continue
			}
			data.XYs = append(data.XYs, plotter.XY{X: bar.X, Y: bar.Value})
			data.Labels = append(data.Labels, bar.Label)
		}
	}
	if len(data.Labels) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create value labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}
	labels.Offset = vg.Point{Y: vg.Points(2)}
	return labels, nil
}

// NewPlot assembles the grouped bar chart for a layout.
func NewPlot(series []Series, fixtures []string, opts Options) (*plot.Plot, error) {
	if len(series) == 0 || len(fixtures) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Benchmark"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Time (ms)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)

	colors, err := Palette(len(series))
	if err != nil {
		return nil, err
	}
	for i, s := range series {
		b := &bars{series: s, color: colors[i]}
		p.Add(b)
		p.Legend.Add(s.Version, b)
	}
	p.Legend.Top = true

	labels, err := valueLabels(series)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		p.Add(labels)
	}

	ticks := make([]plot.Tick, len(fixtures))
	for i, f := range fixtures {
		ticks[i] = plot.Tick{Value: float64(i), Label: f}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Min = -0.5
	p.X.Max = float64(len(fixtures)) - 0.5

	// Headroom so value labels clear the top edge.
	p.Y.Min = 0
	if top := MaxValue(series); top > 0 {
		p.Y.Max = top * 1.1
	} else {
		p.Y.Max = 1
	}

	return p, nil
}

// Render draws the chart for m as PNG into w.
func Render(w io.Writer, m *Matrix, opts Options) error {
	p, err := NewPlot(Layout(m), m.Fixtures(), opts)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Save renders the chart into dir/comparison.png, creating dir if needed,
// and returns the written path. A failed render leaves no file behind.
func Save(fs afero.Fs, dir string, m *Matrix, opts Options) (string, error) {
	if m.Len() == 0 {
		return "", ErrNoData
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	f, err := fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Render(f, m, opts); err != nil {
		f.Close()
		discard(fs, path)
		return "", err
	}
	if err := f.Close(); err != nil {
		discard(fs, path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	telemetry.LogInfo("Chart written", "path", path, "fixtures", m.Len())
	return path, nil
}

func discard(fs afero.Fs, path string) {
	if err := fs.Remove(path); err != nil {
		telemetry.LogError("Failed to remove partial chart", err, "path", path)
	}
}
