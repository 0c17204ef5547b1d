package renderers

import (
	"fmt"
	"image/color"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/bezier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	// vector formats for draw.NewFormattedCanvas
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
	_ "gonum.org/v1/plot/vg/vgtex"
)

// GonumPlot is a backend that draws charts with gonum.org/v1/plot. The output format follows the filename extension and can be any of eps, jpg, pdf, png, svg, tex, or tif. Image sizes are in pixels for raster formats and in points for vector formats.
//
// gonum/plot sizes the axes to fit their tick labels, the label areas of the layout are the minimum space reserved for them.
type GonumPlot struct {
	Background color.Color // fills the margins
}

// NewGonumPlot returns a github.com/gonum/plot backend.
func NewGonumPlot() *GonumPlot {
	return &GonumPlot{
		Background: bezier.White,
	}
}

// NewSurface returns a surface of width by height pixels.
func (b *GonumPlot) NewSurface(filename string, width, height int) (bezier.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", bezier.ErrChartConstruction, width, height)
	}

	w, h := vg.Points(float64(width)), vg.Points(float64(height))
	var c vg.CanvasWriterTo
	switch format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		// one point per pixel
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(pointsPerInch))
		switch format {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	default:
		var err error
		if c, err = draw.NewFormattedCanvas(w, h, format); err != nil {
			return nil, fmt.Errorf("%w: %v", bezier.ErrChartConstruction, err)
		}
	}
	return &gonumPlotSurface{
		c:          c,
		background: b.Background,
		filename:   filename,
		width:      width,
		height:     height,
	}, nil
}

const pointsPerInch = 72

type gonumPlotSurface struct {
	c             vg.CanvasWriterTo
	background    color.Color
	filename      string
	width, height int

	charts    []*gonumPlotChart
	presented bool
}

func (s *gonumPlotSurface) BuildChart(layout bezier.Layout) (bezier.Chart, error) {
	if err := layout.Validate(s.width, s.height); err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Padding = 0
	p.Y.Padding = 0
	chart := &gonumPlotChart{
		p:      p,
		layout: layout,
	}
	chart.setDomain()
	s.charts = append(s.charts, chart)
	return chart, nil
}

func (s *gonumPlotSurface) Present() error {
	if s.presented {
		return fmt.Errorf("%w: %s: already presented", bezier.ErrIO, s.filename)
	}
	s.presented = true

	dc := draw.New(s.c)
	if s.background != nil {
		dc.SetColor(s.background)
		dc.Fill(dc.Rectangle.Path())
	}
	for _, chart := range s.charts {
		chart.draw(dc)
	}

	f, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrIO, err)
	}
	if _, err := s.c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", bezier.ErrIO, s.filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrIO, err)
	}
	return nil
}

type gonumPlotChart struct {
	p      *plot.Plot
	layout bezier.Layout
}

// setDomain fixes the axes to the layout, since adding plotters extends them to the data range.
func (c *gonumPlotChart) setDomain() {
	c.p.X.Min, c.p.X.Max = c.layout.X.Min, c.layout.X.Max
	c.p.Y.Min, c.p.Y.Max = c.layout.Y.Min, c.layout.Y.Max
}

// draw draws the plot inside the margins. The axes grow beyond their fitted size up to the label areas of the layout.
func (c *gonumPlotChart) draw(dc draw.Canvas) {
	m := vg.Points(float64(c.layout.Margin))
	da := draw.Crop(dc, m, -m, m, -m)

	data := c.p.DataCanvas(da)
	left := vg.Points(float64(c.layout.YLabelArea)) - (data.Min.X - da.Min.X)
	bottom := vg.Points(float64(c.layout.XLabelArea)) - (data.Min.Y - da.Min.Y)
	c.p.Draw(draw.Crop(da, max(0, left), 0, max(0, bottom), 0))
}

func (c *gonumPlotChart) DrawMesh() error {
	c.p.Add(plotter.NewGrid())
	return nil
}

func (c *gonumPlotChart) DrawLineSeries(points iter.Seq2[float32, float32], style bezier.LineStyle) error {
	xys := plotter.XYs{}
	for x, y := range points {
		xys = append(xys, plotter.XY{X: float64(x), Y: float64(y)})
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrRender, err)
	}
	line.LineStyle.Color = style.Color
	line.LineStyle.Width = vg.Points(style.StrokeWidth())
	c.p.Add(line)
	c.setDomain()
	return nil
}
