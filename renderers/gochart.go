package renderers

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/bezier"
	"github.com/tdewolff/bezier/renderers/rasterizer"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChart is a backend that draws charts with github.com/wcharczuk/go-chart. It writes PNG or SVG files depending on the filename extension.
//
// go-chart sizes the axes to fit their tick labels and places the y-axis on the right. A label area of zero in the layout drops the tick labels of that axis but keeps its grid lines.
type GoChart struct {
	GridColor drawing.Color
}

// NewGoChart returns a github.com/wcharczuk/go-chart backend.
func NewGoChart() *GoChart {
	return &GoChart{
		GridColor: drawing.ColorFromHex("d3d3d3"),
	}
}

// NewSurface returns a surface of width by height pixels.
func (b *GoChart) NewSurface(filename string, width, height int) (bezier.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", bezier.ErrChartConstruction, width, height)
	}

	var provider chart.RendererProvider
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		provider = chart.PNG
	case ".svg":
		provider = chart.SVG
	default:
		return nil, fmt.Errorf("%w: unknown file extension: %v", bezier.ErrChartConstruction, ext)
	}
	return &goChartSurface{
		backend:  b,
		provider: provider,
		filename: filename,
		width:    width,
		height:   height,
	}, nil
}

type goChartSurface struct {
	backend       *GoChart
	provider      chart.RendererProvider
	filename      string
	width, height int

	chart     *goChartChart
	presented bool
}

func (s *goChartSurface) BuildChart(layout bezier.Layout) (bezier.Chart, error) {
	if err := layout.Validate(s.width, s.height); err != nil {
		return nil, err
	} else if s.chart != nil {
		return nil, fmt.Errorf("%w: go-chart supports one chart per image", bezier.ErrChartConstruction)
	}

	s.chart = &goChartChart{
		graph: chart.Chart{
			Width:  s.width,
			Height: s.height,
			Background: chart.Style{
				Padding: chart.Box{
					Top:    layout.Margin,
					Left:   layout.Margin,
					Right:  layout.Margin,
					Bottom: layout.Margin,
				},
			},
			XAxis: chart.XAxis{
				Range: &chart.ContinuousRange{Min: layout.X.Min, Max: layout.X.Max},
			},
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: layout.Y.Min, Max: layout.Y.Max},
			},
		},
		gridColor: s.backend.GridColor,
	}
	if layout.XLabelArea == 0 {
		s.chart.graph.XAxis.Ticks = unlabelledTicks(layout.X)
	}
	if layout.YLabelArea == 0 {
		s.chart.graph.YAxis.Ticks = unlabelledTicks(layout.Y)
	}
	return s.chart, nil
}

func unlabelledTicks(r bezier.Range) []chart.Tick {
	ticks := []chart.Tick{}
	for _, tick := range rasterizer.Ticks(r) {
		if !tick.IsMinor() {
			ticks = append(ticks, chart.Tick{Value: tick.Value})
		}
	}
	return ticks
}

// Present renders the chart in memory first, so that a failed render does not leave a partial file.
func (s *goChartSurface) Present() error {
	if s.presented {
		return fmt.Errorf("%w: %s: already presented", bezier.ErrIO, s.filename)
	}
	s.presented = true

	buf := &bytes.Buffer{}
	if s.chart != nil {
		if err := s.chart.graph.Render(s.provider, buf); err != nil {
			return fmt.Errorf("%w: %v", bezier.ErrRender, err)
		}
	}
	if err := os.WriteFile(s.filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrIO, err)
	}
	return nil
}

type goChartChart struct {
	graph     chart.Chart
	gridColor drawing.Color
}

func (c *goChartChart) DrawMesh() error {
	grid := chart.Style{
		StrokeColor: c.gridColor,
		StrokeWidth: 1.0,
	}
	c.graph.XAxis.GridMajorStyle = grid
	c.graph.YAxis.GridMajorStyle = grid
	return nil
}

func (c *goChartChart) DrawLineSeries(points iter.Seq2[float32, float32], style bezier.LineStyle) error {
	series := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: drawing.Color{R: style.Color.R, G: style.Color.G, B: style.Color.B, A: style.Color.A},
			StrokeWidth: style.StrokeWidth(),
		},
	}
	for x, y := range points {
		if !finite(x) || !finite(y) {
			return fmt.Errorf("%w: non-finite coordinate at (%v,%v)", bezier.ErrRender, x, y)
		}
		series.XValues = append(series.XValues, float64(x))
		series.YValues = append(series.YValues, float64(y))
	}
	if err := series.Validate(); err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrRender, err)
	}
	c.graph.Series = append(c.graph.Series, series)
	return nil
}
