package bezier

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"math"
)

// Errors returned by backends, to be matched with errors.Is.
var (
	// ErrChartConstruction is returned for invalid sizes, domains, or layouts and for unsupported output formats.
	ErrChartConstruction = errors.New("chart construction failed")

	// ErrRender is returned when drawing onto a surface fails, such as for non-finite coordinates.
	ErrRender = errors.New("render failed")

	// ErrIO is returned when the output file cannot be written.
	ErrIO = errors.New("i/o failed")
)

// Backend creates drawing surfaces. Implementations live in the renderers subpackages.
type Backend interface {
	NewSurface(filename string, width, height int) (Surface, error)
}

// Surface is an image of a fixed size in pixels that is written to its file by Present. Present must be called at most once.
type Surface interface {
	BuildChart(layout Layout) (Chart, error)
	Present() error
}

// Chart is a Cartesian coordinate system on a surface.
type Chart interface {
	// DrawMesh draws the grid lines and the tick labels of both axes.
	DrawMesh() error

	// DrawLineSeries draws a polyline through the points in the order they are yielded.
	DrawLineSeries(points iter.Seq2[float32, float32], style LineStyle) error
}

// Range is a closed interval of an axis.
type Range struct {
	Min, Max float64
}

// R returns the range [min,max].
func R(min, max float64) Range {
	return Range{min, max}
}

// Size returns the length of the range.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

// Valid returns true if the range is finite and not empty.
func (r Range) Valid() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min < r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g,%g]", r.Min, r.Max)
}

// Layout positions a chart on a surface. All sizes are in pixels.
type Layout struct {
	Margin     int
	XLabelArea int // height below the plotting area reserved for x-axis labels
	YLabelArea int // width left of the plotting area reserved for y-axis labels
	X, Y       Range
}

// Validate returns an error wrapping ErrChartConstruction if the layout cannot be placed on a surface of the given size.
func (l Layout) Validate(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid surface size %dx%d", ErrChartConstruction, width, height)
	} else if l.Margin < 0 || l.XLabelArea < 0 || l.YLabelArea < 0 {
		return fmt.Errorf("%w: negative margin or label area", ErrChartConstruction)
	} else if !l.X.Valid() {
		return fmt.Errorf("%w: invalid x-domain %v", ErrChartConstruction, l.X)
	} else if !l.Y.Valid() {
		return fmt.Errorf("%w: invalid y-domain %v", ErrChartConstruction, l.Y)
	} else if l.PlotArea(width, height).Empty() {
		return fmt.Errorf("%w: no plotting area left on %dx%d surface", ErrChartConstruction, width, height)
	}
	return nil
}

// PlotArea returns the rectangle in pixel coordinates, with the origin at the top-left, that remains for plotting after removing the margins and label areas.
func (l Layout) PlotArea(width, height int) image.Rectangle {
	// not image.Rect, which would swap the corners of a too small surface
	return image.Rectangle{
		Min: image.Point{l.Margin + l.YLabelArea, l.Margin},
		Max: image.Point{width - l.Margin, height - l.Margin - l.XLabelArea},
	}
}

// LineStyle describes how a line series is stroked. Consecutive points are joined by straight segments.
type LineStyle struct {
	Color color.RGBA
	Width float64 // in pixels, zero means one pixel
}

// StrokeWidth returns the line width in pixels.
func (s LineStyle) StrokeWidth() float64 {
	if s.Width <= 0.0 {
		return 1.0
	}
	return s.Width
}
