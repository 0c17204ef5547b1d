package rasterizer

import (
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/tdewolff/bezier"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	tickLength  = 5   // in pixels, halved for minor ticks
	labelOffset = 2.0 // in pixels, between tick and label
)

// Chart maps data coordinates to the plotting area of a surface.
type Chart struct {
	s      *Surface
	layout bezier.Layout
	area   image.Rectangle
}

// Area returns the plotting area in pixel coordinates.
func (c *Chart) Area() image.Rectangle {
	return c.area
}

// Pos returns the pixel position of a data coordinate, relative to the top-left of the image.
func (c *Chart) Pos(x, y float64) (float64, float64) {
	px := float64(c.area.Min.X) + (x-c.layout.X.Min)/c.layout.X.Size()*float64(c.area.Dx())
	py := float64(c.area.Max.Y) - (y-c.layout.Y.Min)/c.layout.Y.Size()*float64(c.area.Dy())
	return px, py
}

// DrawMesh draws a grid line and a label for each major tick on both axes and a short mark for each minor tick, followed by the axis lines along the left and bottom of the plotting area.
func (c *Chart) DrawMesh() error {
	img := c.s.img
	fg := image.NewUniform(c.s.backend.Foreground)
	grid := image.NewUniform(c.s.backend.Grid)
	metrics := c.s.face.Metrics()

	for _, tick := range Ticks(c.layout.X) {
		px, _ := c.Pos(tick.Value, c.layout.Y.Min)
		x := int(math.Floor(px))
		if x == c.area.Max.X {
			x-- // keep last grid line inside
		}
		if tick.IsMinor() {
			draw.Draw(img, image.Rect(x, c.area.Max.Y, x+1, c.area.Max.Y+tickLength/2), fg, image.Point{}, draw.Over)
			continue
		}
		draw.Draw(img, image.Rect(x, c.area.Min.Y, x+1, c.area.Max.Y), grid, image.Point{}, draw.Over)
		draw.Draw(img, image.Rect(x, c.area.Max.Y, x+1, c.area.Max.Y+tickLength), fg, image.Point{}, draw.Over)

		w := font.MeasureString(c.s.face, tick.Label)
		dot := fixed.Point26_6{
			X: fixed.I(x) - w/2,
			Y: fixed.I(c.area.Max.Y+tickLength) + fixed.Int26_6(labelOffset*64.0) + metrics.Ascent,
		}
		c.drawString(tick.Label, dot)
	}

	for _, tick := range Ticks(c.layout.Y) {
		_, py := c.Pos(c.layout.X.Min, tick.Value)
		y := int(math.Floor(py))
		if y == c.area.Max.Y {
			y--
		}
		if tick.IsMinor() {
			draw.Draw(img, image.Rect(c.area.Min.X-tickLength/2, y, c.area.Min.X, y+1), fg, image.Point{}, draw.Over)
			continue
		}
		draw.Draw(img, image.Rect(c.area.Min.X, y, c.area.Max.X, y+1), grid, image.Point{}, draw.Over)
		draw.Draw(img, image.Rect(c.area.Min.X-tickLength, y, c.area.Min.X, y+1), fg, image.Point{}, draw.Over)

		w := font.MeasureString(c.s.face, tick.Label)
		dot := fixed.Point26_6{
			X: fixed.I(c.area.Min.X-tickLength) - fixed.Int26_6(labelOffset*64.0) - w,
			Y: fixed.I(y) + metrics.CapHeight/2,
		}
		c.drawString(tick.Label, dot)
	}

	draw.Draw(img, image.Rect(c.area.Min.X-1, c.area.Min.Y, c.area.Min.X, c.area.Max.Y+1), fg, image.Point{}, draw.Over)
	draw.Draw(img, image.Rect(c.area.Min.X-1, c.area.Max.Y, c.area.Max.X, c.area.Max.Y+1), fg, image.Point{}, draw.Over)
	return nil
}

func (c *Chart) drawString(s string, dot fixed.Point26_6) {
	d := font.Drawer{
		Dst:  c.s.img,
		Src:  image.NewUniform(c.s.backend.Foreground),
		Face: c.s.face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// DrawLineSeries strokes the polyline through the points, clipped to the plotting area.
func (c *Chart) DrawLineSeries(points iter.Seq2[float32, float32], style bezier.LineStyle) error {
	coords := []vec{}
	for x, y := range points {
		px, py := c.Pos(float64(x), float64(y))
		if math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0) {
			return fmt.Errorf("%w: %v at (%v,%v)", bezier.ErrRender, errNonFinite, x, y)
		}
		// relative to the plotting area
		coords = append(coords, vec{px - float64(c.area.Min.X), py - float64(c.area.Min.Y)})
	}
	if len(coords) == 0 || style.Color.A == 0 {
		return nil
	}

	ras := vector.NewRasterizer(c.area.Dx(), c.area.Dy())
	strokePolyline(ras, coords, style.StrokeWidth()/2.0)
	ras.Draw(c.s.img, c.area, image.NewUniform(style.Color), image.Point{})
	return nil
}
