package bezier

import (
	"strconv"
)

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float32
}

// Pt returns the point (x,y).
func Pt(x, y float32) Point {
	return Point{x, y}
}

// Lerp linearly interpolates between a and b, returning a for t=0 and b for t=1. Values of t outside [0,1] extrapolate along the line through a and b.
func Lerp(a, b Point, t float32) Point {
	return Point{
		a.X*(1.0-t) + b.X*t,
		a.Y*(1.0-t) + b.Y*t,
	}
}

// Lerp linearly interpolates between p and q, see Lerp.
func (p Point) Lerp(q Point, t float32) Point {
	return Lerp(p, q, t)
}

// Pair returns the x and y coordinates.
func (p Point) Pair() (float32, float32) {
	return p.X, p.Y
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 5, 32)
}
