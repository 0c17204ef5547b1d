package rasterizer

import (
	"math"

	"golang.org/x/image/vector"
)

type vec struct {
	X, Y float64
}

func (v vec) Add(q vec) vec {
	return vec{v.X + q.X, v.Y + q.Y}
}

func (v vec) Sub(q vec) vec {
	return vec{v.X - q.X, v.Y - q.Y}
}

func (v vec) Mul(f float64) vec {
	return vec{v.X * f, v.Y * f}
}

func (v vec) Neg() vec {
	return vec{-v.X, -v.Y}
}

func (v vec) Dot(q vec) float64 {
	return v.X*q.X + v.Y*q.Y
}

// PerpDot returns the z-component of the cross product of v and q.
func (v vec) PerpDot(q vec) float64 {
	return v.X*q.Y - v.Y*q.X
}

func (v vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rot90CCW rotates the vector by 90 degrees in the direction of the y-axis.
func (v vec) Rot90CCW() vec {
	return vec{-v.Y, v.X}
}

// Rot90CW rotates the vector by 90 degrees against the direction of the y-axis.
func (v vec) Rot90CW() vec {
	return vec{v.Y, -v.X}
}

// strokePolyline adds the outline of a polyline with half-width hw to the rasterizer, using butt caps and round joins. Every segment is a rectangle and every join a circular wedge on the outside of the bend, all with the same orientation so that overlaps never cancel out. A single point, or a polyline of coinciding points, becomes a square.
func strokePolyline(ras *vector.Rasterizer, coords []vec, hw float64) {
	start := coords[0]
	var n0 vec // normal of the previous segment
	drawn := false
	for _, end := range coords[1:] {
		d := end.Sub(start)
		length := d.Length()
		if length == 0.0 {
			continue
		}
		n := d.Rot90CCW().Mul(hw / length)
		if drawn {
			roundJoin(ras, start, n0, n)
		}
		addQuad(ras, start.Add(n), end.Add(n), end.Sub(n), start.Sub(n))
		start, n0, drawn = end, n, true
	}
	if !drawn {
		p := coords[0]
		addQuad(ras, vec{p.X - hw, p.Y - hw}, vec{p.X - hw, p.Y + hw}, vec{p.X + hw, p.Y + hw}, vec{p.X + hw, p.Y - hw})
	}
}

// roundJoin fills the gap between two segments meeting at pivot, with n0 and n1 the normals of the incoming and outgoing segment, both of the stroke's half-width in length.
func roundJoin(ras *vector.Rasterizer, pivot, n0, n1 vec) {
	if n0 == n1 {
		return
	}

	// the gap is on the side the path bends away from
	if 0.0 < n0.Dot(n1.Rot90CW()) {
		n0, n1 = n0.Neg(), n1.Neg()
	}
	// segment outlines wind clockwise with respect to the y-axis
	if 0.0 < n0.PerpDot(n1) {
		n0, n1 = n1, n0
	}

	theta := -math.Abs(math.Atan2(n0.PerpDot(n1), n0.Dot(n1))) // in [-π,0]
	k := int(math.Ceil(-theta / (math.Pi / 2.0)))
	if k == 0 {
		return
	}
	dtheta := theta / float64(k)
	kappa := 4.0 / 3.0 * math.Tan(dtheta/4.0) // negative, as the arc turns clockwise

	moveTo(ras, pivot)
	lineTo(ras, pivot.Add(n0))
	r0 := n0
	sin, cos := math.Sincos(dtheta)
	for range k {
		r1 := vec{r0.X*cos - r0.Y*sin, r0.X*sin + r0.Y*cos}
		c0 := pivot.Add(r0).Add(r0.Rot90CCW().Mul(kappa))
		c1 := pivot.Add(r1).Sub(r1.Rot90CCW().Mul(kappa))
		p := pivot.Add(r1)
		ras.CubeTo(float32(c0.X), float32(c0.Y), float32(c1.X), float32(c1.Y), float32(p.X), float32(p.Y))
		r0 = r1
	}
	ras.ClosePath()
}

func moveTo(ras *vector.Rasterizer, p vec) {
	ras.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(ras *vector.Rasterizer, p vec) {
	ras.LineTo(float32(p.X), float32(p.Y))
}

func addQuad(ras *vector.Rasterizer, a, b, c, d vec) {
	moveTo(ras, a)
	lineTo(ras, b)
	lineTo(ras, c)
	lineTo(ras, d)
	ras.ClosePath()
}
