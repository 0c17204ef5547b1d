package bezier

// Cubic is a cubic Bézier curve from P0 to P3 with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// CubicBezier returns the cubic Bézier curve defined by its start, two control points, and end.
func CubicBezier(p0, p1, p2, p3 Point) Cubic {
	return Cubic{p0, p1, p2, p3}
}

// Eval returns the position on the curve at t using De Casteljau's algorithm. It returns P0 for t=0 and P3 for t=1, other values of t outside [0,1] extrapolate the curve.
func (c Cubic) Eval(t float32) Point {
	a := Lerp(c.P0, c.P1, t)
	b := Lerp(c.P1, c.P2, t)
	d := Lerp(c.P2, c.P3, t)

	ab := Lerp(a, b, t)
	bd := Lerp(b, d, t)
	return Lerp(ab, bd, t)
}

// Reverse returns the same curve traversed from P3 to P0.
func (c Cubic) Reverse() Cubic {
	return Cubic{c.P3, c.P2, c.P1, c.P0}
}

// Points returns the control points in order.
func (c Cubic) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

func (c Cubic) String() string {
	return "M" + c.P0.String() + "C" + c.P1.String() + c.P2.String() + c.P3.String()
}
