package bezier

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	test.T(t, p, Point{3, 4})
	x, y := p.Pair()
	test.Float(t, float64(x), 3.0)
	test.Float(t, float64(y), 4.0)
	test.String(t, p.String(), "(3,4)")
	test.String(t, Pt(-0.5, 0.375).String(), "(-0.5,0.375)")
}

func TestLerp(t *testing.T) {
	a, b := Pt(-0.5, 0.0), Pt(0.5, 0.5)
	test.T(t, Lerp(a, b, 0.0), a)
	test.T(t, Lerp(a, b, 1.0), b)
	test.T(t, Lerp(a, b, 0.5), Pt(0.0, 0.25))
	test.T(t, a.Lerp(b, 0.5), Lerp(a, b, 0.5))

	// extrapolation
	test.T(t, Lerp(a, b, 2.0), Pt(1.5, 1.0))
	test.T(t, Lerp(a, b, -1.0), Pt(-1.5, -0.5))

	for _, f := range []float32{-3.0, 0.0, 0.1, 0.25, 0.7, 1.0, 42.0} {
		test.T(t, Lerp(b, b, f), b)
	}
}
