package bezier

import (
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func TestParams(t *testing.T) {
	ts := slices.Collect(Params(101))
	test.T(t, len(ts), 101)
	test.Float(t, float64(ts[0]), 0.0)
	test.Float(t, float64(ts[50]), 0.5)
	test.Float(t, float64(ts[100]), 1.0)
	for i := 1; i < len(ts); i++ {
		test.That(t, ts[i-1] < ts[i], i)
		test.T(t, ts[i], float32(i)/100.0)
	}

	// restartable and deterministic
	test.T(t, slices.Collect(Params(101)), ts)
	test.T(t, slices.Collect(Params(101)), slices.Collect(Params(101)))

	test.T(t, slices.Collect(Params(2)), []float32{0.0, 1.0})
	test.T(t, slices.Collect(Params(1)), []float32{0.0})
	test.T(t, len(slices.Collect(Params(0))), 0)
	test.T(t, len(slices.Collect(Params(-5))), 0)
}

func TestParamsBreak(t *testing.T) {
	n := 0
	for tt := range Params(101) {
		if 0.1 < tt {
			break
		}
		n++
	}
	test.T(t, n, 11)
}

func TestSample(t *testing.T) {
	c := DefaultConfig().Curve
	ps := slices.Collect(Sample(c, 101))
	test.T(t, len(ps), 101)
	test.T(t, ps[0], Pt(-0.5, 0.0))
	test.T(t, ps[50], Pt(0.0, 0.375))
	test.T(t, ps[100], Pt(0.5, 0.0))
	for i := 1; i < len(ps); i++ {
		// the arch is traversed from left to right
		test.That(t, ps[i-1].X < ps[i].X, i)
	}
	test.T(t, slices.Collect(Sample(c, 101)), ps)
}

func TestPairs(t *testing.T) {
	c := DefaultConfig().Curve
	xs, ys := []float32{}, []float32{}
	for x, y := range Pairs(Sample(c, 101)) {
		xs = append(xs, x)
		ys = append(ys, y)
	}
	test.T(t, len(xs), 101)
	test.Float(t, float64(xs[0]), -0.5)
	test.Float(t, float64(ys[0]), 0.0)
	test.Float(t, float64(xs[100]), 0.5)
	test.Float(t, float64(ys[100]), 0.0)

	n := 0
	for range Pairs(Sample(c, 101)) {
		n++
		if n == 3 {
			break
		}
	}
	test.T(t, n, 3)
}
