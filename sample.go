package bezier

import "iter"

// Params returns n evenly spaced parameters over [0,1], inclusive of both ends. A single parameter is 0, and n <= 0 yields nothing. The sequence is evaluated lazily and can be ranged over more than once.
func Params(n int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		if n == 1 {
			yield(0.0)
			return
		}
		for i := 0; i < n; i++ {
			if !yield(float32(i) / float32(n-1)) {
				return
			}
		}
	}
}

// Sample returns the points of c evaluated at n evenly spaced parameters, in order of increasing t.
func Sample(c Cubic, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for t := range Params(n) {
			if !yield(c.Eval(t)) {
				return
			}
		}
	}
}

// Pairs maps points to their coordinate pairs.
func Pairs(points iter.Seq[Point]) iter.Seq2[float32, float32] {
	return func(yield func(float32, float32) bool) {
		for p := range points {
			if !yield(p.Pair()) {
				return
			}
		}
	}
}
