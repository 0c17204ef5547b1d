package rasterizer

import (
	"cmp"
	"slices"

	"github.com/tdewolff/bezier"
	"gonum.org/v1/plot"
)

// Ticks returns the ticks of an axis spanning r in increasing order, as chosen by gonum/plot's default tick marker. Major ticks carry a label, minor ticks have an empty label.
func Ticks(r bezier.Range) []plot.Tick {
	if !r.Valid() {
		return nil
	}
	ticks := plot.DefaultTicks{}.Ticks(r.Min, r.Max)
	slices.SortFunc(ticks, func(a, b plot.Tick) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return ticks
}
