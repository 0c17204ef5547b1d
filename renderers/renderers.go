// Package renderers provides the drawing surfaces that charts are plotted on.
package renderers

import (
	"fmt"
	"math"
	"sort"

	"github.com/tdewolff/bezier"
	"github.com/tdewolff/bezier/renderers/rasterizer"
)

var backends = map[string]func() bezier.Backend{
	"raster":  func() bezier.Backend { return rasterizer.New() },
	"gonum":   func() bezier.Backend { return NewGonumPlot() },
	"gochart": func() bezier.Backend { return NewGoChart() },
}

// Default is the name of the backend used when none is given.
const Default = "raster"

// Names returns the names of all backends in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns a new backend by name, an empty name returns the default backend.
func Open(name string) (bezier.Backend, error) {
	if name == "" {
		name = Default
	}
	if backend, ok := backends[name]; ok {
		return backend(), nil
	}
	return nil, fmt.Errorf("unknown backend: %v", name)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
