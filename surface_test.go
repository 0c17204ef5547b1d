package bezier

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestRange(t *testing.T) {
	test.That(t, R(-1.0, 1.0).Valid())
	test.Float(t, R(-1.0, 1.0).Size(), 2.0)
	test.String(t, R(-0.1, 1.0).String(), "[-0.1,1]")
	test.That(t, !R(1.0, 1.0).Valid())
	test.That(t, !R(1.0, -1.0).Valid())
	test.That(t, !R(math.NaN(), 1.0).Valid())
	test.That(t, !R(0.0, math.Inf(1)).Valid())
}

func TestLayout(t *testing.T) {
	layout := DefaultConfig().Layout
	test.Error(t, layout.Validate(640, 480))
	test.T(t, layout.PlotArea(640, 480), image.Rect(35, 5, 635, 445))

	var tests = []struct {
		name          string
		layout        Layout
		width, height int
	}{
		{"zero width domain", Layout{X: R(1.0, 1.0), Y: R(0.0, 1.0)}, 640, 480},
		{"reversed domain", Layout{X: R(0.0, 1.0), Y: R(1.0, 0.0)}, 640, 480},
		{"empty surface", Layout{X: R(0.0, 1.0), Y: R(0.0, 1.0)}, 0, 480},
		{"negative margin", Layout{Margin: -1, X: R(0.0, 1.0), Y: R(0.0, 1.0)}, 640, 480},
		{"no plot area", Layout{Margin: 20, XLabelArea: 30, YLabelArea: 30, X: R(0.0, 1.0), Y: R(0.0, 1.0)}, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.width, tt.height)
			test.That(t, errors.Is(err, ErrChartConstruction), err)
		})
	}
}

func TestLineStyle(t *testing.T) {
	test.Float(t, LineStyle{Color: Red}.StrokeWidth(), 1.0)
	test.Float(t, LineStyle{Color: Red, Width: 2.5}.StrokeWidth(), 2.5)
}
