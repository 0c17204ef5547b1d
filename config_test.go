package bezier

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestReadConfig(t *testing.T) {
	cfg := DefaultConfig()
	test.Error(t, ReadConfig(strings.NewReader(""), &cfg))
	test.T(t, cfg, DefaultConfig())

	cfg = DefaultConfig()
	err := ReadConfig(strings.NewReader(`
output: arch.jpg
width: 320
height: 240
margin: 2
label_area: {x: 20}
x_domain: [0, 2]
curve: [[0, 0], [0, 1], [1, 1], [1, 0]]
samples: 11
line: {color: "#00f", width: 3}
`), &cfg)
	test.Error(t, err)
	test.String(t, cfg.Filename, "arch.jpg")
	test.T(t, cfg.Width, 320)
	test.T(t, cfg.Height, 240)
	test.T(t, cfg.Layout.Margin, 2)
	test.T(t, cfg.Layout.XLabelArea, 20)
	test.T(t, cfg.Layout.YLabelArea, 30)
	test.T(t, cfg.Layout.X, R(0.0, 2.0))
	test.T(t, cfg.Layout.Y, R(-0.1, 1.0))
	test.T(t, cfg.Curve, CubicBezier(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)))
	test.T(t, cfg.Samples, 11)
	test.T(t, cfg.Line, LineStyle{Color: Blue, Width: 3.0})
}

func TestReadConfigErrors(t *testing.T) {
	var tests = []string{
		"colour: red",
		"samples: -1",
		"line: {color: reddish}",
		"curve: [[0, 0], [1, 1]]",
		"width: wide",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			cfg := DefaultConfig()
			test.That(t, ReadConfig(strings.NewReader(tt), &cfg) != nil)
		})
	}
}
