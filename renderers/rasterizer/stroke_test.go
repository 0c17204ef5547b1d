package rasterizer

import (
	"image"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/vector"
)

func stroke(coords []vec, hw float64) *image.Alpha {
	ras := vector.NewRasterizer(64, 64)
	strokePolyline(ras, coords, hw)
	img := image.NewAlpha(image.Rect(0, 0, 64, 64))
	ras.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

func TestStrokePolyline(t *testing.T) {
	var tts = []struct {
		name   string
		hw     float64
		coords []vec
		filled []image.Point
		empty  []image.Point
	}{
		{"right turn", 5.0, []vec{{10, 20}, {40, 20}, {40, 50}},
			[]image.Point{{11, 20}, {38, 22}, {42, 17}, {40, 48}},
			[]image.Point{{8, 20}, {44, 15}, {40, 52}, {30, 30}}},
		{"left turn", 5.0, []vec{{10, 40}, {40, 40}, {40, 10}},
			[]image.Point{{11, 40}, {38, 38}, {42, 42}, {40, 11}},
			[]image.Point{{8, 40}, {44, 44}, {40, 7}, {30, 30}}},
		{"repeated point", 5.0, []vec{{10, 20}, {30, 20}, {30, 20}, {50, 20}},
			[]image.Point{{11, 20}, {30, 20}, {48, 20}},
			[]image.Point{{30, 27}, {52, 20}}},
		{"single point", 1.5, []vec{{20, 20}},
			[]image.Point{{20, 20}},
			[]image.Point{{24, 20}}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			img := stroke(tt.coords, tt.hw)
			for _, p := range tt.filled {
				test.That(t, 0xc0 < img.AlphaAt(p.X, p.Y).A, p, img.AlphaAt(p.X, p.Y).A)
			}
			for _, p := range tt.empty {
				test.That(t, img.AlphaAt(p.X, p.Y).A < 0x10, p, img.AlphaAt(p.X, p.Y).A)
			}
		})
	}
}

func TestStrokeOverlap(t *testing.T) {
	// overlapping segments and joins add up instead of cancelling out
	img := stroke([]vec{{10, 20}, {40, 20}, {40, 50}, {20, 30}}, 5.0)
	test.T(t, img.AlphaAt(38, 22).A, uint8(0xff))
	test.T(t, img.AlphaAt(38, 47).A, uint8(0xff))
}
