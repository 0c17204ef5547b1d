package bezier

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseColor(t *testing.T) {
	var tests = []struct {
		s   string
		col color.RGBA
	}{
		{"red", Red},
		{" Red ", Red},
		{"grey", Gray},
		{"#f00", Red},
		{"#FF0000", Red},
		{"#4682b4", Steelblue},
		{"#ff000080", color.RGBA{0x80, 0x00, 0x00, 0x80}},
		{"#0000", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			col, err := ParseColor(tt.s)
			test.Error(t, err)
			test.T(t, col, tt.col)
		})
	}

	for _, s := range []string{"", "redish", "#ff", "#gg0000", "ff0000"} {
		_, err := ParseColor(s)
		test.That(t, err != nil, s)
	}
}

func TestColorName(t *testing.T) {
	test.String(t, ColorName(Red), "red")
	test.String(t, ColorName(RGB(0x12, 0x34, 0x56)), "#123456")
	test.String(t, ColorName(color.RGBA{0x10, 0x10, 0x10, 0x80}), "#10101080")
}
