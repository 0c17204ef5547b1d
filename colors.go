package bezier

import (
	"fmt"
	"image/color"
	"strings"
)

// Named colors accepted by ParseColor, with the values of their CSS counterparts.
var (
	Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}
	Black       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Gray        = color.RGBA{0x80, 0x80, 0x80, 0xff}
	Lightgray   = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	Red         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green       = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Blue        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Orange      = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	Purple      = color.RGBA{0x80, 0x00, 0x80, 0xff}
	Steelblue   = color.RGBA{0x46, 0x82, 0xb4, 0xff}
	Seagreen    = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
)

var namedColors = map[string]color.RGBA{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   Lightgray,
	"lightgrey":   Lightgray,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"orange":      Orange,
	"purple":      Purple,
	"steelblue":   Steelblue,
	"seagreen":    Seagreen,
}

// RGB returns a color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// ParseColor parses a color name such as red, or a CSS hexadecimal color such as #ff0000 or #F00. Colors with an alpha channel are returned alpha premultiplied.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if col, ok := namedColors[strings.ToLower(s)]; ok {
		return col, nil
	} else if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("unknown color: %q", s)
	}

	h := make([]uint8, len(s)-1)
	for i, c := range s[1:] {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		} else {
			return color.RGBA{}, fmt.Errorf("bad hexadecimal color: %q", s)
		}
	}

	switch len(h) {
	case 3:
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}, nil
	case 4:
		return premultiply(h[0]*16+h[0], h[1]*16+h[1], h[2]*16+h[2], h[3]*16+h[3]), nil
	case 6:
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}, nil
	case 8:
		return premultiply(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5], h[6]*16+h[7]), nil
	}
	return color.RGBA{}, fmt.Errorf("bad hexadecimal color: %q", s)
}

func premultiply(r, g, b, a uint8) color.RGBA {
	f := float64(a) / 255.0
	return color.RGBA{
		uint8(f*float64(r) + 0.5),
		uint8(f*float64(g) + 0.5),
		uint8(f*float64(b) + 0.5),
		a,
	}
}

// ColorName returns the name of a known color, or its hexadecimal notation otherwise.
func ColorName(col color.RGBA) string {
	for _, name := range []string{"transparent", "black", "white", "gray", "lightgray", "red", "green", "blue", "orange", "purple", "steelblue", "seagreen"} {
		if namedColors[name] == col {
			return name
		}
	}
	if col.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", col.R, col.G, col.B, col.A)
}
