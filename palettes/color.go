package palettes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to non-premultiplied RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		return RGBA{A: 1}
	}
	return c
}

func parseHexColor(hex string) (RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3, 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if ok && len(hex) == 4 {
			ok = parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if ok && len(hex) == 8 {
			ok = parseHex(hex[6:8], &a)
		}
	}
	if !ok {
		return RGBA{}, fmt.Errorf("palettes: invalid hex color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// ParseColor accepts a "#hex" string, a grayscale level in [0, 1]
// written as a string (e.g. "0.25"), or the name of a palette color.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := Lookup(s); ok {
		return c.Float(), nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v > 1 {
			return RGBA{}, fmt.Errorf("palettes: gray level %q out of [0, 1]", s)
		}
		return RGBA{R: v, G: v, B: v, A: 1}, nil
	}
	return RGBA{}, fmt.Errorf("palettes: unrecognized color %q", s)
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns c with its alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
