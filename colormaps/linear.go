package colormaps

import (
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot/palette"

	"github.com/eriplots/eriplots/palettes"
)

// Linear is a continuous colormap interpolating linearly between evenly
// spaced color stops, quantized into a lookup table of N entries.
type Linear struct {
	scale
	name  string
	stops []palettes.RGBA
	lut   []palettes.RGBA
}

// NewLinear builds a continuous colormap through the given colors using a
// DefaultN-entry lookup table. At least one color is required.
func NewLinear(name string, colors ...color.Color) *Linear {
	stops := make([]palettes.RGBA, len(colors))
	for i, c := range colors {
		stops[i] = palettes.FromColor(c)
	}
	return newLinear(name, stops, DefaultN)
}

// NewLinearN is NewLinear with an explicit lookup-table size.
func NewLinearN(name string, n int, colors ...color.Color) *Linear {
	stops := make([]palettes.RGBA, len(colors))
	for i, c := range colors {
		stops[i] = palettes.FromColor(c)
	}
	return newLinear(name, stops, n)
}

func newLinear(name string, stops []palettes.RGBA, n int) *Linear {
	if n < 1 {
		n = 1
	}
	l := &Linear{scale: newScale(), name: name, stops: stops}
	l.lut = make([]palettes.RGBA, n)
	for i := range l.lut {
		var x float64
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		l.lut[i] = interpolate(stops, x)
	}
	return l
}

// interpolate returns the color at x in [0, 1] along evenly spaced stops.
func interpolate(stops []palettes.RGBA, x float64) palettes.RGBA {
	switch len(stops) {
	case 0:
		return transparent
	case 1:
		return stops[0]
	}
	pos := clamp01(x) * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].Lerp(stops[i+1], pos-float64(i))
}

var _ Colormap = (*Linear)(nil)

func (l *Linear) Name() string { return l.name }
func (l *Linear) N() int       { return len(l.lut) }

// Lookup implements Colormap.
func (l *Linear) Lookup(x float64) palettes.RGBA {
	if math.IsNaN(x) {
		return transparent
	}
	return l.lut[lutIndex(x, len(l.lut))]
}

// At implements palette.ColorMap.
func (l *Linear) At(v float64) (color.Color, error) { return at(l, &l.scale, v) }

// Palette implements palette.ColorMap.
func (l *Linear) Palette(n int) palette.Palette { return paletteOf(l, &l.scale, n) }

// Reversed implements Colormap.
func (l *Linear) Reversed() Colormap {
	stops := slices.Clone(l.stops)
	slices.Reverse(stops)
	r := newLinear(reversedName(l.name), stops, len(l.lut))
	r.scale = l.scale
	return r
}

// Copy implements Colormap.
func (l *Linear) Copy() Colormap {
	return &Linear{
		scale: l.scale,
		name:  l.name,
		stops: slices.Clone(l.stops),
		lut:   slices.Clone(l.lut),
	}
}
