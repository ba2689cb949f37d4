package colormaps

import (
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot/palette"

	"github.com/eriplots/eriplots/palettes"
)

// Listed is a discrete colormap: the unit interval is split into N equal
// bins, one per color.
type Listed struct {
	scale
	name   string
	colors []palettes.RGBA
}

// NewListed builds a discrete colormap from colors.
func NewListed(name string, colors []color.Color) *Listed {
	l := &Listed{scale: newScale(), name: name}
	for _, c := range colors {
		l.colors = append(l.colors, palettes.FromColor(c))
	}
	return l
}

// FromPalette builds a discrete colormap from palette colors.
func FromPalette(name string, cs []palettes.Color) *Listed {
	l := &Listed{scale: newScale(), name: name}
	for _, c := range cs {
		l.colors = append(l.colors, c.Float())
	}
	return l
}

var _ Colormap = (*Listed)(nil)

func (l *Listed) Name() string { return l.name }
func (l *Listed) N() int       { return len(l.colors) }

// Lookup implements Colormap.
func (l *Listed) Lookup(x float64) palettes.RGBA {
	if len(l.colors) == 0 || math.IsNaN(x) {
		return transparent
	}
	return l.colors[lutIndex(x, len(l.colors))]
}

// At implements palette.ColorMap.
func (l *Listed) At(v float64) (color.Color, error) { return at(l, &l.scale, v) }

// Palette implements palette.ColorMap.
func (l *Listed) Palette(n int) palette.Palette { return paletteOf(l, &l.scale, n) }

// Colors returns the colors of the map in order.
func (l *Listed) Colors() []color.Color {
	out := make([]color.Color, len(l.colors))
	for i, c := range l.colors {
		out[i] = c.Color()
	}
	return out
}

// Reversed implements Colormap.
func (l *Listed) Reversed() Colormap {
	r := l.copy()
	r.name = reversedName(l.name)
	slices.Reverse(r.colors)
	return r
}

// Copy implements Colormap.
func (l *Listed) Copy() Colormap { return l.copy() }

func (l *Listed) copy() *Listed {
	return &Listed{scale: l.scale, name: l.name, colors: slices.Clone(l.colors)}
}
