// Package colormaps derives discrete and continuous colormaps from the ERI
// palette and registers them by name.
//
// For every palette p two discrete colormaps are registered, "eri_p" and
// its reversal "eri_p_r". Two continuous colormaps, "eri_red_cyan"
// (darkred to lightblue) and "eri_red_blue" (darkred to darkblue), are
// registered with their reversals as well.
//
// Every colormap implements gonum.org/v1/plot/palette.ColorMap, so it can
// be handed directly to plotter.HeatMap, plotter.ColorBar and friends.
package colormaps

import (
	"image/color"
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/palette"

	"github.com/eriplots/eriplots/palettes"
)

// DefaultN is the lookup-table size of continuous colormaps.
const DefaultN = 256

// Colormap maps a scalar to a color.
//
// At departs from the palette.ColorMap contract for values outside
// [Min, Max]: they clip to the end colors instead of returning
// palette.ErrUnderflow or palette.ErrOverflow. NaN still returns
// palette.ErrNaN.
type Colormap interface {
	palette.ColorMap

	// Name is the registry name of the colormap.
	Name() string

	// N is the number of distinct colors the colormap can produce.
	N() int

	// Lookup returns the color for a value already normalized to [0, 1].
	// Values outside the range clip to the end colors; NaN yields a
	// fully transparent color.
	Lookup(x float64) palettes.RGBA

	// Reversed returns the colormap with its colors in reverse order.
	Reversed() Colormap

	// Copy returns an independent copy, including range and alpha.
	Copy() Colormap
}

// scale holds the value range and opacity shared by every colormap.
type scale struct {
	min, max float64
	alpha    float64
}

func newScale() scale {
	return scale{min: 0, max: 1, alpha: 1}
}

func (s *scale) Min() float64       { return s.min }
func (s *scale) Max() float64       { return s.max }
func (s *scale) SetMin(v float64)   { s.min = v }
func (s *scale) SetMax(v float64)   { s.max = v }
func (s *scale) Alpha() float64     { return s.alpha }
func (s *scale) SetAlpha(a float64) { s.alpha = clamp01(a) }

// normalize maps v from [min, max] onto [0, 1]. A degenerate range maps
// every value to 0.
func (s *scale) normalize(v float64) float64 {
	if s.max == s.min {
		return 0
	}
	return (v - s.min) / (s.max - s.min)
}

// lutIndex returns the lookup-table slot for a normalized value. The
// value is clipped in float space so that huge or infinite inputs land
// on the end slots.
func lutIndex(x float64, n int) int {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return n - 1
	}
	return min(int(x*float64(n)), n-1)
}

// at implements palette.ColorMap.At on top of Lookup. Out-of-range values
// clip rather than fail.
func at(cm Colormap, s *scale, v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	c := cm.Lookup(s.normalize(v))
	c.A *= s.alpha
	return c.Color(), nil
}

// paletteOf samples n colors evenly across [min, max].
func paletteOf(cm Colormap, s *scale, n int) palette.Palette {
	if n <= 0 {
		return colorList(nil)
	}
	colors := make([]color.Color, 0, n)
	for _, v := range vec.Linspace(s.min, s.max, n) {
		c, err := at(cm, s, v)
		if err != nil {
			c = color.Transparent
		}
		colors = append(colors, c)
	}
	return colorList(colors)
}

// colorList implements palette.Palette.
type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// RGBA maps values normalized to [0, 1] to RGBA quadruples in [0, 1].
func RGBA(cm Colormap, values []float64) [][4]float64 {
	out := make([][4]float64, len(values))
	alpha := cm.Alpha()
	for i, x := range values {
		c := cm.Lookup(x)
		out[i] = [4]float64{c.R, c.G, c.B, c.A * alpha}
	}
	return out
}

// Sample returns n colors evenly spaced over the colormap.
func Sample(cm Colormap, n int) []color.Color {
	return paletteOf(cm, &scale{min: cm.Min(), max: cm.Max(), alpha: cm.Alpha()}, n).Colors()
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func reversedName(name string) string {
	const suffix = "_r"
	if n := len(name); n > len(suffix) && name[n-len(suffix):] == suffix {
		return name[:n-len(suffix)]
	}
	return name + suffix
}

var transparent = palettes.RGBA{}
