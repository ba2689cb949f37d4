// Package palettes defines the ERI color palette as an enumeration for
// named access.
//
// In addition to the primary and secondary brand colors, yellow has been
// replaced and pink and gray added from R. Robison's collection of
// logo-related colors.
package palettes

import (
	"image/color"
	"sort"
	"strings"
)

// Color is one entry of the ERI palette.
type Color int

// The palette in its canonical order. Colormaps and the default color
// cycle follow this order.
const (
	MediumBlue Color = iota
	DarkRed
	LightBlue
	Gray
	Yellow
	DarkGreen
	Pink
	DarkBlue
	BrightRed
	Brown
	LightGreen
	Orange
	numColors
)

var entries = [numColors]struct {
	name string
	hex  string
}{
	MediumBlue: {"mediumblue", "#005E7B"},
	DarkRed:    {"darkred", "#D0073A"},
	LightBlue:  {"lightblue", "#008CA5"},
	Gray:       {"gray", "#777777"},
	Yellow:     {"yellow", "#FBC15E"},
	DarkGreen:  {"darkgreen", "#307F42"},
	Pink:       {"pink", "#FFB5B8"},
	DarkBlue:   {"darkblue", "#063157"},
	BrightRed:  {"brightred", "#EA0D49"},
	Brown:      {"brown", "#603534"},
	LightGreen: {"lightgreen", "#70B73F"},
	Orange:     {"orange", "#F7941D"},
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	return c >= 0 && c < numColors
}

// Name returns the lowercase name of the color, e.g. "mediumblue".
func (c Color) Name() string {
	if !c.Valid() {
		return ""
	}
	return entries[c].name
}

// Hex returns the color as an uppercase "#RRGGBB" string.
func (c Color) Hex() string {
	if !c.Valid() {
		return ""
	}
	return entries[c].hex
}

// String returns the hex value, so a Color formats the way the
// underlying string enumeration does.
func (c Color) String() string {
	return c.Hex()
}

// Float returns the color in float RGBA form.
func (c Color) Float() RGBA {
	return Hex(c.Hex())
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Float().Color().RGBA()
}

var _ color.Color = MediumBlue

// Colors returns every palette color in canonical order.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Lookup resolves a color by name, ignoring case.
func Lookup(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, e := range entries {
		if e.name == name {
			return Color(i), true
		}
	}
	return 0, false
}

// palettes maps each palette name to its colors. Colormaps are derived
// from every entry.
var palettes = map[string]func() []Color{
	"colors": Colors,
}

// Palettes returns the sorted names of all palettes.
func Palettes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette returns the colors of the named palette.
func Palette(name string) ([]Color, bool) {
	fn, ok := palettes[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}
