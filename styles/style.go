// Package styles builds the ERI plotting style as a flat dictionary of
// parameter overrides and holds the process-wide style state those
// overrides are applied to.
//
// Set the overall styling:
//
//	p := styles.EriStyle(styles.WithProfile(styles.Presentation))
//	if err := styles.Use(p); err != nil { ... }
//
// Or apply it only while building one figure:
//
//	err := styles.Context(styles.EriStyle(styles.WithBaseSize(10)), func() error {
//		fig, axes, err := eriplots.Subplots(1, 1)
//		...
//	})
package styles

import (
	"fmt"
	"math"

	"github.com/eriplots/eriplots/palettes"
)

// Unit conversions.
const (
	// GGPlot2MM is the size of ggplot2's linewidth unit, roughly 0.75 mm.
	GGPlot2MM = 0.75

	// MMToPt converts millimeters to points.
	MMToPt = 72.0 / 10 / 2.54
)

// Profile selects defaults for a target medium.
type Profile int

const (
	// NoProfile keeps the host defaults for figure size and DPI.
	NoProfile Profile = iota
	// Document sizes fonts and figures for printed documents.
	Document
	// Presentation sizes fonts and figures for slides.
	Presentation
)

func (p Profile) String() string {
	switch p {
	case Document:
		return "document"
	case Presentation:
		return "presentation"
	default:
		return ""
	}
}

// ParseProfile parses "document", "presentation" or "" (no profile).
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "":
		return NoProfile, nil
	case "document":
		return Document, nil
	case "presentation":
		return Presentation, nil
	}
	return NoProfile, fmt.Errorf("styles: unknown profile %q", s)
}

// profileDefaults holds what a profile contributes to the style.
type profileDefaults struct {
	baseSize float64
	figsize  [2]float64
	dpi      float64
}

var profiles = map[Profile]profileDefaults{
	Document:     {baseSize: 10, figsize: [2]float64{4.5, 2.5}, dpi: 300},
	Presentation: {baseSize: 18, figsize: [2]float64{7, 4}, dpi: 300},
}

// DefaultBaseSize is the base font size when neither an explicit size nor
// a profile provides one.
const DefaultBaseSize = 11

// Option configures EriStyle.
type Option func(*options)

type options struct {
	profile      Profile
	baseSize     *float64
	baseFamily   string
	baseLineSize *float64
}

func defaultOptions() options {
	return options{baseFamily: "sans-serif"}
}

// WithProfile sets the base font size, figure size and save DPI to suit
// the given medium.
func WithProfile(p Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithBaseSize sets the base font size in points. The textual elements of
// a figure are sized relative to it. It takes precedence over the
// profile's base size.
func WithBaseSize(pt float64) Option {
	return func(o *options) { o.baseSize = &pt }
}

// WithBaseFamily sets the font family. Generic names ("sans-serif",
// "serif", "monospace") and registered family names are accepted.
func WithBaseFamily(family string) Option {
	return func(o *options) { o.baseFamily = family }
}

// WithBaseLineSize sets the width of spines and tick marks in points. By
// default line widths scale with the base font size the same way as the
// ERI R theme.
func WithBaseLineSize(pt float64) Option {
	return func(o *options) { o.baseLineSize = &pt }
}

// FontRel returns the relative (harmonic) font size for step n.
func FontRel(n float64) float64 {
	return math.Pow(2, n/5)
}

// FontAbs returns the absolute (harmonic) font size for step n, relative
// to the current "font.size".
func FontAbs(n float64) float64 {
	size, _ := Current().Float("font.size")
	return FontRel(n) * size
}

// RLineWidth is the line width of the ERI R theme for a base font size:
// the R theme uses base/(10/0.3) ggplot2 units.
func RLineWidth(baseSize float64) float64 {
	return baseSize / (10 / 0.3) * GGPlot2MM * MMToPt
}

// EriStyle returns the ERI style as parameter overrides.
func EriStyle(opts ...Option) Params {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Base size precedence: explicit, profile, default.
	baseSize := float64(DefaultBaseSize)
	prof, hasProfile := profiles[o.profile]
	if hasProfile {
		baseSize = prof.baseSize
	}
	if o.baseSize != nil {
		baseSize = *o.baseSize
	}

	tickSize := 4.0 / 10 * baseSize
	const (
		textGray = "0.25"
		limsGray = "0.65"
	)

	lineWidth := RLineWidth(baseSize)
	if o.baseLineSize != nil {
		lineWidth = *o.baseLineSize
	}

	p := Params{}

	if hasProfile {
		p["figure.figsize"] = prof.figsize
	}

	// Fonts start at the base size and move down from there.
	p["font.family"] = o.baseFamily
	p["font.size"] = baseSize
	p["text.color"] = textGray
	p["axes.labelsize"] = baseSize * FontRel(1)
	p["axes.titlesize"] = baseSize * FontRel(1)
	p["figure.titlesize"] = baseSize * FontRel(2)
	p["xtick.labelsize"] = baseSize * FontRel(-1)
	p["ytick.labelsize"] = baseSize * FontRel(-1)

	// No top and right edges.
	p["axes.spines.right"] = false
	p["axes.spines.top"] = false

	// Spines and ticks are light gray, text is dark gray.
	p["axes.edgecolor"] = limsGray
	p["xtick.color"] = limsGray
	p["ytick.color"] = limsGray
	p["axes.labelcolor"] = textGray
	p["axes.titlecolor"] = textGray
	p["xtick.labelcolor"] = textGray
	p["ytick.labelcolor"] = textGray

	// Spines, ticks and grids share one width.
	p["axes.linewidth"] = lineWidth
	p["xtick.major.width"] = lineWidth
	p["ytick.major.width"] = lineWidth
	p["grid.color"] = limsGray
	p["grid.linewidth"] = lineWidth

	// Tick sizes and spacing. The pads are the gap between a tick and its
	// label, the gap to an axes title, and the gap to an axis label.
	p["xtick.major.pad"] = tickSize / 2
	p["ytick.major.pad"] = tickSize / 2
	p["xtick.major.size"] = tickSize
	p["ytick.major.size"] = tickSize
	p["axes.titlepad"] = tickSize
	p["axes.labelpad"] = tickSize

	// Standard boxes, padded in case "tight" is chosen later.
	p["savefig.bbox"] = "standard"
	p["savefig.pad_inches"] = 10.0 / 72
	p["figure.constrained_layout.use"] = true

	if hasProfile {
		p["savefig.dpi"] = prof.dpi
	}

	p["lines.markersize"] = 3.0
	p["lines.linewidth"] = 1.25

	p["axes.axisbelow"] = true
	p["axes.xmargin"] = 0.05
	p["axes.ymargin"] = 0.05

	p["axes.prop_cycle"] = ColorCycle(palettes.Colors())

	return p
}
