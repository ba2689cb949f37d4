// Package eriplots provides plotting utilities in support of ERI's
// figure conventions, on top of gonum.org/v1/plot.
//
// # Overview
//
// The module is organized into:
//   - palettes: the ERI color palette as a named enumeration
//   - colormaps: discrete and continuous colormaps derived from the palette
//   - styles: the ERI style as a flat parameter dictionary, plus the
//     process-wide style state it is applied to
//   - savefig: saving a figure to several formats at once, with optional
//     lossless PNG optimization
//   - eriplots (this package): Subplots, Figure, Axes and Alpha
//
// # Quick Start
//
//	import (
//		"github.com/eriplots/eriplots"
//		"github.com/eriplots/eriplots/savefig"
//		"github.com/eriplots/eriplots/styles"
//	)
//
//	_ = styles.Use(styles.EriStyle(styles.WithProfile(styles.Document)))
//
//	fig, axes, err := eriplots.Subplots(1, 2, eriplots.WithAutoShift())
//	if err != nil { ... }
//	row := axes.(*eriplots.AxesArray1D)
//	row.At(0).Line(xys)
//
//	err = savefig.SaveFigures(ctx, fig, "out/figure") // out/figure.pdf, out/figure.png
//
// # Subplots results
//
// Subplots mirrors the squeezing rules of a grid-of-axes constructor: a
// 1x1 grid yields a single *Axes, a single row or column (or any grid when
// flattening) yields *AxesArray1D, anything else *AxesArray2D. All three
// implement AxesSet.
package eriplots

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
