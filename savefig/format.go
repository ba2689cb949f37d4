package savefig

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"
	"sync"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format names an output file format. Its value doubles as the file suffix
// without the leading dot.
type Format string

// Supported formats.
const (
	PDF  Format = "pdf"
	SVG  Format = "svg"
	EPS  Format = "eps"
	PNG  Format = "png"
	TIFF Format = "tiff"
	JPEG Format = "jpeg"
	WebP Format = "webp"
)

// suffixes maps lower-case file suffixes to the formats they add to the
// defaults. JPEG is written only when requested by name.
var suffixes = map[string]Format{
	"pdf":  PDF,
	"svg":  SVG,
	"eps":  EPS,
	"png":  PNG,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WebP,
}

// formatNames holds format names accepted by ParseFormat beyond the suffixes.
var formatNames = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
}

// ErrWebPUnsupported is returned when webp output is requested but no webp
// encoder has been registered.
var ErrWebPUnsupported = errors.New("savefig: webp output is not supported; register a webp encoder first")

// UnknownFormatError is returned for a format that has no encoder.
type UnknownFormatError struct {
	Format Format
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("savefig: unknown format %q", string(e.Format))
}

// DefaultFormats returns the formats written when none are requested.
func DefaultFormats() []Format {
	return []Format{PDF, PNG}
}

// FormatFromSuffix returns the format for a file suffix such as ".TIF" or
// "svg".
func FormatFromSuffix(suffix string) (Format, bool) {
	f, ok := suffixes[strings.ToLower(strings.TrimPrefix(suffix, "."))]
	return f, ok
}

// ParseFormat returns the format named s, accepting any known suffix as
// well as "jpg" and "jpeg".
func ParseFormat(s string) (Format, error) {
	if f, ok := FormatFromSuffix(s); ok {
		return f, nil
	}
	if f, ok := formatNames[strings.ToLower(strings.TrimPrefix(s, "."))]; ok {
		return f, nil
	}
	return "", &UnknownFormatError{Format: Format(s)}
}

// Encoder creates a canvas of the given size that writes one file format.
// dpi applies to raster formats; transparent selects a transparent instead
// of a white page.
type Encoder func(w, h vg.Length, dpi float64, transparent bool) vg.CanvasWriterTo

var (
	encodersMu sync.RWMutex
	encoders   = map[Format]Encoder{}
)

func init() {
	Register(PDF, func(w, h vg.Length, _ float64, _ bool) vg.CanvasWriterTo {
		return vgpdf.New(w, h)
	})
	Register(SVG, func(w, h vg.Length, _ float64, _ bool) vg.CanvasWriterTo {
		return vgsvg.New(w, h)
	})
	Register(EPS, func(w, h vg.Length, _ float64, _ bool) vg.CanvasWriterTo {
		return vgeps.New(w, h)
	})
	Register(PNG, func(w, h vg.Length, dpi float64, transparent bool) vg.CanvasWriterTo {
		return vgimg.PngCanvas{Canvas: raster(w, h, dpi, transparent)}
	})
	Register(TIFF, func(w, h vg.Length, dpi float64, transparent bool) vg.CanvasWriterTo {
		return vgimg.TiffCanvas{Canvas: raster(w, h, dpi, transparent)}
	})
	Register(JPEG, func(w, h vg.Length, dpi float64, _ bool) vg.CanvasWriterTo {
		return vgimg.JpegCanvas{Canvas: raster(w, h, dpi, false)}
	})
}

func raster(w, h vg.Length, dpi float64, transparent bool) *vgimg.Canvas {
	var bg color.Color = color.White
	if transparent {
		bg = color.Transparent
	}
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	return vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(int(dpi+0.5)),
		vgimg.UseBackgroundColor(bg),
	)
}

// Register installs the encoder for a format, replacing any previous one.
func Register(f Format, enc Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	encoders[f] = enc
}

// Unregister removes the encoder for a format.
func Unregister(f Format) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	delete(encoders, f)
}

// IsRegistered reports whether f has an encoder.
func IsRegistered(f Format) bool {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	_, ok := encoders[f]
	return ok
}

// Formats returns the registered formats in sorted order.
func Formats() []Format {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	return slices.Sorted(maps.Keys(encoders))
}

func encoder(f Format) (Encoder, error) {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	enc, ok := encoders[f]
	if !ok {
		if f == WebP {
			return nil, ErrWebPUnsupported
		}
		return nil, &UnknownFormatError{Format: f}
	}
	return enc, nil
}
