// Package savefig writes one figure to several file formats at once and
// optionally post-processes the PNG output with optipng.
//
// The formats come from WithFormats when given. Otherwise the defaults
// (pdf and png) are used, plus the format implied by the path's extension:
//
//	savefig.SaveFigures(ctx, fig, "out/scatter.svg")
//	// writes out/scatter.pdf, out/scatter.png and out/scatter.svg
//
// Every file name is the path with its extension replaced by the format's.
package savefig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eriplots/eriplots/internal/logger"
	"github.com/eriplots/eriplots/internal/optipng"
)

// Figure is anything that can draw itself onto a canvas of its own size.
type Figure interface {
	Size() (w, h vg.Length)
	DPI() float64
	Draw(c draw.Canvas)
}

// transparenter is implemented by figures that can leave their
// background unpainted.
type transparenter interface {
	Transparent() bool
}

// ErrEmptyName is returned for paths without a file name.
var ErrEmptyName = errors.New("savefig: path has an empty name")

// Option configures SaveFigures.
type Option func(*options)

type options struct {
	formats []Format
	dpi     float64
	optipng *bool
}

// WithFormats selects the formats to write. The path's extension is not
// added to an explicit list, and an empty list writes nothing.
func WithFormats(formats ...Format) Option {
	return func(o *options) {
		o.formats = append(make([]Format, 0, len(formats)), formats...)
	}
}

// WithDPI sets the resolution of raster output. Without it the figure's
// own resolution is used.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// WithOptiPNG forces the optimizer on or off. When enabled, optimizer
// failures are returned; by default they only disable further attempts.
func WithOptiPNG(enabled bool) Option {
	return func(o *options) {
		o.optipng = &enabled
	}
}

// Suffix returns the extension of the last path element, including the
// dot, or "" when it has none. Leading dots and a trailing dot do not
// start an extension.
func Suffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if 0 < i && i < len(name)-1 {
		return name[i:]
	}
	return ""
}

// WithSuffix replaces the extension of path with suffix, which must be
// empty or start with a dot. The path is cleaned first.
func WithSuffix(path, suffix string) (string, error) {
	if suffix != "" && (!strings.HasPrefix(suffix, ".") || suffix == "." || strings.ContainsAny(suffix, `/\`)) {
		return "", fmt.Errorf("savefig: invalid suffix %q", suffix)
	}
	dir, name := filepath.Split(filepath.Clean(path))
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, path)
	}
	return dir + strings.TrimSuffix(name, Suffix(name)) + suffix, nil
}

// Resolve returns the formats SaveFigures writes for path. A nil formats
// slice selects the defaults plus the format of path's extension; a
// non-nil empty slice selects nothing.
func Resolve(path string, formats []Format) []Format {
	if formats != nil {
		return formats
	}
	out := DefaultFormats()
	if f, ok := FormatFromSuffix(Suffix(path)); ok && !slices.Contains(out, f) {
		out = append(out, f)
	}
	return out
}

// SaveFigures draws fig once per format and writes each result next to
// path. All formats are checked before any file is written.
func SaveFigures(ctx context.Context, fig Figure, path string, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	formats := Resolve(path, o.formats)
	encs := make([]Encoder, len(formats))
	names := make([]string, len(formats))
	for i, f := range formats {
		enc, err := encoder(f)
		if err != nil {
			return err
		}
		name, err := WithSuffix(path, "."+string(f))
		if err != nil {
			return err
		}
		encs[i], names[i] = enc, name
	}

	dpi := o.dpi
	if dpi <= 0 {
		dpi = fig.DPI()
	}
	var noBackground bool
	if t, ok := fig.(transparenter); ok {
		noBackground = t.Transparent()
	}

	w, h := fig.Size()
	log := logger.Get()
	for i, f := range formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := save(fig, encs[i](w, h, dpi, noBackground), names[i]); err != nil {
			return err
		}
		log.Debug("savefig: wrote figure", "path", names[i], "format", string(f), "dpi", dpi)
	}

	i := slices.Index(formats, PNG)
	if i < 0 {
		return nil
	}
	return optimize(ctx, names[i], o.optipng)
}

func save(fig Figure, c vg.CanvasWriterTo, name string) (err error) {
	fig.Draw(draw.New(c))

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("savefig: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("savefig: %w", cerr)
		}
	}()
	if _, err := c.WriteTo(file); err != nil {
		return fmt.Errorf("savefig: write %s: %w", name, err)
	}
	return nil
}

// optimize runs optipng unless it is disabled or known to be missing.
// Failures to run it are returned only when it was requested explicitly.
func optimize(ctx context.Context, name string, requested *bool) error {
	if requested != nil && !*requested {
		return nil
	}
	if optipng.Unavailable() {
		return nil
	}

	err := optipng.Run(ctx, name)
	if err == nil {
		return nil
	}
	var exit *optipng.ExitError
	if !errors.Is(err, optipng.ErrNotFound) && !errors.As(err, &exit) {
		return err
	}
	optipng.MarkUnavailable()
	logger.Get().Warn("savefig: optipng unavailable, PNG output left unoptimized", "err", err)
	if requested != nil {
		return err
	}
	return nil
}
