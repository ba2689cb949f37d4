package eriplots

import (
	"fmt"

	"github.com/eriplots/eriplots/styles"
)

// Option configures Subplots.
//
// Example:
//
//	fig, axes, err := eriplots.Subplots(2, 3,
//		eriplots.WithFigsize(7, 4),
//		eriplots.WithAspect(1),
//		eriplots.WithFlatten(),
//	)
type Option func(*subplotsOptions)

type subplotsOptions struct {
	figsize *[2]float64
	aspect  float64
	dpi     float64
	flatten bool

	// shift is the outward offset of the (left, bottom) spines in points.
	shift     [2]float64
	autoShift bool

	style styles.Params
}

// WithFigsize sets the figure width and height in inches. The default is
// figure.figsize.
func WithFigsize(width, height float64) Option {
	return func(o *subplotsOptions) {
		o.figsize = &[2]float64{width, height}
	}
}

// WithAspect sets the box aspect (height/width of the data area) of every
// axes.
func WithAspect(aspect float64) Option {
	return func(o *subplotsOptions) {
		o.aspect = aspect
	}
}

// WithDPI sets the figure resolution. The default is figure.dpi.
func WithDPI(dpi float64) Option {
	return func(o *subplotsOptions) {
		o.dpi = dpi
	}
}

// WithFlatten returns a grid with several rows and columns as a
// one-dimensional array in row-major order.
func WithFlatten() Option {
	return func(o *subplotsOptions) {
		o.flatten = true
	}
}

// WithShift moves the left and bottom spines of every axes outward by d
// points, which gives "capped" axes. Negative values move them inward.
func WithShift(d float64) Option {
	return WithShiftXY(d, d)
}

// WithShiftXY moves the left (y axis) spine outward by y points and the
// bottom (x axis) spine by x points.
func WithShiftXY(y, x float64) Option {
	return func(o *subplotsOptions) {
		o.shift = [2]float64{y, x}
		o.autoShift = false
	}
}

// WithAutoShift moves only the left spine outward, by twice
// xtick.major.size.
func WithAutoShift() Option {
	return func(o *subplotsOptions) {
		o.autoShift = true
	}
}

// WithStyle applies params on top of the global style for this figure
// only.
func WithStyle(params styles.Params) Option {
	return func(o *subplotsOptions) {
		if o.style == nil {
			o.style = styles.Params{}
		}
		o.style.Merge(params)
	}
}

// Subplots creates a figure with an nrows x ncols grid of axes styled from
// the global style.
//
// The returned AxesSet is a *Axes for a 1x1 grid, an *AxesArray1D when
// there is a single row or column or WithFlatten is given, and an
// *AxesArray2D otherwise.
func Subplots(nrows, ncols int, opts ...Option) (*Figure, AxesSet, error) {
	if nrows < 1 || ncols < 1 {
		return nil, nil, fmt.Errorf("eriplots: invalid grid %dx%d", nrows, ncols)
	}

	var o subplotsOptions
	for _, opt := range opts {
		opt(&o)
	}

	params := styles.Current()
	if o.style != nil {
		if err := styles.Validate(o.style); err != nil {
			return nil, nil, err
		}
		params.Merge(o.style)
	}
	r := rc{params}

	w, h, ok := params.Figsize("figure.figsize")
	if !ok {
		w, h, _ = defaultParams.Figsize("figure.figsize")
	}
	if o.figsize != nil {
		w, h = o.figsize[0], o.figsize[1]
	}
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("eriplots: invalid figure size %vx%v", w, h)
	}
	dpi := r.float("figure.dpi")
	if o.dpi > 0 {
		dpi = o.dpi
	}

	shift := o.shift
	if o.autoShift {
		shift = [2]float64{2 * r.float("xtick.major.size"), 0}
	}

	fig := newFigure(nrows, ncols, w, h, dpi, params)
	for _, ax := range fig.axes {
		if o.aspect != 0 {
			ax.SetBoxAspect(o.aspect)
		}
		if shift != [2]float64{} {
			ax.spines[SpineLeft].Position = Outward(shift[0])
			ax.spines[SpineBottom].Position = Outward(shift[1])
		}
	}

	Logger().Debug("eriplots: subplots", "rows", nrows, "cols", ncols, "width", w, "height", h, "dpi", dpi)

	switch {
	case nrows == 1 && ncols == 1:
		return fig, fig.axes[0], nil
	case nrows == 1 || ncols == 1 || o.flatten:
		return fig, NewAxesArray1D(fig.Axes()), nil
	}
	grid := make([][]*Axes, nrows)
	for i := range nrows {
		grid[i] = fig.axes[i*ncols : (i+1)*ncols]
	}
	axes, err := NewAxesArray2D(grid)
	if err != nil {
		return nil, nil, err
	}
	return fig, axes, nil
}
