package eriplots

import (
	"context"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eriplots/eriplots/savefig"
	"github.com/eriplots/eriplots/styles"
)

var _ savefig.Figure = (*Figure)(nil)

// Layout paddings. Constrained layout leaves a thin gap around the figure
// and between tiles; otherwise a fraction of the figure size is kept free.
const (
	constrainedPad   = 3 // points
	constrainedSpace = 0.02
	standardEdge     = 0.04
	standardSpace    = 0.08
	suptitleGap      = 4 // points
)

// Figure is a grid of axes drawn onto one canvas.
type Figure struct {
	width, height float64 // inches
	dpi           float64

	params rc
	rows   int
	cols   int
	axes   []*Axes

	suptitle    string
	transparent bool
}

func newFigure(rows, cols int, width, height, dpi float64, params styles.Params) *Figure {
	f := &Figure{
		width:  width,
		height: height,
		dpi:    dpi,
		params: rc{params},
		rows:   rows,
		cols:   cols,
		axes:   make([]*Axes, 0, rows*cols),
	}
	f.transparent = f.params.bool("savefig.transparent")
	for range rows * cols {
		f.axes = append(f.axes, newAxes(params))
	}
	return f
}

// Size returns the figure size.
func (f *Figure) Size() (w, h vg.Length) {
	return vg.Length(f.width) * vg.Inch, vg.Length(f.height) * vg.Inch
}

// SetSize sets the figure size in inches.
func (f *Figure) SetSize(width, height float64) {
	f.width, f.height = width, height
}

// DPI returns the figure resolution.
func (f *Figure) DPI() float64 { return f.dpi }

// SetDPI sets the figure resolution.
func (f *Figure) SetDPI(dpi float64) { f.dpi = dpi }

// SaveDPI returns the resolution for saved raster images: savefig.dpi when
// it is a number, the figure resolution when it is "figure".
func (f *Figure) SaveDPI() float64 {
	if dpi, ok := f.params.Float("savefig.dpi"); ok && dpi > 0 {
		return dpi
	}
	return f.dpi
}

// Suptitle sets a title centered above all axes.
func (f *Figure) Suptitle(s string) { f.suptitle = s }

// Transparent reports whether the figure and axes backgrounds are left
// unpainted.
func (f *Figure) Transparent() bool { return f.transparent }

// SetTransparent overrides savefig.transparent for this figure.
func (f *Figure) SetTransparent(v bool) { f.transparent = v }

// Shape returns the grid dimensions.
func (f *Figure) Shape() (rows, cols int) { return f.rows, f.cols }

// Axes returns every axes in row-major order.
func (f *Figure) Axes() []*Axes {
	return append([]*Axes(nil), f.axes...)
}

// Params returns the style the figure was created with.
func (f *Figure) Params() styles.Params {
	return f.params.Clone()
}

// tiles returns the grid layout for a canvas of the given size.
func (f *Figure) tiles(w, h vg.Length) draw.Tiles {
	t := draw.Tiles{Rows: f.rows, Cols: f.cols}
	var edgeX, edgeY vg.Length
	if f.params.bool("figure.constrained_layout.use") {
		edgeX, edgeY = vg.Points(constrainedPad), vg.Points(constrainedPad)
		t.PadX = 2*vg.Points(constrainedPad) + constrainedSpace*w
		t.PadY = 2*vg.Points(constrainedPad) + constrainedSpace*h
	} else {
		edgeX, edgeY = standardEdge*w, standardEdge*h
		t.PadX = standardSpace * w
		t.PadY = standardSpace * h
	}
	if f.params.str("savefig.bbox") == "tight" {
		pad := vg.Length(f.params.float("savefig.pad_inches")) * vg.Inch
		edgeX, edgeY = pad, pad
	}
	t.PadLeft, t.PadRight = edgeX, edgeX
	t.PadTop, t.PadBottom = edgeY, edgeY
	return t
}

// Draw lays the axes out on c and draws them.
func (f *Figure) Draw(c draw.Canvas) {
	if !f.transparent {
		c.SetColor(f.params.color("figure.facecolor"))
		c.Fill(c.Rectangle.Path())
	}

	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	tiles := f.tiles(w, h)

	if f.suptitle != "" {
		sty := text.Style{
			Color:   f.params.color("text.color"),
			Font:    fontFor(f.params.str("font.family"), f.params.float("figure.titlesize")),
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plot.DefaultTextHandler,
		}
		top := c.Max.Y - tiles.PadTop
		c.FillText(sty, vg.Point{X: c.Center().X, Y: top}, f.suptitle)
		c = draw.Crop(c, 0, 0, 0, -(sty.Height(f.suptitle) + vg.Points(suptitleGap)))
	}

	plots := make([][]*plot.Plot, f.rows)
	for i := range f.rows {
		plots[i] = make([]*plot.Plot, f.cols)
		for j := range f.cols {
			ax := f.axes[i*f.cols+j]
			restore := ax.prepare()
			defer restore()
			plots[i][j] = ax.Plot
		}
	}

	canvases := plot.Align(plots, tiles, c)
	for i := range f.rows {
		for j := range f.cols {
			f.axes[i*f.cols+j].render(canvases[i][j], f.transparent)
		}
	}
}

// Save writes the figure to every requested format next to path.
// See savefig.SaveFigures.
func (f *Figure) Save(ctx context.Context, path string, opts ...savefig.Option) error {
	return savefig.SaveFigures(ctx, f, path, opts...)
}
