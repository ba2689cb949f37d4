package eriplots

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/eriplots/eriplots/colormaps"
	"github.com/eriplots/eriplots/styles"
)

// Spine names.
const (
	SpineLeft   = "left"
	SpineBottom = "bottom"
	SpineRight  = "right"
	SpineTop    = "top"
)

// SpinePosition places a spine relative to the data area.
type SpinePosition struct {
	// Type is "outward" or empty for the default position on the data
	// area edge.
	Type string

	// Amount is the outward distance in points. Negative amounts move
	// the spine into the data area.
	Amount float64
}

// Outward returns a position d points away from the data area. A negative
// d moves the spine inward.
func Outward(d float64) SpinePosition {
	return SpinePosition{Type: "outward", Amount: d}
}

func (p SpinePosition) offset() vg.Length {
	if p.Type != "outward" {
		return 0
	}
	return vg.Points(p.Amount)
}

// Spine is one of the four lines bounding the data area.
type Spine struct {
	Visible  bool
	Position SpinePosition
}

// Axes is a single plot within a Figure.
//
// Plot is the underlying gonum plot; it can be used directly for anything
// the helpers here do not cover. Its axis line styles and paddings are
// managed through spines while drawing.
type Axes struct {
	Plot *plot.Plot

	params rc
	aspect float64
	spines map[string]*Spine

	cycle []color.Color
	next  int

	grid       *plotter.Grid
	xlim, ylim bool
	noMargins  bool
}

func newAxes(params styles.Params) *Axes {
	a := &Axes{
		Plot:   plot.New(),
		params: rc{params},
		spines: make(map[string]*Spine, 4),
	}
	for _, name := range []string{SpineLeft, SpineBottom, SpineRight, SpineTop} {
		a.spines[name] = &Spine{Visible: a.params.bool("axes.spines." + name)}
	}
	a.cycle = a.params.cycle()
	a.applyStyle()
	return a
}

// applyStyle copies the style parameters onto the gonum plot.
func (a *Axes) applyStyle() {
	r := a.params
	p := a.Plot
	family := r.str("font.family")

	p.BackgroundColor = nil

	p.Title.TextStyle.Font = fontFor(family, r.float("axes.titlesize"))
	p.Title.TextStyle.Color = r.color("axes.titlecolor")
	p.Title.Padding = r.points("axes.titlepad")

	for _, ax := range []struct {
		axis *plot.Axis
		tick string
	}{
		{&p.X, "xtick"},
		{&p.Y, "ytick"},
	} {
		ax.axis.Label.TextStyle.Font = fontFor(family, r.float("axes.labelsize"))
		ax.axis.Label.TextStyle.Color = r.color("axes.labelcolor")
		ax.axis.Label.Padding = r.points("axes.labelpad")

		ax.axis.LineStyle = draw.LineStyle{
			Color: r.color("axes.edgecolor"),
			Width: r.points("axes.linewidth"),
		}
		ax.axis.Padding = 0

		ax.axis.Tick.Label.Font = fontFor(family, r.float(ax.tick+".labelsize"))
		ax.axis.Tick.Label.Color = r.color(ax.tick + ".labelcolor")
		ax.axis.Tick.LineStyle = draw.LineStyle{
			Color: r.color(ax.tick + ".color"),
			Width: r.points(ax.tick + ".major.width"),
		}
		ax.axis.Tick.Length = r.points(ax.tick + ".major.size")
	}

	p.Legend.TextStyle.Font = fontFor(family, r.float("font.size"))
	p.Legend.TextStyle.Color = r.color("text.color")
}

// Params returns the style the axes was created with.
func (a *Axes) Params() styles.Params {
	return a.params.Clone()
}

// SetTitle sets the axes title.
func (a *Axes) SetTitle(s string) { a.Plot.Title.Text = s }

// SetXLabel sets the label of the x axis.
func (a *Axes) SetXLabel(s string) { a.Plot.X.Label.Text = s }

// SetYLabel sets the label of the y axis.
func (a *Axes) SetYLabel(s string) { a.Plot.Y.Label.Text = s }

// SetXLim fixes the x range. Margins no longer apply to it.
func (a *Axes) SetXLim(min, max float64) {
	a.Plot.X.Min, a.Plot.X.Max = min, max
	a.xlim = true
}

// SetYLim fixes the y range. Margins no longer apply to it.
func (a *Axes) SetYLim(min, max float64) {
	a.Plot.Y.Min, a.Plot.Y.Max = min, max
	a.ylim = true
}

// BoxAspect returns the height/width ratio of the data area, and false when
// the aspect is automatic.
func (a *Axes) BoxAspect() (float64, bool) {
	return a.aspect, a.aspect > 0
}

// SetBoxAspect fixes the height/width ratio of the data area. A value <= 0
// or NaN makes it automatic again.
func (a *Axes) SetBoxAspect(aspect float64) {
	if math.IsNaN(aspect) || math.IsInf(aspect, 0) || aspect <= 0 {
		a.aspect = 0
		return
	}
	a.aspect = aspect
}

// Spine returns the named spine, or nil for an unknown name.
func (a *Axes) Spine(name string) *Spine {
	return a.spines[name]
}

// NextColor returns the next color of the property cycle.
func (a *Axes) NextColor() color.Color {
	c := a.cycle[a.next%len(a.cycle)]
	a.next++
	return c
}

// Line adds a line in the next cycle color.
func (a *Axes) Line(xys plotter.XYer) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("eriplots: line: %w", err)
	}
	l.LineStyle.Color = a.NextColor()
	l.LineStyle.Width = a.params.points("lines.linewidth")
	a.Plot.Add(l)
	return l, nil
}

// Scatter adds circle markers in the next cycle color.
func (a *Axes) Scatter(xys plotter.XYer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("eriplots: scatter: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  a.NextColor(),
		Radius: a.params.points("lines.markersize") / 2,
		Shape:  draw.CircleGlyph{},
	}
	a.Plot.Add(s)
	return s, nil
}

// ScatterMapped adds circle markers colored by mapping each point's Z value
// through cm. The colormap is copied and its range set to the Z range.
func (a *Axes) ScatterMapped(xyzs plotter.XYZer, cm colormaps.Colormap) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYValues{XYZer: xyzs})
	if err != nil {
		return nil, fmt.Errorf("eriplots: scatter: %w", err)
	}
	n := xyzs.Len()
	zs := make([]float64, n)
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for i := range n {
		_, _, z := xyzs.XYZ(i)
		zs[i] = z
		if math.IsNaN(z) {
			continue
		}
		zmin = math.Min(zmin, z)
		zmax = math.Max(zmax, z)
	}
	cm = cm.Copy()
	if zmin <= zmax {
		cm.SetMin(zmin)
		cm.SetMax(zmax)
	}

	base := draw.GlyphStyle{
		Radius: a.params.points("lines.markersize") / 2,
		Shape:  draw.CircleGlyph{},
	}
	s.GlyphStyle = base
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := base
		c, err := cm.At(zs[i])
		if err != nil {
			c = color.Transparent
		}
		gs.Color = c
		return gs
	}
	a.Plot.Add(s)
	return s, nil
}

// HeatMap adds a heat map of g using every color of cm.
func (a *Axes) HeatMap(g plotter.GridXYZ, cm colormaps.Colormap) *plotter.HeatMap {
	h := plotter.NewHeatMap(g, cm.Palette(cm.N()))
	h.NaN = color.Transparent
	a.Plot.Add(h)
	return h
}

// ColorBar turns the axes into a color bar for cm. The axis across the bar
// is hidden.
func (a *Axes) ColorBar(cm colormaps.Colormap, vertical bool) *plotter.ColorBar {
	cb := &plotter.ColorBar{ColorMap: cm, Vertical: vertical}
	a.Plot.Add(cb)
	if vertical {
		a.Plot.HideX()
	} else {
		a.Plot.HideY()
	}
	a.noMargins = true
	return cb
}

// Grid enables grid lines at the major ticks, drawn in grid.color with
// grid.linewidth, below the data when axes.axisbelow is set.
func (a *Axes) Grid() *plotter.Grid {
	if a.grid == nil {
		style := draw.LineStyle{
			Color: a.params.color("grid.color"),
			Width: a.params.points("grid.linewidth"),
		}
		a.grid = &plotter.Grid{Vertical: style, Horizontal: style}
	}
	return a.grid
}

// Draw draws the axes into c, which is the whole tile including labels.
func (a *Axes) Draw(c draw.Canvas) {
	restore := a.prepare()
	defer restore()
	a.render(c, false)
}

// prepare applies margins and spine settings to the plot for drawing and
// returns a function that undoes them.
func (a *Axes) prepare() (restore func()) {
	p := a.Plot
	savedX, savedY := p.X, p.Y

	if !a.noMargins {
		if !a.xlim {
			p.X.Min, p.X.Max = expand(p.X.Min, p.X.Max, a.params.float("axes.xmargin"))
		}
		if !a.ylim {
			p.Y.Min, p.Y.Max = expand(p.Y.Min, p.Y.Max, a.params.float("axes.ymargin"))
		}
	}

	left, bottom := a.spines[SpineLeft], a.spines[SpineBottom]
	p.Y.Padding = left.Position.offset()
	p.X.Padding = bottom.Position.offset()
	if !left.Visible {
		p.Y.LineStyle = hidden
	}
	if !bottom.Visible {
		p.X.LineStyle = hidden
	}

	return func() {
		p.X, p.Y = savedX, savedY
	}
}

// hidden is the line style of an invisible spine. Some backends stroke a
// hairline for zero widths, so the color is transparent as well.
var hidden = draw.LineStyle{Color: color.Transparent}

// expand widens [min, max] by margin times its span on both sides.
func expand(min, max, margin float64) (float64, float64) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min || margin <= 0 {
		return min, max
	}
	d := (max - min) * margin
	return min - d, max + d
}

// fitAspect shrinks c so that the data area gets the box aspect.
func (a *Axes) fitAspect(c draw.Canvas) draw.Canvas {
	if a.aspect <= 0 {
		return c
	}
	dc := a.Plot.DataCanvas(c)
	w, h := dc.Max.X-dc.Min.X, dc.Max.Y-dc.Min.Y
	if w <= 0 || h <= 0 {
		return c
	}
	want := vg.Length(a.aspect) * w
	if h > want {
		d := (h - want) / 2
		return draw.Crop(c, 0, 0, d, -d)
	}
	d := (w - h/vg.Length(a.aspect)) / 2
	return draw.Crop(c, d, -d, 0, 0)
}

// render draws a prepared axes. A transparent axes leaves the data area
// background unpainted.
func (a *Axes) render(c draw.Canvas, transparent bool) {
	c = a.fitAspect(c)
	p := a.Plot
	dc := p.DataCanvas(c)

	if !transparent {
		dc.SetColor(a.params.color("axes.facecolor"))
		dc.Fill(dc.Rectangle.Path())
	}
	below := a.params.bool("axes.axisbelow")
	if a.grid != nil && below {
		a.grid.Plot(dc, p)
	}
	p.Draw(c)
	if a.grid != nil && !below {
		a.grid.Plot(dc, p)
	}

	edge := draw.LineStyle{
		Color: a.params.color("axes.edgecolor"),
		Width: a.params.points("axes.linewidth"),
	}
	if s := a.spines[SpineRight]; s.Visible {
		x := dc.Max.X + s.Position.offset()
		c.StrokeLine2(edge, x, dc.Min.Y, x, dc.Max.Y)
	}
	if s := a.spines[SpineTop]; s.Visible {
		y := dc.Max.Y + s.Position.offset()
		c.StrokeLine2(edge, dc.Min.X, y, dc.Max.X, y)
	}
}
