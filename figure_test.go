package eriplots

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/eriplots/eriplots/colormaps"
	"github.com/eriplots/eriplots/savefig"
	"github.com/eriplots/eriplots/styles"
)

func sine(n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		x := float64(i) / float64(n-1) * 2 * math.Pi
		xys[i] = plotter.XY{X: x, Y: math.Sin(x)}
	}
	return xys
}

func rasterize(t *testing.T, fig *Figure, bg color.Color) *vgimg.Canvas {
	t.Helper()
	w, h := fig.Size()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(fig.DPI())), vgimg.UseBackgroundColor(bg))
	fig.Draw(draw.New(c))
	return c
}

func TestFigureDrawFacecolor(t *testing.T) {
	t.Cleanup(styles.Reset)

	fig, axes, err := Subplots(1, 1, WithFigsize(2, 2), WithDPI(50), WithStyle(styles.Params{"figure.facecolor": "#FF0000"}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := axes.(*Axes).Line(sine(20)); err != nil {
		t.Fatal(err)
	}

	img := rasterize(t, fig, color.Transparent).Image()
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("corner pixel = %v, want figure facecolor red", img.At(0, 0))
	}

	fig.SetTransparent(true)
	img = rasterize(t, fig, color.Transparent).Image()
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("transparent figure corner alpha = %#x, want 0", a)
	}
}

func TestFigureTransparentFromStyle(t *testing.T) {
	t.Cleanup(styles.Reset)
	if err := styles.Use(styles.Params{"savefig.transparent": true}); err != nil {
		t.Fatal(err)
	}
	fig, _, err := Subplots(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !fig.Transparent() {
		t.Error("savefig.transparent should make the figure transparent")
	}
}

func TestFigureDrawAllBackends(t *testing.T) {
	t.Cleanup(styles.Reset)
	if err := styles.Use(styles.EriStyle(styles.WithProfile(styles.Document))); err != nil {
		t.Fatal(err)
	}

	fig, axes, err := Subplots(2, 2, WithAutoShift(), WithAspect(0.75))
	if err != nil {
		t.Fatal(err)
	}
	fig.Suptitle("overview")
	grid := axes.(*AxesArray2D)

	line := grid.At(0, 0)
	line.SetTitle("line")
	line.SetXLabel("x")
	line.SetYLabel("sin x")
	line.Grid()
	if _, err := line.Line(sine(50)); err != nil {
		t.Fatal(err)
	}

	xyzs := make(plotter.XYZs, 30)
	for i := range xyzs {
		xyzs[i] = plotter.XYZ{X: float64(i), Y: float64(i % 7), Z: float64(i)}
	}
	if _, err := grid.At(0, 1).ScatterMapped(xyzs, colormaps.Must("eri_red_cyan")); err != nil {
		t.Fatal(err)
	}

	grid.At(1, 0).HeatMap(testGrid{rows: 4, cols: 5}, colormaps.Must("eri_colors"))
	grid.At(1, 1).ColorBar(colormaps.Must("eri_red_blue"), true)

	w, h := fig.Size()
	canvases := map[string]vg.CanvasSizer{
		"png": vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72)),
		"pdf": vgpdf.New(w, h),
		"svg": vgsvg.New(w, h),
	}
	for name, c := range canvases {
		t.Run(name, func(t *testing.T) {
			fig.Draw(draw.New(c))
		})
	}

	// Margins are applied for drawing only.
	if got := line.Plot.X.Min; got != 0 {
		t.Errorf("line x min = %v after drawing, want data minimum 0", got)
	}
}

func TestBoxAspectFitsDataArea(t *testing.T) {
	for _, aspect := range []float64{0.5, 1, 2} {
		fig, axes, err := Subplots(1, 1, WithFigsize(6, 4), WithAspect(aspect))
		if err != nil {
			t.Fatal(err)
		}
		ax := axes.(*Axes)
		if _, err := ax.Line(sine(10)); err != nil {
			t.Fatal(err)
		}

		w, h := fig.Size()
		c := draw.New(vgimg.New(w, h))
		restore := ax.prepare()
		dc := ax.Plot.DataCanvas(ax.fitAspect(c))
		restore()

		got := float64((dc.Max.Y - dc.Min.Y) / (dc.Max.X - dc.Min.X))
		if math.Abs(got-aspect)/aspect > 0.01 {
			t.Errorf("aspect %v: data area ratio = %v", aspect, got)
		}
	}
}

func TestSpineShiftPadsAxis(t *testing.T) {
	tests := []struct {
		name string
		y, x float64
	}{
		{"outward", 12, 0},
		{"inward", -3, 0},
		{"both", -5, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, axes, err := Subplots(1, 1, WithShiftXY(tt.y, tt.x))
			if err != nil {
				t.Fatal(err)
			}
			ax := axes.(*Axes)
			ax.Spine(SpineBottom).Visible = false

			restore := ax.prepare()
			if ax.Plot.Y.Padding != vg.Points(tt.y) {
				t.Errorf("y padding = %v, want %vpt", ax.Plot.Y.Padding, tt.y)
			}
			if ax.Plot.X.Padding != vg.Points(tt.x) {
				t.Errorf("x padding = %v, want %vpt", ax.Plot.X.Padding, tt.x)
			}
			if ax.Plot.X.LineStyle.Color != hidden.Color {
				t.Error("hidden bottom spine should not be stroked")
			}
			restore()

			if ax.Plot.Y.Padding != 0 || ax.Plot.X.LineStyle.Width == 0 {
				t.Error("restore should undo spine settings")
			}
		})
	}
}

func TestFigureSave(t *testing.T) {
	t.Cleanup(styles.Reset)
	if err := styles.Use(styles.EriStyle()); err != nil {
		t.Fatal(err)
	}
	fig, axes, err := Subplots(1, 2, WithFigsize(4, 2), WithDPI(50))
	if err != nil {
		t.Fatal(err)
	}
	for _, ax := range axes.Flat() {
		if _, err := ax.Scatter(sine(15)); err != nil {
			t.Fatal(err)
		}
	}

	dir := t.TempDir()
	if err := fig.Save(context.Background(), filepath.Join(dir, "scatter.svg"), savefig.WithOptiPNG(false)); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"scatter.pdf", "scatter.png", "scatter.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

type testGrid struct{ rows, cols int }

func (g testGrid) Dims() (c, r int)   { return g.cols, g.rows }
func (g testGrid) Z(c, r int) float64 { return float64(c + r*g.cols) }
func (g testGrid) X(c int) float64    { return float64(c) }
func (g testGrid) Y(r int) float64    { return float64(r) }
