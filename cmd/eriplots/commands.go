package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/aclements/go-moremath/vec"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/plot/plotter"

	"github.com/eriplots/eriplots"
	"github.com/eriplots/eriplots/colormaps"
	"github.com/eriplots/eriplots/palettes"
	"github.com/eriplots/eriplots/savefig"
	"github.com/eriplots/eriplots/styles"
)

// Context is passed to every command's Run method.
type Context struct {
	Out io.Writer
}

// CLI is the command line grammar.
type CLI struct {
	Verbose bool             `short:"v" help:"Log debug messages to standard error."`
	Version kong.VersionFlag `help:"Print the version and exit."`

	Palette   PaletteCmd   `cmd:"" help:"Show palette colors as terminal swatches."`
	Colormaps ColormapsCmd `cmd:"" help:"List registered colormaps."`
	Style     StyleCmd     `cmd:"" help:"Print the ERI style as TOML or YAML."`
	Demo      DemoCmd      `cmd:"" help:"Render a demo figure."`
}

var (
	titleCase   = cases.Title(language.English)
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func swatch(c color.Color, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex(c))).
		Render(strings.Repeat(" ", width))
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

func profile(s string) (styles.Profile, error) {
	if s == "none" {
		s = ""
	}
	return styles.ParseProfile(s)
}

type PaletteCmd struct {
	Name string `arg:"" optional:"" help:"Palette to show; all palettes when omitted."`
}

func (p *PaletteCmd) Run(ctx *Context) error {
	names := palettes.Palettes()
	if p.Name != "" {
		if _, ok := palettes.Palette(p.Name); !ok {
			return fmt.Errorf("unknown palette %q (have %s)", p.Name, strings.Join(names, ", "))
		}
		names = []string{p.Name}
	}
	for _, name := range names {
		cs, _ := palettes.Palette(name)
		fmt.Fprintln(ctx.Out, headerStyle.Render(titleCase.String(name)))
		for _, c := range cs {
			fmt.Fprintf(ctx.Out, "  %s  %-12s %s\n", swatch(c, 4), titleCase.String(c.Name()), faintStyle.Render(c.Hex()))
		}
	}
	return nil
}

type ColormapsCmd struct {
	Samples  int  `short:"n" help:"Show this many samples of each colormap." default:"0"`
	Reversed bool `short:"r" help:"Include reversed colormaps."`
}

func (c *ColormapsCmd) Run(ctx *Context) error {
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	for _, name := range colormaps.Names() {
		if !c.Reversed && strings.HasSuffix(name, "_r") {
			continue
		}
		if c.Samples == 0 {
			fmt.Fprintln(ctx.Out, name)
			continue
		}
		cm, err := colormaps.Get(name)
		if err != nil {
			return err
		}
		var strip strings.Builder
		for _, s := range colormaps.Sample(cm, c.Samples) {
			strip.WriteString(swatch(s, 2))
		}
		fmt.Fprintf(ctx.Out, "%-18s %s\n", name, strip.String())
	}
	return nil
}

type StyleCmd struct {
	Profile  string  `short:"p" enum:"none,document,presentation" default:"none" help:"Target medium (${enum})."`
	BaseSize float64 `help:"Base font size in points; profile default when zero."`
	Family   string  `help:"Base font family."`
	Format   string  `short:"f" enum:"toml,yaml" default:"toml" help:"Output format (${enum})."`
	Output   string  `short:"o" type:"path" help:"Write to this file instead of standard output."`
}

func (s *StyleCmd) Run(ctx *Context) (err error) {
	prof, err := profile(s.Profile)
	if err != nil {
		return err
	}
	opts := []styles.Option{styles.WithProfile(prof)}
	if s.BaseSize > 0 {
		opts = append(opts, styles.WithBaseSize(s.BaseSize))
	}
	if s.Family != "" {
		opts = append(opts, styles.WithBaseFamily(s.Family))
	}

	w := ctx.Out
	if s.Output != "" {
		f, ferr := os.Create(s.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return styles.Encode(w, styles.EriStyle(opts...), styles.Format(s.Format))
}

type DemoCmd struct {
	Path     string   `arg:"" optional:"" default:"eriplots-demo" help:"Output path; a known extension adds its format."`
	Formats  []string `short:"f" help:"Formats to write instead of pdf, png and the path's extension."`
	DPI      float64  `help:"Raster resolution; the style's savefig.dpi when zero."`
	OptiPNG  string   `name:"optipng" enum:"auto,on,off" default:"auto" help:"Run optipng on PNG output (${enum})."`
	Profile  string   `short:"p" enum:"none,document,presentation" default:"none" help:"Target medium (${enum})."`
	Style    string   `type:"existingfile" help:"TOML or YAML style file applied on top of the ERI style."`
	Colormap string   `short:"c" default:"eri_red_cyan" help:"Colormap for the scatter and heat map panels."`
}

func (d *DemoCmd) Run(ctx *Context) error {
	prof, err := profile(d.Profile)
	if err != nil {
		return err
	}
	params := styles.EriStyle(styles.WithProfile(prof))
	if d.Style != "" {
		extra, err := styles.Load(d.Style)
		if err != nil {
			return err
		}
		params.Merge(extra)
	}
	cm, err := colormaps.Get(d.Colormap)
	if err != nil {
		return err
	}

	opts, formats, err := d.saveOptions()
	if err != nil {
		return err
	}

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return styles.Context(params, func() error {
		fig, err := demoFigure(cm)
		if err != nil {
			return err
		}
		if d.DPI <= 0 {
			opts = append(opts, savefig.WithDPI(fig.SaveDPI()))
		}
		if err := fig.Save(sctx, d.Path, opts...); err != nil {
			return err
		}
		for _, f := range savefig.Resolve(d.Path, formats) {
			name, _ := savefig.WithSuffix(d.Path, "."+string(f))
			fmt.Fprintln(ctx.Out, name)
		}
		return nil
	})
}

func (d *DemoCmd) saveOptions() (opts []savefig.Option, formats []savefig.Format, err error) {
	if len(d.Formats) > 0 {
		formats = make([]savefig.Format, 0, len(d.Formats))
		for _, s := range d.Formats {
			f, err := savefig.ParseFormat(s)
			if err != nil {
				return nil, nil, err
			}
			formats = append(formats, f)
		}
		opts = append(opts, savefig.WithFormats(formats...))
	}
	if d.DPI > 0 {
		opts = append(opts, savefig.WithDPI(d.DPI))
	}
	switch d.OptiPNG {
	case "on":
		opts = append(opts, savefig.WithOptiPNG(true))
	case "off":
		opts = append(opts, savefig.WithOptiPNG(false))
	}
	return opts, formats, nil
}

// demoFigure draws phase-shifted sines, a colored spiral, a heat map and
// a colorbar on a 2x2 grid.
func demoFigure(cm colormaps.Colormap) (*eriplots.Figure, error) {
	fig, axes, err := eriplots.Subplots(2, 2, eriplots.WithAutoShift())
	if err != nil {
		return nil, err
	}
	grid := axes.(*eriplots.AxesArray2D)
	fig.Suptitle("eriplots")

	lines := grid.At(0, 0)
	lines.SetTitle("Phase")
	lines.SetXLabel("x")
	lines.SetYLabel("sin(x + φ)")
	xs := vec.Linspace(0, 2*math.Pi, 200)
	for k := range 4 {
		xys := make(plotter.XYs, len(xs))
		for i, x := range xs {
			xys[i] = plotter.XY{X: x, Y: math.Sin(x + float64(k)*math.Pi/4)}
		}
		if _, err := lines.Line(xys); err != nil {
			return nil, err
		}
	}

	spiral := grid.At(0, 1)
	spiral.SetTitle("Spiral")
	ts := vec.Linspace(0, 4*math.Pi, 120)
	xyzs := make(plotter.XYZs, len(ts))
	for i, t := range ts {
		xyzs[i] = plotter.XYZ{X: t * math.Cos(t), Y: t * math.Sin(t), Z: t}
	}
	if _, err := spiral.ScatterMapped(xyzs, cm); err != nil {
		return nil, err
	}

	heat := grid.At(1, 0)
	heat.SetTitle("Field")
	heat.HeatMap(field{
		xs: vec.Linspace(-math.Pi, math.Pi, 40),
		ys: vec.Linspace(-math.Pi, math.Pi, 30),
	}, cm)

	bar := grid.At(1, 1)
	bar.SetTitle(cm.Name())
	bar.ColorBar(cm, true)

	return fig, nil
}

// field is sin(x)·cos(y) sampled on a regular grid.
type field struct{ xs, ys []float64 }

func (f field) Dims() (c, r int)   { return len(f.xs), len(f.ys) }
func (f field) Z(c, r int) float64 { return math.Sin(f.xs[c]) * math.Cos(f.ys[r]) }
func (f field) X(c int) float64    { return f.xs[c] }
func (f field) Y(r int) float64    { return f.ys[r] }
