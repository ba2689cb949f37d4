package eriplots

import (
	"image/color"
	"slices"
	"strings"
	"testing"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/eriplots/eriplots/styles"
)

func TestFontFor(t *testing.T) {
	tests := []struct {
		family  string
		size    float64
		want    font.Typeface
		variant font.Variant
	}{
		{"sans-serif", 10, "Liberation", "Sans"},
		{"Serif", 12, "Liberation", "Serif"},
		{"monospace", 8, "Liberation", "Mono"},
		{`"No Such Font", serif`, 9, "Liberation", "Serif"},
		{"no such font", 11, "Liberation", "Sans"},
		{"Go", 10, "Go", ""},
		{"go mono", 10, "Go", "Mono"},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			got := fontFor(tt.family, tt.size)
			if got.Typeface != tt.want || got.Variant != tt.variant {
				t.Errorf("fontFor(%q) = %s %s, want %s %s", tt.family, got.Typeface, got.Variant, tt.want, tt.variant)
			}
			if got.Size != vg.Points(tt.size) {
				t.Errorf("size = %v, want %vpt", got.Size, tt.size)
			}
			if !font.DefaultCache.Has(got) {
				t.Errorf("%s %s is not in the font cache", got.Typeface, got.Variant)
			}
		})
	}
}

func TestRegisterFont(t *testing.T) {
	family, err := RegisterFont(gosmallcaps.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(family, "Go ") {
		t.Errorf("family = %q, want a Go font family", family)
	}
	if !slices.Contains(Families(), strings.ToLower(family)) {
		t.Errorf("Families() = %v lacks %q", Families(), family)
	}
	if got := fontFor(family, 10); string(got.Typeface) != family || !font.DefaultCache.Has(got) {
		t.Errorf("fontFor(%q) = %+v", family, got)
	}

	family, err = RegisterFont(gomediumitalic.TTF)
	if err != nil {
		t.Fatal(err)
	}
	italic := font.Font{Typeface: font.Typeface(family), Style: xfont.StyleItalic}
	if !font.DefaultCache.Has(italic) {
		t.Error("italic face should be registered from its subfamily")
	}

	if _, err := RegisterFont([]byte("not a font")); err == nil {
		t.Error("garbage should not parse as a font")
	}
}

func TestRCFallsBackToDefaults(t *testing.T) {
	r := rc{styles.Params{"lines.linewidth": "wide", "axes.edgecolor": "#FF0000"}}

	want, _ := defaultParams.Float("lines.linewidth")
	if got := r.float("lines.linewidth"); got != want {
		t.Errorf("float(lines.linewidth) = %v, want default %v", got, want)
	}
	if got := r.points("lines.linewidth"); got != vg.Points(want) {
		t.Errorf("points(lines.linewidth) = %v", got)
	}
	if c := color.NRGBAModel.Convert(r.color("axes.edgecolor")).(color.NRGBA); c != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("color(axes.edgecolor) = %v, want red", c)
	}
	if c := r.color("no.such.color"); c != color.Black {
		t.Errorf("color(no.such.color) = %v, want black", c)
	}
	if cs := r.cycle(); len(cs) == 0 {
		t.Error("cycle() should fall back to the default cycle")
	}
}
