package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/eriplots/eriplots/styles"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("eriplots"),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %q", args) }),
		kong.Vars{"version": "test"},
	)
	if err != nil {
		t.Fatal(err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	err = kctx.Run(&Context{Out: &out})
	return out.String(), err
}

func TestPaletteCmd(t *testing.T) {
	out, err := run(t, "palette", "colors")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Colors", "Mediumblue", "#005E7B", "Orange", "#F7941D"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "palette", "nope"); err == nil {
		t.Error("unknown palette should fail")
	}
}

func TestColormapsCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"plain", nil, []string{"eri_colors\n", "eri_red_blue\n"}, []string{"_r\n"}},
		{"reversed", []string{"-r"}, []string{"eri_red_cyan_r\n"}, nil},
		{"samples", []string{"-n", "5"}, []string{"eri_red_cyan "}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"colormaps"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output lacks %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output contains %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestStyleCmdRoundTrip(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "eri."+format)
			if _, err := run(t, "style", "-p", "document", "-f", format, "-o", path); err != nil {
				t.Fatal(err)
			}
			p, err := styles.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			want := styles.EriStyle(styles.WithProfile(styles.Document))
			if got, _ := p.Float("font.size"); got != mustFloat(t, want, "font.size") {
				t.Errorf("font.size = %v, want %v", got, mustFloat(t, want, "font.size"))
			}
			if w, h, ok := p.Figsize("figure.figsize"); !ok || w != 4.5 || h != 2.5 {
				t.Errorf("figure.figsize = %v x %v", w, h)
			}
		})
	}
}

func mustFloat(t *testing.T, p styles.Params, key string) float64 {
	t.Helper()
	v, ok := p.Float(key)
	if !ok {
		t.Fatalf("%s missing", key)
	}
	return v
}

func TestStyleCmdRejectsProfile(t *testing.T) {
	if _, err := run(t, "style", "-p", "poster"); err == nil {
		t.Error("unknown profile should fail to parse")
	}
}

func TestDemoCmd(t *testing.T) {
	t.Cleanup(styles.Reset)
	base := filepath.Join(t.TempDir(), "demo.svg")

	out, err := run(t, "demo", base, "--optipng=off", "--dpi=30")
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".pdf", ".png", ".svg"} {
		name := strings.TrimSuffix(base, ".svg") + ext
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
		if !strings.Contains(out, name) {
			t.Errorf("output does not list %s", name)
		}
	}
}

func TestDemoCmdFormats(t *testing.T) {
	t.Cleanup(styles.Reset)
	dir := t.TempDir()
	base := filepath.Join(dir, "demo")

	if _, err := run(t, "demo", base, "-f", "eps", "-f", "tif", "--optipng=off", "--dpi=20"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if strings.Join(names, ",") != "demo.eps,demo.tiff" {
		t.Errorf("files = %v", names)
	}

	if _, err := run(t, "demo", base, "-f", "bmp"); err == nil {
		t.Error("unknown format should fail")
	}
	if _, err := run(t, "demo", base, "-c", "no_such_map"); err == nil {
		t.Error("unknown colormap should fail")
	}
}
