package styles

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTOMLNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eri.toml")
	src := `
"axes.prop_cycle" = ["#005E7B", "#D0073A"]

[font]
size = 12
family = "serif"

[figure]
figsize = [4, 3]
`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := p.Float("font.size"); got != 12 {
		t.Errorf("font.size = %v, want 12", got)
	}
	if got := p["font.size"]; got != 12.0 {
		t.Errorf("font.size should be normalized to float64, got %T", got)
	}
	if got, _ := p.String("font.family"); got != "serif" {
		t.Errorf("font.family = %q", got)
	}
	if w, h, ok := p.Figsize("figure.figsize"); !ok || w != 4 || h != 3 {
		t.Errorf("figure.figsize = %v x %v", w, h)
	}
	if c, ok := p.Cycle("axes.prop_cycle"); !ok || len(c.Values) != 2 {
		t.Errorf("axes.prop_cycle = %+v", c)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eri.yml")
	src := "axes:\n  linewidth: 0.5\n  spines:\n    top: false\nlines.linewidth: 2\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := p.Float("axes.linewidth"); got != 0.5 {
		t.Errorf("axes.linewidth = %v", got)
	}
	if got, ok := p.Bool("axes.spines.top"); !ok || got {
		t.Errorf("axes.spines.top = %v, %v", got, ok)
	}
	if got, _ := p.Float("lines.linewidth"); got != 2 {
		t.Errorf("lines.linewidth = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "style.json")); err == nil {
		t.Error("unsupported extension should fail")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("bogus.key = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown key error = %v, want ErrUnknownKey", err)
	}

	badSize := filepath.Join(dir, "size.yaml")
	if err := os.WriteFile(badSize, []byte("figure.figsize: [1, 2, 3]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badSize); err == nil {
		t.Error("three-element figsize should fail")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := EriStyle(WithProfile(Presentation))
	for _, format := range []Format{TOML, YAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, want, format); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if len(got) != len(want) {
				t.Fatalf("decoded %d keys, want %d", len(got), len(want))
			}
			for _, k := range []string{"font.size", "axes.linewidth", "savefig.dpi"} {
				a, _ := got.Float(k)
				b, _ := want.Float(k)
				if a != b {
					t.Errorf("%s = %v, want %v", k, a, b)
				}
			}
			c, _ := got.Cycle("axes.prop_cycle")
			if strings.Join(c.Values, ",") != strings.Join(want["axes.prop_cycle"].(Cycle).Values, ",") {
				t.Errorf("axes.prop_cycle = %v", c.Values)
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, Params{}, "ini"); err == nil {
		t.Error("unknown format should fail")
	}
}
