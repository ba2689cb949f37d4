package eriplots

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/eriplots/eriplots/internal/logger"
)

// ErrNoFamily is returned by RegisterFont when the font carries no family
// name.
var ErrNoFamily = errors.New("eriplots: font has no family name")

var (
	familiesMu sync.RWMutex

	// families maps lower-cased font.family values onto font descriptors
	// present in font.DefaultCache.
	families = map[string]font.Font{
		"sans-serif": {Typeface: "Liberation", Variant: "Sans"},
		"sans":       {Typeface: "Liberation", Variant: "Sans"},
		"serif":      {Typeface: "Liberation", Variant: "Serif"},
		"monospace":  {Typeface: "Liberation", Variant: "Mono"},
		"mono":       {Typeface: "Liberation", Variant: "Mono"},
	}
)

func init() {
	registerGoFonts()
}

// registerGoFonts adds the Go font family under the names "Go" and
// "Go Mono".
func registerGoFonts() {
	faces := []struct {
		fnt font.Font
		ttf []byte
	}{
		{font.Font{Typeface: "Go"}, goregular.TTF},
		{font.Font{Typeface: "Go", Weight: xfont.WeightBold}, gobold.TTF},
		{font.Font{Typeface: "Go", Style: xfont.StyleItalic}, goitalic.TTF},
		{font.Font{Typeface: "Go", Weight: xfont.WeightBold, Style: xfont.StyleItalic}, gobolditalic.TTF},
		{font.Font{Typeface: "Go", Variant: "Mono"}, gomono.TTF},
	}
	var coll font.Collection
	for _, f := range faces {
		face, err := opentype.Parse(f.ttf)
		if err != nil {
			panic(fmt.Errorf("eriplots: could not parse Go font: %w", err))
		}
		coll = append(coll, font.Face{Font: f.fnt, Face: face})
	}
	font.DefaultCache.Add(coll)

	familiesMu.Lock()
	families["go"] = font.Font{Typeface: "Go"}
	families["go mono"] = font.Font{Typeface: "Go", Variant: "Mono"}
	familiesMu.Unlock()
}

// RegisterFont parses a TrueType or OpenType font and makes it available
// as a font.family value under the family name stored in its name table.
// Bold and italic faces of an already registered family are recognized
// from their subfamily name.
func RegisterFont(ttf []byte) (string, error) {
	face, err := opentype.Parse(ttf)
	if err != nil {
		return "", fmt.Errorf("eriplots: parse font: %w", err)
	}

	var buf sfnt.Buffer
	family, err := face.Name(&buf, sfnt.NameIDFamily)
	if err != nil || strings.TrimSpace(family) == "" {
		return "", ErrNoFamily
	}
	family = strings.TrimSpace(family)

	fnt := font.Font{Typeface: font.Typeface(family)}
	if sub, err := face.Name(&buf, sfnt.NameIDSubfamily); err == nil {
		sub = strings.ToLower(sub)
		if strings.Contains(sub, "bold") {
			fnt.Weight = xfont.WeightBold
		}
		if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
			fnt.Style = xfont.StyleItalic
		}
	}
	font.DefaultCache.Add(font.Collection{{Font: fnt, Face: face}})

	familiesMu.Lock()
	families[strings.ToLower(family)] = font.Font{Typeface: fnt.Typeface}
	familiesMu.Unlock()

	logger.Get().Debug("eriplots: registered font", "family", family, "weight", fnt.Weight, "style", fnt.Style)
	return family, nil
}

// Families returns the recognized font.family values.
func Families() []string {
	familiesMu.RLock()
	defer familiesMu.RUnlock()
	return slices.Sorted(maps.Keys(families))
}

// fontFor resolves a font.family value, which may be a comma-separated
// list of candidates, to a font descriptor of the given size in points.
// Unknown families fall back to sans-serif.
func fontFor(family string, size float64) font.Font {
	familiesMu.RLock()
	defer familiesMu.RUnlock()

	for _, name := range strings.Split(family, ",") {
		key := strings.ToLower(strings.Trim(strings.TrimSpace(name), `"'`))
		if f, ok := families[key]; ok {
			f.Size = vg.Points(size)
			return f
		}
	}
	logger.Get().Warn("eriplots: unknown font family, using sans-serif", "family", family)
	f := families["sans-serif"]
	f.Size = vg.Points(size)
	return f
}
