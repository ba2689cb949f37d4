package eriplots

import (
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/eriplots/eriplots/palettes"
	"github.com/eriplots/eriplots/styles"
)

var defaultParams = styles.Defaults()

// rc reads style parameters, falling back to the built-in defaults when a
// key is missing or has the wrong type.
type rc struct {
	styles.Params
}

func (r rc) float(key string) float64 {
	if v, ok := r.Float(key); ok {
		return v
	}
	v, _ := defaultParams.Float(key)
	return v
}

func (r rc) points(key string) vg.Length {
	return vg.Points(r.float(key))
}

func (r rc) bool(key string) bool {
	if v, ok := r.Bool(key); ok {
		return v
	}
	v, _ := defaultParams.Bool(key)
	return v
}

func (r rc) str(key string) string {
	if v, ok := r.String(key); ok {
		return v
	}
	v, _ := defaultParams.String(key)
	return v
}

func (r rc) color(key string) color.Color {
	if c, ok := r.Color(key); ok {
		return c
	}
	if c, ok := defaultParams.Color(key); ok {
		return c
	}
	return color.Black
}

// cycle resolves axes.prop_cycle to colors. Entries that do not parse are
// skipped.
func (r rc) cycle() []color.Color {
	c, ok := r.Cycle("axes.prop_cycle")
	if !ok {
		c, _ = defaultParams.Cycle("axes.prop_cycle")
	}
	out := make([]color.Color, 0, len(c.Values))
	for _, v := range c.Values {
		pc, err := palettes.ParseColor(v)
		if err != nil {
			continue
		}
		out = append(out, pc.Color())
	}
	if len(out) == 0 {
		out = append(out, color.Black)
	}
	return out
}
