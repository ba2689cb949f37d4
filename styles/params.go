package styles

import (
	"fmt"
	"image/color"
	"maps"
	"slices"

	"github.com/eriplots/eriplots/palettes"
)

// Params is a flat style dictionary keyed by dotted parameter names such
// as "font.size" or "axes.linewidth".
type Params map[string]any

// Cycle is a property cycle, e.g. the sequence of line colors.
type Cycle struct {
	Key    string
	Values []string
}

// ColorCycle returns a "color" cycle over the given palette colors.
func ColorCycle(cs []palettes.Color) Cycle {
	c := Cycle{Key: "color", Values: make([]string, len(cs))}
	for i, pc := range cs {
		c.Values[i] = pc.Hex()
	}
	return c
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	return maps.Clone(p)
}

// Merge copies every key of o into p, overwriting existing values.
func (p Params) Merge(o Params) {
	maps.Copy(p, o)
}

// Keys returns the sorted parameter names.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Float returns a numeric parameter.
func (p Params) Float(key string) (float64, bool) {
	return toFloat(p[key])
}

// Bool returns a boolean parameter.
func (p Params) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// String returns a string parameter.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Color returns a color parameter. Strings are parsed with
// palettes.ParseColor.
func (p Params) Color(key string) (color.Color, bool) {
	switch v := p[key].(type) {
	case color.Color:
		return v, true
	case string:
		c, err := palettes.ParseColor(v)
		if err != nil {
			return nil, false
		}
		return c.Color(), true
	}
	return nil, false
}

// Figsize returns a (width, height) pair in inches.
func (p Params) Figsize(key string) (w, h float64, ok bool) {
	v, err := toPair(p[key])
	if err != nil {
		return 0, 0, false
	}
	return v[0], v[1], true
}

// Cycle returns a property cycle parameter.
func (p Params) Cycle(key string) (Cycle, bool) {
	c, err := toCycle(p[key])
	return c, err == nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toPair(v any) ([2]float64, error) {
	switch x := v.(type) {
	case [2]float64:
		return x, nil
	case []float64:
		if len(x) == 2 {
			return [2]float64{x[0], x[1]}, nil
		}
	case []any:
		if len(x) == 2 {
			a, ok1 := toFloat(x[0])
			b, ok2 := toFloat(x[1])
			if ok1 && ok2 {
				return [2]float64{a, b}, nil
			}
		}
	}
	return [2]float64{}, fmt.Errorf("styles: %v is not a pair of numbers", v)
}

func toCycle(v any) (Cycle, error) {
	switch x := v.(type) {
	case Cycle:
		return x, nil
	case []string:
		return Cycle{Key: "color", Values: slices.Clone(x)}, nil
	case []any:
		c := Cycle{Key: "color", Values: make([]string, len(x))}
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return Cycle{}, fmt.Errorf("styles: cycle entry %v is not a string", e)
			}
			c.Values[i] = s
		}
		return c, nil
	}
	return Cycle{}, fmt.Errorf("styles: %v is not a property cycle", v)
}

// normalize converts values decoded from style files into the Go types
// used by EriStyle and Defaults: numbers become float64, figure sizes
// [2]float64, and property cycles Cycle.
func normalize(p Params) error {
	for k, v := range p {
		switch k {
		case "figure.figsize":
			pair, err := toPair(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			p[k] = pair
		case "axes.prop_cycle":
			c, err := toCycle(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			p[k] = c
		default:
			if f, ok := toFloat(v); ok {
				p[k] = f
			}
		}
	}
	return nil
}

// encodable returns a copy of p with values converted to plain types that
// TOML and YAML encoders understand.
func encodable(p Params) map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		switch x := v.(type) {
		case Cycle:
			out[k] = x.Values
		case [2]float64:
			out[k] = []float64{x[0], x[1]}
		default:
			out[k] = v
		}
	}
	return out
}
