package styles

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownKey is returned when a style names a parameter that does not
// exist.
var ErrUnknownKey = errors.New("styles: unknown style parameter")

// Defaults returns the built-in parameter values every style overrides.
// The key set is the set of valid parameter names.
func Defaults() Params {
	return Params{
		"figure.figsize":                [2]float64{6.4, 4.8},
		"figure.dpi":                    100.0,
		"figure.facecolor":              "1",
		"figure.titlesize":              12.0,
		"figure.constrained_layout.use": false,

		"font.family": "sans-serif",
		"font.size":   10.0,
		"text.color":  "0",

		"axes.titlesize":  12.0,
		"axes.labelsize":  10.0,
		"axes.titlepad":   6.0,
		"axes.labelpad":   4.0,
		"axes.titlecolor": "0",
		"axes.labelcolor": "0",
		"axes.edgecolor":  "0",
		"axes.facecolor":  "1",
		"axes.linewidth":  0.8,
		"axes.axisbelow":  false,
		"axes.xmargin":    0.05,
		"axes.ymargin":    0.05,

		"axes.spines.left":   true,
		"axes.spines.bottom": true,
		"axes.spines.right":  true,
		"axes.spines.top":    true,

		"axes.prop_cycle": Cycle{Key: "color", Values: []string{
			"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
			"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
		}},

		"xtick.labelsize":   10.0,
		"ytick.labelsize":   10.0,
		"xtick.color":       "0",
		"ytick.color":       "0",
		"xtick.labelcolor":  "0",
		"ytick.labelcolor":  "0",
		"xtick.major.size":  3.5,
		"ytick.major.size":  3.5,
		"xtick.major.width": 0.8,
		"ytick.major.width": 0.8,
		"xtick.major.pad":   3.5,
		"ytick.major.pad":   3.5,

		"grid.color":     "0.69",
		"grid.linewidth": 0.8,

		"lines.linewidth":  1.5,
		"lines.markersize": 6.0,

		"savefig.dpi":         "figure",
		"savefig.bbox":        "standard",
		"savefig.pad_inches":  0.1,
		"savefig.transparent": false,
	}
}

var (
	rcMu sync.RWMutex
	rc   = Defaults()
)

// Current returns a snapshot of the global style parameters.
func Current() Params {
	rcMu.RLock()
	defer rcMu.RUnlock()
	return rc.Clone()
}

// Get returns one global style parameter, or nil if it does not exist.
func Get(key string) any {
	rcMu.RLock()
	defer rcMu.RUnlock()
	return rc[key]
}

// Validate reports the first parameter in p that is not a known key.
func Validate(p Params) error {
	known := Defaults()
	for _, k := range p.Keys() {
		if _, ok := known[k]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
	}
	return nil
}

// Use applies p on top of the global style. Nothing is applied if p
// contains an unknown key.
func Use(p Params) error {
	if err := Validate(p); err != nil {
		return err
	}
	rcMu.Lock()
	defer rcMu.Unlock()
	rc.Merge(p)
	return nil
}

// Reset restores the built-in defaults.
func Reset() {
	rcMu.Lock()
	defer rcMu.Unlock()
	rc = Defaults()
}

// Context applies p for the duration of fn and then restores the style
// that was in effect before, even if fn panics. Concurrent Context calls
// from different goroutines see each other's overrides.
func Context(p Params, fn func() error) error {
	if err := Validate(p); err != nil {
		return err
	}

	rcMu.Lock()
	saved := rc.Clone()
	rc.Merge(p)
	rcMu.Unlock()

	defer func() {
		rcMu.Lock()
		rc = saved
		rcMu.Unlock()
	}()
	return fn()
}
