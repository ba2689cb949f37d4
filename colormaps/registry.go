package colormaps

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/eriplots/eriplots/palettes"
)

// ErrExists is returned by Register when the name is taken and force is
// not set.
var ErrExists = errors.New("colormaps: colormap already registered")

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Colormap)
)

// Register stores cm under name. An existing colormap with the same name
// is replaced only when force is true. The registry keeps its own copy.
func Register(name string, cm Colormap, force bool) error {
	if cm == nil {
		return errors.New("colormaps: Register colormap is nil")
	}
	if name == "" {
		name = cm.Name()
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[name]; dup && !force {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	registry[name] = cm.Copy()
	return nil
}

// Unregister removes a colormap. Unknown names are a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Get returns a copy of the named colormap, so callers may change its
// range or alpha without affecting other users.
func Get(name string) (Colormap, error) {
	registryMu.RLock()
	cm, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("colormaps: unknown colormap %q", name)
	}
	return cm.Copy(), nil
}

// Must is like Get but panics if the colormap is not registered.
func Must(name string) Colormap {
	cm, err := Get(name)
	if err != nil {
		panic(err)
	}
	return cm
}

// Names returns the sorted names of all registered colormaps.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a colormap with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Continuous lists the endpoints of the continuous ERI colormaps.
var Continuous = []struct {
	Name     string
	From, To palettes.Color
}{
	{"eri_red_cyan", palettes.DarkRed, palettes.LightBlue},
	{"eri_red_blue", palettes.DarkRed, palettes.DarkBlue},
}

// DiscreteName is the registry name of the discrete colormap derived from
// the named palette.
func DiscreteName(paletteName string) string {
	return "eri_" + paletteName
}

// registerERI installs the discrete and continuous ERI colormaps and their
// reversals, replacing any previous registration.
func registerERI() {
	for _, p := range palettes.Palettes() {
		cs, _ := palettes.Palette(p)
		cm := FromPalette(DiscreteName(p), cs)
		mustRegister(cm)
		mustRegister(cm.Reversed())
	}
	for _, c := range Continuous {
		cm := NewLinear(c.Name, c.From, c.To)
		mustRegister(cm)
		mustRegister(cm.Reversed())
	}
}

func mustRegister(cm Colormap) {
	if err := Register(cm.Name(), cm, true); err != nil {
		panic(err)
	}
}

func init() {
	registerERI()
}
