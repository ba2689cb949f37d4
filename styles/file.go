package styles

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a style file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath infers the style file format from the extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("styles: cannot infer style format of %q", path)
}

// Load reads a style file. Nested tables are flattened into dotted keys,
// so
//
//	[font]
//	size = 12
//
// and
//
//	"font.size" = 12
//
// are equivalent. Unknown parameters are an error.
func Load(path string) (Params, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("styles: %s: %w", path, err)
	}
	return p, nil
}

// Decode reads a style in the given format.
func Decode(r io.Reader, format Format) (Params, error) {
	raw := map[string]any{}
	switch format {
	case TOML:
		if err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("styles: unknown format %q", format)
	}

	p := Params{}
	flatten("", raw, p)
	if err := normalize(p); err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode writes p in the given format with flat, dotted keys.
func Encode(w io.Writer, p Params, format Format) error {
	v := encodable(p)
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("styles: unknown format %q", format)
}

func flatten(prefix string, in map[string]any, out Params) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = v
	}
}
