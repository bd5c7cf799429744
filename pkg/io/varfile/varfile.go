// Package varfile loads the variable files that feed job specification
// placeholders.
//
// Supported formats are dotenv (.env), JSON (.json) and YAML (.yaml, .yml).
// Dotenv files extend the environment; JSON and YAML files form a nested
// variable tree, deep-merged in the order given.
package varfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVarFile is returned for files with an unknown extension.
var ErrUnsupportedVarFile = errors.New("unsupported variable file")

// ErrNotAMapping is returned when a JSON or YAML file does not hold an object
// at the top level.
var ErrNotAMapping = errors.New("variable file must contain a mapping")

// Set is the merged content of a list of variable files.
type Set struct {
	// Vars is the deep-merged variable tree of all JSON and YAML files.
	Vars map[string]any
	// Env holds the entries of all dotenv files; later files win.
	Env map[string]string
}

// Load reads paths in order and merges them.
func Load(paths ...string) (*Set, error) {
	set := &Set{Vars: map[string]any{}, Env: map[string]string{}}

	for _, path := range paths {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".env":
			entries, err := godotenv.Read(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dotenv file %q: %w", path, err)
			}

			maps.Copy(set.Env, entries)
		case ".json":
			vars, err := readTree(path, decodeJSON)
			if err != nil {
				return nil, err
			}

			set.Vars = Merge(set.Vars, vars)
		case ".yaml", ".yml":
			vars, err := readTree(path, decodeYAML)
			if err != nil {
				return nil, err
			}

			set.Vars = Merge(set.Vars, vars)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedVarFile, path)
		}
	}

	return set, nil
}

// Environ appends the dotenv entries to base, which is in os.Environ form.
// Dotenv entries are sorted by name and come last so that they win.
func (s *Set) Environ(base []string) []string {
	out := slices.Clone(base)

	for _, name := range slices.Sorted(maps.Keys(s.Env)) {
		out = append(out, name+"="+s.Env[name])
	}

	return out
}

// Merge returns current deep-merged with next. Nested maps merge
// recursively; any other value in next replaces the one in current. Neither
// input is modified.
func Merge(current, next map[string]any) map[string]any {
	out := maps.Clone(current)
	if out == nil {
		out = make(map[string]any, len(next))
	}

	for key, value := range next {
		nextMap, nextIsMap := value.(map[string]any)
		currentMap, currentIsMap := out[key].(map[string]any)

		if nextIsMap && currentIsMap {
			out[key] = Merge(currentMap, nextMap)

			continue
		}

		out[key] = value
	}

	return out
}

func readTree(path string, decode func([]byte, *any) error) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read variable file %q: %w", path, err)
	}

	var doc any

	err = decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse variable file %q: %w", path, err)
	}

	switch tree := doc.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return tree, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotAMapping, path)
	}
}

func decodeJSON(data []byte, out *any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	return json.Unmarshal(data, out)
}

func decodeYAML(data []byte, out *any) error {
	return yaml.Unmarshal(data, out)
}
