// Package envvar expands [[ name ]] placeholders in job specifications from
// variables and the environment.
package envvar

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"
)

// ErrUndefined is returned when a placeholder names no variable.
var ErrUndefined = errors.New("undefined variables")

// ErrNotScalar is returned when a placeholder resolves to a map or a list.
var ErrNotScalar = errors.New("variable is not a scalar")

// pattern matches [[ a.b-c.d_e ]] placeholders; spaces inside the brackets are optional.
var pattern = regexp.MustCompile(
	`\[\[\s*([A-Za-z_][A-Za-z0-9_-]*(?:\.[A-Za-z_][A-Za-z0-9_-]*)*)\s*\]\]`,
)

// excludedPrefixes are environment namespaces owned by the scheduler and its
// service mesh; they never shadow variables.
var excludedPrefixes = []string{"NOMAD", "CONSUL"}

// envReplacer drops "_" and "-" and maps "." to "_".
var envReplacer = strings.NewReplacer("_", "", "-", "", ".", "_")

// EnvName returns the environment variable that overrides a dotted variable
// key: upper-cased, "_" and "-" removed, "." turned into "_".
// For example "env.production.database_url" becomes "ENV_PRODUCTION_DATABASEURL".
func EnvName(key string) string {
	return envReplacer.Replace(strings.ToUpper(key))
}

// Resolver resolves dotted variable keys. The environment wins over variables.
type Resolver struct {
	vars map[string]any
	env  map[string]string
}

// NewResolver builds a resolver from nested variables and an environment in
// os.Environ form. Environment entries whose first "_" segment is NOMAD or
// CONSUL are ignored.
func NewResolver(vars map[string]any, environ []string) *Resolver {
	env := make(map[string]string, len(environ))

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || excluded(name) {
			continue
		}

		env[name] = value
	}

	return &Resolver{vars: maps.Clone(vars), env: env}
}

func excluded(name string) bool {
	head, _, _ := strings.Cut(name, "_")

	for _, prefix := range excludedPrefixes {
		if head == prefix {
			return true
		}
	}

	return false
}

// Lookup resolves key. An environment override is tried first, then the
// variable tree, and for single-segment keys the raw environment.
func (r *Resolver) Lookup(key string) (any, bool) {
	if value, ok := r.env[EnvName(key)]; ok {
		return value, true
	}

	parts := strings.Split(key, ".")

	if value, ok := walk(r.vars, parts); ok {
		return value, true
	}

	if len(parts) == 1 {
		if value, ok := r.env[key]; ok {
			return value, true
		}
	}

	return nil, false
}

func walk(tree map[string]any, parts []string) (any, bool) {
	var current any = tree

	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Expand replaces every placeholder in text. All undefined keys are reported
// together in one ErrUndefined error.
func (r *Resolver) Expand(text string) (string, error) {
	var missing []string

	var scalarErr error

	seen := map[string]bool{}

	out := pattern.ReplaceAllStringFunc(text, func(match string) string {
		key := pattern.FindStringSubmatch(match)[1]

		value, ok := r.Lookup(key)
		if !ok {
			if !seen[key] {
				seen[key] = true
				missing = append(missing, key)
			}

			return match
		}

		str, err := scalar(value)
		if err != nil && scalarErr == nil {
			scalarErr = fmt.Errorf("%w: %s", err, key)
		}

		return str
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUndefined, strings.Join(missing, ", "))
	}

	if scalarErr != nil {
		return "", scalarErr
	}

	return out, nil
}

func scalar(value any) (string, error) {
	switch typed := value.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case map[string]any, []any:
		return "", ErrNotScalar
	default:
		return fmt.Sprint(typed), nil
	}
}
