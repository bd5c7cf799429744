// Package jobspec turns a job file plus variable files into the job
// specification text that is sent to the scheduler.
package jobspec

import (
	"fmt"
	"os"

	"github.com/devantler-tech/jobplan/pkg/io/varfile"
	"github.com/devantler-tech/jobplan/pkg/utils/envvar"
)

// Renderer expands placeholders in job files.
type Renderer struct {
	resolver *envvar.Resolver
}

// NewRenderer loads varFiles and combines them with environ, which is in
// os.Environ form. Dotenv entries from varFiles take precedence over environ.
func NewRenderer(varFiles []string, environ []string) (*Renderer, error) {
	set, err := varfile.Load(varFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load variable files: %w", err)
	}

	return &Renderer{resolver: envvar.NewResolver(set.Vars, set.Environ(environ))}, nil
}

// Render reads the job file at path and expands its placeholders.
func (r *Renderer) Render(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return "", fmt.Errorf("failed to read job file: %w", err)
	}

	spec, err := r.resolver.Expand(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", path, err)
	}

	return spec, nil
}
