package jobspec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/jobplan/pkg/io/varfile"
	"github.com/devantler-tech/jobplan/pkg/svc/jobspec"
	"github.com/devantler-tech/jobplan/pkg/utils/envvar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = `job "[[ job_name ]]" {
  group "db" {
    task "app" {
      env {
        DATABASE_URL = "[[ env.production.database_url ]]"
        ALLOC_DIR    = "${NOMAD_ALLOC_DIR}"
      }
    }
  }
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.nomad", template)
	vars := writeFile(t, dir, "vars.yml", "job_name: test\nenv:\n  production:\n    database_url: testurl@yaml\n")

	tests := []struct {
		name     string
		varFiles []string
		environ  []string
		wantName string
		wantURL  string
	}{
		{
			name:     "variables",
			varFiles: []string{vars},
			wantName: "test",
			wantURL:  "testurl@yaml",
		},
		{
			name:     "environment overrides variables",
			varFiles: []string{vars},
			environ:  []string{"JOBNAME=testenv", "ENV_PRODUCTION_DATABASEURL=testurl@env"},
			wantName: "testenv",
			wantURL:  "testurl@env",
		},
		{
			name:     "dotenv overrides environment",
			varFiles: []string{vars, writeFile(t, dir, "local.env", "JOBNAME=dotenv\n")},
			environ:  []string{"JOBNAME=testenv"},
			wantName: "dotenv",
			wantURL:  "testurl@yaml",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			renderer, err := jobspec.NewRenderer(testCase.varFiles, testCase.environ)
			require.NoError(t, err)

			got, err := renderer.Render(jobFile)

			require.NoError(t, err)
			assert.Contains(t, got, `job "`+testCase.wantName+`" {`)
			assert.Contains(t, got, `DATABASE_URL = "`+testCase.wantURL+`"`)
			assert.Contains(t, got, `ALLOC_DIR    = "${NOMAD_ALLOC_DIR}"`)
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.nomad", template)

	_, err := jobspec.NewRenderer([]string{writeFile(t, dir, "vars.ini", "")}, nil)
	require.ErrorIs(t, err, varfile.ErrUnsupportedVarFile)

	renderer, err := jobspec.NewRenderer(nil, nil)
	require.NoError(t, err)

	_, err = renderer.Render(jobFile)
	require.ErrorIs(t, err, envvar.ErrUndefined)
	assert.Contains(t, err.Error(), "job_name, env.production.database_url")

	_, err = renderer.Render(filepath.Join(dir, "missing.nomad"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
