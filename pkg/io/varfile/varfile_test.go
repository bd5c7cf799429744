package varfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/jobplan/pkg/io/varfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MergesInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := writeFile(t, dir, "base.yml", `
job_name: test
env:
  production:
    database_url: testurl@yaml
    replicas: 2
tags: [a, b]
`)
	override := writeFile(t, dir, "override.json", `{
  "env": {"production": {"database_url": "testurl@json"}},
  "tags": ["c"]
}`)

	set, err := varfile.Load(base, override)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"job_name": "test",
		"env": map[string]any{
			"production": map[string]any{
				"database_url": "testurl@json",
				"replicas":     2,
			},
		},
		"tags": []any{"c"},
	}, set.Vars)
	assert.Empty(t, set.Env)
}

func TestLoad_DotenvExtendsEnvironment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.env", "JOBNAME=fromfile\nREGION=eu\n")
	second := writeFile(t, dir, "second.env", "# comment\nREGION=us\n")

	set, err := varfile.Load(first, second)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"JOBNAME": "fromfile", "REGION": "us"}, set.Env)
	assert.Equal(t,
		[]string{"HOME=/root", "JOBNAME=fromfile", "REGION=us"},
		set.Environ([]string{"HOME=/root"}),
	)
}

func TestLoad_EmptyFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	set, err := varfile.Load(writeFile(t, dir, "empty.yaml", ""), writeFile(t, dir, "empty.json", "  \n"))

	require.NoError(t, err)
	assert.Empty(t, set.Vars)
}

func TestLoad_NoFiles(t *testing.T) {
	t.Parallel()

	set, err := varfile.Load()

	require.NoError(t, err)
	assert.Empty(t, set.Vars)
	assert.Empty(t, set.Env)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "unsupported extension", path: writeFile(t, dir, "vars.toml", "a = 1"), wantErr: varfile.ErrUnsupportedVarFile},
		{name: "yaml list", path: writeFile(t, dir, "list.yaml", "- a\n- b\n"), wantErr: varfile.ErrNotAMapping},
		{name: "json scalar", path: writeFile(t, dir, "scalar.json", "42"), wantErr: varfile.ErrNotAMapping},
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantErr: os.ErrNotExist},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			set, err := varfile.Load(testCase.path)

			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, set)
		})
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := varfile.Load(writeFile(t, dir, "broken.json", "{"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse variable file")
}

func TestMerge(t *testing.T) {
	t.Parallel()

	current := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": "keep"}
	next := map[string]any{"a": map[string]any{"y": 3}, "c": map[string]any{"z": 4}}

	got := varfile.Merge(current, next)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"x": 1, "y": 3},
		"b": "keep",
		"c": map[string]any{"z": 4},
	}, got)
	assert.Equal(t, map[string]any{"x": 1, "y": 2}, current["a"], "inputs must not change")
}

func TestMerge_ScalarReplacesMap(t *testing.T) {
	t.Parallel()

	got := varfile.Merge(map[string]any{"a": map[string]any{"x": 1}}, map[string]any{"a": "flat"})

	assert.Equal(t, map[string]any{"a": "flat"}, got)
	assert.Equal(t, map[string]any{"a": 1}, varfile.Merge(nil, map[string]any{"a": 1}))
}
