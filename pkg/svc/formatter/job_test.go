package formatter_test

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/svc/formatter"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	v := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(v)
}

func exampleJobDiff() *v1alpha1.JobDiff {
	return &v1alpha1.JobDiff{
		Type: v1alpha1.DiffTypeEdited,
		ID:   "example",
		Fields: []*v1alpha1.FieldDiff{
			{Type: v1alpha1.DiffTypeEdited, Name: "Priority", Old: "50", New: "60"},
		},
		TaskGroups: []*v1alpha1.TaskGroupDiff{
			{
				Type:    v1alpha1.DiffTypeEdited,
				Name:    "cache",
				Updates: map[string]uint64{"create/destroy update": 1},
				Fields: []*v1alpha1.FieldDiff{
					{Type: v1alpha1.DiffTypeEdited, Name: "Count", Old: "1", New: "2"},
				},
				Tasks: []*v1alpha1.TaskDiff{
					{
						Type:        v1alpha1.DiffTypeEdited,
						Name:        "redis",
						Annotations: []string{"forces create/destroy update"},
						Fields: []*v1alpha1.FieldDiff{
							{Type: v1alpha1.DiffTypeEdited, Name: "Driver", Old: "docker", New: "exec"},
							{Type: v1alpha1.DiffTypeNone, Name: "User", Old: "", New: ""},
						},
						Objects: []*v1alpha1.ObjectDiff{
							{
								Type: v1alpha1.DiffTypeEdited,
								Name: "Config",
								Fields: []*v1alpha1.FieldDiff{
									{Type: v1alpha1.DiffTypeEdited, Name: "image", Old: "redis:3.2", New: "redis:4.0"},
									{Type: v1alpha1.DiffTypeNone, Name: "port_map[0][db]", Old: "6379", New: "6379"},
								},
							},
						},
					},
					{
						Type: v1alpha1.DiffTypeAdded,
						Name: "sidecar",
						Fields: []*v1alpha1.FieldDiff{
							{Type: v1alpha1.DiffTypeAdded, Name: "Driver", New: "docker"},
						},
					},
				},
			},
			{
				Type:  v1alpha1.DiffTypeNone,
				Name:  "web",
				Tasks: []*v1alpha1.TaskDiff{{Type: v1alpha1.DiffTypeNone, Name: "nginx"}},
			},
		},
	}
}

func TestFormatJobDiff(t *testing.T) {
	t.Parallel()

	got := style.Strip(formatter.FormatJobDiff(exampleJobDiff(), false))

	want := strings.Join([]string{
		`+/- Job: "example"`,
		`+/- Priority: "50" => "60"`,
		`+/- Task Group: "cache" (1 create/destroy update)`,
		`  +/- Count: "1" => "2"`,
		`  +/- Task: "redis" (forces create/destroy update)`,
		`    +/- Driver: "docker" => "exec"`,
		`        User:   ""`,
		`    +/- Config {`,
		`          +/- image:           "redis:3.2" => "redis:4.0"`,
		`              port_map[0][db]: "6379"`,
		`        }`,
		`  +   Task: "sidecar"`,
		``,
		`    Task Group: "web"`,
		`      Task: "nginx"`,
		``,
		``,
	}, "\n")

	assert.Equal(t, want, got)
}

func TestFormatJobDiff_Verbose(t *testing.T) {
	t.Parallel()

	got := style.Strip(formatter.FormatJobDiff(exampleJobDiff(), true))

	assert.Contains(t, got, "  +   Task: \"sidecar\"\n    + Driver: \"docker\"\n\n")
	snaps.MatchSnapshot(t, got)
}

func TestFormatJobDiff_ChildMarkersWidenFieldMarkers(t *testing.T) {
	t.Parallel()

	job := &v1alpha1.JobDiff{
		Type: v1alpha1.DiffTypeEdited,
		ID:   "j",
		Fields: []*v1alpha1.FieldDiff{
			{Type: v1alpha1.DiffTypeNone, Name: "Region", Old: "global", New: "global"},
			{Type: v1alpha1.DiffTypeAdded, Name: "X", New: "1"},
		},
		TaskGroups: []*v1alpha1.TaskGroupDiff{{
			Type:    v1alpha1.DiffTypeEdited,
			Name:    "g",
			Updates: map[string]uint64{"create": 2, "destroy": 1},
			Fields: []*v1alpha1.FieldDiff{
				{Type: v1alpha1.DiffTypeAdded, Name: "Count", New: "3"},
			},
			Tasks: []*v1alpha1.TaskDiff{
				{Type: v1alpha1.DiffTypeEdited, Name: "t"},
				{Type: v1alpha1.DiffTypeAdded, Name: "u"},
			},
		}},
	}

	got := style.Strip(formatter.FormatJobDiff(job, false))

	// Markers pad to the widest child marker; names pad only within a level.
	want := strings.Join([]string{
		`+/- Job: "j"`,
		`    Region: "global"`,
		`+   X:      "1"`,
		`+/- Task Group: "g" (2 create, 1 destroy)`,
		`  +   Count: "3"`,
		`  +/- Task: "t"`,
		``,
		`  +   Task: "u"`,
		``,
		``,
	}, "\n")

	assert.Equal(t, want, got)
}

func TestFormatJobDiff_StyleMarkup(t *testing.T) {
	t.Parallel()

	job := &v1alpha1.JobDiff{
		Type: v1alpha1.DiffTypeAdded,
		ID:   "web",
		TaskGroups: []*v1alpha1.TaskGroupDiff{
			{Type: v1alpha1.DiffTypeDeleted, Name: "old", Updates: map[string]uint64{"destroy": 3}},
		},
	}

	got := formatter.FormatJobDiff(job, false)

	assert.Equal(t,
		"[green]+ [reset][bold]Job: \"web\"[reset]\n"+
			"[red]- [reset][bold]Task Group: \"old\"[reset] ([red]3 destroy[reset])\n\n",
		got,
	)
}

func TestFormatJobDiff_TaskVisibility(t *testing.T) {
	t.Parallel()

	fields := []*v1alpha1.FieldDiff{{Type: v1alpha1.DiffTypeAdded, Name: "Driver", New: "docker"}}

	tests := []struct {
		name     string
		taskType v1alpha1.DiffType
		verbose  bool
		wantBody bool
	}{
		{name: "added hides body", taskType: v1alpha1.DiffTypeAdded, wantBody: false},
		{name: "added verbose shows body", taskType: v1alpha1.DiffTypeAdded, verbose: true, wantBody: true},
		{name: "deleted hides body", taskType: v1alpha1.DiffTypeDeleted, wantBody: false},
		{name: "deleted verbose shows body", taskType: v1alpha1.DiffTypeDeleted, verbose: true, wantBody: true},
		{name: "edited shows body", taskType: v1alpha1.DiffTypeEdited, wantBody: true},
		{name: "unchanged never shows body", taskType: v1alpha1.DiffTypeNone, verbose: true, wantBody: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			job := &v1alpha1.JobDiff{
				Type: v1alpha1.DiffTypeEdited,
				ID:   "example",
				TaskGroups: []*v1alpha1.TaskGroupDiff{{
					Type:  v1alpha1.DiffTypeEdited,
					Name:  "cache",
					Tasks: []*v1alpha1.TaskDiff{{Type: testCase.taskType, Name: "redis", Fields: fields}},
				}},
			}

			got := style.Strip(formatter.FormatJobDiff(job, testCase.verbose))

			assert.Equal(t, testCase.wantBody, strings.Contains(got, `Driver: "docker"`))
			assert.Contains(t, got, `Task: "redis"`)
		})
	}
}

func TestFormatJobDiff_JobFieldsNeedEditOrVerbose(t *testing.T) {
	t.Parallel()

	job := &v1alpha1.JobDiff{
		Type:   "Renamed",
		ID:     "x",
		Fields: []*v1alpha1.FieldDiff{{Type: "Bogus", Name: "a", New: "1"}},
	}

	assert.Equal(t, "Job: \"x\"\n", style.Strip(formatter.FormatJobDiff(job, false)))
	assert.Equal(t, "Job: \"x\"\na: \"1\"\n", style.Strip(formatter.FormatJobDiff(job, true)))
}

func TestFormatJobDiff_EmptyCollections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		job  *v1alpha1.JobDiff
		want string
	}{
		{name: "nil job", job: nil, want: ""},
		{
			name: "no task groups",
			job:  &v1alpha1.JobDiff{Type: v1alpha1.DiffTypeAdded, ID: "x"},
			want: "+ Job: \"x\"\n",
		},
		{
			name: "nil task group entries",
			job: &v1alpha1.JobDiff{
				Type:       v1alpha1.DiffTypeEdited,
				ID:         "x",
				TaskGroups: []*v1alpha1.TaskGroupDiff{nil, {Type: v1alpha1.DiffTypeNone, Name: "g"}},
			},
			want: "+/- Job: \"x\"\nTask Group: \"g\"\n\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, style.Strip(formatter.FormatJobDiff(testCase.job, true)))
		})
	}
}

func TestFormatJobDiff_DoesNotMutateAndIsRepeatable(t *testing.T) {
	t.Parallel()

	job := exampleJobDiff()
	first := formatter.FormatJobDiff(job, true)

	assert.Equal(t, exampleJobDiff(), job)

	var waitGroup sync.WaitGroup

	results := make([]string, 8)
	for i := range results {
		waitGroup.Go(func() {
			results[i] = formatter.FormatJobDiff(job, true)
		})
	}

	waitGroup.Wait()

	for _, result := range results {
		assert.Equal(t, first, result)
	}
}

func TestColorUpdates(t *testing.T) {
	t.Parallel()

	got := formatter.ColorUpdates(map[string]uint64{"destroy": 1, "create": 2, "weird": 3})

	assert.Equal(t, "[green]2 create[reset], [red]1 destroy[reset], 3 weird", got)
	assert.Empty(t, formatter.ColorUpdates(nil))
}

func TestColorAnnotations(t *testing.T) {
	t.Parallel()

	got := formatter.ColorAnnotations([]string{"forces create", "something", "canary"})

	assert.Equal(t, "[green]forces create[reset], something, [blue]canary[reset]", got)
}
