package planner_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/svc/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// specRenderer returns the path itself as the specification.
type specRenderer struct{}

func (specRenderer) Render(path string) (string, error) {
	if strings.HasPrefix(path, "unreadable") {
		return "", errBoom
	}

	return path, nil
}

// fakeAPI treats the specification as the job ID.
type fakeAPI struct {
	nomad.API

	delay    time.Duration
	parseErr map[string]error
	planErr  map[string]error

	mu       sync.Mutex
	inFlight atomic.Int64
	peak     int64
}

func (f *fakeAPI) ParseJob(_ context.Context, hcl string) (*v1alpha1.Job, error) {
	if err := f.parseErr[hcl]; err != nil {
		return nil, err
	}

	return &v1alpha1.Job{ID: hcl}, nil
}

func (f *fakeAPI) Plan(ctx context.Context, job *v1alpha1.Job) (*v1alpha1.PlanResponse, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	f.mu.Lock()
	f.peak = max(f.peak, current)
	f.mu.Unlock()

	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := f.planErr[job.ID]; err != nil {
		return nil, err
	}

	return &v1alpha1.PlanResponse{Diff: &v1alpha1.JobDiff{ID: job.ID}}, nil
}

func TestDefaultMaxConcurrency(t *testing.T) {
	t.Parallel()

	got := planner.DefaultMaxConcurrency()

	assert.GreaterOrEqual(t, got, int64(2))
	assert.LessOrEqual(t, got, int64(8))
}

func TestPlanner_Plan_KeepsOrderAndBoundsConcurrency(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{delay: 20 * time.Millisecond}
	paths := []string{"a", "b", "c", "d", "e", "f"}

	results, err := planner.New(api, specRenderer{}, 2).Plan(context.Background(), paths...)

	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, result := range results {
		assert.Equal(t, paths[i], result.Path)
		assert.Equal(t, paths[i], result.Job.ID)
		assert.Equal(t, paths[i], result.Plan.Diff.ID)
	}

	assert.LessOrEqual(t, api.peak, int64(2))
}

func TestPlanner_Plan_NoPaths(t *testing.T) {
	t.Parallel()

	results, err := planner.New(&fakeAPI{}, specRenderer{}, 0).Plan(context.Background())

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPlanner_Plan_FirstFailureWins(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{delay: time.Millisecond, planErr: map[string]error{"b": errBoom}}

	results, err := planner.New(api, specRenderer{}, 4).Plan(context.Background(), "a", "b", "c")

	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), `failed to plan job "b"`)
	assert.Nil(t, results)
}

func TestPlanner_Job_Errors(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{parseErr: map[string]error{
		"malformed": &nomad.APIError{Method: http.MethodPost, Path: "/v1/jobs/parse", Code: 400, Body: "bad job\n"},
		"down":      &nomad.APIError{Method: http.MethodPost, Path: "/v1/jobs/parse", Code: 503},
	}}
	plan := planner.New(api, specRenderer{}, 1)

	_, err := plan.Job(context.Background(), "malformed")
	require.ErrorIs(t, err, planner.ErrInvalidJobSpec)
	assert.EqualError(t, err, `invalid job specification "malformed": bad job`)

	_, err = plan.Job(context.Background(), "down")
	require.Error(t, err)
	assert.NotErrorIs(t, err, planner.ErrInvalidJobSpec)

	var apiErr *nomad.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.Code)

	_, err = plan.Job(context.Background(), "unreadable.nomad")
	require.ErrorIs(t, err, errBoom)
}
