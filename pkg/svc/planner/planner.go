// Package planner renders, parses and plans job files against the scheduler,
// several at a time.
package planner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	minConcurrency = 2
	// maxConcurrencyCap keeps a large batch of files from flooding the agent.
	maxConcurrencyCap = 8
)

// ErrInvalidJobSpec is returned when the scheduler cannot parse a job file.
var ErrInvalidJobSpec = errors.New("invalid job specification")

// DefaultMaxConcurrency returns min(max(NumCPU, 2), 8).
func DefaultMaxConcurrency() int64 {
	return min(max(int64(runtime.NumCPU()), minConcurrency), maxConcurrencyCap)
}

// Renderer produces the specification text of a job file.
type Renderer interface {
	Render(path string) (string, error)
}

// Result is the plan of one job file.
type Result struct {
	Path string
	Job  *v1alpha1.Job
	Plan *v1alpha1.PlanResponse
}

// Planner plans job files.
type Planner struct {
	api            nomad.API
	renderer       Renderer
	maxConcurrency int64
}

// New returns a planner. maxConcurrency <= 0 selects DefaultMaxConcurrency.
func New(api nomad.API, renderer Renderer, maxConcurrency int64) *Planner {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency()
	}

	return &Planner{api: api, renderer: renderer, maxConcurrency: maxConcurrency}
}

// Job renders the file at path and has the scheduler parse it.
func (p *Planner) Job(ctx context.Context, path string) (*v1alpha1.Job, error) {
	spec, err := p.renderer.Render(path)
	if err != nil {
		return nil, err
	}

	job, err := p.api.ParseJob(ctx, spec)
	if err != nil {
		var apiErr *nomad.APIError
		if nomad.IsParseError(err) && errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w %q: %s", ErrInvalidJobSpec, path, strings.TrimSpace(apiErr.Body))
		}

		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	return job, nil
}

// PlanFile renders, parses and plans a single job file.
func (p *Planner) PlanFile(ctx context.Context, path string) (*Result, error) {
	job, err := p.Job(ctx, path)
	if err != nil {
		return nil, err
	}

	resp, err := p.api.Plan(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to plan job %q: %w", job.ID, err)
	}

	return &Result{Path: path, Job: job, Plan: resp}, nil
}

// Plan plans every path with at most maxConcurrency requests in flight. The
// results are in the order of paths. The first failure cancels the rest.
func (p *Planner) Plan(ctx context.Context, paths ...string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	sem := semaphore.NewWeighted(p.maxConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			err := sem.Acquire(groupCtx, 1)
			if err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}

			defer sem.Release(1)

			result, err := p.PlanFile(groupCtx, path)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped per file
	}

	return results, nil
}
