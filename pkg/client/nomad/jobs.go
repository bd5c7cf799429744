package nomad

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
)

// API is the subset of the scheduler API the commands use.
type API interface {
	ParseJob(ctx context.Context, hcl string) (*v1alpha1.Job, error)
	Plan(ctx context.Context, job *v1alpha1.Job) (*v1alpha1.PlanResponse, error)
	Register(ctx context.Context, job *v1alpha1.Job, modifyIndex uint64) (*v1alpha1.RegisterResponse, error)
	Validate(ctx context.Context, job *v1alpha1.Job) (*v1alpha1.ValidateResponse, error)
	Deregister(ctx context.Context, jobID string, purge bool) (*v1alpha1.RegisterResponse, error)
	Evaluation(ctx context.Context, evalID string) (*v1alpha1.Evaluation, error)
	Deployment(ctx context.Context, deploymentID string) (*v1alpha1.Deployment, error)
}

var _ API = (*Client)(nil)

type parseRequest struct {
	JobHCL string `json:"JobHCL"`
}

type planRequest struct {
	Job  *v1alpha1.Job `json:"Job"`
	Diff bool          `json:"Diff"`
}

type registerRequest struct {
	Job            *v1alpha1.Job `json:"Job"`
	JobModifyIndex uint64        `json:"JobModifyIndex"`
	EnforceIndex   bool          `json:"EnforceIndex"`
}

type validateRequest struct {
	Job *v1alpha1.Job `json:"Job"`
}

// ParseJob converts an HCL job specification into its JSON form. A malformed
// specification yields an APIError for which IsParseError holds.
func (c *Client) ParseJob(ctx context.Context, hcl string) (*v1alpha1.Job, error) {
	job := &v1alpha1.Job{}

	err := c.do(ctx, http.MethodPost, "/v1/jobs/parse", nil, parseRequest{JobHCL: hcl}, job)
	if err != nil {
		return nil, err
	}

	return job, nil
}

// Plan asks the scheduler for a dry run of job, including the diff against
// the running version.
func (c *Client) Plan(ctx context.Context, job *v1alpha1.Job) (*v1alpha1.PlanResponse, error) {
	resp := &v1alpha1.PlanResponse{}
	path := "/v1/job/" + url.PathEscape(job.ID) + "/plan"

	err := c.do(ctx, http.MethodPut, path, nil, planRequest{Job: job, Diff: true}, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Register submits job. The scheduler rejects it when the job changed since
// modifyIndex was read.
func (c *Client) Register(
	ctx context.Context,
	job *v1alpha1.Job,
	modifyIndex uint64,
) (*v1alpha1.RegisterResponse, error) {
	resp := &v1alpha1.RegisterResponse{}
	body := registerRequest{Job: job, JobModifyIndex: modifyIndex, EnforceIndex: true}

	err := c.do(ctx, http.MethodPut, "/v1/jobs", nil, body, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Validate checks job without submitting it.
func (c *Client) Validate(ctx context.Context, job *v1alpha1.Job) (*v1alpha1.ValidateResponse, error) {
	resp := &v1alpha1.ValidateResponse{}

	err := c.do(ctx, http.MethodPost, "/v1/validate/job", nil, validateRequest{Job: job}, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Deregister stops the job, and removes it from the system when purge is set.
func (c *Client) Deregister(ctx context.Context, jobID string, purge bool) (*v1alpha1.RegisterResponse, error) {
	resp := &v1alpha1.RegisterResponse{}
	query := url.Values{"purge": []string{strconv.FormatBool(purge)}}

	err := c.do(ctx, http.MethodDelete, "/v1/job/"+url.PathEscape(jobID), query, nil, resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Evaluation reads an evaluation.
func (c *Client) Evaluation(ctx context.Context, evalID string) (*v1alpha1.Evaluation, error) {
	eval := &v1alpha1.Evaluation{}

	err := c.do(ctx, http.MethodGet, "/v1/evaluation/"+url.PathEscape(evalID), nil, nil, eval)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation %q: %w", evalID, err)
	}

	return eval, nil
}

// Deployment reads a deployment.
func (c *Client) Deployment(ctx context.Context, deploymentID string) (*v1alpha1.Deployment, error) {
	deployment := &v1alpha1.Deployment{}

	err := c.do(ctx, http.MethodGet, "/v1/deployment/"+url.PathEscape(deploymentID), nil, nil, deployment)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment %q: %w", deploymentID, err)
	}

	return deployment, nil
}
