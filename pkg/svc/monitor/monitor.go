// Package monitor follows evaluations and deployments until they settle.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/client/netretry"
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/siderolabs/go-retry/retry"
)

// Errors returned by the monitors.
var (
	ErrEvaluationFailed = errors.New("evaluation failed")
	ErrDeploymentFailed = errors.New("deployment failed")
	ErrTimeout          = errors.New("timed out waiting for the scheduler")
)

// errPending marks a poll whose subject has not settled yet.
var errPending = errors.New("still in progress")

// Monitor polls the scheduler at a fixed interval.
type Monitor struct {
	api      nomad.API
	out      io.Writer
	interval time.Duration
	timeout  time.Duration
}

// New returns a monitor that reports progress to out.
func New(api nomad.API, out io.Writer, interval, timeout time.Duration) *Monitor {
	return &Monitor{api: api, out: out, interval: interval, timeout: timeout}
}

// Evaluation waits for evalID to complete, following NextEval links, and
// returns the deployment ID of the last evaluation in the chain (possibly
// empty).
func (m *Monitor) Evaluation(ctx context.Context, evalID string) (string, error) {
	notify.Activityf(m.out, "monitoring evaluation %q", evalID)

	var deploymentID string

	err := m.poll(ctx, func(ctx context.Context) error {
		eval, err := m.api.Evaluation(ctx, evalID)
		if err != nil {
			return err
		}

		switch eval.Status {
		case v1alpha1.EvalStatusFailed, v1alpha1.EvalStatusCancelled, v1alpha1.EvalStatusCancelledAlt:
			return fmt.Errorf("%w: %q is %s: %s", ErrEvaluationFailed, evalID, eval.Status, eval.StatusDescription)
		case v1alpha1.EvalStatusComplete:
			notify.Successf(m.out, "evaluation %q completed successfully", evalID)

			if eval.NextEval != "" {
				evalID = eval.NextEval
				notify.Activityf(m.out, "monitoring evaluation %q", evalID)

				return errPending
			}

			deploymentID = eval.DeploymentID

			return nil
		default:
			return errPending
		}
	})
	if err != nil {
		return "", err
	}

	return deploymentID, nil
}

// Deployment waits for deploymentID to succeed.
func (m *Monitor) Deployment(ctx context.Context, deploymentID string) error {
	notify.Activityf(m.out, "monitoring deployment %q", deploymentID)

	return m.poll(ctx, func(ctx context.Context) error {
		deployment, err := m.api.Deployment(ctx, deploymentID)
		if err != nil {
			return err
		}

		switch deployment.Status {
		case v1alpha1.DeploymentStatusFailed, v1alpha1.DeploymentStatusCancelled:
			return fmt.Errorf("%w: %q is %s: %s",
				ErrDeploymentFailed, deploymentID, deployment.Status, deployment.StatusDescription)
		case v1alpha1.DeploymentStatusSuccessful:
			notify.Successf(m.out, "deployment %q completed successfully", deploymentID)

			return nil
		default:
			return errPending
		}
	})
}

// poll calls check until it returns nil or a permanent error. errPending and
// transient API errors are retried until the timeout.
func (m *Monitor) poll(ctx context.Context, check func(ctx context.Context) error) error {
	var permanent, last error

	err := retry.Constant(m.timeout, retry.WithUnits(m.interval)).
		RetryWithContext(ctx, func(ctx context.Context) error {
			err := check(ctx)

			switch {
			case err == nil:
				return nil
			case errors.Is(err, errPending) || netretry.IsRetryable(err):
				last = err

				return retry.ExpectedError(err)
			default:
				permanent = err

				return retry.UnexpectedError(err)
			}
		})

	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("monitoring interrupted: %w", ctx.Err())
	}

	if permanent != nil && !errors.Is(permanent, context.DeadlineExceeded) {
		return permanent
	}

	if last == nil {
		return fmt.Errorf("%w after %s", ErrTimeout, m.timeout)
	}

	return fmt.Errorf("%w after %s: %w", ErrTimeout, m.timeout, last)
}
