package cmd

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// ErrFailedAllocations is returned when deploy refuses to submit a job whose
// plan could not place every allocation.
var ErrFailedAllocations = errors.New("aborting: the scheduler could not place all allocations")

// NewDeployCmd creates the deploy command.
func NewDeployCmd(runtime *di.Runtime) *cobra.Command {
	var (
		opts    jobOptions
		verbose bool
		detach  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy FILE",
		Short: "Plan a job file, submit it and follow the deployment",
		Long: `Plan the job file like the plan command does and submit it when every
allocation can be placed. The submission is tied to the planned job version so
that concurrent changes are rejected. Unless --detach is set, the resulting
evaluation and deployment are followed until they settle.`,
		Args: cobra.ExactArgs(1),
		RunE: di.RunEWithRuntime(runtime, di.WithClient(
			func(cmd *cobra.Command, injector di.Injector, client nomad.API) error {
				return runDeploy(cmd, injector, client, &opts, cmd.Flags().Arg(0), verbose, detach)
			},
		)),
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "show unchanged fields and objects")
	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "return after submission instead of waiting for the deployment")

	return cmd
}

func runDeploy(
	cmd *cobra.Command,
	injector di.Injector,
	client nomad.API,
	opts *jobOptions,
	path string,
	verbose, detach bool,
) error {
	ctx := cmd.Context()
	out := output(cmd)

	jobPlanner, err := opts.planner(client, 1)
	if err != nil {
		return err
	}

	result, err := jobPlanner.PlanFile(ctx, path)
	if err != nil {
		return err //nolint:wrapcheck // planner errors name the file
	}

	writePlan(out, colorizer(cmd), result.Plan, result.Job.Type, verbose)

	if result.Plan.HasFailedAllocations() {
		return ErrFailedAllocations
	}

	resp, err := client.Register(ctx, result.Job, result.Plan.JobModifyIndex)
	if err != nil {
		return fmt.Errorf("failed to submit job %q: %w", result.Job.ID, err)
	}

	if resp.Warnings != "" {
		notify.Warningf(out, "%s", resp.Warnings)
	}

	if detach {
		notify.Successf(out, "job %q submitted, evaluation %q", result.Job.ID, resp.EvalID)

		return nil
	}

	notify.Titlef(out, submitEmoji, "Job submission:")

	mon, err := newMonitor(injector, client, out)
	if err != nil {
		return err
	}

	deploymentID, err := mon.Evaluation(ctx, resp.EvalID)
	if err != nil {
		return fmt.Errorf("job deployment failed: %w", err)
	}

	if deploymentID != "" {
		err = mon.Deployment(ctx, deploymentID)
		if err != nil {
			return fmt.Errorf("job deployment failed: %w", err)
		}
	}

	notify.Successf(out, "job deployment finished successfully")

	return nil
}
