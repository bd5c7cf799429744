package cmd

import (
	"fmt"

	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command.
func NewStopCmd(runtime *di.Runtime) *cobra.Command {
	var (
		opts  jobOptions
		purge bool
	)

	cmd := &cobra.Command{
		Use:   "stop FILE",
		Short: "Stop the job defined in a job file",
		Args:  cobra.ExactArgs(1),
		RunE: di.RunEWithRuntime(runtime, di.WithClient(
			func(cmd *cobra.Command, injector di.Injector, client nomad.API) error {
				return runStop(cmd, injector, client, &opts, cmd.Flags().Arg(0), purge)
			},
		)),
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&purge, "purge", "p", false, "also remove the job from the system")

	return cmd
}

func runStop(
	cmd *cobra.Command,
	injector di.Injector,
	client nomad.API,
	opts *jobOptions,
	path string,
	purge bool,
) error {
	ctx := cmd.Context()
	out := output(cmd)

	jobPlanner, err := opts.planner(client, 1)
	if err != nil {
		return err
	}

	job, err := jobPlanner.Job(ctx, path)
	if err != nil {
		return err //nolint:wrapcheck // planner errors name the file
	}

	resp, err := client.Deregister(ctx, job.ID, purge)
	if err != nil {
		return fmt.Errorf("failed to stop job %q: %w", job.ID, err)
	}

	notify.Titlef(out, stopEmoji, "Job deletion:")

	mon, err := newMonitor(injector, client, out)
	if err != nil {
		return err
	}

	_, err = mon.Evaluation(ctx, resp.EvalID)
	if err != nil {
		return fmt.Errorf("job deletion failed: %w", err)
	}

	notify.Successf(out, "job deletion finished successfully")

	return nil
}
