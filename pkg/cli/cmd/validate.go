package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/cli/ui"
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when the scheduler rejects a job file.
var ErrValidationFailed = errors.New("job validation failed")

// NewValidateCmd creates the validate command.
func NewValidateCmd(runtime *di.Runtime) *cobra.Command {
	var opts jobOptions

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a job file without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: di.RunEWithRuntime(runtime, di.WithClient(
			func(cmd *cobra.Command, _ di.Injector, client nomad.API) error {
				return runValidate(cmd, client, &opts, cmd.Flags().Arg(0))
			},
		)),
	}

	opts.addFlags(cmd.Flags())

	return cmd
}

func runValidate(cmd *cobra.Command, client nomad.API, opts *jobOptions, path string) error {
	ctx := cmd.Context()

	jobPlanner, err := opts.planner(client, 1)
	if err != nil {
		return err
	}

	job, err := jobPlanner.Job(ctx, path)
	if err != nil {
		return err //nolint:wrapcheck // planner errors name the file
	}

	resp, err := client.Validate(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to validate job %q: %w", job.ID, err)
	}

	out := output(cmd)

	if warnings := strings.TrimSpace(resp.Warnings); warnings != "" {
		notify.WriteMessage(notify.Message{
			Type:    notify.WarningType,
			Content: warnings,
			Width:   ui.WrapWidth(cmd.OutOrStdout()),
			Writer:  out,
		})
	}

	if validationErr := strings.TrimSpace(resp.Error); validationErr != "" {
		return fmt.Errorf("%w: %s", ErrValidationFailed, validationErr)
	}

	notify.Successf(out, "validated job %q successfully", job.ID)

	return nil
}
