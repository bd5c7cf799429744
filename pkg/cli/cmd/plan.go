package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/svc/formatter"
	"github.com/devantler-tech/jobplan/pkg/svc/planner"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd(runtime *di.Runtime) *cobra.Command {
	var (
		opts           jobOptions
		verbose        bool
		maxConcurrency int64
	)

	cmd := &cobra.Command{
		Use:   "plan FILE...",
		Short: "Show the changes the scheduler would make for job files",
		Long: `Render each job file, have the scheduler parse it and request a dry run.

The planned changes are printed as a diff against the running job, followed by
a summary of allocations the scheduler could not place. Several files are
planned concurrently; output keeps the order of the arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: di.RunEWithRuntime(runtime, di.WithClient(
			func(cmd *cobra.Command, _ di.Injector, client nomad.API) error {
				return runPlan(cmd, client, &opts, cmd.Flags().Args(), verbose, maxConcurrency)
			},
		)),
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "show unchanged fields and objects")
	cmd.Flags().Int64Var(&maxConcurrency, "max-concurrency", planner.DefaultMaxConcurrency(),
		"maximum number of job files planned at once")

	return cmd
}

func runPlan(
	cmd *cobra.Command,
	client nomad.API,
	opts *jobOptions,
	paths []string,
	verbose bool,
	maxConcurrency int64,
) error {
	jobPlanner, err := opts.planner(client, maxConcurrency)
	if err != nil {
		return err
	}

	results, err := jobPlanner.Plan(cmd.Context(), paths...)
	if err != nil {
		return err //nolint:wrapcheck // planner errors name the file
	}

	out := output(cmd)
	paint := colorizer(cmd)

	for _, result := range results {
		writePlan(out, paint, result.Plan, result.Job.Type, verbose)
	}

	return nil
}

// writePlan prints the diff (when the scheduler returned one), any plan
// warnings and the dry-run summary.
func writePlan(
	out io.Writer,
	paint style.Colorizer,
	resp *v1alpha1.PlanResponse,
	jobKind v1alpha1.JobKind,
	verbose bool,
) {
	if resp.Diff != nil {
		notify.Titlef(out, planEmoji, "Planned changes:")
		writeBlock(out, paint.Colorize(formatter.FormatJobDiff(resp.Diff, verbose)))
	}

	if resp.Warnings != "" {
		notify.Warningf(out, "%s", strings.TrimSpace(resp.Warnings))
	}

	notify.Titlef(out, dryRunEmoji, "Scheduler dry-run:")
	writeBlock(out, paint.Colorize(formatter.FormatDryRun(resp, jobKind)))
}

// writeBlock writes text followed by exactly one newline.
func writeBlock(out io.Writer, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	_, _ = fmt.Fprintln(out, text)
}
