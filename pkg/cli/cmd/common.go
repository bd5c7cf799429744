package cmd

import (
	"io"
	"os"

	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/svc/jobspec"
	"github.com/devantler-tech/jobplan/pkg/svc/monitor"
	"github.com/devantler-tech/jobplan/pkg/svc/planner"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	varFileFlag = "var-file"
	verboseFlag = "verbose"
)

// Section titles.
const (
	planEmoji   = "📋"
	dryRunEmoji = "🧪"
	submitEmoji = "🚀"
	stopEmoji   = "🛑"
)

// jobOptions are the flags shared by commands that read job files.
type jobOptions struct {
	varFiles []string
}

func (o *jobOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringArrayVar(&o.varFiles, varFileFlag, nil,
		"variable file (.env, .json, .yaml or .yml); repeat to merge several, later files win")
}

// planner builds a planner that renders job files with the option's
// variable files and the process environment.
func (o *jobOptions) planner(client nomad.API, maxConcurrency int64) (*planner.Planner, error) {
	renderer, err := jobspec.NewRenderer(o.varFiles, os.Environ())
	if err != nil {
		return nil, err //nolint:wrapcheck // already describes the failure
	}

	return planner.New(client, renderer, maxConcurrency), nil
}

// newMonitor returns a monitor using the configured poll interval and timeout.
func newMonitor(injector di.Injector, client nomad.API, out io.Writer) (*monitor.Monitor, error) {
	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return nil, err
	}

	return monitor.New(client, out, cfg.PollInterval, cfg.Timeout), nil
}

// output returns the command's stdout wrapped so that sections stay apart.
func output(cmd *cobra.Command) *notify.SectionWriter {
	return notify.NewSectionWriter(cmd.OutOrStdout())
}

// colorizer converts span markup for the command's stdout.
func colorizer(cmd *cobra.Command) style.Colorizer {
	noColor, _ := cmd.Flags().GetBool(noColorFlag)

	return style.NewColorizer(cmd.OutOrStdout(), noColor)
}
