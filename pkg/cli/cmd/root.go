package cmd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/jobplan/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/io/config"
	fcolor "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	noColorFlag = "no-color"
	debugFlag   = "debug"
)

// NewRootCmd creates the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	manager := config.NewManager()
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	runtime := di.NewRuntime(manager, logger, "jobplan/"+version)

	cmd := &cobra.Command{
		Use:   "jobplan",
		Short: "Preview, submit and follow scheduler jobs",
		Long: `jobplan renders job files with variables, asks the scheduler for a dry run
and shows the planned changes before anything is submitted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyGlobalFlags(cmd, logger)
		},
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	flags := cmd.PersistentFlags()
	flags.Bool(noColorFlag, false, "disable colored output")
	flags.Bool(debugFlag, false, "log every scheduler request")
	manager.AddFlags(flags)

	cmd.AddCommand(
		NewPlanCmd(runtime),
		NewDeployCmd(runtime),
		NewValidateCmd(runtime),
		NewStopCmd(runtime),
		NewRenderCmd(),
		NewShowCmd(),
		NewSchemaCmd(),
	)

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	err := errorhandler.NewExecutor().Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func applyGlobalFlags(cmd *cobra.Command, logger *logrus.Logger) error {
	debug, err := cmd.Flags().GetBool(debugFlag)
	if err != nil {
		return fmt.Errorf("read --%s: %w", debugFlag, err)
	}

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	noColor, err := cmd.Flags().GetBool(noColorFlag)
	if err != nil {
		return fmt.Errorf("read --%s: %w", noColorFlag, err)
	}

	if noColor {
		fcolor.NoColor = true
	}

	return nil
}
