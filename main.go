// Package main is the entry point for jobplan.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/devantler-tech/jobplan/internal/buildmeta"
	"github.com/devantler-tech/jobplan/pkg/cli/cmd"
	"github.com/devantler-tech/jobplan/pkg/utils/notify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode := runSafely(ctx, os.Args[1:], runWithArgs, os.Stderr)

	stop()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // the deferred recover sets the exit code
func runSafely(
	ctx context.Context,
	args []string,
	runner func(context.Context, []string) int,
	errWriter io.Writer,
) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "panic recovered: %v\n%s", r, debug.Stack())

			exitCode = 1
		}
	}()

	return runner(ctx, args)
}

func runWithArgs(ctx context.Context, args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := cmd.Execute(ctx, rootCmd)
	if err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)

		return 1
	}

	return 0
}

