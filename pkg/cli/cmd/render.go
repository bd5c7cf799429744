package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/svc/jobspec"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var opts jobOptions

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print a job file with its placeholders expanded",
		Long: `Expand [[ name ]] placeholders in the job file with values from the
variable files and the environment, and print the result. Runtime
interpolations such as ${attr.kernel.name} are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := jobspec.NewRenderer(opts.varFiles, os.Environ())
			if err != nil {
				return err //nolint:wrapcheck // already describes the failure
			}

			spec, err := renderer.Render(args[0])
			if err != nil {
				return err //nolint:wrapcheck // names the file
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(spec, "\n"))
			if err != nil {
				return fmt.Errorf("failed to write rendered job: %w", err)
			}

			return nil
		},
	}

	opts.addFlags(cmd.Flags())

	return cmd
}
