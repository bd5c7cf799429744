package cmd

import (
	"fmt"
	"os"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var (
		jobKind string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "show PLAN",
		Short: "Render a saved plan response",
		Long: `Render a plan response previously saved from the scheduler API, as JSON or
YAML, the same way the plan command does. No scheduler is contacted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := readPlanResponse(args[0])
			if err != nil {
				return err
			}

			writePlan(output(cmd), colorizer(cmd), resp, v1alpha1.JobKind(jobKind), verbose)

			return nil
		},
	}

	cmd.Flags().StringVar(&jobKind, "job-type", string(v1alpha1.JobKindService),
		"scheduler type of the planned job (service, batch, system or sysbatch)")
	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "show unchanged fields and objects")

	return cmd
}

// readPlanResponse decodes a plan response file. YAML is converted to JSON
// first, so JSON field names apply to both formats.
func readPlanResponse(path string) (*v1alpha1.PlanResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read plan response: %w", err)
	}

	resp := &v1alpha1.PlanResponse{}

	err = yaml.Unmarshal(data, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plan response %q: %w", path, err)
	}

	return resp, nil
}
