package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/devantler-tech/jobplan/pkg/io/config"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of " + config.FileName + ".yaml",
		Long: `Print the JSON schema of the configuration file so that editors can
validate and complete it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(config.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}
}
