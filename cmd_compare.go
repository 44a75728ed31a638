package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"runway-engine/internal/compare"
	"runway-engine/internal/config"
	"runway-engine/internal/engine"
)

func newCompareCmd(a *app) *cobra.Command {
	var file, baseName, altName string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the JSON Patch between two scenarios' projections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" || baseName == "" || altName == "" {
				return errors.New("--file, --base and --alt are required")
			}
			scenarios, err := config.LoadScenarios(file)
			if err != nil {
				return err
			}

			base, err := config.FindScenario(scenarios, baseName)
			if err != nil {
				return err
			}
			alt, err := config.FindScenario(scenarios, altName)
			if err != nil {
				return err
			}

			bp, _, err := engine.Compute(base.Inputs)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", base.Name, err)
			}
			ap, _, err := engine.Compute(alt.Inputs)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", alt.Name, err)
			}

			ops, err := compare.Projections(bp, ap)
			if err != nil {
				return err
			}
			return writeIndentedJSON(cmd.OutOrStdout(), ops)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario file (required)")
	cmd.Flags().StringVar(&baseName, "base", "", "Base scenario name (required)")
	cmd.Flags().StringVar(&altName, "alt", "", "Alternative scenario name (required)")
	return cmd
}
