package main

import (
	"errors"

	"github.com/spf13/cobra"

	"runway-engine/internal/config"
	"runway-engine/internal/engine"
	"runway-engine/internal/model"
)

func newBatchCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute every scenario in a file concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			scenarios, err := config.LoadScenarios(file)
			if err != nil {
				return err
			}

			req := &model.BatchRequest{TenantID: a.cfg.TenantID, Scenarios: scenarios}
			resp, err := engine.ProcessBatch(cmd.Context(), req, a.cfg.MaxParallel, nil)
			if err != nil {
				return err
			}
			return writeIndentedJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario file (required)")
	return cmd
}
