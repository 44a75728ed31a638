package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"runway-engine/internal/config"
	"runway-engine/internal/engine"
	"runway-engine/internal/export"
	"runway-engine/internal/model"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		flags    inputFlags
		file     string
		scenario string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute dilution, runway and health for one set of inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := model.DefaultInputs()
			if file != "" {
				scenarios, err := config.LoadScenarios(file)
				if err != nil {
					return err
				}
				s, err := pickScenario(scenarios, scenario)
				if err != nil {
					return err
				}
				base = s.Inputs
			}
			in := flags.overlay(cmd.Flags(), base)

			resp := engine.Process(&model.CalculationRequest{TenantID: a.cfg.TenantID, Inputs: in})
			out := cmd.OutOrStdout()

			if format == "json" {
				return writeIndentedJSON(out, resp)
			}

			p := resp.CalculationResult.Projection
			if p == nil {
				return &model.ValidationError{Messages: resp.CalculationResult.Messages}
			}
			for _, m := range resp.CalculationResult.Messages {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", m.Level, m.Code, m.Message)
			}

			switch format {
			case "table":
				_, err := fmt.Fprint(out, export.Report(p, export.ASCII))
				return err
			case "markdown":
				_, err := fmt.Fprint(out, export.Report(p, export.Markdown))
				return err
			case "csv":
				return export.WriteCSV(out, p.Rows)
			default:
				return fmt.Errorf("unknown format %q (want table, markdown, json or csv)", format)
			}
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario file to read inputs from")
	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario name within --file")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format: table, markdown, json or csv")

	return cmd
}
