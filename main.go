// runway-engine projects a startup's cash runway and the dilution of a financing round.
//
// Usage:
//
//	runway-engine calc [--raise=3000000 --pre-money=10000000 ...] [--format=table|markdown|json|csv]
//	runway-engine calc --file=scenarios.yaml --scenario=bridge
//	runway-engine batch --file=scenarios.yaml
//	runway-engine compare --file=scenarios.yaml --base=base --alt=bridge
//	runway-engine serve [--port=8080]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"runway-engine/internal/config"
	"runway-engine/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries what every subcommand shares once the root has loaded the environment.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "runway-engine",
		Short: "Cash runway and financing dilution projections",
		Long: "runway-engine computes the adjusted raise, post-money valuation and ownership sold\n" +
			"for a financing round, projects monthly burn against revenue, and reports the month\n" +
			"the capital runs out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Init(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	root.AddCommand(newCalcCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newServeCmd(a))
	root.Version = version

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
