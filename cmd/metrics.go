package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clusterlab/clustercheck/core"
	"github.com/clusterlab/clustercheck/internal/contract"
)

// metricsCmd displays the definitions of all registered metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions and property tags for all registered metrics",
	Long: `Show each registered clustering metric with its kind (supervised or
unsupervised), value range, declared property tags, and a short definition.

No metric evaluation is performed - this is purely informational.

Use this to:
- See which invariants apply to which metric
- Understand what each metric measures
- Document scoring methodology

Examples:
  # Show all metric definitions
  clustercheck metrics

  # Machine-readable listing
  clustercheck metrics --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetricsInfo(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
