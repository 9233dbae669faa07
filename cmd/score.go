package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clusterlab/clustercheck/core"
	"github.com/clusterlab/clustercheck/internal/contract"
)

// scoreCmd evaluates every supervised metric on a user-supplied label pair.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a label pair with every supervised metric, ranked by score",
	Long: `Evaluate every registered supervised clustering metric on a pair of label
vectors and print the scores ranked descending.

Labels are comma-separated integers; values are cluster identifiers, not
sample identifiers, so any relabeling that preserves the partition yields
the same scores.

Examples:
  # Compare a prediction against ground truth
  clustercheck score --labels-true 0,0,0,1,1,1 --labels-pred 0,0,0,1,2,2

  # Machine-readable output
  clustercheck score --labels-true 0,0,1,1 --labels-pred 0,1,0,1 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score labels", err)
		}
	},
}
