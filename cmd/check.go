package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clusterlab/clustercheck/core"
	"github.com/clusterlab/clustercheck/internal/contract"
)

// checkCmd runs the invariance suite and fails loudly on violations.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify declared metric invariants (fails with non-zero exit on violations)",
	Long: `Apply every declared mathematical property to the registered clustering
metrics and report violations.

Checks:
- symmetry:          symmetric metrics are order-insensitive; asymmetric ones round-trip under a paired swap
- zero_info:         zero-information labelings score exactly zero across growing sample counts
- normalized_output: range-normalized metrics respect their [0, 1] contract and boundary values
- permutation:       scores are invariant under relabelings that preserve partition structure
- format:            identical labels score identically regardless of input container

A violation means a regression in a metric implementation or in the
invariant's own assumptions; the command exits non-zero so CI pipelines can
gate on it.

Examples:
  # Run the full suite
  clustercheck check

  # Only the numerical-stability checks, with a looser tolerance
  clustercheck check --checks zero_info,normalized_output --tolerance 1e-6

  # Export violations for analysis
  clustercheck check --output parquet --output-file violations.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInvarianceCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Invariance check failed", err)
		}
	},
}
