// Package cmd defines the command-line interface for clustercheck.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("tolerance", contract.DefaultTolerance, "Absolute tolerance for score comparisons")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for parquet)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for score columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultLimit, "Number of score rows to display")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("checks", "", "Comma-separated subset of checks to run (default: all)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("labels-true", "", "Ground-truth label vector, e.g. 0,0,0,1,1,1")
	scoreCmd.Flags().String("labels-pred", "", "Predicted label vector, e.g. 0,0,0,1,2,2")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}
}
