// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/schema"
)

// OutWriter provides a unified interface for all output operations. It
// encapsulates the various output formats and provides a clean API for the
// core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCheck prints an invariance-check result using the configured output
// format.
func (ow *OutWriter) WriteCheck(result *schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return WriteCheckResult(result, cfg, duration)
}

// WriteScores prints a metric score report using the configured output
// format.
func (ow *OutWriter) WriteScores(report *schema.ScoreReport, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreReport(report, cfg, duration)
}

// WriteMetricsInfo prints metric definitions using the configured output
// format.
func (ow *OutWriter) WriteMetricsInfo(infos []schema.MetricInfo, cfg *contract.Config) error {
	return WriteMetricInfos(infos, cfg)
}

// getTerminalWidth returns the configured or detected terminal width, with a
// conservative default for narrow terminals and CI.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}
