package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/internal/outwriter"
)

// ExecuteInvarianceCheck runs the check command. It applies the configured
// invariance checks to the registered metrics, prints a report, and exits
// with a non-zero code when any declared property is violated.
func ExecuteInvarianceCheck(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	checker, err := NewChecker(cfg.Tolerance)
	if err != nil {
		return err
	}
	result := checker.Run(cfg.Checks)

	ow := outwriter.NewOutWriter()
	if err := ow.WriteCheck(&result, cfg, time.Since(start)); err != nil {
		return err
	}

	if !result.Passed {
		fmt.Printf("%d violation(s) found\n", len(result.Violations))
		os.Exit(1)
	}
	return nil
}
