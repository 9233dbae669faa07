package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/internal/parquet"
	"github.com/clusterlab/clustercheck/schema"
)

// WriteCheckResult outputs an invariance-check result, dispatching based on
// the output format configured.
func WriteCheckResult(result *schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckCSV(w, result, fmtFloat)
		}, "CSV")
	case schema.ParquetOut:
		return parquet.WriteCheckResult(result, duration, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckTable(w, result, cfg, fmtFloat, duration)
		}, "table")
	}
}

// writeCheckCSV writes one row per violation; a passing run yields only the
// header.
func writeCheckCSV(w io.Writer, result *schema.CheckResult, fmtFloat func(float64) string) error {
	header := []string{"check", "metric", "detail", "want", "got", "delta"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, v := range result.Violations {
			row := []string{
				string(v.Check),
				string(v.Metric),
				v.Detail,
				fmtFloat(v.Want),
				fmtFloat(v.Got),
				fmt.Sprintf("%.3g", v.Delta),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeCheckTable generates and writes the human-readable report.
func writeCheckTable(w io.Writer, result *schema.CheckResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	status := contract.GetPlainStatus(result.Passed)
	if cfg.UseColors {
		status = contract.GetColorStatus(result.Passed)
	}
	fmt.Fprintf(w, "Invariance check: %s\n", status)
	fmt.Fprintf(w, "Checks run: %d  Comparisons: %d  Tolerance: %g  Duration: %s\n\n",
		len(result.ChecksRun), result.Comparisons, result.Tolerance, duration.Round(time.Millisecond))

	if len(result.Violations) == 0 {
		fmt.Fprintln(w, "All declared metric properties hold.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Check", "Metric", "Detail", "Want", "Got", "Delta"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, v := range result.Violations {
		data = append(data, []string{
			string(v.Check),
			string(v.Metric),
			v.Detail,
			fmtFloat(v.Want),
			fmtFloat(v.Got),
			fmt.Sprintf("%.3g", v.Delta),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
