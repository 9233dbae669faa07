package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/internal/parquet"
	"github.com/clusterlab/clustercheck/schema"
)

// WriteScoreReport outputs a metric score report, dispatching based on the
// output format configured.
func WriteScoreReport(report *schema.ScoreReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresCSV(w, report, fmtFloat)
		}, "CSV")
	case schema.ParquetOut:
		return parquet.WriteScoreReport(report, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresTable(w, report, fmtFloat, duration)
		}, "table")
	}
}

// writeScoresCSV writes one row per metric score.
func writeScoresCSV(w io.Writer, report *schema.ScoreReport, fmtFloat func(float64) string) error {
	header := []string{"rank", "metric", "score", "tags"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, s := range report.Scores {
			row := []string{
				strconv.Itoa(i + 1),
				string(s.Metric),
				fmtFloat(s.Score),
				formatTags(s.Tags),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeScoresTable generates and writes the human-readable score table.
func writeScoresTable(w io.Writer, report *schema.ScoreReport, fmtFloat func(float64) string, duration time.Duration) error {
	fmt.Fprintf(w, "Scoring %d samples across %d supervised metrics\n\n",
		len(report.LabelsTrue), len(report.Scores))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Metric", "Score", "Tags"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range report.Scores {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(s.Metric),
			fmtFloat(s.Score),
			formatTags(s.Tags),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nScored in %s\n", duration.Round(time.Millisecond))
	return nil
}

// formatTags joins property tags for display.
func formatTags(tags []schema.PropertyTag) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
