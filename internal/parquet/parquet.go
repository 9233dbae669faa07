// Package parquet provides data structures and functions for exporting
// clustercheck run data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/clusterlab/clustercheck/schema"
)

// CheckRunRow represents one comparison outcome from an invariance-check
// run. Passing comparisons are not exported row-by-row; violations are, plus
// a single summary row for the run.
type CheckRunRow struct {
	// RunTime is when the check run completed
	RunTime time.Time `parquet:"run_time,snappy"`

	// Check is the invariance check that produced the row
	Check string `parquet:"check,snappy"`

	// Metric is the metric under check; empty for the run-summary row
	Metric string `parquet:"metric,optional,snappy"`

	// Detail names the comparison that failed
	Detail string `parquet:"detail,optional,snappy"`

	// Want and Got are the compared values (nullable for summary rows)
	Want *float64 `parquet:"want,optional,snappy"`
	Got  *float64 `parquet:"got,optional,snappy"`

	// Delta is the absolute difference
	Delta *float64 `parquet:"delta,optional,snappy"`

	// Passed reports the run outcome on the summary row
	Passed bool `parquet:"passed,snappy"`

	// Comparisons is the total comparisons evaluated (summary row only)
	Comparisons int32 `parquet:"comparisons,snappy"`

	// DurationMs is the run duration in milliseconds (summary row only)
	DurationMs int32 `parquet:"duration_ms,snappy"`
}

// ScoreRow represents one metric's score for a label pair.
type ScoreRow struct {
	// Metric is the metric identifier
	Metric string `parquet:"metric,snappy"`

	// Score is the metric's value
	Score float64 `parquet:"score,snappy"`

	// Rank is the 1-based position after sorting by score descending
	Rank int32 `parquet:"rank,snappy"`

	// Samples is the number of labeled samples scored
	Samples int32 `parquet:"samples,snappy"`

	// Tags joins the metric's property tags with commas
	Tags string `parquet:"tags,optional,snappy"`
}

// WriteCheckResult writes an invariance-check result to a Parquet file: one
// summary row plus one row per violation.
func WriteCheckResult(result *schema.CheckResult, duration time.Duration, outputPath string) error {
	now := time.Now()
	rows := make([]CheckRunRow, 0, len(result.Violations)+1)
	rows = append(rows, CheckRunRow{
		RunTime:     now,
		Check:       "summary",
		Passed:      result.Passed,
		Comparisons: int32(result.Comparisons),
		DurationMs:  int32(duration.Milliseconds()),
	})
	for _, v := range result.Violations {
		want, got, delta := v.Want, v.Got, v.Delta
		rows = append(rows, CheckRunRow{
			RunTime: now,
			Check:   string(v.Check),
			Metric:  string(v.Metric),
			Detail:  v.Detail,
			Want:    &want,
			Got:     &got,
			Delta:   &delta,
		})
	}
	return writeRows(rows, outputPath)
}

// WriteScoreReport writes a metric score report to a Parquet file.
func WriteScoreReport(report *schema.ScoreReport, outputPath string) error {
	rows := make([]ScoreRow, 0, len(report.Scores))
	for i, s := range report.Scores {
		rows = append(rows, ScoreRow{
			Metric:  string(s.Metric),
			Score:   s.Score,
			Rank:    int32(i + 1),
			Samples: int32(len(report.LabelsTrue)),
			Tags:    joinTags(s.Tags),
		})
	}
	return writeRows(rows, outputPath)
}

// writeRows writes a slice of row structs to a Parquet file using struct
// schema inference.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// joinTags flattens property tags for a flat column.
func joinTags(tags []schema.PropertyTag) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ","
		}
		out += string(t)
	}
	return out
}
