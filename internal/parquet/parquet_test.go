package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clustercheck/schema"
)

func TestCheckRunRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(CheckRunRow))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"run_time",
		"check",
		"metric",
		"detail",
		"want",
		"got",
		"delta",
		"passed",
		"comparisons",
		"duration_ms",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestScoreRowStructTags(t *testing.T) {
	pqSchema := parquet.SchemaOf(new(ScoreRow))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{"metric", "score", "rank", "samples", "tags"}
	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteCheckResultParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "check_run.parquet")

	result := &schema.CheckResult{
		Passed:      false,
		ChecksRun:   []schema.CheckID{schema.SymmetryCheck, schema.ZeroInfoCheck},
		Comparisons: 18,
		Tolerance:   1e-7,
		Violations: []schema.Violation{
			{
				Check:  schema.SymmetryCheck,
				Metric: schema.AdjustedRand,
				Detail: "m(a,b) vs m(b,a)",
				Want:   0.5,
				Got:    0.25,
				Delta:  0.25,
			},
		},
	}

	err := WriteCheckResult(result, 120*time.Millisecond, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[CheckRunRow](file)
	defer reader.Close()

	readData := make([]CheckRunRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n, "Should read summary row plus one violation")

	// Summary row carries run-level fields
	summary := readData[0]
	assert.Equal(t, "summary", summary.Check)
	assert.False(t, summary.Passed)
	assert.Equal(t, int32(18), summary.Comparisons)
	assert.Equal(t, int32(120), summary.DurationMs)
	assert.Nil(t, summary.Want)
	assert.Nil(t, summary.Got)

	// Violation row carries the comparison values
	violation := readData[1]
	assert.Equal(t, "symmetry", violation.Check)
	assert.Equal(t, "adjusted_rand", violation.Metric)
	assert.Equal(t, "m(a,b) vs m(b,a)", violation.Detail)
	require.NotNil(t, violation.Want)
	require.NotNil(t, violation.Got)
	require.NotNil(t, violation.Delta)
	assert.InDelta(t, 0.5, *violation.Want, 1e-12)
	assert.InDelta(t, 0.25, *violation.Got, 1e-12)
	assert.InDelta(t, 0.25, *violation.Delta, 1e-12)
}

func TestWriteCheckResultParquet_PassingRun(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "check_pass.parquet")

	result := &schema.CheckResult{
		Passed:      true,
		ChecksRun:   schema.AllChecks,
		Comparisons: 120,
		Tolerance:   1e-7,
	}

	err := WriteCheckResult(result, 50*time.Millisecond, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[CheckRunRow](file)
	defer reader.Close()

	readData := make([]CheckRunRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n, "Passing run yields only the summary row")
	assert.True(t, readData[0].Passed)
}

func TestWriteScoreReportParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scores.parquet")

	report := &schema.ScoreReport{
		LabelsTrue: []int{0, 0, 1, 1},
		LabelsPred: []int{0, 1, 1, 1},
		Scores: []schema.MetricScore{
			{
				Metric: schema.NormalizedMutualInfo,
				Score:  0.343711,
				Tags:   schema.TagsFor(schema.NormalizedMutualInfo),
			},
			{
				Metric: schema.AdjustedRand,
				Score:  0.0,
				Tags:   schema.TagsFor(schema.AdjustedRand),
			},
		},
	}

	err := WriteScoreReport(report, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ScoreRow](file)
	defer reader.Close()

	readData := make([]ScoreRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)

	assert.Equal(t, "normalized_mutual_info", readData[0].Metric)
	assert.InDelta(t, 0.343711, readData[0].Score, 1e-9)
	assert.Equal(t, int32(1), readData[0].Rank)
	assert.Equal(t, int32(4), readData[0].Samples)
	assert.Contains(t, readData[0].Tags, "symmetric")

	assert.Equal(t, "adjusted_rand", readData[1].Metric)
	assert.Equal(t, int32(2), readData[1].Rank)
}

func TestWriteCheckResultParquet_InvalidPath(t *testing.T) {
	result := &schema.CheckResult{Passed: true}
	err := WriteCheckResult(result, time.Millisecond, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "", joinTags(nil))
	assert.Equal(t, "symmetric", joinTags([]schema.PropertyTag{schema.SymmetricTag}))
	assert.Equal(t, "symmetric,range_normalized",
		joinTags([]schema.PropertyTag{schema.SymmetricTag, schema.NormalizedTag}))
}
