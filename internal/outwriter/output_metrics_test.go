package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/schema"
)

func sampleInfos() []schema.MetricInfo {
	return []schema.MetricInfo{
		{
			Name:        schema.AdjustedRand,
			Kind:        "supervised",
			Range:       "[-1, 1]",
			Description: "Rand index adjusted for chance",
			Tags:        schema.TagsFor(schema.AdjustedRand),
		},
		{
			Name:        schema.Silhouette,
			Kind:        "unsupervised",
			Range:       "[-1, 1]",
			Description: "Mean silhouette coefficient over all samples",
		},
	}
}

func TestWriteMetricInfoTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 120}

	var buf bytes.Buffer
	err := writeMetricInfoTable(&buf, sampleInfos(), cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Registered clustering metrics (2)")
	assert.Contains(t, output, "adjusted_rand")
	assert.Contains(t, output, "supervised")
	assert.Contains(t, output, "silhouette")
	assert.Contains(t, output, "unsupervised")
}

func TestWriteMetricInfoTableTruncatesDescription(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 40}
	infos := []schema.MetricInfo{
		{
			Name:        schema.VMeasure,
			Kind:        "supervised",
			Range:       "[0, 1]",
			Description: strings.Repeat("long description ", 10),
		},
	}

	var buf bytes.Buffer
	err := writeMetricInfoTable(&buf, infos, cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "...")
}

func TestWriteMetricInfoCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeMetricInfoCSV(&buf, sampleInfos())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "metric")
	assert.Contains(t, lines[0], "description")
	assert.Contains(t, lines[1], "adjusted_rand")
	assert.Contains(t, lines[1], "symmetric")
	assert.Contains(t, lines[2], "silhouette")
	assert.Contains(t, lines[2], "-") // untagged metric renders a dash
}

func TestWriteMetricInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, sampleInfos())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "adjusted_rand", decoded[0]["name"])
	assert.Equal(t, "unsupervised", decoded[1]["kind"])
}
