package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clustercheck/schema"
)

func sampleReport() *schema.ScoreReport {
	return &schema.ScoreReport{
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
}

func TestWriteScoresTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoresTable(&buf, sampleReport(), createFloatFormatter(4), 25*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Scoring 4 samples across 2 supervised metrics")
	assert.Contains(t, output, "normalized_mutual_info")
	assert.Contains(t, output, "0.3437")
	assert.Contains(t, output, "adjusted_rand")
	assert.Contains(t, output, "Scored in 25ms")
}

func TestWriteScoresCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoresCSV(&buf, sampleReport(), createFloatFormatter(4))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "tags")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[1], "normalized_mutual_info")
	assert.Contains(t, lines[1], "0.3437")
	assert.Contains(t, lines[2], "2")
	assert.Contains(t, lines[2], "adjusted_rand")
}

func TestWriteScoresJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	scores, ok := decoded["scores"].([]any)
	require.True(t, ok)
	require.Len(t, scores, 2)
	first, ok := scores[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "normalized_mutual_info", first["metric"])
	assert.InDelta(t, 0.343711, first["score"].(float64), 1e-9)
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "-", formatTags(nil))
	assert.Equal(t, "symmetric", formatTags([]schema.PropertyTag{schema.SymmetricTag}))
	assert.Equal(t, "symmetric,range_normalized",
		formatTags([]schema.PropertyTag{schema.SymmetricTag, schema.NormalizedTag}))
}
