package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsFor(t *testing.T) {
	tests := []struct {
		metric MetricID
		tags   []PropertyTag
	}{
		{AdjustedRand, []PropertyTag{SymmetricTag, NormalizedTag}},
		{AdjustedMutualInfo, []PropertyTag{SymmetricTag, ZeroInfoTag, NormalizedTag}},
		{NormalizedMutualInfo, []PropertyTag{SymmetricTag, ZeroInfoTag, NormalizedTag}},
		{VMeasure, []PropertyTag{SymmetricTag, ZeroInfoTag, NormalizedTag}},
		{MutualInfo, []PropertyTag{SymmetricTag}},
		{FowlkesMallows, []PropertyTag{SymmetricTag, NormalizedTag}},
		{Homogeneity, []PropertyTag{NonSymmetricTag, NormalizedTag}},
		{Completeness, []PropertyTag{NonSymmetricTag, NormalizedTag}},
		{Silhouette, nil},
		{CalinskiHarabasz, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			assert.Equal(t, tt.tags, TagsFor(tt.metric))
		})
	}
}

func TestHasTag(t *testing.T) {
	assert.True(t, HasTag(AdjustedRand, SymmetricTag))
	assert.False(t, HasTag(AdjustedRand, NonSymmetricTag))
	assert.True(t, HasTag(Homogeneity, NonSymmetricTag))
	assert.False(t, HasTag(MutualInfo, NormalizedTag))
	assert.False(t, HasTag(MetricID("unknown"), SymmetricTag))
}

func TestMetricGroupsAreDisjointWhereRequired(t *testing.T) {
	// No metric can be both symmetric and non-symmetric.
	for _, id := range SymmetricMetrics {
		assert.False(t, HasTag(id, NonSymmetricTag), "%s tagged both ways", id)
	}
	for _, id := range NonSymmetricMetrics {
		assert.False(t, HasTag(id, SymmetricTag), "%s tagged both ways", id)
	}
}

func TestAllSupervisedMetricsCoverTaggedSets(t *testing.T) {
	declared := make(map[MetricID]struct{})
	for _, id := range AllSupervisedMetrics {
		declared[id] = struct{}{}
	}
	for tag, members := range tagSets {
		for _, id := range members {
			_, ok := declared[id]
			assert.True(t, ok, "%s member %s not in supervised list", tag, id)
		}
	}
}

func TestValidChecksMatchAllChecks(t *testing.T) {
	assert.Len(t, ValidChecks, len(AllChecks))
	for _, id := range AllChecks {
		_, ok := ValidChecks[id]
		assert.True(t, ok, "check %s missing from valid set", id)
	}
}

func TestValidOutputModes(t *testing.T) {
	for _, mode := range []OutputMode{CSVOut, TextOut, JSONOut, ParquetOut} {
		_, ok := ValidOutputModes[mode]
		assert.True(t, ok)
	}
	_, ok := ValidOutputModes[OutputMode("yaml")]
	assert.False(t, ok)
}
