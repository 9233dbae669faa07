package schema

// Custom string types for type safety.
type (
	// MetricID identifies a registered clustering metric.
	MetricID string

	// CheckID identifies an invariance check.
	CheckID string

	// PropertyTag names a mathematical property shared by a set of metrics.
	PropertyTag string

	// OutputMode represents the format of the output.
	OutputMode string

	// DistanceKind selects how an unsupervised metric interprets its matrix input.
	DistanceKind string
)

// All supervised metrics.
const (
	AdjustedMutualInfo   MetricID = "adjusted_mutual_info"
	AdjustedRand         MetricID = "adjusted_rand"
	Completeness         MetricID = "completeness"
	FowlkesMallows       MetricID = "fowlkes_mallows"
	Homogeneity          MetricID = "homogeneity"
	MutualInfo           MetricID = "mutual_info"
	NormalizedMutualInfo MetricID = "normalized_mutual_info"
	VMeasure             MetricID = "v_measure"
)

// All unsupervised metrics.
const (
	CalinskiHarabasz MetricID = "calinski_harabasz"
	Silhouette       MetricID = "silhouette"
)

// All invariance checks supported.
const (
	SymmetryCheck    CheckID = "symmetry"
	ZeroInfoCheck    CheckID = "zero_info"
	NormalizedCheck  CheckID = "normalized_output"
	PermutationCheck CheckID = "permutation"
	FormatCheck      CheckID = "format"
)

// All property tags.
const (
	SymmetricTag    PropertyTag = "symmetric"
	NonSymmetricTag PropertyTag = "non_symmetric"
	ZeroInfoTag     PropertyTag = "zero_info_collapsing"
	NormalizedTag   PropertyTag = "range_normalized"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All distance kinds supported.
const (
	EuclideanDistance   DistanceKind = "euclidean"
	PrecomputedDistance DistanceKind = "precomputed"
)

// SymmetricMetrics lists metrics whose score is unchanged when the true and
// predicted label vectors trade places.
var SymmetricMetrics = []MetricID{
	AdjustedRand, VMeasure,
	MutualInfo, AdjustedMutualInfo,
	NormalizedMutualInfo, FowlkesMallows,
}

// NonSymmetricMetrics lists metrics whose definition distinguishes the true
// role from the predicted role.
var NonSymmetricMetrics = []MetricID{Homogeneity, Completeness}

// ZeroInfoMetrics lists metrics that collapse to zero when one labeling
// carries no information about the other.
var ZeroInfoMetrics = []MetricID{
	NormalizedMutualInfo, VMeasure, AdjustedMutualInfo,
}

// NormalizedMetrics lists metrics bounded in [0, 1] with 1 meaning perfect
// agreement.
var NormalizedMetrics = []MetricID{
	AdjustedRand, Homogeneity, Completeness,
	VMeasure, AdjustedMutualInfo, FowlkesMallows,
	NormalizedMutualInfo,
}

// AllSupervisedMetrics lists every supervised metric in registry order.
var AllSupervisedMetrics = []MetricID{
	AdjustedMutualInfo, AdjustedRand, Completeness, FowlkesMallows,
	Homogeneity, MutualInfo, NormalizedMutualInfo, VMeasure,
}

// AllUnsupervisedMetrics lists every unsupervised metric.
var AllUnsupervisedMetrics = []MetricID{CalinskiHarabasz, Silhouette}

// AllChecks lists every invariance check in execution order.
var AllChecks = []CheckID{
	SymmetryCheck, ZeroInfoCheck, NormalizedCheck, PermutationCheck, FormatCheck,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidChecks lists all valid check identifiers.
var ValidChecks = map[CheckID]struct{}{
	SymmetryCheck:    {},
	ZeroInfoCheck:    {},
	NormalizedCheck:  {},
	PermutationCheck: {},
	FormatCheck:      {},
}

// allTags fixes a stable ordering for tag listings.
var allTags = []PropertyTag{SymmetricTag, NonSymmetricTag, ZeroInfoTag, NormalizedTag}

// TagsFor returns the property tags declared for a metric, in stable order.
func TagsFor(id MetricID) []PropertyTag {
	var tags []PropertyTag
	for _, tag := range allTags {
		if HasTag(id, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasTag reports whether a metric carries the given property tag.
func HasTag(id MetricID, tag PropertyTag) bool {
	for _, m := range tagSets[tag] {
		if m == id {
			return true
		}
	}
	return false
}

// tagSets maps each property tag to its declared membership. Membership is
// asserted, never computed: these sets are the contract the checker enforces.
var tagSets = map[PropertyTag][]MetricID{
	SymmetricTag:    SymmetricMetrics,
	NonSymmetricTag: NonSymmetricMetrics,
	ZeroInfoTag:     ZeroInfoMetrics,
	NormalizedTag:   NormalizedMetrics,
}
