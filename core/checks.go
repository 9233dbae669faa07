package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/clusterlab/clustercheck/cluster"
	"github.com/clusterlab/clustercheck/dataset"
	"github.com/clusterlab/clustercheck/schema"
)

// DefaultTolerance is the absolute difference two scores may differ by and
// still count as equal.
const DefaultTolerance = 1e-7

// Checker applies declared mathematical properties to the registered metrics
// and records every violation. The registries and the dataset are fixed at
// construction; each check is stateless and order-independent.
type Checker struct {
	supervised   map[schema.MetricID]cluster.SupervisedMetric
	unsupervised map[schema.MetricID]cluster.UnsupervisedMetric
	data         *dataset.Labeled
	tolerance    float64

	comparisons int
}

// NewChecker builds a checker over the process-wide registries, loading the
// fixed dataset used by the unsupervised permutation checks.
func NewChecker(tolerance float64) (*Checker, error) {
	data, err := dataset.Iris()
	if err != nil {
		return nil, fmt.Errorf("load check dataset: %w", err)
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Checker{
		supervised:   supervisedRegistry,
		unsupervised: unsupervisedRegistry,
		data:         data,
		tolerance:    tolerance,
	}, nil
}

// Run executes the requested checks and aggregates their violations. An
// empty check list runs everything.
func (c *Checker) Run(checks []schema.CheckID) schema.CheckResult {
	if len(checks) == 0 {
		checks = schema.AllChecks
	}
	c.comparisons = 0

	var violations []schema.Violation
	var ran []schema.CheckID
	for _, id := range checks {
		switch id {
		case schema.SymmetryCheck:
			violations = append(violations, c.Symmetry()...)
		case schema.ZeroInfoCheck:
			violations = append(violations, c.ZeroInformation()...)
		case schema.NormalizedCheck:
			violations = append(violations, c.NormalizedOutput()...)
		case schema.PermutationCheck:
			violations = append(violations, c.LabelPermutation()...)
		case schema.FormatCheck:
			violations = append(violations, c.FormatInvariance()...)
		default:
			continue
		}
		ran = append(ran, id)
	}

	return schema.CheckResult{
		Passed:      len(violations) == 0,
		ChecksRun:   ran,
		Comparisons: c.comparisons,
		Tolerance:   c.tolerance,
		Violations:  violations,
	}
}

// Symmetry verifies that symmetric metrics are unchanged when their two
// arguments trade places, and that role-asymmetric metrics still round-trip
// when both vectors swap together with their roles.
func (c *Checker) Symmetry() []schema.Violation {
	var vs []schema.Violation

	a, b := symmetryPair()
	for _, id := range schema.SymmetricMetrics {
		m, ok := c.supervised[id]
		if !ok {
			continue
		}
		s1, err := m(a, b)
		s2, err2 := m(b, a)
		if c.evalFailed(&vs, schema.SymmetryCheck, id, err, err2) {
			continue
		}
		c.compare(&vs, schema.SymmetryCheck, id, "m(a,b) vs m(b,a)", s1, s2)
	}

	u, v := nonSymmetricPair()
	for _, id := range schema.NonSymmetricMetrics {
		m, ok := c.supervised[id]
		if !ok {
			continue
		}
		s1, err := m(u, v)
		s2, err2 := m(v, u)
		if c.evalFailed(&vs, schema.SymmetryCheck, id, err, err2) {
			continue
		}
		c.compare(&vs, schema.SymmetryCheck, id, "paired swap round-trip", s1, s2)
	}
	return vs
}

// ZeroInformation verifies that zero-info-collapsing metrics evaluate to
// zero when one labeling is a single cluster and the other gives every
// sample its own cluster, across growing sample counts.
func (c *Checker) ZeroInformation() []schema.Violation {
	var vs []schema.Violation
	for _, n := range zeroInfoSizes {
		constant := constantLabels(n)
		distinct := distinctLabels(n)
		for _, id := range schema.ZeroInfoMetrics {
			m, ok := c.supervised[id]
			if !ok {
				continue
			}
			s, err := m(constant, distinct)
			if c.evalFailed(&vs, schema.ZeroInfoCheck, id, err) {
				continue
			}
			c.compare(&vs, schema.ZeroInfoCheck, id, fmt.Sprintf("zero info at n=%d", n), 0.0, s)
		}
	}
	return vs
}

// NormalizedOutput verifies the [0, 1] range contract of range-normalized
// metrics: strictly above 0 on both imperfect pairs, within a tolerance of
// the upper bound (boundary scores of exactly 1 are legal: homogeneity on
// the refined pair, completeness on the merged pair), exactly 1 for
// identical partitions, and (for the symmetric subset) exactly 0 at the
// constant-vs-all-distinct lower bound.
func (c *Checker) NormalizedOutput() []schema.Violation {
	var vs []schema.Violation
	for _, id := range schema.NormalizedMetrics {
		m, ok := c.supervised[id]
		if !ok {
			continue
		}
		refined, err := m(refinedTrue, refinedPred)
		merged, err2 := m(mergedTrue, mergedPred)
		perfect, err3 := m(perfectLabels, perfectLabels)
		if c.evalFailed(&vs, schema.NormalizedCheck, id, err, err2, err3) {
			continue
		}
		c.requireGreater(&vs, schema.NormalizedCheck, id, "refined pair above lower bound", refined, 0.0)
		c.requireGreater(&vs, schema.NormalizedCheck, id, "merged pair above lower bound", merged, 0.0)
		c.requireLess(&vs, schema.NormalizedCheck, id, "refined pair under upper bound", refined, 1.0+c.tolerance)
		c.requireLess(&vs, schema.NormalizedCheck, id, "merged pair under upper bound", merged, 1.0+c.tolerance)
		c.compare(&vs, schema.NormalizedCheck, id, "perfect agreement", 1.0, perfect)
	}

	lower := constantLabels(6)
	upper := distinctLabels(6)
	for _, id := range schema.SymmetricMetrics {
		if !schema.HasTag(id, schema.NormalizedTag) {
			continue
		}
		m, ok := c.supervised[id]
		if !ok {
			continue
		}
		s, err := m(lower, upper)
		if c.evalFailed(&vs, schema.NormalizedCheck, id, err) {
			continue
		}
		c.compare(&vs, schema.NormalizedCheck, id, "maximal disagreement", 0.0, s)
	}
	return vs
}

// LabelPermutation verifies that every supervised metric is invariant under
// binary-complement relabelings, and that the unsupervised metrics are
// invariant under complement of the cluster assignment (and, for
// Calinski-Harabasz, simultaneous complement of a unit-scaled distance
// matrix and the labels).
func (c *Checker) LabelPermutation() []schema.Violation {
	var vs []schema.Violation

	yTrue, yPred := permutationPair()
	notTrue := cluster.ComplementLabels(yTrue)
	notPred := cluster.ComplementLabels(yPred)
	for _, id := range sortedMetricIDs(c.supervised) {
		m := c.supervised[id]
		base, err := m(yTrue, yPred)
		flipPred, err2 := m(yTrue, notPred)
		flipBoth, err3 := m(notTrue, notPred)
		flipTrue, err4 := m(notTrue, yPred)
		if c.evalFailed(&vs, schema.PermutationCheck, id, err, err2, err3, err4) {
			continue
		}
		c.compare(&vs, schema.PermutationCheck, id, "flip predicted labels", base, flipPred)
		c.compare(&vs, schema.PermutationCheck, id, "flip both labelings", base, flipBoth)
		c.compare(&vs, schema.PermutationCheck, id, "flip true labels", base, flipTrue)
	}

	vs = append(vs, c.unsupervisedPermutation()...)
	return vs
}

// unsupervisedPermutation runs the dataset-backed permutation checks.
func (c *Checker) unsupervisedPermutation() []schema.Violation {
	var vs []schema.Violation

	labels := c.data.Labels
	notLabels := cluster.ComplementLabels(labels)
	dist := cluster.EuclideanDistances(c.data.Features)

	if sil, ok := c.unsupervised[schema.Silhouette]; ok {
		s1, err := sil(dist, labels, schema.PrecomputedDistance)
		s2, err2 := sil(dist, notLabels, schema.PrecomputedDistance)
		if !c.evalFailed(&vs, schema.PermutationCheck, schema.Silhouette, err, err2) {
			c.compare(&vs, schema.PermutationCheck, schema.Silhouette, "flip cluster assignment", s1, s2)
		}
	}

	if ch, ok := c.unsupervised[schema.CalinskiHarabasz]; ok {
		// Unit-scale the distances so the complement 1-D stays a bounded,
		// non-negative matrix.
		unit := cluster.ScaleToUnit(dist)
		notUnit := cluster.ComplementMatrix(unit)

		base, err := ch(unit, labels, schema.PrecomputedDistance)
		flipLabels, err2 := ch(unit, notLabels, schema.PrecomputedDistance)
		flipMatrix, err3 := ch(notUnit, labels, schema.PrecomputedDistance)
		flipBoth, err4 := ch(notUnit, notLabels, schema.PrecomputedDistance)
		if !c.evalFailed(&vs, schema.PermutationCheck, schema.CalinskiHarabasz, err, err2, err3, err4) {
			c.compare(&vs, schema.PermutationCheck, schema.CalinskiHarabasz, "flip cluster assignment", base, flipLabels)
			c.compare(&vs, schema.PermutationCheck, schema.CalinskiHarabasz, "flip bounded matrix", base, flipMatrix)
			c.compare(&vs, schema.PermutationCheck, schema.CalinskiHarabasz, "flip matrix and assignment", base, flipBoth)
		}
	}
	return vs
}

// FormatInvariance verifies that a supervised metric scores the same label
// pair identically whether the labels arrive as a plain int slice or are
// extracted from a numeric vector holding the same values.
func (c *Checker) FormatInvariance() []schema.Violation {
	var vs []schema.Violation

	listA, listB := formatPair()
	vecA := mat.NewVecDense(len(listA), floatsOf(listA))
	vecB := mat.NewVecDense(len(listB), floatsOf(listB))
	fromVecA := cluster.LabelsFromVector(vecA)
	fromVecB := cluster.LabelsFromVector(vecB)

	for _, id := range sortedMetricIDs(c.supervised) {
		m := c.supervised[id]
		fromList, err := m(listA, listB)
		fromVec, err2 := m(fromVecA, fromVecB)
		if c.evalFailed(&vs, schema.FormatCheck, id, err, err2) {
			continue
		}
		c.compare(&vs, schema.FormatCheck, id, "slice input vs vector input", fromList, fromVec)
	}
	return vs
}

// compare records a comparison and appends a violation when the two values
// differ beyond the tolerance.
func (c *Checker) compare(vs *[]schema.Violation, check schema.CheckID, metric schema.MetricID, detail string, want, got float64) {
	c.comparisons++
	diff := math.Abs(want - got)
	if diff > c.tolerance || math.IsNaN(diff) {
		*vs = append(*vs, schema.Violation{
			Check: check, Metric: metric, Detail: detail,
			Want: want, Got: got, Delta: diff,
		})
	}
}

// requireGreater records a strict lower-bound comparison.
func (c *Checker) requireGreater(vs *[]schema.Violation, check schema.CheckID, metric schema.MetricID, detail string, got, bound float64) {
	c.comparisons++
	if !(got > bound) {
		*vs = append(*vs, schema.Violation{
			Check: check, Metric: metric, Detail: detail + fmt.Sprintf(" (must exceed %g)", bound),
			Want: bound, Got: got, Delta: math.Abs(bound - got),
		})
	}
}

// requireLess records a strict upper-bound comparison.
func (c *Checker) requireLess(vs *[]schema.Violation, check schema.CheckID, metric schema.MetricID, detail string, got, bound float64) {
	c.comparisons++
	if !(got < bound) {
		*vs = append(*vs, schema.Violation{
			Check: check, Metric: metric, Detail: detail + fmt.Sprintf(" (must stay under %g)", bound),
			Want: bound, Got: got, Delta: math.Abs(bound - got),
		})
	}
}

// evalFailed converts metric evaluation errors into violations. Fixture
// inputs are always valid, so an error here is itself a regression signal.
func (c *Checker) evalFailed(vs *[]schema.Violation, check schema.CheckID, metric schema.MetricID, errs ...error) bool {
	failed := false
	for _, err := range errs {
		if err != nil {
			*vs = append(*vs, schema.Violation{
				Check: check, Metric: metric,
				Detail: "evaluation failed: " + err.Error(),
			})
			failed = true
		}
	}
	return failed
}

// sortedMetricIDs returns a registry's keys in stable order.
func sortedMetricIDs(reg map[schema.MetricID]cluster.SupervisedMetric) []schema.MetricID {
	ids := make([]schema.MetricID, 0, len(reg))
	for id := range reg {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// floatsOf widens int labels to float64 for vector construction.
func floatsOf(labels []int) []float64 {
	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = float64(l)
	}
	return out
}
