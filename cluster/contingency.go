// Package cluster implements clustering-evaluation metrics over integer
// label assignments: supervised metrics comparing a ground-truth labeling to
// a predicted one, and unsupervised metrics scoring a clustering from the
// data alone.
package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Input errors shared by all metrics.
var (
	ErrEmptyInput     = errors.New("cluster: empty label vector")
	ErrLengthMismatch = errors.New("cluster: label vectors differ in length")
)

// cellKey addresses one cell of the contingency table by (true, pred) label.
// Labels are arbitrary ints; negative identifiers are legal.
type cellKey struct {
	t, p int
}

// contingency holds joint and marginal counts for a pair of label vectors.
type contingency struct {
	cells   map[cellKey]int
	rowSums map[int]int // per true label
	colSums map[int]int // per predicted label
	n       int
}

// newContingency builds the contingency table for a label pair.
func newContingency(labelsTrue, labelsPred []int) (*contingency, error) {
	if len(labelsTrue) == 0 || len(labelsPred) == 0 {
		return nil, ErrEmptyInput
	}
	if len(labelsTrue) != len(labelsPred) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(labelsTrue), len(labelsPred))
	}

	c := &contingency{
		cells:   make(map[cellKey]int),
		rowSums: make(map[int]int),
		colSums: make(map[int]int),
		n:       len(labelsTrue),
	}
	for i, t := range labelsTrue {
		p := labelsPred[i]
		c.cells[cellKey{t, p}]++
		c.rowSums[t]++
		c.colSums[p]++
	}
	return c, nil
}

// mutualInfo computes the mutual information of the table in nats.
func (c *contingency) mutualInfo() float64 {
	n := float64(c.n)
	var mi float64
	for key, nij := range c.cells {
		joint := float64(nij)
		a := float64(c.rowSums[key.t])
		b := float64(c.colSums[key.p])
		mi += (joint / n) * math.Log((joint*n)/(a*b))
	}
	return mi
}

// entropyCounts computes the Shannon entropy (nats) of a marginal
// distribution given by label counts.
func entropyCounts(counts map[int]int, n int) float64 {
	var h float64
	total := float64(n)
	for _, v := range counts {
		if v == 0 {
			continue
		}
		p := float64(v) / total
		h -= p * math.Log(p)
	}
	return h
}

// Entropy computes the Shannon entropy (nats) of a single label vector.
func Entropy(labels []int) (float64, error) {
	if len(labels) == 0 {
		return 0, ErrEmptyInput
	}
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	return entropyCounts(counts, len(labels)), nil
}

// LabelsFromVector extracts an integer label vector from a numeric vector.
// Values are truncated toward zero; it is the caller's contract that the
// vector holds whole numbers.
func LabelsFromVector(v mat.Vector) []int {
	labels := make([]int, v.Len())
	for i := range labels {
		labels[i] = int(v.AtVec(i))
	}
	return labels
}

// ComplementLabels returns the binary complement 1-x of a label vector.
// Applied to labels outside {0, 1} this still yields a pure relabeling,
// which is all the permutation invariants require.
func ComplementLabels(labels []int) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = 1 - l
	}
	return out
}
