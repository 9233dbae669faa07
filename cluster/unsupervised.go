package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/clusterlab/clustercheck/schema"
)

// UnsupervisedMetric scores a clustering from the data (or a precomputed
// distance matrix) and the cluster assignment alone, without ground truth.
type UnsupervisedMetric func(x mat.Matrix, labels []int, kind schema.DistanceKind) (float64, error)

// Errors specific to unsupervised metrics.
var (
	ErrDegenerateClusters = errors.New("cluster: number of clusters must be in [2, n_samples-1]")
	ErrNotSquare          = errors.New("cluster: precomputed distance matrix must be square")
)

// Silhouette computes the mean silhouette coefficient over all samples.
// Range [-1, 1]; higher means tighter, better-separated clusters. With
// kind=PrecomputedDistance x is taken as an n-by-n distance matrix;
// otherwise pairwise Euclidean distances are computed from the rows of x.
// Samples in singleton clusters score zero.
func Silhouette(x mat.Matrix, labels []int, kind schema.DistanceKind) (float64, error) {
	var dist mat.Matrix
	if kind == schema.PrecomputedDistance {
		r, cc := x.Dims()
		if r != cc {
			return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, cc)
		}
		dist = x
	} else {
		dist = EuclideanDistances(x)
	}

	n, _ := dist.Dims()
	if err := validateClusterCount(labels, n); err != nil {
		return 0, err
	}

	sizes := make(map[int]int)
	for _, l := range labels {
		sizes[l]++
	}

	var total float64
	for i := 0; i < n; i++ {
		li := labels[i]
		if sizes[li] == 1 {
			continue // singleton clusters contribute s(i) = 0
		}

		// Mean distance from i to every cluster.
		meanTo := make(map[int]float64)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			meanTo[labels[j]] += dist.At(i, j)
		}
		for l := range meanTo {
			size := sizes[l]
			if l == li {
				size-- // i itself is excluded from its own cluster mean
			}
			meanTo[l] /= float64(size)
		}

		a := meanTo[li]
		b := math.Inf(1)
		for l, m := range meanTo {
			if l != li && m < b {
				b = m
			}
		}
		if den := math.Max(a, b); den > 0 {
			total += (b - a) / den
		}
	}
	return total / float64(n), nil
}

// CalinskiHarabasz computes the ratio of between-cluster to within-cluster
// dispersion, scaled by the corresponding degrees of freedom. Range
// [0, +inf); higher is better. The matrix is always treated as raw feature
// rows, so the kind argument is ignored.
func CalinskiHarabasz(x mat.Matrix, labels []int, _ schema.DistanceKind) (float64, error) {
	n, d := x.Dims()
	if err := validateClusterCount(labels, n); err != nil {
		return 0, err
	}

	// Grand mean over all rows.
	mean := make([]float64, d)
	for i := 0; i < n; i++ {
		for f := 0; f < d; f++ {
			mean[f] += x.At(i, f)
		}
	}
	for f := range mean {
		mean[f] /= float64(n)
	}

	// Per-cluster means.
	sizes := make(map[int]int)
	centroids := make(map[int][]float64)
	for i := 0; i < n; i++ {
		l := labels[i]
		if centroids[l] == nil {
			centroids[l] = make([]float64, d)
		}
		sizes[l]++
		for f := 0; f < d; f++ {
			centroids[l][f] += x.At(i, f)
		}
	}
	for l, c := range centroids {
		for f := range c {
			c[f] /= float64(sizes[l])
		}
	}

	// Between- and within-cluster dispersion.
	var between, within float64
	for l, c := range centroids {
		for f := 0; f < d; f++ {
			dev := c[f] - mean[f]
			between += float64(sizes[l]) * dev * dev
		}
	}
	for i := 0; i < n; i++ {
		c := centroids[labels[i]]
		for f := 0; f < d; f++ {
			dev := x.At(i, f) - c[f]
			within += dev * dev
		}
	}

	if within == 0 {
		return 1.0, nil
	}
	k := len(sizes)
	return (between / within) * float64(n-k) / float64(k-1), nil
}

// validateClusterCount checks that the labeling is non-degenerate for
// unsupervised scoring: label count matches sample count and the number of
// distinct clusters lies in [2, n-1].
func validateClusterCount(labels []int, n int) error {
	if len(labels) == 0 {
		return ErrEmptyInput
	}
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d samples", ErrLengthMismatch, len(labels), n)
	}
	distinct := make(map[int]struct{})
	for _, l := range labels {
		distinct[l] = struct{}{}
	}
	if k := len(distinct); k < 2 || k > n-1 {
		return fmt.Errorf("%w: got %d clusters for %d samples", ErrDegenerateClusters, k, n)
	}
	return nil
}
