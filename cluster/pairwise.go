package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EuclideanDistances returns the n-by-n matrix of pairwise Euclidean
// distances between the rows of x.
func EuclideanDistances(x mat.Matrix) *mat.Dense {
	n, d := x.Dims()
	dist := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for f := 0; f < d; f++ {
				dev := x.At(i, f) - x.At(j, f)
				sum += dev * dev
			}
			v := math.Sqrt(sum)
			dist.Set(i, j, v)
			dist.Set(j, i, v)
		}
	}
	return dist
}

// ComplementMatrix returns the elementwise complement 1-x of a matrix. For a
// distance matrix already scaled into [0, 1] the result stays in [0, 1].
func ComplementMatrix(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, 1-x.At(i, j))
		}
	}
	return out
}

// ScaleToUnit rescales a non-negative matrix by its maximum element so every
// entry lies in [0, 1]. A zero matrix is returned unchanged.
func ScaleToUnit(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	maxVal := mat.Max(x)
	if maxVal == 0 {
		out.Copy(x)
		return out
	}
	out.Scale(1/maxVal, x)
	return out
}
