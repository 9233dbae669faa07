package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestEuclideanDistances(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		3, 4,
		3, 0,
	})
	dist := EuclideanDistances(x)

	assert.InDelta(t, 0.0, dist.At(0, 0), 1e-12)
	assert.InDelta(t, 5.0, dist.At(0, 1), 1e-12)
	assert.InDelta(t, 3.0, dist.At(0, 2), 1e-12)
	assert.InDelta(t, 4.0, dist.At(1, 2), 1e-12)
	assert.InDelta(t, dist.At(0, 1), dist.At(1, 0), 1e-12)
}

func TestComplementMatrix(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		0, 0.25,
		0.5, 1,
	})
	out := ComplementMatrix(x)

	assert.InDelta(t, 1.0, out.At(0, 0), 1e-12)
	assert.InDelta(t, 0.75, out.At(0, 1), 1e-12)
	assert.InDelta(t, 0.5, out.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, out.At(1, 1), 1e-12)
}

func TestScaleToUnit(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		0, 2,
		4, 8,
	})
	out := ScaleToUnit(x)

	assert.InDelta(t, 0.0, out.At(0, 0), 1e-12)
	assert.InDelta(t, 0.25, out.At(0, 1), 1e-12)
	assert.InDelta(t, 0.5, out.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, out.At(1, 1), 1e-12)
}

func TestScaleToUnitZeroMatrix(t *testing.T) {
	x := mat.NewDense(2, 2, nil)
	out := ScaleToUnit(x)
	assert.True(t, mat.Equal(x, out))
}
