package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewContingency(t *testing.T) {
	c, err := newContingency([]int{0, 0, 1, 1}, []int{0, 1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, 4, c.n)
	assert.Equal(t, 1, c.cells[cellKey{0, 0}])
	assert.Equal(t, 1, c.cells[cellKey{0, 1}])
	assert.Equal(t, 2, c.cells[cellKey{1, 1}])
	assert.Equal(t, 2, c.rowSums[0])
	assert.Equal(t, 2, c.rowSums[1])
	assert.Equal(t, 1, c.colSums[0])
	assert.Equal(t, 3, c.colSums[1])
}

func TestNewContingencyErrors(t *testing.T) {
	_, err := newContingency(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = newContingency([]int{0}, []int{0, 1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestContingencyMutualInfoIndependent(t *testing.T) {
	// Independent marginals carry zero mutual information.
	c, err := newContingency([]int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c.mutualInfo(), 1e-12)
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		labels   []int
		expected float64
	}{
		{"uniform binary", []int{0, 0, 1, 1}, math.Ln2},
		{"constant", []int{3, 3, 3, 3}, 0.0},
		{"uniform quaternary", []int{0, 1, 2, 3}, math.Log(4)},
		{"skewed", []int{0, 0, 0, 1}, -0.75*math.Log(0.75) - 0.25*math.Log(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Entropy(tt.labels)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, h, 1e-12)
		})
	}

	_, err := Entropy(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLabelsFromVector(t *testing.T) {
	v := mat.NewVecDense(4, []float64{0, 1, 2, 1})
	assert.Equal(t, []int{0, 1, 2, 1}, LabelsFromVector(v))
}

func TestComplementLabels(t *testing.T) {
	assert.Equal(t, []int{1, 0, 1, 0}, ComplementLabels([]int{0, 1, 0, 1}))

	// Complementing twice restores the original vector.
	labels := []int{0, 1, 1, 0, 1}
	assert.Equal(t, labels, ComplementLabels(ComplementLabels(labels)))
}
