package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIris(t *testing.T) {
	d, err := Iris()
	require.NoError(t, err)

	assert.Equal(t, "iris", d.Name)

	rows, cols := d.Features.Dims()
	assert.Equal(t, 150, rows)
	assert.Equal(t, 4, cols)
	assert.Len(t, d.Labels, 150)
	assert.Equal(t, 3, d.Classes())

	// 50 samples per class, labels 0 through 2.
	counts := make(map[int]int)
	for _, l := range d.Labels {
		counts[l]++
	}
	assert.Equal(t, map[int]int{0: 50, 1: 50, 2: 50}, counts)

	// Spot-check the first and last rows.
	assert.InDelta(t, 5.1, d.Features.At(0, 0), 1e-12)
	assert.InDelta(t, 0.2, d.Features.At(0, 3), 1e-12)
	assert.Equal(t, 0, d.Labels[0])
	assert.Equal(t, 2, d.Labels[149])

	// All measurements are positive and in the centimeter range.
	for i := 0; i < rows; i++ {
		for f := 0; f < cols; f++ {
			v := d.Features.At(i, f)
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 10.0)
		}
	}
}
