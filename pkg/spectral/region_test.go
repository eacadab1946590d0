package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRegionInclusiveBounds(t *testing.T) {
	axis := []float64{10, 20, 30, 40, 50}
	spectrum := []float64{-50, -40, -30, -20, -10}

	region, err := SelectRegion(axis, spectrum, 20, 40)
	require.NoError(t, err)

	assert.Equal(t, []float64{20, 30, 40}, region.Axis)
	assert.Equal(t, []float64{-40, -30, -20}, region.Spectrum)
	assert.Equal(t, []bool{false, true, true, true, false}, region.Mask)
}

func TestSelectRegionMaskAgreesWithSlices(t *testing.T) {
	axis := []float64{1, 2, 3, 4, 5, 6}
	spectrum := []float64{0, 0, 0, 0, 0, 0}

	region, err := SelectRegion(axis, spectrum, 2.5, 5.5)
	require.NoError(t, err)

	selected := 0
	for _, keep := range region.Mask {
		if keep {
			selected++
		}
	}
	assert.Equal(t, selected, len(region.Axis))
	assert.Equal(t, selected, len(region.Spectrum))
}

func TestSelectRegionPreservesAscendingOrder(t *testing.T) {
	axis := []float64{-3, -2, -1, 0, 1, 2, 3}
	spectrum := []float64{1, 2, 3, 4, 5, 6, 7}

	region, err := SelectRegion(axis, spectrum, -2, 2)
	require.NoError(t, err)

	for i := 1; i < len(region.Axis); i++ {
		assert.Greater(t, region.Axis[i], region.Axis[i-1])
	}
}

func TestSelectRegionInvertedBounds(t *testing.T) {
	_, err := SelectRegion([]float64{1, 2}, []float64{0, 0}, 5, 1)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeConfiguration))
}

func TestSelectRegionEmptySelection(t *testing.T) {
	_, err := SelectRegion([]float64{1, 2, 3}, []float64{0, 0, 0}, 10, 20)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeEmptyRegion))
}

func TestSelectRegionLengthMismatch(t *testing.T) {
	_, err := SelectRegion([]float64{1, 2, 3}, []float64{0, 0}, 1, 3)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeConfiguration))
}
