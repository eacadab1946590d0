package spectral

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCode(t *testing.T) {
	err := NewAnalysisError("region_selector", ErrCodeEmptyRegion,
		"region selects no frequency bins", nil)

	assert.True(t, IsCode(err, ErrCodeEmptyRegion))
	assert.False(t, IsCode(err, ErrCodeConfiguration))
	assert.False(t, IsCode(nil, ErrCodeEmptyRegion))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeEmptyRegion))
}

func TestIsCodeMatchesWrappedError(t *testing.T) {
	inner := NewAnalysisError("noise_floor", ErrCodeEmptyQuietRegion,
		"quiet bands select no frequency bins", nil)
	wrapped := fmt.Errorf("analyzing capture: %w", inner)

	assert.True(t, IsCode(wrapped, ErrCodeEmptyQuietRegion))
	assert.False(t, IsCode(wrapped, ErrCodeEmptyRegion))
}

func TestAnalysisErrorUnwrap(t *testing.T) {
	cause := errors.New("short read")
	err := NewAnalysisError("spectrum_estimator", ErrCodeInsufficientData,
		"stream shorter than one frame", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "short read")
}
