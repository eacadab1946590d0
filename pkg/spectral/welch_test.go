package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complexTone generates n samples of a unit complex exponential at DFT bin
// k0 of an N-point frame, scaled by amplitude
func complexTone(n, frameSize, k0 int, amplitude float64) []complex128 {
	samples := make([]complex128, n)
	for i := range samples {
		phase := 2 * math.Pi * float64(k0) * float64(i) / float64(frameSize)
		samples[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, phase))
	}
	return samples
}

func TestEstimateSingleTone(t *testing.T) {
	const (
		frameSize = 256
		k0        = 10
	)

	se := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	se.SetWorkers(1)

	spectrum, err := se.Estimate(complexTone(frameSize*4, frameSize, k0, 1.0))
	require.NoError(t, err)
	require.Len(t, spectrum, frameSize)

	maxIdx := 0
	for i, v := range spectrum {
		if v > spectrum[maxIdx] {
			maxIdx = i
		}
	}

	// The centered spectrum puts the negative half first, so bin k0 of the
	// canonical ordering lands at N/2 + k0.
	assert.Equal(t, frameSize/2+k0, maxIdx)

	// An exact-bin unit tone concentrates all power in one bin: |N|^2.
	expectedDB := 10 * math.Log10(float64(frameSize)*float64(frameSize))
	assert.InDelta(t, expectedDB, spectrum[maxIdx], 0.01)

	axis, err := se.Axis()
	require.NoError(t, err)
	assert.InDelta(t, float64(k0), axis[maxIdx], 1e-9)
}

func TestEstimateFrameAccounting(t *testing.T) {
	const frameSize = 64

	se := NewSpectrumEstimator(frameSize, 1e6, 0)

	assert.Equal(t, 0, se.NumFrames(frameSize-1))
	assert.Equal(t, 1, se.NumFrames(frameSize))
	assert.Equal(t, 3, se.NumFrames(3*frameSize+frameSize-1))
}

func TestEstimateDiscardsTrailingRemainder(t *testing.T) {
	const frameSize = 64

	se := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	se.SetWorkers(1)

	tone := complexTone(frameSize+17, frameSize, 3, 1.0)

	full, err := se.Estimate(tone)
	require.NoError(t, err)

	trimmed, err := se.Estimate(tone[:frameSize])
	require.NoError(t, err)

	// The 17 trailing samples never enter the estimate.
	assert.Equal(t, trimmed, full)
}

func TestEstimateInsufficientData(t *testing.T) {
	se := NewSpectrumEstimator(1024, 2.4e6, 145.2e6)

	_, err := se.Estimate(make([]complex128, 1023))
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInsufficientData))
}

func TestEstimateParallelMatchesSerial(t *testing.T) {
	const frameSize = 128

	samples := make([]complex128, frameSize*9)
	for i := range samples {
		// Deterministic multi-component signal
		re := math.Sin(0.1*float64(i)) + 0.3*math.Cos(0.7*float64(i))
		im := math.Cos(0.05 * float64(i))
		samples[i] = complex(re, im)
	}

	serial := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	serial.SetWorkers(1)
	want, err := serial.Estimate(samples)
	require.NoError(t, err)

	parallel := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	parallel.SetWorkers(4)
	got, err := parallel.Estimate(samples)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	const frameSize = 64

	se := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	tone := complexTone(frameSize*5, frameSize, 7, 0.5)

	first, err := se.Estimate(tone)
	require.NoError(t, err)
	second, err := se.Estimate(tone)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecibelConversionMonotonic(t *testing.T) {
	const frameSize = 64

	se := NewSpectrumEstimator(frameSize, float64(frameSize), 0)
	se.SetWorkers(1)

	quiet, err := se.Estimate(complexTone(frameSize, frameSize, 5, 0.5))
	require.NoError(t, err)
	loud, err := se.Estimate(complexTone(frameSize, frameSize, 5, 2.0))
	require.NoError(t, err)

	peak := frameSize/2 + 5
	assert.Greater(t, loud[peak], quiet[peak])
}
