package analysis

import (
	"context"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icweaver/ARISE/configs"
	"github.com/icweaver/ARISE/pkg/logging"
	"github.com/icweaver/ARISE/pkg/spectral"
)

const (
	testFrameSize  = 256
	testSampleRate = 25600.0 // 100 Hz per bin
	testCenterFreq = 1e6
)

func testConfig() *configs.Config {
	return &configs.Config{
		Capture: configs.CaptureConfig{
			SampleRate: testSampleRate,
			CenterFreq: testCenterFreq,
			Format:     "int8",
		},
		Spectrum: configs.SpectrumConfig{FrameSize: testFrameSize},
		Region: configs.RegionConfig{
			Low:  testCenterFreq - 5000,
			High: testCenterFreq + 5000,
		},
		Peaks: configs.PeakConfig{
			HeightOffsetDB:  10,
			MinDistance:     3,
			MinProminenceDB: 3,
		},
		Noise: configs.NoiseConfig{
			QuietBands: []spectral.QuietBand{
				{Low: testCenterFreq + 2000, High: testCenterFreq + 4000},
			},
		},
		Output: configs.OutputConfig{Precision: 2},
	}
}

// toneSamples generates a unit tone at DFT bin k0, 1 kHz above center for k0=10
func toneSamples(n, k0 int) []complex128 {
	samples := make([]complex128, n)
	for i := range samples {
		phase := 2 * math.Pi * float64(k0) * float64(i) / float64(testFrameSize)
		samples[i] = cmplx.Exp(complex(0, phase))
	}
	return samples
}

func TestAnalyzeSingleTone(t *testing.T) {
	engine := NewEngine(testConfig(), &logging.NoOpLogger{})

	result, err := engine.Analyze(context.Background(), toneSamples(testFrameSize*4+13, 10))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Spectrum.Frames)
	assert.Equal(t, 13, result.Spectrum.DiscardedSamples)
	assert.Equal(t, 101, result.Region.Bins)

	require.Len(t, result.Peaks, 1)
	peakFreq := result.Region.Axis[result.Peaks[0].Index]
	assert.InDelta(t, testCenterFreq+1000, peakFreq, 1e-6)

	// Empty bins sit on the epsilon floor at exactly -120 dB; the exact-bin
	// tone concentrates N^2 linear power in its bin.
	toneDB := 10 * math.Log10(float64(testFrameSize)*float64(testFrameSize))
	assert.InDelta(t, -120.0, result.NoiseFloorDB, 0.01)
	assert.InDelta(t, toneDB+120.0, result.SNRDB, 0.05)
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine(testConfig(), &logging.NoOpLogger{})
	samples := toneSamples(testFrameSize*3, 10)

	first, err := engine.Analyze(context.Background(), samples)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), samples)
	require.NoError(t, err)

	assert.Equal(t, first.SNRDB, second.SNRDB)
	assert.Equal(t, first.Peaks, second.Peaks)
	assert.Equal(t, first.Region.PowerDB, second.Region.PowerDB)
}

func TestAnalyzeInsufficientData(t *testing.T) {
	engine := NewEngine(testConfig(), &logging.NoOpLogger{})

	_, err := engine.Analyze(context.Background(), make([]complex128, testFrameSize-1))
	require.Error(t, err)
	assert.True(t, spectral.IsCode(err, spectral.ErrCodeInsufficientData))
}

func TestAnalyzeEmptyRegion(t *testing.T) {
	cfg := testConfig()
	cfg.Region.Low = testCenterFreq + 1e9
	cfg.Region.High = testCenterFreq + 2e9

	engine := NewEngine(cfg, &logging.NoOpLogger{})

	_, err := engine.Analyze(context.Background(), toneSamples(testFrameSize, 10))
	require.Error(t, err)
	assert.True(t, spectral.IsCode(err, spectral.ErrCodeEmptyRegion))
}

func TestAnalyzeEmptyQuietRegion(t *testing.T) {
	cfg := testConfig()
	cfg.Noise.QuietBands = []spectral.QuietBand{
		{Low: testCenterFreq + 1e9, High: testCenterFreq + 1e9 + 100},
	}

	engine := NewEngine(cfg, &logging.NoOpLogger{})

	_, err := engine.Analyze(context.Background(), toneSamples(testFrameSize, 10))
	require.Error(t, err)
	assert.True(t, spectral.IsCode(err, spectral.ErrCodeEmptyQuietRegion))
}

func TestAnalyzeFullSpectrumToggle(t *testing.T) {
	cfg := testConfig()
	cfg.Output.FullSpectrum = true

	engine := NewEngine(cfg, &logging.NoOpLogger{})

	result, err := engine.Analyze(context.Background(), toneSamples(testFrameSize*2, 10))
	require.NoError(t, err)
	assert.Len(t, result.Spectrum.Axis, testFrameSize)
	assert.Len(t, result.Spectrum.PowerDB, testFrameSize)

	cfg.Output.FullSpectrum = false
	result, err = engine.Analyze(context.Background(), toneSamples(testFrameSize*2, 10))
	require.NoError(t, err)
	assert.Empty(t, result.Spectrum.Axis)
}
