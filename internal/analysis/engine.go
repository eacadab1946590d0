package analysis

import (
	"context"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/icweaver/ARISE/configs"
	"github.com/icweaver/ARISE/pkg/capture"
	"github.com/icweaver/ARISE/pkg/logging"
	"github.com/icweaver/ARISE/pkg/spectral"
)

// Engine runs the full estimation pipeline: averaged spectrum, region
// selection, peak detection, noise floor and SNR. One Engine holds an
// immutable configuration; every Analyze call is a pure function of that
// configuration and the sample stream it is given.
type Engine struct {
	config *configs.Config
	logger logging.Logger
}

// NewEngine creates a new analysis engine
func NewEngine(config *configs.Config, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Engine{
		config: config,
		logger: logger,
	}
}

// AnalyzeFile decodes a capture file and analyzes it
func (e *Engine) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	reader, err := capture.NewReader(capture.SampleFormat(e.config.Capture.Format))
	if err != nil {
		return nil, err
	}

	samples, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := e.Analyze(ctx, samples)
	if err != nil {
		return nil, err
	}

	result.Capture.Path = path
	return result, nil
}

// Analyze runs the pipeline over an already-decoded sample stream
func (e *Engine) Analyze(ctx context.Context, samples []complex128) (*Result, error) {
	logger := e.logger.WithContext(ctx)
	cfg := e.config
	start := time.Now()

	estimator := spectral.NewSpectrumEstimator(
		cfg.Spectrum.FrameSize, cfg.Capture.SampleRate, cfg.Capture.CenterFreq)
	if cfg.Spectrum.Workers > 0 {
		estimator.SetWorkers(cfg.Spectrum.Workers)
	}

	axis, err := estimator.Axis()
	if err != nil {
		return nil, err
	}

	powerDB, err := estimator.Estimate(samples)
	if err != nil {
		return nil, err
	}

	region, err := spectral.SelectRegion(axis, powerDB, cfg.Region.Low, cfg.Region.High)
	if err != nil {
		return nil, err
	}

	peakThreshold := floats.Max(region.Spectrum) - cfg.Peaks.HeightOffsetDB

	detector := spectral.NewPeakDetector(cfg.Peaks.MinDistance, cfg.Peaks.MinProminenceDB)
	peaks, err := detector.Detect(region.Spectrum, peakThreshold)
	if err != nil {
		return nil, err
	}

	noiseFloor, err := spectral.NoiseFloor(region.Axis, region.Spectrum, cfg.Noise.QuietBands)
	if err != nil {
		return nil, err
	}

	snr, err := spectral.SNR(region.Spectrum, noiseFloor)
	if err != nil {
		return nil, err
	}

	frames := estimator.NumFrames(len(samples))

	result := &Result{
		Timestamp: time.Now(),
		Capture: CaptureInfo{
			TotalSamples: len(samples),
			SampleRate:   cfg.Capture.SampleRate,
			CenterFreq:   cfg.Capture.CenterFreq,
		},
		Spectrum: SpectrumInfo{
			FrameSize:        cfg.Spectrum.FrameSize,
			Frames:           frames,
			DiscardedSamples: len(samples) - frames*cfg.Spectrum.FrameSize,
		},
		Region: RegionInfo{
			Low:             cfg.Region.Low,
			High:            cfg.Region.High,
			Bins:            len(region.Axis),
			Axis:            region.Axis,
			PowerDB:         region.Spectrum,
			PeakThresholdDB: peakThreshold,
		},
		Peaks:        peaks,
		NoiseFloorDB: noiseFloor,
		SNRDB:        snr,
	}

	if cfg.Output.FullSpectrum {
		result.Spectrum.Axis = axis
		result.Spectrum.PowerDB = powerDB
	}

	logger.Info("analysis complete", logging.Fields{
		"frames":    frames,
		"peaks":     len(peaks),
		"snr_db":    snr,
		"elapsed":   time.Since(start).String(),
		"roi_bins":  len(region.Axis),
		"discarded": result.Spectrum.DiscardedSamples,
	})

	return result, nil
}
