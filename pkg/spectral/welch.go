package spectral

import (
	"math"
	"runtime"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/icweaver/ARISE/pkg/logging"
)

// epsilonPower is added to linear power before the decibel conversion so a
// zero-power bin maps to a finite floor instead of -Inf.
const epsilonPower = 1e-12

// SpectrumEstimator computes a frame-averaged power spectrum from a stream
// of complex baseband samples. The stream is cut into non-overlapping frames
// of frameSize samples, each frame is transformed independently, and the
// squared magnitudes are averaged across frames (Welch's method with a
// rectangular window and zero overlap). Trailing samples short of a full
// frame are discarded, never zero-padded.
type SpectrumEstimator struct {
	frameSize  int
	sampleRate float64
	centerFreq float64
	workers    int
	logger     logging.Logger
}

// NewSpectrumEstimator creates a new spectrum estimator
func NewSpectrumEstimator(frameSize int, sampleRate, centerFreq float64) *SpectrumEstimator {
	return &SpectrumEstimator{
		frameSize:  frameSize,
		sampleRate: sampleRate,
		centerFreq: centerFreq,
		workers:    runtime.NumCPU(),
		logger: logging.WithFields(logging.Fields{
			"component":   "spectrum_estimator",
			"frame_size":  frameSize,
			"sample_rate": sampleRate,
		}),
	}
}

// SetWorkers bounds the number of goroutines used for per-frame transforms.
// Values below 2 force a serial estimate.
func (se *SpectrumEstimator) SetWorkers(n int) {
	se.workers = n
}

// Axis returns the frequency axis paired with spectra from Estimate
func (se *SpectrumEstimator) Axis() ([]float64, error) {
	return FrequencyAxis(se.frameSize, se.sampleRate, se.centerFreq)
}

// Estimate computes the frame-averaged power spectrum in dB, index-aligned
// with Axis. Fails with INSUFFICIENT_DATA when the stream holds fewer
// samples than one frame.
func (se *SpectrumEstimator) Estimate(samples []complex128) ([]float64, error) {
	if se.frameSize <= 0 {
		return nil, NewAnalysisError("spectrum_estimator", ErrCodeConfiguration,
			"frame size must be positive", nil)
	}
	if se.sampleRate <= 0 {
		return nil, NewAnalysisError("spectrum_estimator", ErrCodeConfiguration,
			"sample rate must be positive", nil)
	}

	numFrames := len(samples) / se.frameSize
	if numFrames == 0 {
		return nil, NewAnalysisError("spectrum_estimator", ErrCodeInsufficientData,
			"stream shorter than one frame", nil)
	}

	se.logger.Debug("estimating averaged spectrum", logging.Fields{
		"frames":    numFrames,
		"discarded": len(samples) % se.frameSize,
	})

	var sum []float64
	if se.workers > 1 && numFrames > 1 {
		sum = se.accumulateParallel(samples, numFrames)
	} else {
		sum = se.accumulateSerial(samples, numFrames)
	}

	// Averaging is a commutative reduction over frames, so the serial and
	// parallel paths produce identical sums up to float addition order.
	floats.Scale(1/float64(numFrames), sum)

	return toDecibels(centerSpectrum(sum)), nil
}

// NumFrames returns the frame count ⌊L/N⌋ for a stream of length streamLen
func (se *SpectrumEstimator) NumFrames(streamLen int) int {
	if se.frameSize <= 0 {
		return 0
	}
	return streamLen / se.frameSize
}

func (se *SpectrumEstimator) accumulateSerial(samples []complex128, numFrames int) []float64 {
	sum := make([]float64, se.frameSize)
	for i := 0; i < numFrames; i++ {
		frame := samples[i*se.frameSize : (i+1)*se.frameSize]
		floats.Add(sum, framePower(frame))
	}
	return sum
}

func (se *SpectrumEstimator) accumulateParallel(samples []complex128, numFrames int) []float64 {
	workers := se.workers
	if workers > numFrames {
		workers = numFrames
	}

	// Each worker folds a strided subset of frames into its own accumulator;
	// the partials are merged in worker order afterwards so the result does
	// not depend on goroutine scheduling.
	partials := make([][]float64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			local := make([]float64, se.frameSize)
			for i := worker; i < numFrames; i += workers {
				frame := samples[i*se.frameSize : (i+1)*se.frameSize]
				floats.Add(local, framePower(frame))
			}
			partials[worker] = local
		}(w)
	}
	wg.Wait()

	sum := make([]float64, se.frameSize)
	for _, local := range partials {
		floats.Add(sum, local)
	}
	return sum
}

// framePower computes the squared-magnitude spectrum of one frame in
// canonical DFT bin order
func framePower(frame []complex128) []float64 {
	transformed := fft.FFT(frame)

	power := make([]float64, len(transformed))
	for i, bin := range transformed {
		re, im := real(bin), imag(bin)
		power[i] = re*re + im*im
	}
	return power
}

// toDecibels converts linear power to dB: 10*log10(p + epsilonPower)
func toDecibels(power []float64) []float64 {
	db := make([]float64, len(power))
	for i, p := range power {
		db[i] = 10 * math.Log10(p+epsilonPower)
	}
	return db
}
