package spectral

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// QuietBand is a closed frequency interval [Low, High] judged free of
// signals by the operator, in the same units as the frequency axis.
type QuietBand struct {
	Low  float64 `json:"low" mapstructure:"low"`
	High float64 `json:"high" mapstructure:"high"`
}

// Contains reports whether freq falls inside the band, bounds inclusive
func (b QuietBand) Contains(freq float64) bool {
	return freq >= b.Low && freq <= b.High
}

// NoiseFloor estimates the noise baseline as the arithmetic mean of the
// spectrum values whose frequencies fall inside any quiet band. The mask is
// the logical OR of per-band inclusion, independent of the region bounds.
// Fails with EMPTY_QUIET_REGION when the bands select no bins rather than
// returning NaN.
func NoiseFloor(axis, spectrum []float64, bands []QuietBand) (float64, error) {
	if len(axis) != len(spectrum) {
		return 0, NewAnalysisError("noise_floor", ErrCodeConfiguration,
			"axis and spectrum lengths differ", nil)
	}

	var quiet []float64
	for i, f := range axis {
		for _, band := range bands {
			if band.Contains(f) {
				quiet = append(quiet, spectrum[i])
				break
			}
		}
	}

	if len(quiet) == 0 {
		return 0, NewAnalysisError("noise_floor", ErrCodeEmptyQuietRegion,
			"quiet bands select no frequency bins", nil)
	}

	return stat.Mean(quiet, nil), nil
}

// SNR computes the signal-to-noise ratio of a dB-scaled spectrum against a
// dB noise floor. The signal power is the global maximum of the spectrum:
// the strongest in-band bin is taken to be the signal of interest whether or
// not peak detection flagged it. Both operands are already in dB, so the
// ratio is a direct subtraction.
func SNR(spectrum []float64, noiseFloor float64) (float64, error) {
	if len(spectrum) == 0 {
		return 0, NewAnalysisError("snr", ErrCodeEmptyRegion,
			"spectrum is empty", nil)
	}
	return floats.Max(spectrum) - noiseFloor, nil
}
