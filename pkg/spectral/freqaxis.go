package spectral

// FrequencyAxis computes the zero-centered frequency axis for an N-point
// spectrum sampled at sampleRate and tuned to centerFreq. The canonical DFT
// bin frequencies k*fs/N are reordered so the negative-frequency half comes
// first, then shifted by centerFreq, yielding a strictly increasing axis
// with exact bin spacing fs/N.
func FrequencyAxis(frameSize int, sampleRate, centerFreq float64) ([]float64, error) {
	if frameSize <= 0 {
		return nil, NewAnalysisError("frequency_axis", ErrCodeConfiguration,
			"frame size must be positive", nil)
	}
	if sampleRate <= 0 {
		return nil, NewAnalysisError("frequency_axis", ErrCodeConfiguration,
			"sample rate must be positive", nil)
	}

	binWidth := sampleRate / float64(frameSize)

	// Canonical DFT ordering: non-negative bins first, then the negative
	// half. half is the count of non-negative bins.
	half := (frameSize + 1) / 2

	axis := make([]float64, frameSize)
	negative := frameSize - half
	for k := 0; k < negative; k++ {
		axis[k] = float64(k-negative)*binWidth + centerFreq
	}
	for k := 0; k < half; k++ {
		axis[negative+k] = float64(k)*binWidth + centerFreq
	}

	return axis, nil
}

// centerSpectrum reorders a spectrum from canonical DFT bin order into the
// zero-centered order used by FrequencyAxis. The input is not modified.
func centerSpectrum(spectrum []float64) []float64 {
	n := len(spectrum)
	half := (n + 1) / 2

	centered := make([]float64, n)
	copy(centered, spectrum[half:])
	copy(centered[n-half:], spectrum[:half])
	return centered
}
