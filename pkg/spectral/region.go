package spectral

// Region holds the axis and spectrum values inside a selected sub-band,
// together with the mask that produced them. Axis order is preserved, so
// both slices stay in ascending frequency.
type Region struct {
	Mask     []bool    `json:"-"`
	Axis     []float64 `json:"axis"`
	Spectrum []float64 `json:"spectrum"`
}

// SelectRegion masks axis and spectrum down to the closed band [low, high].
// Bounds are inclusive on both ends and use the axis's units. Fails with
// CONFIGURATION if low > high and with EMPTY_REGION when no bin falls inside
// the band, so downstream stages never see an empty slice.
func SelectRegion(axis, spectrum []float64, low, high float64) (*Region, error) {
	if low > high {
		return nil, NewAnalysisError("region_selector", ErrCodeConfiguration,
			"region lower bound exceeds upper bound", nil)
	}
	if len(axis) != len(spectrum) {
		return nil, NewAnalysisError("region_selector", ErrCodeConfiguration,
			"axis and spectrum lengths differ", nil)
	}

	mask := make([]bool, len(axis))
	selected := 0
	for i, f := range axis {
		if f >= low && f <= high {
			mask[i] = true
			selected++
		}
	}

	if selected == 0 {
		return nil, NewAnalysisError("region_selector", ErrCodeEmptyRegion,
			"region selects no frequency bins", nil)
	}

	region := &Region{
		Mask:     mask,
		Axis:     make([]float64, 0, selected),
		Spectrum: make([]float64, 0, selected),
	}
	for i, keep := range mask {
		if keep {
			region.Axis = append(region.Axis, axis[i])
			region.Spectrum = append(region.Spectrum, spectrum[i])
		}
	}

	return region, nil
}
