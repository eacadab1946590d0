package spectral

import (
	"sort"

	"github.com/icweaver/ARISE/pkg/logging"
)

// Peak represents a detected spectral peak
type Peak struct {
	Index      int     `json:"index"`      // Bin index into the zoomed spectrum
	Height     float64 `json:"height"`     // Peak height in dB
	Prominence float64 `json:"prominence"` // Height above the higher of the two bases, dB
}

// PeakDetector finds local maxima subject to minimum separation, prominence
// and height constraints. Detection is deterministic: identical inputs yield
// an identical, index-ordered result.
type PeakDetector struct {
	minDistance   int
	minProminence float64
	logger        logging.Logger
}

// NewPeakDetector creates a new peak detector. minDistance is in bin index
// units, minProminence in dB.
func NewPeakDetector(minDistance int, minProminence float64) *PeakDetector {
	return &PeakDetector{
		minDistance:   minDistance,
		minProminence: minProminence,
		logger: logging.WithFields(logging.Fields{
			"component": "peak_detector",
		}),
	}
}

// Detect runs the three-stage detection over spectrum: local-maxima
// extraction, greedy separation enforcement, then prominence and absolute
// height filtering. minHeight is an absolute dB threshold; callers usually
// derive it as max(spectrum) - heightOffset.
func (pd *PeakDetector) Detect(spectrum []float64, minHeight float64) ([]Peak, error) {
	if pd.minDistance < 1 {
		return nil, NewAnalysisError("peak_detector", ErrCodeConfiguration,
			"minimum peak distance must be a positive integer", nil)
	}
	if pd.minProminence < 0 {
		return nil, NewAnalysisError("peak_detector", ErrCodeConfiguration,
			"minimum prominence cannot be negative", nil)
	}

	candidates := localMaxima(spectrum)
	accepted := pd.enforceSeparation(spectrum, candidates)

	peaks := make([]Peak, 0, len(accepted))
	for _, idx := range accepted {
		prominence := prominenceAt(spectrum, idx)
		if prominence < pd.minProminence {
			continue
		}
		if spectrum[idx] < minHeight {
			continue
		}
		peaks = append(peaks, Peak{
			Index:      idx,
			Height:     spectrum[idx],
			Prominence: prominence,
		})
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Index < peaks[j].Index
	})

	pd.logger.Debug("peak detection complete", logging.Fields{
		"candidates": len(candidates),
		"accepted":   len(peaks),
	})

	return peaks, nil
}

// localMaxima returns candidate indices in ascending order. A position
// qualifies when its value is >= both neighbors; boundary positions compare
// only to their single neighbor. A run of tied values is one candidate at
// the run's first index.
func localMaxima(spectrum []float64) []int {
	n := len(spectrum)
	var candidates []int

	i := 0
	for i < n {
		// Extend the plateau of equal values starting at i.
		j := i
		for j+1 < n && spectrum[j+1] == spectrum[i] {
			j++
		}

		leftOK := i == 0 || spectrum[i-1] < spectrum[i]
		rightOK := j == n-1 || spectrum[j+1] < spectrum[i]
		if leftOK && rightOK {
			candidates = append(candidates, i)
		}

		i = j + 1
	}

	return candidates
}

// enforceSeparation processes candidates in descending height order (ties
// broken by ascending index) and drops any candidate within minDistance of
// an already-accepted one.
func (pd *PeakDetector) enforceSeparation(spectrum []float64, candidates []int) []int {
	byHeight := make([]int, len(candidates))
	copy(byHeight, candidates)
	sort.SliceStable(byHeight, func(a, b int) bool {
		if spectrum[byHeight[a]] != spectrum[byHeight[b]] {
			return spectrum[byHeight[a]] > spectrum[byHeight[b]]
		}
		return byHeight[a] < byHeight[b]
	})

	var accepted []int
	for _, idx := range byHeight {
		tooClose := false
		for _, kept := range accepted {
			d := idx - kept
			if d < 0 {
				d = -d
			}
			if d < pd.minDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			accepted = append(accepted, idx)
		}
	}

	return accepted
}

// prominenceAt computes the prominence of the peak at idx: walk outwards in
// each direction tracking the running minimum until the boundary or a value
// higher than the peak is met, then subtract the higher of the two minima.
func prominenceAt(spectrum []float64, idx int) float64 {
	height := spectrum[idx]

	leftBase := height
	for i := idx - 1; i >= 0; i-- {
		if spectrum[i] > height {
			break
		}
		if spectrum[i] < leftBase {
			leftBase = spectrum[i]
		}
	}

	rightBase := height
	for i := idx + 1; i < len(spectrum); i++ {
		if spectrum[i] > height {
			break
		}
		if spectrum[i] < rightBase {
			rightBase = spectrum[i]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}
	return height - base
}
