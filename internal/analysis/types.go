package analysis

import (
	"time"

	"github.com/icweaver/ARISE/pkg/spectral"
)

// Result aggregates every artifact of one pipeline run. All fields are
// recomputed in full from the configuration and the sample stream; nothing
// is carried over between runs.
type Result struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	Capture  CaptureInfo  `json:"capture" yaml:"capture"`
	Spectrum SpectrumInfo `json:"spectrum" yaml:"spectrum"`
	Region   RegionInfo   `json:"region" yaml:"region"`

	Peaks        []spectral.Peak `json:"peaks" yaml:"peaks"`
	NoiseFloorDB float64         `json:"noise_floor_db" yaml:"noise_floor_db"`
	SNRDB        float64         `json:"snr_db" yaml:"snr_db"`
}

// CaptureInfo records how the sample stream was obtained and interpreted
type CaptureInfo struct {
	Path         string  `json:"path,omitempty" yaml:"path,omitempty"`
	TotalSamples int     `json:"total_samples" yaml:"total_samples"`
	SampleRate   float64 `json:"sample_rate" yaml:"sample_rate"`
	CenterFreq   float64 `json:"center_freq" yaml:"center_freq"`
}

// SpectrumInfo describes the full-band averaged spectrum and the framing
// accounting behind it
type SpectrumInfo struct {
	FrameSize        int `json:"frame_size" yaml:"frame_size"`
	Frames           int `json:"frames" yaml:"frames"`
	DiscardedSamples int `json:"discarded_samples" yaml:"discarded_samples"`

	// Axis and PowerDB are index-aligned and only populated when the full
	// spectrum was requested; they can be large.
	Axis    []float64 `json:"axis,omitempty" yaml:"axis,omitempty"`
	PowerDB []float64 `json:"power_db,omitempty" yaml:"power_db,omitempty"`
}

// RegionInfo holds the zoomed sub-band the detectors operated on
type RegionInfo struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
	Bins int     `json:"bins" yaml:"bins"`

	Axis    []float64 `json:"axis,omitempty" yaml:"axis,omitempty"`
	PowerDB []float64 `json:"power_db,omitempty" yaml:"power_db,omitempty"`

	// PeakThresholdDB is the absolute height cutoff handed to the peak
	// detector: region maximum minus the configured offset.
	PeakThresholdDB float64 `json:"peak_threshold_db" yaml:"peak_threshold_db"`
}
