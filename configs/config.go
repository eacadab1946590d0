package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/icweaver/ARISE/pkg/spectral"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Capture file interpretation
	Capture CaptureConfig `mapstructure:"capture"`

	// Spectrum estimation
	Spectrum SpectrumConfig `mapstructure:"spectrum"`

	// Region of interest
	Region RegionConfig `mapstructure:"region"`

	// Peak detection
	Peaks PeakConfig `mapstructure:"peaks"`

	// Noise floor estimation
	Noise NoiseConfig `mapstructure:"noise"`

	// Output formatting
	Output OutputConfig `mapstructure:"output"`
}

// CaptureConfig describes how to interpret the raw sample file
type CaptureConfig struct {
	SampleRate float64 `mapstructure:"sample_rate"` // Hz
	CenterFreq float64 `mapstructure:"center_freq"` // Hz
	Format     string  `mapstructure:"format"`      // int8 or uint8
}

// SpectrumConfig contains spectrum estimation settings
type SpectrumConfig struct {
	FrameSize int `mapstructure:"frame_size"` // Samples per FFT frame
	Workers   int `mapstructure:"workers"`    // Goroutines for per-frame transforms
}

// RegionConfig bounds the analyzed sub-band, in Hz, inclusive on both ends
type RegionConfig struct {
	Low  float64 `mapstructure:"low"`
	High float64 `mapstructure:"high"`
}

// PeakConfig contains peak detection settings
type PeakConfig struct {
	HeightOffsetDB  float64 `mapstructure:"height_offset_db"` // Height threshold below the region maximum
	MinDistance     int     `mapstructure:"min_distance"`     // Minimum peak separation in bins
	MinProminenceDB float64 `mapstructure:"min_prominence_db"`
}

// NoiseConfig lists the operator-chosen quiet bands
type NoiseConfig struct {
	QuietBands []spectral.QuietBand `mapstructure:"quiet_bands"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	FullSpectrum    bool `mapstructure:"full_spectrum"` // Include the full-band spectrum in reports
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Capture.SampleRate <= 0 {
		return fmt.Errorf("capture sample rate must be positive")
	}

	if config.Capture.Format != "int8" && config.Capture.Format != "uint8" {
		return fmt.Errorf("capture format must be int8 or uint8, got %q", config.Capture.Format)
	}

	if config.Spectrum.FrameSize <= 0 {
		return fmt.Errorf("spectrum frame size must be positive")
	}

	if config.Region.Low > config.Region.High {
		return fmt.Errorf("region lower bound exceeds upper bound")
	}

	if config.Peaks.MinDistance < 1 {
		return fmt.Errorf("minimum peak distance must be a positive integer")
	}

	if config.Peaks.MinProminenceDB < 0 {
		return fmt.Errorf("minimum peak prominence cannot be negative")
	}

	for i, band := range config.Noise.QuietBands {
		if band.Low > band.High {
			return fmt.Errorf("quiet band %d lower bound exceeds upper bound", i)
		}
	}

	return nil
}
