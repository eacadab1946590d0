package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults registers default configuration values for all components at
// viper's default level, so config files, environment variables and flags
// all take precedence.
func SetDefaults(v *viper.Viper) {
	// Capture defaults: the VHF test capture the lab exercises ship with
	v.SetDefault("capture.sample_rate", 2.4e6)
	v.SetDefault("capture.center_freq", 145.2e6)
	v.SetDefault("capture.format", "int8")

	// Spectrum estimation defaults
	v.SetDefault("spectrum.frame_size", 2048)
	v.SetDefault("spectrum.workers", 0)

	// Region defaults: a 40 kHz window around the tuned frequency
	v.SetDefault("region.low", 145.18e6)
	v.SetDefault("region.high", 145.22e6)

	// Peak detection defaults
	v.SetDefault("peaks.height_offset_db", 10.0)
	v.SetDefault("peaks.min_distance", 5)
	v.SetDefault("peaks.min_prominence_db", 6.0)

	// Output defaults
	v.SetDefault("output.precision", 2)
	v.SetDefault("output.include_metadata", true)
	v.SetDefault("output.full_spectrum", false)

	// Application defaults
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "table")
}
