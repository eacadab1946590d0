package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icweaver/ARISE/configs"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the resolved configuration",
	Long: `Load the configuration from file, environment and flags, validate it,
and display the resolved values.

Examples:
  # Show configuration from the default search path
  arise config

  # Show a specific config file
  arise --config /path/to/arise.yaml config`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	printSection("CAPTURE")
	printKeyValue("Sample Rate", fmt.Sprintf("%.0f Hz", config.Capture.SampleRate))
	printKeyValue("Center Frequency", fmt.Sprintf("%.0f Hz", config.Capture.CenterFreq))
	printKeyValue("Sample Format", config.Capture.Format)

	printSection("SPECTRUM")
	printKeyValue("Frame Size", fmt.Sprintf("%d", config.Spectrum.FrameSize))
	printKeyValue("Workers", fmt.Sprintf("%d", config.Spectrum.Workers))

	printSection("REGION OF INTEREST")
	printKeyValue("Low", fmt.Sprintf("%.0f Hz", config.Region.Low))
	printKeyValue("High", fmt.Sprintf("%.0f Hz", config.Region.High))

	printSection("PEAK DETECTION")
	printKeyValue("Height Offset", fmt.Sprintf("%.1f dB", config.Peaks.HeightOffsetDB))
	printKeyValue("Min Distance", fmt.Sprintf("%d bins", config.Peaks.MinDistance))
	printKeyValue("Min Prominence", fmt.Sprintf("%.1f dB", config.Peaks.MinProminenceDB))

	printSection("NOISE FLOOR")
	if len(config.Noise.QuietBands) == 0 {
		printKeyValue("Quiet Bands", "(none configured)")
	}
	for i, band := range config.Noise.QuietBands {
		printKeyValue(fmt.Sprintf("Quiet Band %d", i+1),
			fmt.Sprintf("%.0f - %.0f Hz", band.Low, band.High))
	}

	printSection("OUTPUT")
	printKeyValue("Format", config.OutputFormat)
	printKeyValue("Precision", fmt.Sprintf("%d", config.Output.Precision))
	printKeyValue("Include Metadata", fmt.Sprintf("%t", config.Output.IncludeMetadata))
	printKeyValue("Full Spectrum", fmt.Sprintf("%t", config.Output.FullSpectrum))

	fmt.Println()
	if err := configs.ValidateConfig(config); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}
	fmt.Println("Configuration is valid.")

	return nil
}

func printSection(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func printKeyValue(key, value string) {
	fmt.Printf("  %-20s %s\n", key+":", value)
}
