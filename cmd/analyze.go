package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/icweaver/ARISE/configs"
	"github.com/icweaver/ARISE/internal/analysis"
	"github.com/icweaver/ARISE/internal/report"
	"github.com/icweaver/ARISE/pkg/logging"
	"github.com/icweaver/ARISE/pkg/spectral"
)

var (
	quietBandSpecs []string
	outputFile     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <capture-file>",
	Short: "Analyze an IQ capture file",
	Long: `Run the full analysis pipeline over a capture file: frame-averaged power
spectrum, region-of-interest selection, peak detection, noise floor and SNR.

Quiet bands mark frequency intervals judged free of signals; the noise floor
is the mean spectrum level inside them. At least one quiet band must select
bins inside the region of interest.

Examples:
  # Defaults from the config file
  arise analyze capture.iq

  # Override the tuning and region on the command line
  arise analyze capture.iq \
    --center-freq 145200000 --sample-rate 2400000 \
    --region-low 145180000 --region-high 145220000 \
    --quiet-band 145185000:145190000 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64("sample-rate", 0, "capture sample rate in Hz")
	analyzeCmd.Flags().Float64("center-freq", 0, "capture center frequency in Hz")
	analyzeCmd.Flags().String("format", "", "capture sample format (int8, uint8)")
	analyzeCmd.Flags().Int("frame-size", 0, "FFT frame size in samples")
	analyzeCmd.Flags().Int("workers", 0, "worker goroutines for frame transforms (0 = all CPUs)")
	analyzeCmd.Flags().Float64("region-low", 0, "region of interest lower bound in Hz")
	analyzeCmd.Flags().Float64("region-high", 0, "region of interest upper bound in Hz")
	analyzeCmd.Flags().Float64("height-offset", 0, "peak height threshold below the region maximum, dB")
	analyzeCmd.Flags().Int("min-distance", 0, "minimum peak separation in bins")
	analyzeCmd.Flags().Float64("min-prominence", 0, "minimum peak prominence in dB")
	analyzeCmd.Flags().StringSliceVar(&quietBandSpecs, "quiet-band", nil,
		"quiet band as low:high in Hz (repeatable)")
	analyzeCmd.Flags().Bool("full-spectrum", false, "include the full-band spectrum in the report")
	analyzeCmd.Flags().StringVar(&outputFile, "output-file", "", "write the report to a file instead of stdout")

	viper.BindPFlag("capture.sample_rate", analyzeCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("capture.center_freq", analyzeCmd.Flags().Lookup("center-freq"))
	viper.BindPFlag("capture.format", analyzeCmd.Flags().Lookup("format"))
	viper.BindPFlag("spectrum.frame_size", analyzeCmd.Flags().Lookup("frame-size"))
	viper.BindPFlag("spectrum.workers", analyzeCmd.Flags().Lookup("workers"))
	viper.BindPFlag("region.low", analyzeCmd.Flags().Lookup("region-low"))
	viper.BindPFlag("region.high", analyzeCmd.Flags().Lookup("region-high"))
	viper.BindPFlag("peaks.height_offset_db", analyzeCmd.Flags().Lookup("height-offset"))
	viper.BindPFlag("peaks.min_distance", analyzeCmd.Flags().Lookup("min-distance"))
	viper.BindPFlag("peaks.min_prominence_db", analyzeCmd.Flags().Lookup("min-prominence"))
	viper.BindPFlag("output.full_spectrum", analyzeCmd.Flags().Lookup("full-spectrum"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return err
	}

	if len(quietBandSpecs) > 0 {
		bands, err := parseQuietBands(quietBandSpecs)
		if err != nil {
			return err
		}
		config.Noise.QuietBands = bands
	}

	if err := configs.ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if len(config.Noise.QuietBands) == 0 {
		return fmt.Errorf("no quiet bands configured; set noise.quiet_bands or pass --quiet-band")
	}

	engine := analysis.NewEngine(config, logging.GetGlobalLogger())

	result, err := engine.AnalyzeFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer := report.NewWriter(out, viper.GetString("output_format"), config.Output)
	return writer.Write(result)
}

// parseQuietBands parses repeatable low:high flag values in Hz
func parseQuietBands(specs []string) ([]spectral.QuietBand, error) {
	bands := make([]spectral.QuietBand, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid quiet band %q, expected low:high", spec)
		}

		low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quiet band lower bound %q: %w", parts[0], err)
		}
		high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quiet band upper bound %q: %w", parts[1], err)
		}

		bands = append(bands, spectral.QuietBand{Low: low, High: high})
	}
	return bands, nil
}
