package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/icweaver/ARISE/configs"
	"github.com/icweaver/ARISE/internal/analysis"
)

// Writer renders an analysis result in one of the supported output formats
// (table, json, csv, yaml)
type Writer struct {
	out       io.Writer
	format    string
	precision int
	metadata  bool
	titler    cases.Caser
}

// NewWriter creates a report writer for the given format
func NewWriter(out io.Writer, format string, cfg configs.OutputConfig) *Writer {
	return &Writer{
		out:       out,
		format:    strings.ToLower(format),
		precision: cfg.Precision,
		metadata:  cfg.IncludeMetadata,
		titler:    cases.Title(language.English),
	}
}

// Write renders the result
func (w *Writer) Write(result *analysis.Result) error {
	switch w.format {
	case "json":
		return w.writeJSON(result)
	case "yaml":
		return w.writeYAML(result)
	case "csv":
		return w.writeCSV(result)
	case "table", "":
		return w.writeTable(result)
	default:
		return fmt.Errorf("unsupported output format %q", w.format)
	}
}

func (w *Writer) writeJSON(result *analysis.Result) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (w *Writer) writeYAML(result *analysis.Result) error {
	enc := yaml.NewEncoder(w.out)
	defer enc.Close()
	return enc.Encode(result)
}

// writeCSV emits one row per detected peak plus a trailing summary row, so
// the output of repeated runs concatenates into a usable dataset
func (w *Writer) writeCSV(result *analysis.Result) error {
	cw := csv.NewWriter(w.out)

	header := []string{"record", "frequency_hz", "height_db", "prominence_db", "noise_floor_db", "snr_db"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, peak := range result.Peaks {
		row := []string{
			"peak",
			w.ftoa(result.Region.Axis[peak.Index]),
			w.ftoa(peak.Height),
			w.ftoa(peak.Prominence),
			"",
			"",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	summary := []string{
		"summary", "", "", "",
		w.ftoa(result.NoiseFloorDB),
		w.ftoa(result.SNRDB),
	}
	if err := cw.Write(summary); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) writeTable(result *analysis.Result) error {
	w.section("summary")
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SNR:\t%s dB\n", w.ftoa(result.SNRDB))
	fmt.Fprintf(tw, "Noise Floor:\t%s dB\n", w.ftoa(result.NoiseFloorDB))
	fmt.Fprintf(tw, "Detected Peaks:\t%d\n", len(result.Peaks))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Peaks) > 0 {
		w.section("peaks")
		tw = tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tFrequency (Hz)\tHeight (dB)\tProminence (dB)")
		for i, peak := range result.Peaks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
				i+1,
				w.ftoa(result.Region.Axis[peak.Index]),
				w.ftoa(peak.Height),
				w.ftoa(peak.Prominence))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if w.metadata {
		w.section("capture")
		tw = tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
		if result.Capture.Path != "" {
			fmt.Fprintf(tw, "File:\t%s\n", result.Capture.Path)
		}
		fmt.Fprintf(tw, "Samples:\t%d\n", result.Capture.TotalSamples)
		fmt.Fprintf(tw, "Sample Rate:\t%s Hz\n", w.ftoa(result.Capture.SampleRate))
		fmt.Fprintf(tw, "Center Frequency:\t%s Hz\n", w.ftoa(result.Capture.CenterFreq))
		fmt.Fprintf(tw, "Frames Averaged:\t%d\n", result.Spectrum.Frames)
		fmt.Fprintf(tw, "Samples Discarded:\t%d\n", result.Spectrum.DiscardedSamples)
		fmt.Fprintf(tw, "Region:\t%s - %s Hz (%d bins)\n",
			w.ftoa(result.Region.Low), w.ftoa(result.Region.High), result.Region.Bins)
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) section(name string) {
	fmt.Fprintf(w.out, "\n%s\n%s\n", w.titler.String(name), strings.Repeat("-", 40))
}

func (w *Writer) ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', w.precision, 64)
}
