package capture

import (
	"fmt"
	"io"
	"os"

	"github.com/icweaver/ARISE/pkg/logging"
)

// SampleFormat identifies the raw byte layout of a capture file
type SampleFormat string

const (
	// FormatInt8 is interleaved signed 8-bit I/Q pairs, the convention of
	// the acquisition hardware this tool was written for.
	FormatInt8 SampleFormat = "int8"

	// FormatUint8 is interleaved unsigned 8-bit I/Q pairs biased at 127.5,
	// as produced by RTL-SDR dongles.
	FormatUint8 SampleFormat = "uint8"
)

// sampleScale normalizes the widened 8-bit values to roughly [-1, 1]
const sampleScale = 1.0 / 127.5

// Reader decodes raw capture bytes into complex baseband samples. Each
// complex sample is two consecutive bytes: in-phase then quadrature.
type Reader struct {
	format SampleFormat
	logger logging.Logger
}

// NewReader creates a reader for the given sample format
func NewReader(format SampleFormat) (*Reader, error) {
	switch format {
	case FormatInt8, FormatUint8:
	default:
		return nil, fmt.Errorf("unsupported sample format %q", format)
	}

	return &Reader{
		format: format,
		logger: logging.WithFields(logging.Fields{
			"component": "capture_reader",
			"format":    string(format),
		}),
	}, nil
}

// Decode converts raw interleaved I/Q bytes into complex samples. A dangling
// byte with no quadrature partner is dropped.
func (r *Reader) Decode(data []byte) []complex128 {
	numSamples := len(data) / 2
	samples := make([]complex128, numSamples)

	switch r.format {
	case FormatUint8:
		for i := 0; i < numSamples; i++ {
			re := (float64(data[2*i]) - 127.5) * sampleScale
			im := (float64(data[2*i+1]) - 127.5) * sampleScale
			samples[i] = complex(re, im)
		}
	default:
		for i := 0; i < numSamples; i++ {
			re := float64(int8(data[2*i])) * sampleScale
			im := float64(int8(data[2*i+1])) * sampleScale
			samples[i] = complex(re, im)
		}
	}

	return samples
}

// Read decodes an entire capture from rd
func (r *Reader) Read(rd io.Reader) ([]complex128, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}
	return r.Decode(data), nil
}

// ReadFile decodes an entire capture file
func (r *Reader) ReadFile(path string) ([]complex128, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer file.Close()

	samples, err := r.Read(file)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("capture loaded", logging.Fields{
		"path":    path,
		"samples": len(samples),
	})

	return samples, nil
}
