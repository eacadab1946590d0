package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInt8(t *testing.T) {
	r, err := NewReader(FormatInt8)
	require.NoError(t, err)

	// 0x7F = 127, 0x81 = -127 as int8
	samples := r.Decode([]byte{0x7F, 0x81, 0x00, 0x40})
	require.Len(t, samples, 2)

	assert.InDelta(t, 127.0/127.5, real(samples[0]), 1e-12)
	assert.InDelta(t, -127.0/127.5, imag(samples[0]), 1e-12)
	assert.InDelta(t, 0.0, real(samples[1]), 1e-12)
	assert.InDelta(t, 64.0/127.5, imag(samples[1]), 1e-12)
}

func TestDecodeUint8(t *testing.T) {
	r, err := NewReader(FormatUint8)
	require.NoError(t, err)

	samples := r.Decode([]byte{255, 0, 128, 127})
	require.Len(t, samples, 2)

	assert.InDelta(t, 1.0, real(samples[0]), 1e-12)
	assert.InDelta(t, -1.0, imag(samples[0]), 1e-12)
	assert.InDelta(t, 0.5/127.5, real(samples[1]), 1e-12)
	assert.InDelta(t, -0.5/127.5, imag(samples[1]), 1e-12)
}

func TestDecodeDropsDanglingByte(t *testing.T) {
	r, err := NewReader(FormatInt8)
	require.NoError(t, err)

	samples := r.Decode([]byte{1, 2, 3})
	assert.Len(t, samples, 1)

	assert.Empty(t, r.Decode([]byte{9}))
	assert.Empty(t, r.Decode(nil))
}

func TestNewReaderUnsupportedFormat(t *testing.T) {
	_, err := NewReader("float32")
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	r, err := NewReader(FormatInt8)
	require.NoError(t, err)

	samples, err := r.Read(bytes.NewReader([]byte{10, 20, 30, 40}))
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.iq")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6}, 0o644))

	r, err := NewReader(FormatInt8)
	require.NoError(t, err)

	samples, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, samples, 3)
}

func TestReadFileMissing(t *testing.T) {
	r, err := NewReader(FormatInt8)
	require.NoError(t, err)

	_, err = r.ReadFile(filepath.Join(t.TempDir(), "missing.iq"))
	require.Error(t, err)
}
