package imagecheck

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8((x * y) % 256), G: 64, B: uint8(x % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestValidate_AcceptsJPEGAndPNG(t *testing.T) {
	v := NewValidator(20)

	report, err := v.Validate(encodeJPEG(t, 64, 48))
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, report.Format)
	assert.Equal(t, 64, report.Width)
	assert.Equal(t, 48, report.Height)
	assert.Len(t, report.SHA256, 64)
	assert.Len(t, report.Fingerprint, 16)

	report, err = v.Validate(encodePNG(t, 32, 32))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, report.Format)
}

func TestValidate_RejectsOversized(t *testing.T) {
	v := NewValidator(1)

	data := make([]byte, 1*1024*1024+1)
	data[0], data[1], data[2] = 0xFF, 0xD8, 0xFF

	_, err := v.Validate(data)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	v := NewValidator(20)

	_, err := v.Validate([]byte("GIF89a not actually supported"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = v.Validate([]byte{0x00, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate_FingerprintIsStable(t *testing.T) {
	v := NewValidator(20)
	data := encodeJPEG(t, 128, 128)

	first, err := v.Validate(data)
	require.NoError(t, err)
	second, err := v.Validate(data)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.SHA256, second.SHA256)
}

func TestValidate_HEICFallsBackToContentHash(t *testing.T) {
	v := NewValidator(20)

	data := append([]byte{0x00, 0x00, 0x00, 0x18}, []byte("ftypheic")...)
	data = append(data, make([]byte, 64)...)

	report, err := v.Validate(data)
	require.NoError(t, err)
	assert.Equal(t, FormatHEIC, report.Format)
	assert.Equal(t, report.SHA256[:16], report.Fingerprint)
}

func TestValidate_ScreenshotResolutionHint(t *testing.T) {
	v := NewValidator(20)

	// Screen-sized image with no EXIF looks like a capture.
	report, err := v.Validate(encodePNG(t, 1366, 768))
	require.NoError(t, err)
	assert.True(t, report.ScreenshotHint)

	// An ordinary aspect ratio does not.
	report, err = v.Validate(encodePNG(t, 1200, 800))
	require.NoError(t, err)
	assert.False(t, report.ScreenshotHint)
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, "jpeg", FormatJPEG.Ext())
	assert.Equal(t, "jpg", FormatMPO.Ext())
	assert.Equal(t, "heic", FormatHEIC.Ext())
}
