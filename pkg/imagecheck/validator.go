// Package imagecheck performs pre-flight validation of uploaded
// images: size and format limits, content fingerprinting for
// duplicate detection, and a cheap local EXIF screen.
package imagecheck

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/webp"

	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// Sentinel errors for the two user-facing rejection reasons.
var (
	ErrTooLarge          = errors.New("image exceeds the size limit")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format is a recognized container format.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatHEIC Format = "heic"
	FormatMPO  Format = "mpo"
)

// Ext returns the file extension used for blob keys.
func (f Format) Ext() string {
	if f == FormatMPO {
		return "jpg"
	}
	return string(f)
}

// Report is the outcome of validating one upload.
type Report struct {
	Format Format
	Width  int
	Height int

	// SHA256 is the hex digest of the raw bytes.
	SHA256 string

	// Fingerprint identifies the image content for duplicate
	// detection: a 64-bit perceptual hash for decodable formats,
	// the sha256 prefix otherwise.
	Fingerprint string

	// AISoftware names the generation tool found in EXIF, if any.
	AISoftware string

	// ScreenshotHint is set when EXIF or dimensions suggest a screen
	// capture. Advisory only; the verdict comes from the full analysis.
	ScreenshotHint bool
}

// EXIF Software/Artist/Copyright values that identify generated images.
var aiSoftwareSignatures = []string{
	"midjourney", "dall-e", "dalle", "stable diffusion", "stablediffusion",
	"photoshop generative", "firefly", "leonardo.ai", "bluewillow",
	"nijijourney", "artbreeder", "craiyon", "nightcafe", "wombo",
	"deepai", "runway", "canva ai",
}

var screenshotSoftware = []string{
	"screenshot", "snagit", "lightshot", "greenshot", "sharex", "gyazo",
	"screenpresso", "monosnap", "skitch", "capture", "grab", "screencapture",
}

// Exact pixel sizes of common desktop and phone screens.
var screenshotSizes = map[[2]int]bool{
	{1920, 1080}: true, {2560, 1440}: true, {3840, 2160}: true,
	{1366, 768}: true, {1440, 900}: true, {1600, 900}: true,
	{1080, 1920}: true, {1080, 2340}: true, {1440, 3040}: true,
	{2340, 1080}: true, {3040, 1440}: true,
	{750, 1334}: true, {1125, 2436}: true, {828, 1792}: true,
	{1440, 2960}: true,
}

// Validator validates raw uploads against the configured size limit.
type Validator struct {
	maxBytes int
}

// NewValidator creates a validator accepting up to maxSizeMB megabytes.
func NewValidator(maxSizeMB int) *Validator {
	return &Validator{maxBytes: maxSizeMB * 1024 * 1024}
}

// Validate checks size and format, then fingerprints the image.
// The returned error wraps ErrTooLarge or ErrUnsupportedFormat for
// rejections the user should see.
func (v *Validator) Validate(data []byte) (*Report, error) {
	if len(data) > v.maxBytes {
		return nil, fmt.Errorf("%w: %.2fMB (max %dMB)",
			ErrTooLarge, float64(len(data))/(1024*1024), v.maxBytes/(1024*1024))
	}

	format, ok := sniffFormat(data)
	if !ok {
		return nil, fmt.Errorf("%w: only JPEG, PNG, WebP, MPO and HEIC are accepted", ErrUnsupportedFormat)
	}

	report := &Report{
		Format: format,
		SHA256: models.SHA256Hex(data),
	}

	img := decode(data, format)
	if img != nil {
		bounds := img.Bounds()
		report.Width = bounds.Dx()
		report.Height = bounds.Dy()

		if hash, err := goimagehash.PerceptionHash(img); err == nil {
			report.Fingerprint = fmt.Sprintf("%016x", hash.GetHash())
		}
	}
	if report.Fingerprint == "" {
		// HEIC and decode failures fall back to the exact content
		// hash: byte-identical re-uploads are still caught.
		report.Fingerprint = report.SHA256[:16]
	}

	v.screenEXIF(data, report)

	return report, nil
}

// screenEXIF fills the advisory AISoftware and ScreenshotHint fields
// from locally readable EXIF. EXIF absence is not an error.
func (v *Validator) screenEXIF(data []byte, report *Report) {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		// No EXIF at all: a screenshot-shaped image with no camera
		// metadata is still worth flagging.
		if screenshotSizes[[2]int{report.Width, report.Height}] {
			report.ScreenshotHint = true
		}
		return
	}

	fields := make([]string, 0, 3)
	for _, name := range []exif.FieldName{exif.Software, exif.Artist, exif.Copyright} {
		if tag, err := meta.Get(name); err == nil {
			if val, err := tag.StringVal(); err == nil {
				fields = append(fields, val)
			}
		}
	}

	for _, field := range fields {
		lower := strings.ToLower(field)
		for _, sig := range aiSoftwareSignatures {
			if strings.Contains(lower, sig) {
				report.AISoftware = field
				break
			}
		}
	}

	if len(fields) > 0 {
		lower := strings.ToLower(fields[0])
		for _, tool := range screenshotSoftware {
			if strings.Contains(lower, tool) {
				report.ScreenshotHint = true
				break
			}
		}
	}

	if !report.ScreenshotHint && screenshotSizes[[2]int{report.Width, report.Height}] {
		if !hasCameraTags(meta) {
			report.ScreenshotHint = true
		}
	}
}

func hasCameraTags(meta *exif.Exif) bool {
	for _, name := range []exif.FieldName{exif.Make, exif.Model, exif.LensModel, exif.FocalLength} {
		if _, err := meta.Get(name); err == nil {
			return true
		}
	}
	return false
}

// sniffFormat identifies the container by magic bytes.
func sniffFormat(data []byte) (Format, bool) {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		if isMPO(data) {
			return FormatMPO, true
		}
		return FormatJPEG, true
	case len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return FormatPNG, true
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP, true
	case isHEIC(data):
		return FormatHEIC, true
	default:
		return "", false
	}
}

// isMPO looks for the MPF marker of multi-picture JPEG containers in
// the header segments.
func isMPO(data []byte) bool {
	limit := len(data)
	if limit > 4096 {
		limit = 4096
	}
	return bytes.Contains(data[:limit], []byte("MPF\x00"))
}

var heicBrands = []string{"heic", "heix", "hevc", "heim", "heis", "hevm", "hevs", "mif1", "msf1"}

func isHEIC(data []byte) bool {
	if len(data) < 12 || !bytes.Equal(data[4:8], []byte("ftyp")) {
		return false
	}
	brand := string(data[8:12])
	for _, b := range heicBrands {
		if brand == b {
			return true
		}
	}
	return false
}

// decode parses the pixel data for formats the standard decoders
// handle. HEIC returns nil; its fingerprint falls back to sha256.
func decode(data []byte, format Format) image.Image {
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatJPEG, FormatMPO:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(data))
	case FormatWebP:
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return img
}
