package models

import "strings"

// DetectionResult is the response body of the forensics API verify call.
// Every field under Details is optional on the wire; absent detectors
// decode to their zero values and unknown keys are ignored.
type DetectionResult struct {
	Verdict           string  `json:"verdict"`
	Confidence        float64 `json:"confidence"`
	VerdictReason     string  `json:"verdict_reason"`
	WatermarkDetected bool    `json:"watermark_detected"`
	WatermarkAnalysis *string `json:"watermark_analysis,omitempty"`
	ProcessingTimeMs  int     `json:"processing_time_ms"`
	Details           Details `json:"details"`
}

// Details carries the per-detector scores and extracted metadata.
type Details struct {
	AIDetectionScore   float64 `json:"ai_detection_score"`
	FFTScore           float64 `json:"fft_score"`
	MetadataFraudScore float64 `json:"metadata_fraud_score"`
	FaceSwapScore      float64 `json:"face_swap_score"`

	RedFlags []RedFlag `json:"red_flags,omitempty"`

	CameraMake       *string `json:"camera_make,omitempty"`
	CameraModel      *string `json:"camera_model,omitempty"`
	Software         *string `json:"software,omitempty"`
	CreatorTool      *string `json:"creator_tool,omitempty"`
	CaptureTimestamp *string `json:"capture_timestamp,omitempty"`
	GPS              *GPS    `json:"gps,omitempty"`

	ExifFieldCount     int  `json:"exif_field_count"`
	ScreenshotDetected bool `json:"screenshot_detected"`
	C2PAPresent        bool `json:"c2pa_present"`
	AISoftwareInExif   bool `json:"ai_software_in_exif"`

	VisualWatermark *VisualWatermark `json:"visual_watermark,omitempty"`
}

// RedFlag is a single suspicious finding reported by the API.
type RedFlag struct {
	Reason     string  `json:"reason"`
	Severity   string  `json:"severity"`
	TrustLevel *string `json:"trust_level,omitempty"`
}

// GPS is a capture location extracted from EXIF.
type GPS struct {
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Alt *float64 `json:"alt,omitempty"`
}

// VisualWatermark describes a generator watermark found in the pixels.
type VisualWatermark struct {
	Generator  string  `json:"generator"`
	Text       string  `json:"text"`
	Location   string  `json:"location"`
	Confidence float64 `json:"confidence"`
}

// HasSerials reports which camera serial numbers the EXIF carried.
// The API has no dedicated serial fields; it reports them as
// bonus-severity flags ("Camera + Lens serials verified (...)",
// "Camera serial verified (...)", "Lens serial verified").
func (d Details) HasSerials() (camera, lens bool) {
	for _, f := range d.RedFlags {
		if f.Severity != "bonus" {
			continue
		}
		reason := strings.ToLower(f.Reason)
		if !strings.Contains(reason, "serial") {
			continue
		}
		switch {
		case strings.Contains(reason, "camera + lens"):
			camera, lens = true, true
		case strings.Contains(reason, "camera serial"):
			camera = true
		case strings.Contains(reason, "lens serial"):
			lens = true
		}
	}
	return camera, lens
}
