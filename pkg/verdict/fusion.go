// Package verdict fuses the individual detector signals returned by the
// forensics API into a single verdict, confidence, and reason.
package verdict

import (
	"fmt"
	"strings"

	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// Result is a fused classification for one image.
type Result struct {
	Verdict    models.Verdict
	Confidence float64
	Reason     string
}

// Fusion weights for the combined score.
const (
	weightAI       = 0.35
	weightFFT      = 0.30
	weightMetadata = 0.25
	weightFaceSwap = 0.10
)

// Trusted-editor reductions applied to the combined score. A trusted
// editor in EXIF explains away compression and frequency artifacts.
const (
	trustedStrongReduction = 0.30
	trustedMediumReduction = 0.15
)

// Camera serial reductions. Serial numbers come from real camera
// firmware; generation pipelines do not produce them.
const (
	bothSerialsReduction  = 0.30
	singleSerialReduction = 0.20
)

var strongTrustedEditors = []string{"lightroom", "capture one"}
var mediumTrustedEditors = []string{"photoshop"}

// Fuse turns a detection result into a verdict. It is deterministic:
// the same input bundle always yields the same triple.
//
// Hard evidence is checked first, in decreasing order of reliability;
// only when none fires does the weighted score decide.
func Fuse(res models.DetectionResult) Result {
	d := res.Details

	if wm := d.VisualWatermark; wm != nil {
		return Result{
			Verdict:    models.VerdictAIGenerated,
			Confidence: 0.98,
			Reason:     fmt.Sprintf("AI generator watermark detected: %s", wm.Generator),
		}
	}

	if d.C2PAPresent {
		return Result{
			Verdict:    models.VerdictAIGenerated,
			Confidence: 0.95,
			Reason:     "C2PA provenance manifest marks this image as AI-generated",
		}
	}

	if d.AISoftwareInExif {
		reason := "AI generation software recorded in EXIF"
		if d.Software != nil {
			reason = fmt.Sprintf("AI generation software recorded in EXIF: %s", *d.Software)
		}
		return Result{
			Verdict:    models.VerdictAIGenerated,
			Confidence: 0.98,
			Reason:     reason,
		}
	}

	if d.ScreenshotDetected {
		return Result{
			Verdict:    models.VerdictManipulated,
			Confidence: 0.95,
			Reason:     "Image is a screenshot, not an original capture",
		}
	}

	risk := d.MetadataFraudScore
	if risk >= 80 {
		v := models.VerdictManipulated
		if risk >= 90 {
			v = models.VerdictAIGenerated
		}
		return Result{
			Verdict:    v,
			Confidence: min(risk/100, 0.98),
			Reason:     fmt.Sprintf("Metadata integrity check failed (risk %.0f/100)", risk),
		}
	}

	combined := weightAI*d.AIDetectionScore +
		weightFFT*d.FFTScore +
		weightMetadata*(risk/100) +
		weightFaceSwap*d.FaceSwapScore

	combined -= trustedEditorReduction(d)
	combined -= serialReduction(d)
	combined = clamp(combined, 0, 1)

	// Borderline scores with clean, camera-attributed metadata lean real.
	if combined >= 0.35 && combined < 0.50 {
		if bonus := goodMetadataBonus(d); bonus > 0 {
			return Result{
				Verdict:    models.VerdictReal,
				Confidence: clamp(max(0.70, 1-combined+bonus), 0.70, 0.95),
				Reason:     "Borderline detector scores outweighed by consistent camera metadata",
			}
		}
	}

	switch {
	case combined >= 0.70:
		return Result{
			Verdict:    models.VerdictAIGenerated,
			Confidence: min(combined, 0.95),
			Reason:     "Strong AI-generation signals across detectors",
		}
	case combined >= 0.50:
		v := models.VerdictManipulated
		reason := "Frequency-domain anomalies dominate the detector scores"
		if d.AIDetectionScore >= d.FFTScore {
			v = models.VerdictAIGenerated
			reason = "AI-pattern heuristics dominate the detector scores"
		}
		return Result{
			Verdict:    v,
			Confidence: combined,
			Reason:     reason,
		}
	case combined >= 0.35:
		return Result{
			Verdict:    models.VerdictInconclusive,
			Confidence: 1 - combined,
			Reason:     "Detector signals are mixed; no reliable conclusion",
		}
	default:
		return Result{
			Verdict:    models.VerdictReal,
			Confidence: clamp(1-combined, 0.70, 0.95),
			Reason:     "No significant generation or manipulation signals",
		}
	}
}

// trustedEditorReduction returns the combined-score reduction earned by
// a trusted photo editor named in EXIF Software or XMP CreatorTool.
// The strongest matching editor wins.
func trustedEditorReduction(d models.Details) float64 {
	fields := make([]string, 0, 2)
	if d.Software != nil {
		fields = append(fields, strings.ToLower(*d.Software))
	}
	if d.CreatorTool != nil {
		fields = append(fields, strings.ToLower(*d.CreatorTool))
	}

	reduction := 0.0
	for _, field := range fields {
		for _, editor := range strongTrustedEditors {
			if strings.Contains(field, editor) {
				return trustedStrongReduction
			}
		}
		for _, editor := range mediumTrustedEditors {
			if strings.Contains(field, editor) {
				reduction = trustedMediumReduction
			}
		}
	}
	return reduction
}

func serialReduction(d models.Details) float64 {
	camera, lens := d.HasSerials()
	switch {
	case camera && lens:
		return bothSerialsReduction
	case camera || lens:
		return singleSerialReduction
	default:
		return 0
	}
}

// goodMetadataBonus rewards a low fraud score backed by an identified
// capture device. Zero when the metadata is risky or anonymous.
func goodMetadataBonus(d models.Details) float64 {
	if d.MetadataFraudScore >= 40 {
		return 0
	}
	if d.CameraMake == nil && d.CameraModel == nil {
		return 0
	}
	return (40 - d.MetadataFraudScore) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
