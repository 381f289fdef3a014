package verdict

import (
	"testing"

	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFuse_VisualWatermark(t *testing.T) {
	res := models.DetectionResult{
		WatermarkDetected: true,
		Details: models.Details{
			// Other detectors deliberately contradict the watermark;
			// the watermark still wins.
			AIDetectionScore:   0.05,
			FFTScore:           0.10,
			MetadataFraudScore: 10,
			VisualWatermark: &models.VisualWatermark{
				Generator:  "Google Gemini/Imagen",
				Text:       "made with google ai",
				Location:   "bottom_right",
				Confidence: 0.90,
			},
		},
	}

	got := Fuse(res)
	assert.Equal(t, models.VerdictAIGenerated, got.Verdict)
	assert.GreaterOrEqual(t, got.Confidence, 0.95)
	assert.Contains(t, got.Reason, "Google")
}

func TestFuse_TrustedEditorWithSerials(t *testing.T) {
	trust := "high"
	res := models.DetectionResult{
		Details: models.Details{
			AIDetectionScore:   0.15,
			FFTScore:           0.25,
			MetadataFraudScore: 55,
			Software:           strPtr("Adobe Photoshop CS6"),
			CreatorTool:        strPtr("Adobe Photoshop Lightroom 5.3"),
			RedFlags: []models.RedFlag{
				{Reason: "Camera + Lens serials verified (Canon EOS 5D Mark III)", Severity: "bonus", TrustLevel: &trust},
			},
		},
	}

	got := Fuse(res)
	assert.Equal(t, models.VerdictReal, got.Verdict)
	assert.GreaterOrEqual(t, got.Confidence, 0.70)
}

func TestFuse_BorderlinePhoneCameraLeansReal(t *testing.T) {
	res := models.DetectionResult{
		Details: models.Details{
			AIDetectionScore:   0.39,
			FFTScore:           0.63,
			MetadataFraudScore: 30,
			CameraMake:         strPtr("samsung"),
			CameraModel:        strPtr("SM-G991B"),
			ExifFieldCount:     42,
		},
	}

	got := Fuse(res)
	assert.Equal(t, models.VerdictReal, got.Verdict)
	assert.GreaterOrEqual(t, got.Confidence, 0.70)
}

func TestFuse_CascadeOrder(t *testing.T) {
	tests := []struct {
		name     string
		details  models.Details
		verdict  models.Verdict
		minConf  float64
		contains string
	}{
		{
			name:    "c2pa provenance",
			details: models.Details{C2PAPresent: true},
			verdict: models.VerdictAIGenerated,
			minConf: 0.95, contains: "C2PA",
		},
		{
			name: "ai software in exif",
			details: models.Details{
				AISoftwareInExif: true,
				Software:         strPtr("Midjourney v6"),
			},
			verdict: models.VerdictAIGenerated,
			minConf: 0.98, contains: "Midjourney",
		},
		{
			name:    "screenshot",
			details: models.Details{ScreenshotDetected: true},
			verdict: models.VerdictManipulated,
			minConf: 0.95, contains: "screenshot",
		},
		{
			name: "c2pa outranks screenshot",
			details: models.Details{
				C2PAPresent:        true,
				ScreenshotDetected: true,
			},
			verdict: models.VerdictAIGenerated,
			minConf: 0.95, contains: "C2PA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(models.DetectionResult{Details: tt.details})
			assert.Equal(t, tt.verdict, got.Verdict)
			assert.GreaterOrEqual(t, got.Confidence, tt.minConf)
			assert.Contains(t, got.Reason, tt.contains)
		})
	}
}

func TestFuse_MetadataRiskEarlyExit(t *testing.T) {
	got := Fuse(models.DetectionResult{Details: models.Details{MetadataFraudScore: 85}})
	assert.Equal(t, models.VerdictManipulated, got.Verdict)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)

	got = Fuse(models.DetectionResult{Details: models.Details{MetadataFraudScore: 92}})
	assert.Equal(t, models.VerdictAIGenerated, got.Verdict)
	assert.InDelta(t, 0.92, got.Confidence, 1e-9)

	// Confidence caps at 0.98 even for a maximal risk score.
	got = Fuse(models.DetectionResult{Details: models.Details{MetadataFraudScore: 100}})
	assert.InDelta(t, 0.98, got.Confidence, 1e-9)
}

func TestFuse_WeightedBands(t *testing.T) {
	tests := []struct {
		name    string
		details models.Details
		verdict models.Verdict
	}{
		{
			name: "high combined is ai_generated",
			details: models.Details{
				AIDetectionScore:   0.95,
				FFTScore:           0.90,
				MetadataFraudScore: 75,
				FaceSwapScore:      0.80,
			},
			verdict: models.VerdictAIGenerated,
		},
		{
			name: "mid band with dominant ai heuristic",
			details: models.Details{
				AIDetectionScore:   0.90,
				FFTScore:           0.40,
				MetadataFraudScore: 60,
			},
			verdict: models.VerdictAIGenerated,
		},
		{
			name: "mid band with dominant fft",
			details: models.Details{
				AIDetectionScore:   0.40,
				FFTScore:           0.90,
				MetadataFraudScore: 60,
			},
			verdict: models.VerdictManipulated,
		},
		{
			name: "borderline without camera metadata is inconclusive",
			details: models.Details{
				AIDetectionScore:   0.39,
				FFTScore:           0.63,
				MetadataFraudScore: 30,
			},
			verdict: models.VerdictInconclusive,
		},
		{
			name: "low combined is real",
			details: models.Details{
				AIDetectionScore:   0.10,
				FFTScore:           0.10,
				MetadataFraudScore: 10,
			},
			verdict: models.VerdictReal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(models.DetectionResult{Details: tt.details})
			assert.Equal(t, tt.verdict, got.Verdict)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 0.98)
		})
	}
}

func TestFuse_RealBandConfidenceClamped(t *testing.T) {
	got := Fuse(models.DetectionResult{Details: models.Details{}})
	assert.Equal(t, models.VerdictReal, got.Verdict)
	// 1 - 0 clamps down to 0.95, never claims certainty.
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)

	got = Fuse(models.DetectionResult{Details: models.Details{
		AIDetectionScore: 0.30,
		FFTScore:         0.30,
		FaceSwapScore:    1.0,
	}})
	// combined = 0.295, 1 - combined = 0.705, inside the clamp range.
	assert.Equal(t, models.VerdictReal, got.Verdict)
	assert.InDelta(t, 0.705, got.Confidence, 1e-9)
}

func TestFuse_Deterministic(t *testing.T) {
	res := models.DetectionResult{
		Details: models.Details{
			AIDetectionScore:   0.52,
			FFTScore:           0.48,
			MetadataFraudScore: 44,
			FaceSwapScore:      0.20,
		},
	}

	first := Fuse(res)
	for range 10 {
		assert.Equal(t, first, Fuse(res))
	}
}
