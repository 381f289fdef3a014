package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

func buttonTexts(kb *telegram.InlineKeyboardMarkup) []string {
	var texts []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			texts = append(texts, btn.Text)
		}
	}
	return texts
}

func strPtr(s string) *string { return &s }

func aiGeneratedFixture() (verdict.Result, *models.DetectionResult) {
	fused := verdict.Result{
		Verdict:    models.VerdictAIGenerated,
		Confidence: 0.94,
		Reason:     "Strong AI-generation signals across detectors",
	}
	det := &models.DetectionResult{
		Verdict:          "ai_generated",
		Confidence:       0.94,
		ProcessingTimeMs: 21300,
		Details: models.Details{
			AIDetectionScore:   0.88,
			FFTScore:           0.72,
			MetadataFraudScore: 85,
		},
	}
	return fused, det
}

func realPhotoFixture() (verdict.Result, *models.DetectionResult) {
	fused := verdict.Result{
		Verdict:    models.VerdictReal,
		Confidence: 0.91,
		Reason:     "No significant generation or manipulation signals",
	}
	det := &models.DetectionResult{
		Verdict:          "real",
		Confidence:       0.91,
		ProcessingTimeMs: 18200,
		Details: models.Details{
			MetadataFraudScore: 5,
			ExifFieldCount:     42,
			CameraMake:         strPtr("Apple"),
			CameraModel:        strPtr("iPhone 13"),
			Software:           strPtr("26.2"),
			CaptureTimestamp:   strPtr("2025:12:16 07:42:09"),
		},
	}
	return fused, det
}

func TestRenderResultHeaderAndFooter(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()

	body, kb := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-20260824-0a1b2c3d", fused, det)

	require.NotNil(t, kb)
	assert.Contains(t, body, "🤖 <b>AI-GENERATED (94.0%)</b>")
	assert.Contains(t, body, "<b>Analysis ID:</b> <code>ANL-20260824-0a1b2c3d</code>")
	assert.Contains(t, body, "DIGITAL FOOTPRINT")
}

func TestRenderResultFootprintForRealPhoto(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := realPhotoFixture()

	body, _ := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.Contains(t, body, "📅 <b>Captured:</b> 16 Dec 2025, 07:42")
	assert.Contains(t, body, "🛠 <b>Created with:</b> iOS 26.2")
	assert.Contains(t, body, "📱 <b>Device:</b> Apple iPhone 13")
	assert.Contains(t, body, "📍 <b>GPS:</b> <i>None Detected</i>")
	assert.NotContains(t, body, "RED FLAGS")
}

func TestRenderResultStrippedMetadata(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()

	body, _ := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.Contains(t, body, "<i>No timestamp (suspicious)</i>")
	assert.Contains(t, body, "<i>Unknown/Stripped</i>")
	assert.Contains(t, body, "<i>No Camera Data (AI Signature)</i>")
}

func TestRenderResultRedFlagsCapped(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()
	det.Details.FaceSwapScore = 0.8
	det.Details.RedFlags = []models.RedFlag{
		{Reason: "EXIF timestamps inconsistent", Severity: "high"},
		{Reason: "Thumbnail mismatch", Severity: "medium"},
	}

	body, _ := r.RenderResult(context.Background(), models.ScenarioAdultBlackmail, "ANL-1", fused, det)

	require.Contains(t, body, "⚠️ <b>RED FLAGS:</b>")
	assert.Contains(t, body, "<b>AI Pattern:</b> Strong (GAN/Diffusion)")
	assert.Contains(t, body, "<b>Metadata:</b> Stripped/Manipulated (85/100)")
	// Capped at two: lower-ranked findings are dropped.
	assert.NotContains(t, body, "Metadata timestamps inconsistent")
	assert.NotContains(t, body, "Frequency Analysis")
	assert.NotContains(t, body, "Face Integrity")
}

func TestRenderResultVisualWatermarkLeadsRedFlags(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()
	det.Details.VisualWatermark = &models.VisualWatermark{
		Generator:  "Midjourney",
		Text:       "MJ",
		Confidence: 0.97,
	}

	body, _ := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.Contains(t, body, `<b>Visual Mark:</b> "MJ" (Midjourney)`)
}

func TestRenderResultGPSGeocoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"city":"Berlin","country":"Germany"}}`))
	}))
	defer server.Close()

	r := NewRenderer(NewGeocoderWithBaseURL(server.URL))
	fused, det := realPhotoFixture()
	det.Details.GPS = &models.GPS{Lat: 52.52, Lon: 13.405}

	body, _ := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.Contains(t, body, "📍 <b>GPS:</b> Berlin, Germany")
	assert.Contains(t, body, "https://www.google.com/maps?q=52.52,13.405")
	assert.Contains(t, body, "52.5200, 13.4050")
}

func TestRenderResultGPSFallsBackToCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := NewRenderer(NewGeocoderWithBaseURL(server.URL))
	fused, det := realPhotoFixture()
	det.Details.GPS = &models.GPS{Lat: 52.52, Lon: 13.405}

	body, _ := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.NotContains(t, body, "Berlin")
	assert.Contains(t, body, "52.5200, 13.4050")
	assert.Contains(t, body, "https://www.google.com/maps?q=52.52,13.405")
}

func TestRenderResultAdultTone(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()

	body, kb := r.RenderResult(context.Background(), models.ScenarioAdultBlackmail, "ANL-1", fused, det)

	assert.Contains(t, body, "<b>DO NOT</b> pay the blackmailer")
	assert.Contains(t, body, "Save this analysis as evidence")
	assert.NotContains(t, body, "not your fault")

	texts := buttonTexts(kb)
	assert.Contains(t, texts, "📄 Get Forensic PDF")
	assert.Contains(t, texts, "🛡️ Counter-measures")
	assert.Contains(t, texts, "🔙 Back to Main Menu")
}

func TestRenderResultTeenagerTone(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := aiGeneratedFixture()

	body, kb := r.RenderResult(context.Background(), models.ScenarioTeenagerSOS, "ANL-1", fused, det)

	assert.Contains(t, body, "not your fault")
	assert.Contains(t, body, "trusted adult")

	texts := buttonTexts(kb)
	assert.Contains(t, texts, "📄 Get PDF Report")
	assert.Contains(t, texts, "🤝 How to tell my parents")
	assert.Contains(t, texts, "🚫 Stop the Spread")
	assert.Contains(t, texts, "📚 What is sextortion?")
	assert.NotContains(t, texts, "🛡️ Counter-measures")
}

func TestRenderResultGeneralKeyboard(t *testing.T) {
	r := NewRenderer(NewGeocoder())
	fused, det := realPhotoFixture()

	body, kb := r.RenderResult(context.Background(), models.ScenarioGeneral, "ANL-1", fused, det)

	assert.Contains(t, body, "authentic photo")

	texts := buttonTexts(kb)
	assert.Contains(t, texts, "🤖 What is AI-generated content?")
	assert.Contains(t, texts, "🔍 How to spot fake images")
	assert.Contains(t, texts, "📤 Share Result")
	assert.NotContains(t, texts, "🛡️ Counter-measures")
	assert.NotContains(t, texts, "🤝 How to tell my parents")
}

func TestRenderFailure(t *testing.T) {
	tests := []struct {
		kind     models.FailureKind
		expected string
	}{
		{models.FailureTimeout, "took too long"},
		{models.FailureUnavailable, "temporarily unavailable"},
		{models.FailureInternal, "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			body := RenderFailure(tt.kind)
			assert.Contains(t, body, "❌ <b>Analysis Failed</b>")
			assert.Contains(t, body, tt.expected)
			assert.Contains(t, body, "not charged")
			assert.Contains(t, body, "/support")
		})
	}
}

func TestPDFCallbackRoundTrip(t *testing.T) {
	data := PDFCallback("ANL-20260824-0a1b2c3d")
	assert.Equal(t, "pdf_report:ANL-20260824-0a1b2c3d", data)
}
