package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		input   string
		want    Scenario
		wantErr bool
	}{
		{"adult_blackmail", ScenarioAdultBlackmail, false},
		{"teenager_sos", ScenarioTeenagerSOS, false},
		{"general", ScenarioGeneral, false},
		// Uploads before a scenario was chosen carry no scenario tag.
		{"", ScenarioGeneral, false},
		{"photo_review", "", true},
	}

	for _, tt := range tests {
		got, err := ParseScenario(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestPriorityForTier(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityForTier(TierPro))
	assert.Equal(t, PriorityDefault, PriorityForTier(TierFree))
	assert.Equal(t, PriorityDefault, PriorityForTier(Tier("unknown")))
}

func TestAnalysisIDFor(t *testing.T) {
	sum := SHA256Hex([]byte("image bytes"))
	at := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	id := AnalysisIDFor(at, sum)
	assert.True(t, ValidAnalysisID(id))
	assert.Equal(t, "ANL-20260824-"+sum[:8], id)

	// Same content, same day: same identifier.
	assert.Equal(t, id, AnalysisIDFor(at.Add(3*time.Hour), sum))
	// Next day rolls the date component.
	assert.NotEqual(t, id, AnalysisIDFor(at.Add(24*time.Hour), sum))
}

func TestValidAnalysisID(t *testing.T) {
	assert.True(t, ValidAnalysisID("ANL-20261216-ab12cd34"))
	assert.False(t, ValidAnalysisID("ANL-20261216-AB12CD34"))
	assert.False(t, ValidAnalysisID("ANL-2026121-ab12cd34"))
	assert.False(t, ValidAnalysisID("anl-20261216-ab12cd34"))
	assert.False(t, ValidAnalysisID("ANL-20261216-ab12cd34x"))
}

func TestDetectionResult_DecodeToleratesPartialDetails(t *testing.T) {
	// Absent detectors and unknown keys must both decode cleanly.
	raw := `{
		"verdict": "ai_generated",
		"confidence": 0.98,
		"verdict_reason": "AI watermark",
		"watermark_detected": true,
		"processing_time_ms": 812,
		"details": {
			"ai_detection_score": 0.91,
			"visual_watermark": {
				"generator": "Google Gemini/Imagen",
				"text": "made with google ai",
				"location": "bottom_right",
				"confidence": 0.90
			},
			"some_future_field": {"nested": true}
		}
	}`

	var result DetectionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	assert.Equal(t, "ai_generated", result.Verdict)
	assert.True(t, result.WatermarkDetected)
	require.NotNil(t, result.Details.VisualWatermark)
	assert.Equal(t, "Google Gemini/Imagen", result.Details.VisualWatermark.Generator)
	assert.Zero(t, result.Details.FFTScore)
	assert.Nil(t, result.Details.GPS)
	assert.Empty(t, result.Details.RedFlags)
}

func TestDetails_HasSerials(t *testing.T) {
	trust := "high"

	both := Details{RedFlags: []RedFlag{
		{Reason: "Camera + Lens serials verified (Canon EOS R5)", Severity: "bonus", TrustLevel: &trust},
	}}
	camera, lens := both.HasSerials()
	assert.True(t, camera)
	assert.True(t, lens)

	cameraOnly := Details{RedFlags: []RedFlag{
		{Reason: "Camera serial verified (Canon EOS R5)", Severity: "bonus"},
	}}
	camera, lens = cameraOnly.HasSerials()
	assert.True(t, camera)
	assert.False(t, lens)

	lensOnly := Details{RedFlags: []RedFlag{
		{Reason: "Lens serial verified", Severity: "bonus"},
	}}
	camera, lens = lensOnly.HasSerials()
	assert.False(t, camera)
	assert.True(t, lens)

	// Serial wording with a non-bonus severity is a finding, not proof.
	suspicious := Details{RedFlags: []RedFlag{
		{Reason: "Camera serial verified (fake)", Severity: "high"},
	}}
	camera, lens = suspicious.HasSerials()
	assert.False(t, camera)
	assert.False(t, lens)
}
