package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevrusik/turthsnapbot/pkg/models"
)

func TestProgressTextStages(t *testing.T) {
	tests := []struct {
		stage    models.Stage
		expected []string
	}{
		{models.StagePreparing, []string{"⏳", "Preparing analysis"}},
		{models.StageDownloading, []string{"📥", "Retrieving image from cloud", "ETA: ~20 seconds"}},
		{models.StageExifExtraction, []string{"🔍", "Extracting metadata", "Camera fingerprint", "GPS coordinates"}},
		{models.StageAIDetection, []string{"🤖", "AI detectors running", "GAN pattern detection", "Face-swap artifacts"}},
		{models.StageFrequencyAnalysis, []string{"🔬", "Frequency domain analysis", "FFT pattern analysis"}},
		{models.StageFinalScoring, []string{"📊", "Generating final report", "Almost done..."}},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			body := ProgressText(tt.stage)
			for _, want := range tt.expected {
				assert.Contains(t, body, want)
			}
			assert.Contains(t, body, "<i>Analysis in progress...</i>")
		})
	}
}

func TestProgressTextUnknownStage(t *testing.T) {
	body := ProgressText(models.Stage("mystery"))
	assert.Contains(t, body, "mystery")
	assert.Contains(t, body, "<i>Analysis in progress...</i>")
}

func TestProgressTextIsDeterministic(t *testing.T) {
	assert.Equal(t, ProgressText(models.StageAIDetection), ProgressText(models.StageAIDetection))
}
