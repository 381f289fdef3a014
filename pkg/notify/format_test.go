package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatExifDatetime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "exif colon format",
			input:    "2025:12:16 07:42:09",
			expected: "16 Dec 2025, 07:42",
		},
		{
			name:     "dash format",
			input:    "2025-12-16 07:42:09",
			expected: "16 Dec 2025, 07:42",
		},
		{
			name:     "unparseable returned unchanged",
			input:    "yesterday morning",
			expected: "yesterday morning",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatExifDatetime(tt.input))
		})
	}
}

func TestFormatSoftwareName(t *testing.T) {
	tests := []struct {
		name        string
		software    string
		cameraMake  string
		cameraModel string
		expected    string
	}{
		{
			name:        "bare version on apple device becomes iOS",
			software:    "26.2",
			cameraMake:  "Apple",
			cameraModel: "iPhone 13",
			expected:    "iOS 26.2",
		},
		{
			name:       "bare version on unknown device",
			software:   "1.0.3",
			cameraMake: "Canon",
			expected:   "Version 1.0.3",
		},
		{
			name:     "named software passes through",
			software: "Adobe Photoshop 2025",
			expected: "Adobe Photoshop 2025",
		},
		{
			name:     "empty stays empty",
			software: "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSoftwareName(tt.software, tt.cameraMake, tt.cameraModel))
		})
	}
}

func TestFormatCameraName(t *testing.T) {
	tests := []struct {
		name     string
		make     string
		model    string
		expected string
	}{
		{
			name:     "lowercase iphone",
			make:     "apple",
			model:    "iphone 13",
			expected: "Apple iPhone 13",
		},
		{
			name:     "canon eos uppercased",
			make:     "canon",
			model:    "eos r5",
			expected: "Canon EOS R5",
		},
		{
			name:     "samsung galaxy title cased",
			make:     "samsung",
			model:    "galaxy s24 ultra",
			expected: "Samsung Galaxy S24 Ultra",
		},
		{
			name:     "make repeated in model not duplicated",
			make:     "canon",
			model:    "Canon PowerShot",
			expected: "Canon Powershot",
		},
		{
			name:     "model only",
			make:     "",
			model:    "pixel 9",
			expected: "Pixel 9",
		},
		{
			name:     "nothing known",
			make:     "",
			model:    "",
			expected: "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCameraName(tt.make, tt.model))
		})
	}
}
