// Package notify renders analysis results into chat messages and
// delivers progress updates.
package notify

import (
	"strings"
	"time"
)

// FormatExifDatetime turns an EXIF timestamp ("2025:12:16 07:42:09" or
// "2025-12-16 07:42:09") into "16 Dec 2025, 07:42". Unparseable input
// is returned unchanged.
func FormatExifDatetime(raw string) string {
	normalized := strings.Replace(raw, ":", "-", 2)
	t, err := time.Parse("2006-01-02 15:04:05", normalized)
	if err != nil {
		return raw
	}
	return t.Format("02 Jan 2006, 15:04")
}

// FormatSoftwareName makes raw EXIF software values readable. iPhones
// record a bare version number ("26.2"); prefix those with the OS name.
func FormatSoftwareName(software, cameraMake, cameraModel string) string {
	software = strings.TrimSpace(software)
	if software == "" {
		return software
	}

	if isVersionNumber(software) {
		make := strings.ToLower(cameraMake)
		model := strings.ToLower(cameraModel)
		if strings.Contains(make, "apple") || strings.Contains(model, "iphone") {
			return "iOS " + software
		}
		return "Version " + software
	}
	return software
}

// FormatCameraName combines EXIF make and model into a properly cased
// device name: "apple"/"iphone 13" becomes "Apple iPhone 13".
func FormatCameraName(make, model string) string {
	make = titleWords(strings.TrimSpace(make))
	model = strings.TrimSpace(model)

	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "iphone"):
		parts := strings.Fields(model)
		if len(parts) > 1 {
			model = "iPhone " + strings.Join(parts[1:], " ")
		} else {
			model = "iPhone"
		}
	case strings.Contains(lower, "eos"):
		model = strings.ToUpper(model)
	case strings.Contains(lower, "galaxy"):
		model = titleWords(model)
	}

	switch {
	case make != "" && model != "":
		if !strings.Contains(strings.ToLower(model), strings.ToLower(make)) {
			return make + " " + model
		}
		return titleWords(model)
	case make != "":
		return make
	case model != "":
		return titleWords(model)
	default:
		return "Unknown"
	}
}

func isVersionNumber(s string) bool {
	seenDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.':
		default:
			return false
		}
	}
	return seenDigit
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 {
			upper := strings.ToUpper(string(r[0]))
			words[i] = upper + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
