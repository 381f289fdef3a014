package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

// analysisIDPattern matches "ANL-YYYYMMDD-" plus the first 8 hex chars
// of the image content hash.
var analysisIDPattern = regexp.MustCompile(`^ANL-\d{8}-[0-9a-f]{8}$`)

// AnalysisIDFor derives the deterministic analysis identifier for an
// image analyzed on a given day. The same image re-analyzed on the
// same day yields the same identifier.
func AnalysisIDFor(now time.Time, imageSHA256 string) string {
	return fmt.Sprintf("ANL-%s-%s", now.UTC().Format("20060102"), imageSHA256[:8])
}

// SHA256Hex returns the lowercase hex digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidAnalysisID reports whether id has the canonical identifier shape.
func ValidAnalysisID(id string) bool {
	return analysisIDPattern.MatchString(id)
}

// CreateAnalysisRequest contains fields for persisting a completed analysis.
type CreateAnalysisRequest struct {
	AnalysisID       string         `json:"analysis_id"`
	UserID           int64          `json:"user_id"`
	Scenario         Scenario       `json:"scenario"`
	Verdict          Verdict        `json:"verdict"`
	Confidence       float64        `json:"confidence"`
	VerdictReason    string         `json:"verdict_reason"`
	ImageSHA256      string         `json:"image_sha256"`
	PHash            string         `json:"phash,omitempty"`
	BlobKey          string         `json:"blob_key,omitempty"`
	PreserveEXIF     bool           `json:"preserve_exif"`
	ProcessingTimeMs int            `json:"processing_time_ms"`
	ResultBlob       map[string]any `json:"result_blob,omitempty"`
}
