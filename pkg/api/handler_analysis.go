package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/services"
)

// analysisResponse is the support-tooling view of a stored analysis.
// The owner appears only as the anonymized handle used in logs, never
// as the raw account id.
type analysisResponse struct {
	ID               string    `json:"id"`
	User             string    `json:"user"`
	Scenario         string    `json:"scenario"`
	Verdict          string    `json:"verdict"`
	Confidence       float64   `json:"confidence"`
	VerdictReason    string    `json:"verdict_reason,omitempty"`
	ImageSHA256      string    `json:"image_sha256"`
	PreserveEXIF     bool      `json:"preserve_exif"`
	ProcessingTimeMs int       `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAnalysisResponse(a *ent.Analysis) analysisResponse {
	return analysisResponse{
		ID:               a.ID,
		User:             privacy.AnonymizeUserID(a.UserID),
		Scenario:         string(a.Scenario),
		Verdict:          string(a.Verdict),
		Confidence:       a.Confidence,
		VerdictReason:    a.VerdictReason,
		ImageSHA256:      a.ImageSha256,
		PreserveEXIF:     a.PreserveExif,
		ProcessingTimeMs: a.ProcessingTimeMs,
		CreatedAt:        a.CreatedAt,
	}
}

// handleGetAnalysis returns one stored analysis by its id.
func (s *Server) handleGetAnalysis(c *gin.Context) {
	record, err := s.analyses.GetAnalysis(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analysis"})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(record))
}
