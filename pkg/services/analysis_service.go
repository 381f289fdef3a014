package services

import (
	"context"
	"fmt"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// AnalysisService persists and retrieves completed analyses.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// CreateAnalysis persists a completed analysis. Idempotent on the
// analysis ID: if two jobs for the same image finish on the same day,
// the second insert returns the already-persisted record.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, req models.CreateAnalysisRequest) (*ent.Analysis, error) {
	created, err := s.client.Analysis.Create().
		SetID(req.AnalysisID).
		SetUserID(req.UserID).
		SetScenario(analysis.Scenario(req.Scenario)).
		SetVerdict(analysis.Verdict(req.Verdict)).
		SetConfidence(req.Confidence).
		SetVerdictReason(req.VerdictReason).
		SetImageSha256(req.ImageSHA256).
		SetPhash(req.PHash).
		SetBlobKey(req.BlobKey).
		SetPreserveExif(req.PreserveEXIF).
		SetProcessingTimeMs(req.ProcessingTimeMs).
		SetResultBlob(req.ResultBlob).
		Save(ctx)
	if ent.IsConstraintError(err) {
		existing, getErr := s.client.Analysis.Get(ctx, req.AnalysisID)
		if getErr != nil {
			return nil, fmt.Errorf("failed to load existing analysis: %w", getErr)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return created, nil
}

// GetAnalysis retrieves an analysis by its identifier.
func (s *AnalysisService) GetAnalysis(ctx context.Context, analysisID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Get(ctx, analysisID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("analysis %s: %w", analysisID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListRecent returns the user's latest analyses, newest first.
func (s *AnalysisService) ListRecent(ctx context.Context, userID int64, limit int) ([]*ent.Analysis, error) {
	items, err := s.client.Analysis.Query().
		Where(analysis.UserIDEQ(userID)).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return items, nil
}
