package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

func newAnalysisRequest(userID int64) models.CreateAnalysisRequest {
	sum := models.SHA256Hex([]byte("test image"))
	return models.CreateAnalysisRequest{
		AnalysisID:       models.AnalysisIDFor(time.Now(), sum),
		UserID:           userID,
		Scenario:         models.ScenarioGeneral,
		Verdict:          models.VerdictReal,
		Confidence:       0.91,
		VerdictReason:    "No significant generation or manipulation signals",
		ImageSHA256:      sum,
		PHash:            "a1b2c3d4e5f60718",
		ProcessingTimeMs: 812,
		ResultBlob:       map[string]any{"ai_detection_score": 0.1},
	}
}

func TestCreateAndGetAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	users := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	_, err := users.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)

	req := newAnalysisRequest(100)
	created, err := svc.CreateAnalysis(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.AnalysisID, created.ID)

	got, err := svc.GetAnalysis(ctx, req.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.UserID)
	assert.InDelta(t, 0.91, got.Confidence, 1e-9)
	assert.Equal(t, req.ImageSHA256, got.ImageSha256)
}

func TestCreateAnalysis_IdempotentOnID(t *testing.T) {
	client := testdb.NewTestClient(t)
	users := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	_, err := users.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)

	req := newAnalysisRequest(100)
	first, err := svc.CreateAnalysis(ctx, req)
	require.NoError(t, err)

	// Same image finishing twice on the same day lands on one record.
	req.Confidence = 0.50
	second, err := svc.CreateAnalysis(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, first.Confidence, second.Confidence, 1e-9)

	count, err := client.Analysis.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnalysisService(client.Client)

	_, err := svc.GetAnalysis(context.Background(), "ANL-20260824-00000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListRecent(t *testing.T) {
	client := testdb.NewTestClient(t)
	users := NewUserService(client.Client, config.QuotaConfig{FreeChecksPerDay: 3})
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	_, err := users.EnsureUser(ctx, 100, "", "")
	require.NoError(t, err)

	for i, content := range []string{"one", "two", "three"} {
		sum := models.SHA256Hex([]byte(content))
		_, err := svc.CreateAnalysis(ctx, models.CreateAnalysisRequest{
			AnalysisID:  models.AnalysisIDFor(time.Now(), sum),
			UserID:      100,
			Scenario:    models.ScenarioGeneral,
			Verdict:     models.VerdictReal,
			Confidence:  0.70 + float64(i)/100,
			ImageSHA256: sum,
		})
		require.NoError(t, err)
	}

	items, err := svc.ListRecent(ctx, 100, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.ListRecent(ctx, 999, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
