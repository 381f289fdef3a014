package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/privacy"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	testdb "github.com/sevrusik/turthsnapbot/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	client := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	srv := NewServer(client, rdb, nil, nil, services.NewAnalysisService(client.Client))
	return srv, srv.Router()
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["service"], "truthsnap/")

	db, ok := body["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", db["status"])

	rd, ok := body["redis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", rd["status"])

	// No worker pool on this pod, so no queue section.
	assert.NotContains(t, body, "queue")
}

func TestHealthDegradedWhenRedisDown(t *testing.T) {
	client := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	srv := NewServer(client, rdb, nil, nil, services.NewAnalysisService(client.Client))
	rec := doRequest(srv.Router(), http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
}

func TestQueueHealthWithoutPool(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/queue/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "worker pool")
}

func TestGetAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	srv := NewServer(client, nil, nil, nil, services.NewAnalysisService(client.Client))
	router := srv.Router()
	ctx := context.Background()

	_, err := client.User.Create().
		SetID(123456).
		SetUsername("tester").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Analysis.Create().
		SetID("ANL-20260824-0a1b2c3d").
		SetUserID(123456).
		SetScenario("adult_blackmail").
		SetVerdict("ai_generated").
		SetConfidence(0.94).
		SetVerdictReason("Strong GAN pattern detected").
		SetImageSha256("deadbeefcafe").
		SetPreserveExif(true).
		SetProcessingTimeMs(21300).
		Save(ctx)
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/api/v1/analyses/ANL-20260824-0a1b2c3d")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ANL-20260824-0a1b2c3d", resp.ID)
	assert.Equal(t, "ai_generated", resp.Verdict)
	assert.Equal(t, "adult_blackmail", resp.Scenario)
	assert.InDelta(t, 0.94, resp.Confidence, 1e-9)
	assert.True(t, resp.PreserveEXIF)
	assert.Equal(t, 21300, resp.ProcessingTimeMs)

	// The owner must only appear as the anonymized handle.
	assert.Equal(t, privacy.AnonymizeUserID(123456), resp.User)
	assert.NotContains(t, rec.Body.String(), "123456")
}

func TestGetAnalysisNotFound(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/analyses/ANL-20990101-ffffffff")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis not found")
}
