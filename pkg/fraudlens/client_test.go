package fraudlens

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/config"
)

func newTestClient(t *testing.T, timeout time.Duration, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.FraudLensConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: timeout,
	})
}

func TestVerify(t *testing.T) {
	client := newTestClient(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/verify", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "detailed", r.FormValue("detail_level"))
		assert.Equal(t, "true", r.FormValue("preserve_exif"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "upload.jpg", header.Filename)

		fmt.Fprint(w, `{
			"verdict": "real",
			"confidence": 0.9,
			"verdict_reason": "clean",
			"watermark_detected": false,
			"processing_time_ms": 412,
			"details": {"ai_detection_score": 0.1, "metadata_fraud_score": 12}
		}`)
	})

	result, err := client.Verify(context.Background(), VerifyRequest{
		Image:        []byte{0xFF, 0xD8, 0xFF},
		Filename:     "upload.jpg",
		DetailLevel:  DetailDetailed,
		PreserveEXIF: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "real", result.Verdict)
	assert.InDelta(t, 0.1, result.Details.AIDetectionScore, 1e-9)
	assert.InDelta(t, 12, result.Details.MetadataFraudScore, 1e-9)
}

func TestDetailFor(t *testing.T) {
	assert.Equal(t, DetailBasic, DetailFor(false))
	assert.Equal(t, DetailDetailed, DetailFor(true))
}

func TestVerify_DetailLevelFollowsEXIFPreservation(t *testing.T) {
	cases := []struct {
		name         string
		preserveEXIF bool
		wantDetail   string
	}{
		{"recompressed photo gets basic", false, "basic"},
		{"original document gets detailed", true, "detailed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, tc.wantDetail, r.FormValue("detail_level"))
				assert.Equal(t, fmt.Sprintf("%t", tc.preserveEXIF), r.FormValue("preserve_exif"))
				fmt.Fprint(w, `{"verdict":"real","confidence":0.9,"details":{}}`)
			})

			_, err := client.Verify(context.Background(), VerifyRequest{
				Image:        []byte{0xFF, 0xD8, 0xFF},
				Filename:     "upload.jpg",
				DetailLevel:  DetailFor(tc.preserveEXIF),
				PreserveEXIF: tc.preserveEXIF,
			})
			require.NoError(t, err)
		})
	}
}

func TestVerify_Non200IsFailure(t *testing.T) {
	client := newTestClient(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	_, err := client.Verify(context.Background(), VerifyRequest{
		Image: []byte{1}, Filename: "x.jpg", DetailLevel: DetailBasic,
	})
	require.ErrorIs(t, err, ErrFailure)
	assert.Contains(t, err.Error(), "503")
}

func TestVerify_SlowServerIsTimeout(t *testing.T) {
	client := newTestClient(t, 100*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
		fmt.Fprint(w, `{"verdict":"real","confidence":0.9,"details":{}}`)
	})

	_, err := client.Verify(context.Background(), VerifyRequest{
		Image: []byte{1}, Filename: "x.jpg", DetailLevel: DetailBasic,
	})
	require.ErrorIs(t, err, ErrTimeout)
}

func TestVerify_MalformedJSONIsFailure(t *testing.T) {
	client := newTestClient(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"verdict": "real", "details": `)
	})

	_, err := client.Verify(context.Background(), VerifyRequest{
		Image: []byte{1}, Filename: "x.jpg", DetailLevel: DetailBasic,
	})
	require.ErrorIs(t, err, ErrFailure)
}

func TestRenderPDF(t *testing.T) {
	pdfBytes := []byte("%PDF-1.7 fake")
	client := newTestClient(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/reports/pdf", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write(pdfBytes)
	})

	got, err := client.RenderPDF(context.Background(), map[string]any{
		"analysis_id": "ANL-20260824-ab12cd34",
	})
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, got)
}
