// Package fraudlens is the HTTP client for the remote image-forensics
// service that scores uploads for AI generation and manipulation.
package fraudlens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// Sentinel errors mapping to the two analysis failure kinds callers
// handle differently only in wording; both refund quota and persist
// no analysis record.
var (
	ErrTimeout = errors.New("analysis API timed out")
	ErrFailure = errors.New("analysis API request failed")
)

// DetailLevel selects how much work the API performs.
type DetailLevel string

const (
	DetailBasic    DetailLevel = "basic"
	DetailDetailed DetailLevel = "detailed"
)

// DetailFor picks the analysis depth for an upload. Deep metadata
// forensics only pay off when the original bytes survived transport;
// recompressed images carry no EXIF to examine.
func DetailFor(preserveEXIF bool) DetailLevel {
	if preserveEXIF {
		return DetailDetailed
	}
	return DetailBasic
}

// VerifyRequest is one image verification call.
type VerifyRequest struct {
	Image        []byte
	Filename     string
	DetailLevel  DetailLevel
	PreserveEXIF bool
}

// Client talks to the forensics API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client with the configured hard timeout. The
// timeout covers the whole call including the image upload.
func NewClient(cfg config.FraudLensConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Verify submits an image and returns the detector bundle.
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (*models.DetectionResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := w.WriteField("detail_level", string(req.DetailLevel)); err != nil {
		return nil, fmt.Errorf("failed to write detail_level field: %w", err)
	}
	if err := w.WriteField("preserve_exif", fmt.Sprintf("%t", req.PreserveEXIF)); err != nil {
		return nil, fmt.Errorf("failed to write preserve_exif field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/verify", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrFailure, resp.StatusCode, string(body))
	}

	var result models.DetectionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrFailure, err)
	}

	return &result, nil
}

// RenderPDF asks the service to render a forensic report for a
// persisted analysis record and returns the raw PDF bytes.
func (c *Client) RenderPDF(ctx context.Context, record any) ([]byte, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/reports/pdf", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrFailure, resp.StatusCode, string(msg))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFailure, err)
	}
	return pdf, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
