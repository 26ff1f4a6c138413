package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external upload service that stores resumes, profile
// pictures and company logos. The service is opaque: one POST, one answer,
// no retries.
type Client interface {
	Upload(ctx context.Context, content []byte, publicID string) (Result, error)
}

type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type uploadRequest struct {
	Buffer   string `json:"buffer"`
	PublicID string `json:"public_id,omitempty"`
}

// ErrNotConfigured is returned by the client handed out when no service URL
// is set. Uploads fail fast instead of panicking deep in a handler.
var ErrNotConfigured = errors.New("upload service not configured")

type disabledClient struct{}

func (disabledClient) Upload(context.Context, []byte, string) (Result, error) {
	return Result{}, ErrNotConfigured
}

func NewClient(baseURL string, logger *slog.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		if logger != nil {
			logger.Warn("upload service not configured, file uploads disabled")
		}
		return disabledClient{}
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) Upload(ctx context.Context, content []byte, publicID string) (Result, error) {
	if c == nil || c.client == nil {
		return Result{}, errors.New("nil upload client")
	}
	if len(content) == 0 {
		return Result{}, errors.New("empty upload content")
	}

	endpoint := c.baseURL + "/api/utils/upload"

	body := uploadRequest{
		Buffer:   base64.StdEncoding.EncodeToString(content),
		PublicID: publicID,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("upload failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Error("upload service error",
				slog.String("endpoint", endpoint),
				slog.Int("status", resp.StatusCode),
			)
		}
		return Result{}, err
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, err
	}
	if out.URL == "" || out.PublicID == "" {
		return Result{}, errors.New("upload service returned incomplete result")
	}
	return out, nil
}

var _ Client = (*httpClient)(nil)
