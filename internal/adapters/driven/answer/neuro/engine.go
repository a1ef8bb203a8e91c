package neuro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.AnswerEngine = (*Engine)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the answer engine client.
type Config struct {
	// BaseURL is the bridge API base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Engine queries an answer-engine bridge over HTTP.
type Engine struct {
	client  *http.Client
	baseURL string
}

// askRequest is the /answer request format.
type askRequest struct {
	Query string `json:"query"`
}

// askResponse is the /answer response format.
type askResponse struct {
	Answer string `json:"answer"`
}

// New creates a new answer engine client.
func New(cfg Config) *Engine {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Engine{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Ask returns the full answer text for the query.
func (e *Engine) Ask(ctx context.Context, query string) (string, error) {
	jsonBody, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.baseURL+"/answer",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("answer engine: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("answer engine error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("answer engine error (status %d): %s", resp.StatusCode, string(body))
	}

	var askResp askResponse
	if err := json.NewDecoder(resp.Body).Decode(&askResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	answer := strings.TrimSpace(askResp.Answer)
	if answer == "" {
		return "", fmt.Errorf("answer engine: %w: empty answer", domain.ErrEngineUnavailable)
	}
	return answer, nil
}

// Ping validates the bridge is reachable via its health endpoint.
func (e *Engine) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("answer engine: failed to create ping request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("answer engine: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("answer engine: API returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (e *Engine) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
