package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 5
	DefaultTimeout           = 30 * time.Second

	// maxBodyBytes caps how much of a page is read.
	maxBodyBytes = 10 << 20

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds configuration for the web fetcher.
type Config struct {
	// RequestsPerSecond is the sustained fetch rate (default: 2).
	RequestsPerSecond float64

	// Burst is the maximum burst size (default: 5).
	Burst int

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// UserAgent overrides the default browser user agent.
	UserAgent string
}

// Fetcher downloads pages over HTTP behind a token-bucket rate limiter
// and strips them to plain text.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a new web fetcher.
func New(cfg Config) *Fetcher {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		userAgent: cfg.UserAgent,
	}
}

// Fetch downloads the page at url and returns its stripped text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("fetch %s: %w", url, domain.ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("fetch %s: %w", url, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	raw := string(body)
	page := &domain.Page{
		URL:       url,
		Title:     extractTitle(raw),
		Text:      stripHTML(raw),
		FetchedAt: time.Now(),
	}
	logger.Debug("Fetched %s: %d bytes, %d text characters", url, len(body), len(page.Text))
	return page, nil
}

// Close releases resources.
func (f *Fetcher) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
