package driven

import (
	"context"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// PageFetcher retrieves a web page and reduces it to plain text.
// Implementations own transport concerns: HTTP, rate limiting, HTML
// stripping. The core only ever sees the resulting text.
type PageFetcher interface {
	// Fetch downloads the page at url and returns its stripped text.
	Fetch(ctx context.Context, url string) (*domain.Page, error)

	// Close releases resources.
	Close() error
}
