package driving

import (
	"context"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// AuditService orchestrates a full audit run: fetch the target page,
// obtain an answer from the engine, analyse citations, compare
// similarity, and cache the scores.
type AuditService interface {
	// Run executes one audit. Engine and fetcher failures surface as
	// errors; the analysis itself never fails.
	Run(ctx context.Context, req domain.AuditRequest) (*domain.AuditResult, error)
}

// SettingsService manages validated application configuration.
type SettingsService interface {
	// Get returns the value stored for key, or empty string.
	Get(key string) string

	// Set validates and stores a value for a known key.
	Set(key, value string) error

	// All returns the current settings with defaults applied.
	All() domain.AppSettings

	// Keys lists every recognised settings key.
	Keys() []string
}
