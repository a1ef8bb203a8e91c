package driven

import (
	"context"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// ScoreStore persists computed citation scores keyed by the SHA-256
// hash of the response text they were computed from. The core never
// caches internally; this port is the only place scores outlive a call.
type ScoreStore interface {
	// Get returns the record for hash, or domain.ErrNotFound.
	Get(ctx context.Context, hash string) (*domain.ScoreRecord, error)

	// Put stores a record, replacing any existing record for its hash.
	Put(ctx context.Context, record domain.ScoreRecord) error

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]domain.ScoreRecord, error)

	// Purge removes all records.
	Purge(ctx context.Context) error

	// Close releases resources.
	Close() error
}
