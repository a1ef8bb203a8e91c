// Package memory provides in-memory store implementations, useful for
// tests and for running with the cache disabled but the audit flow
// unchanged.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
)

// Ensure ScoreStore implements the interface.
var _ driven.ScoreStore = (*ScoreStore)(nil)

// ScoreStore is an in-memory implementation of driven.ScoreStore.
type ScoreStore struct {
	mu      sync.RWMutex
	records map[string]domain.ScoreRecord
}

// NewScoreStore creates a new in-memory score store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		records: make(map[string]domain.ScoreRecord),
	}
}

// Get returns the record for hash, or domain.ErrNotFound.
func (s *ScoreStore) Get(_ context.Context, hash string) (*domain.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[hash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// Put stores a record, replacing any existing record for its hash.
func (s *ScoreStore) Put(_ context.Context, record domain.ScoreRecord) error {
	if record.Hash == "" {
		return domain.ErrInvalidInput
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Hash] = record
	return nil
}

// List returns the most recent records, newest first. A non-positive
// limit returns every record.
func (s *ScoreStore) List(_ context.Context, limit int) ([]domain.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ScoreRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Hash < records[j].Hash
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Purge removes all records.
func (s *ScoreStore) Purge(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.ScoreRecord)
	return nil
}

// Close releases resources.
func (s *ScoreStore) Close() error {
	return nil
}
