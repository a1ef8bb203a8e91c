package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ScoreRecord is one cached analysis result, keyed by the SHA-256 hash
// of the response text it was computed from. Identical responses hash
// to the same key, so repeat audits skip recomputation.
type ScoreRecord struct {
	// Hash is the hex-encoded SHA-256 of the analysed response text.
	Hash string

	// Target is the normalised target site the scores belong to.
	Target string

	// Metrics holds the four cached scores.
	Metrics SiteMetrics

	// CreatedAt is when the record was stored.
	CreatedAt time.Time
}

// HashContent returns the hex-encoded SHA-256 digest of text, the cache
// key for score records.
func HashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
