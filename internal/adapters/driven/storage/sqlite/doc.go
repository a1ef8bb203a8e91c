// Package sqlite provides a ScoreStore backed by an embedded SQLite
// database. Scores are keyed by the SHA-256 hash of the analysed
// response text, so identical answers are never re-scored.
package sqlite
