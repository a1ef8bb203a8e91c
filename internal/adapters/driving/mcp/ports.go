package mcp

import (
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer scores citations in response text.
	Analyzer driving.AnalyzerService

	// Comparator measures lexical similarity between texts.
	Comparator driving.ComparatorService

	// Audit runs end-to-end audits. Optional; the audit tool reports
	// itself unavailable when nil.
	Audit driving.AuditService

	// Scores backs the cache resources. Optional.
	Scores driven.ScoreStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	if p.Comparator == nil {
		return ErrMissingComparatorService
	}
	// Audit and Scores are optional
	return nil
}
