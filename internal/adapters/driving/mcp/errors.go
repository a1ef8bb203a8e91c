// Package mcp provides an MCP (Model Context Protocol) server adapter for citelens.
// It enables AI assistants like Claude to run citation analysis and audits.
package mcp

import "errors"

// Required port errors returned by Ports.Validate.
var (
	// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
	ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")

	// ErrMissingComparatorService is returned when the comparator service is not provided.
	ErrMissingComparatorService = errors.New("mcp: comparator service is required")

	// ErrAuditUnavailable is returned by the audit tool when no audit
	// service was configured.
	ErrAuditUnavailable = errors.New("mcp: audit service not configured")
)
