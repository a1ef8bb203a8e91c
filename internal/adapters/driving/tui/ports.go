// Package tui provides an interactive terminal user interface for citelens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Audit runs end-to-end audits.
	Audit driving.AuditService

	// Settings provides defaults such as the configured target site.
	// Optional; the form starts empty when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Audit == nil {
		return ErrMissingAuditService
	}
	// Settings is optional
	return nil
}
