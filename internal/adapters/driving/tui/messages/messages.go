// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// AuditRequested is a command to run an audit.
type AuditRequested struct {
	Request domain.AuditRequest
}

// AuditCompleted carries an audit result back to the model.
type AuditCompleted struct {
	Result *domain.AuditResult
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the audit form view.
	ViewForm ViewType = iota
	// ViewReport shows the result of an audit run.
	ViewReport
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewReport:
		return "report"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
