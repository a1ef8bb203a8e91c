package tui

import "errors"

// ErrMissingAuditService is returned when the audit service is not provided.
var ErrMissingAuditService = errors.New("tui: audit service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
