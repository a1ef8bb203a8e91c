package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Citation analysis and
// similarity comparison are total functions and never return errors;
// only the orchestration around them can fail.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineUnavailable indicates the answer engine is not configured.
	// Audit runs cannot obtain a response without one.
	ErrEngineUnavailable = errors.New("answer engine unavailable")

	// ErrFetcherUnavailable indicates the page fetcher is not configured.
	ErrFetcherUnavailable = errors.New("page fetcher unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Features requiring LLM (summarisation, query suggestion) are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrCacheUnavailable indicates the score store is not configured.
	ErrCacheUnavailable = errors.New("score store unavailable")

	// ErrRateLimited indicates an upstream rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
