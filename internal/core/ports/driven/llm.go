package driven

import "context"

// LLMService provides language model operations around an audit run.
// This is an optional service - when nil, audits compare unsummarised
// page text and require an explicit query.
type LLMService interface {
	// Summarise condenses content to roughly maxLength characters.
	Summarise(ctx context.Context, content string, maxLength int) (string, error)

	// SuggestQueries proposes search queries for the given subject text.
	SuggestQueries(ctx context.Context, subject string) ([]string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
