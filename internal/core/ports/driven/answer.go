package driven

import "context"

// AnswerEngine obtains the rendered textual answer an external
// search/LLM engine produces for a query. The raw text it returns is
// the input to citation analysis.
//
// Implementations may include:
//   - A generative search endpoint (e.g. a Neuro-style answer API)
//   - Any HTTP service returning an answer body for a question
type AnswerEngine interface {
	// Ask returns the full answer text for the query.
	Ask(ctx context.Context, query string) (string, error)

	// Ping validates the engine is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
