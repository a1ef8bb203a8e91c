// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for audit runs to function:
//
//   - AnswerEngine: Obtains the raw answer text for a query
//   - PageFetcher: Retrieves and strips a target web page
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Summarisation and query suggestion. Without it, long
//     pages are compared unsummarised and queries must be explicit.
//   - ScoreStore: Content-hash keyed score caching. Without it, every
//     audit recomputes from scratch.
//
// The citation analyzer and similarity comparator themselves need no
// ports at all; they are pure functions over their inputs.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
