package driving

import "github.com/citelens-labs/citelens-cli/internal/core/domain"

// AnalyzerService scores how well a target site is cited in a response.
// It is a total function over its inputs: empty or citation-free text
// yields zero-valued metrics and an empty competitor map, never an error.
// Each call builds and discards its own state, so implementations are
// safe for concurrent use.
type AnalyzerService interface {
	// Evaluate analyses responseText against targetSite. The target may
	// be a bare domain, a URL with scheme, or include a path; it is
	// normalised before comparison.
	Evaluate(responseText, targetSite string) domain.CitationReport

	// ExtractDomains returns every normalised domain found in text, in
	// order of appearance, including domains glued together without
	// whitespace.
	ExtractDomains(text string) []string
}

// ComparatorService measures lexical similarity between two texts using
// per-call two-document TF-IDF vectors. Like the analyzer it is pure
// and safe for concurrent use.
type ComparatorService interface {
	// Compare reports similarity at unigram and 1-2-gram granularity
	// using the service's configured stopwords.
	Compare(textA, textB string) domain.SimilarityReport

	// Similarity computes a single similarity score with explicit
	// stopwords and n-gram range.
	Similarity(textA, textB string, stopwords domain.StopwordSet, ngrams domain.NGramRange) float64
}
