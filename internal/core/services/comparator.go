package services

import (
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// Ensure ComparatorService implements the interface.
var _ driving.ComparatorService = (*ComparatorService)(nil)

// ComparatorService measures lexical similarity between two texts with
// per-call TF-IDF vectors. Stateless apart from the configured
// stopword set; safe for concurrent use.
type ComparatorService struct {
	stopwords domain.StopwordSet
}

// NewComparatorService creates a comparator using the given stopwords.
// A nil set disables stopword filtering.
func NewComparatorService(stopwords domain.StopwordSet) *ComparatorService {
	return &ComparatorService{stopwords: stopwords}
}

// Compare reports similarity at two granularities: unigrams for plain
// lexical overlap, and 1-2-grams to add phrase-level overlap.
func (s *ComparatorService) Compare(textA, textB string) domain.SimilarityReport {
	logger.Section("Text Comparison")

	report := domain.SimilarityReport{
		Unigram:   tfidfCosineSimilarity(textA, textB, s.stopwords, domain.Unigrams),
		UniBigram: tfidfCosineSimilarity(textA, textB, s.stopwords, domain.UniBigrams),
	}
	logger.Debug("%s", report)
	return report
}

// Similarity computes one similarity score with explicit stopwords and
// n-gram range.
func (s *ComparatorService) Similarity(textA, textB string, stopwords domain.StopwordSet, ngrams domain.NGramRange) float64 {
	return tfidfCosineSimilarity(textA, textB, stopwords, ngrams)
}
