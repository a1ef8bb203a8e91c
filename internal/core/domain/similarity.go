package domain

import "fmt"

// NGramRange selects the n-gram granularities a comparison runs at.
// Lo and Hi are inclusive: {1, 2} emits unigrams and bigrams.
type NGramRange struct {
	Lo int
	Hi int
}

// Standard granularities used by the comparator.
var (
	// Unigrams measures plain lexical overlap.
	Unigrams = NGramRange{Lo: 1, Hi: 1}

	// UniBigrams adds phrase-level overlap on top of lexical overlap.
	UniBigrams = NGramRange{Lo: 1, Hi: 2}
)

// SimilarityReport is the two-part result of comparing two texts:
// cosine similarity over TF-IDF vectors at two n-gram granularities.
// Both values are in [0, 1].
type SimilarityReport struct {
	// Unigram is the similarity at ngram range (1,1).
	Unigram float64 `json:"unigram"`

	// UniBigram is the similarity at ngram range (1,2).
	UniBigram float64 `json:"uni_bigram"`
}

// String formats both scores to 3 decimal places.
func (r SimilarityReport) String() string {
	return fmt.Sprintf("similarity unigram=%.3f 1-2gram=%.3f", r.Unigram, r.UniBigram)
}

// StopwordSet is a set of tokens excluded before vectorisation.
// A nil or empty set disables filtering.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from the given words.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the token is in the set.
func (s StopwordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// RussianStopwords returns the default stopword set for Russian-language
// responses: prepositions, conjunctions and particles that carry no
// lexical signal.
func RussianStopwords() StopwordSet {
	return NewStopwordSet(
		"и", "в", "во", "на", "но", "а", "что", "как", "за", "к", "с", "со",
		"из", "у", "от", "по", "для", "о", "об", "обо", "до", "при", "без",
		"над", "под", "про", "же", "ли", "либо", "ни", "да", "то", "не",
	)
}
