package services

import (
	"regexp"
	"strings"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// Pre-compiled patterns shared by the text pipeline.
var (
	// tokenPattern matches a maximal run of Unicode letters or digits.
	// Punctuation and whitespace act as separators.
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

	// wordPattern matches letters-only runs (Latin and Cyrillic), the
	// "word-like" tokens the segmenter and indexer count.
	wordPattern = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ]+`)
)

// tokenize splits text into lowercase tokens. Deterministic for
// identical input; no side effects.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// countWords returns the number of word-like tokens in s.
func countWords(s string) int {
	return len(wordPattern.FindAllString(s, -1))
}

// generateNGrams expands tokens into n-grams for every n in the range.
// Unigrams are emitted unchanged; larger n joins each contiguous window
// with single spaces.
func generateNGrams(tokens []string, ngrams domain.NGramRange) []string {
	var out []string
	for n := ngrams.Lo; n <= ngrams.Hi; n++ {
		if n == 1 {
			out = append(out, tokens...)
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// removeStopwords filters tokens present in the set. An empty or nil
// set is a no-op.
func removeStopwords(tokens []string, stopwords domain.StopwordSet) []string {
	if len(stopwords) == 0 {
		return tokens
	}
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stopwords.Contains(tok) {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}

// prepareTokens runs the full preprocessing chain: tokenize, filter
// stopwords on the unigram stream, then expand to n-grams.
func prepareTokens(text string, stopwords domain.StopwordSet, ngrams domain.NGramRange) []string {
	return generateNGrams(removeStopwords(tokenize(text), stopwords), ngrams)
}
