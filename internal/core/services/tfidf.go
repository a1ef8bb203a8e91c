package services

import (
	"math"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// vocabulary assigns sequential integer ids to terms in first-seen
// order. A vocabulary is scoped to the two documents of one comparison
// call; it is never trained on an external corpus.
type vocabulary map[string]int

func buildVocabulary(docs ...[]string) vocabulary {
	vocab := make(vocabulary)
	for _, doc := range docs {
		for _, tok := range doc {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	return vocab
}

// computeIDF returns smoothed inverse document frequencies aligned with
// vocabulary ids: ln((N+1)/(df+1)) + 1. Smoothing keeps every term's
// weight finite and non-zero, including terms present in both documents.
func computeIDF(vocab vocabulary, docs ...[]string) []float64 {
	df := make([]int, len(vocab))
	for _, doc := range docs {
		seen := make(map[int]bool, len(doc))
		for _, tok := range doc {
			idx := vocab[tok]
			if !seen[idx] {
				df[idx]++
				seen[idx] = true
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((n+1)/(float64(d)+1)) + 1.0
	}
	return idf
}

// tfidfVector builds an L2-normalised sparse vector for doc: raw term
// count times IDF per term.
func tfidfVector(doc []string, vocab vocabulary, idf []float64) map[int]float64 {
	vec := make(map[int]float64)
	for _, tok := range doc {
		if idx, ok := vocab[tok]; ok {
			vec[idx] += idf[idx]
		}
	}
	return l2Normalize(vec)
}

// l2Normalize scales vec to unit Euclidean norm in place. A zero
// vector divides by a guarded denominator of 1 and stays zero rather
// than faulting.
func l2Normalize(vec map[int]float64) map[int]float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1.0
	}
	for i, v := range vec {
		vec[i] = v / norm
	}
	return vec
}

// cosineSimilarity is the dot product of two L2-normalised sparse
// vectors, iterating the smaller vector's non-zero entries.
func cosineSimilarity(a, b map[int]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	dot := 0.0
	for idx, v := range a {
		dot += v * b[idx]
	}
	return dot
}

// tfidfCosineSimilarity treats the two texts as a two-document corpus:
// tokenise, filter stopwords, expand n-grams, build per-call vocabulary
// and IDF, vectorise, and take the cosine.
func tfidfCosineSimilarity(textA, textB string, stopwords domain.StopwordSet, ngrams domain.NGramRange) float64 {
	docA := prepareTokens(textA, stopwords, ngrams)
	docB := prepareTokens(textB, stopwords, ngrams)

	vocab := buildVocabulary(docA, docB)
	idf := computeIDF(vocab, docA, docB)

	return cosineSimilarity(
		tfidfVector(docA, vocab, idf),
		tfidfVector(docB, vocab, idf),
	)
}
