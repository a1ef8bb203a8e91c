package domain

import "math"

// Weights for blending the three component metrics into TotalScore.
const (
	PosWeight     = 0.6
	WordWeight    = 0.3
	QualityWeight = 0.1
)

// SiteMetrics holds the four visibility scores for one cited site.
// Pos, Word and CitationQuality are each in [0, 1]; TotalScore is
// their weighted blend, also in [0, 1].
type SiteMetrics struct {
	// Pos is the positional weight: exponential decay over the global
	// citation position, summed across a site's citations and capped at 1.
	Pos float64 `json:"pos"`

	// Word is the share of response prose attributed to the site.
	Word float64 `json:"word"`

	// CitationQuality scores how the site is cited: group size, order
	// within the group, surrounding prose length, solo vs grouped.
	CitationQuality float64 `json:"citation_quality"`

	// TotalScore is 0.6*Pos + 0.3*Word + 0.1*CitationQuality.
	TotalScore float64 `json:"total_score"`
}

// Rounded returns a copy with every field rounded to 4 decimal places,
// the precision all externally visible scores are reported at.
func (m SiteMetrics) Rounded() SiteMetrics {
	return SiteMetrics{
		Pos:             Round4(m.Pos),
		Word:            Round4(m.Word),
		CitationQuality: Round4(m.CitationQuality),
		TotalScore:      Round4(m.TotalScore),
	}
}

// IsZero reports whether all four scores are zero, the result for a
// site that is never cited.
func (m SiteMetrics) IsZero() bool {
	return m.Pos == 0 && m.Word == 0 && m.CitationQuality == 0 && m.TotalScore == 0
}

// Round4 rounds v to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// BestCompetitor identifies the non-target site with the highest
// TotalScore. Site is empty when the response cites no competitors.
type BestCompetitor struct {
	Site  string  `json:"site"`
	Score float64 `json:"score"`
}

// CitationReport is the fixed-field result of one analysis run.
// Every field is always present; absence of citations yields zero-valued
// metrics and an empty competitor map rather than an error.
type CitationReport struct {
	// Target is the normalised target site the analysis scored against.
	Target string `json:"target"`

	// Metrics holds the target site's scores, rounded to 4 decimals.
	Metrics SiteMetrics `json:"metrics"`

	// Competitors maps every other cited site to its scores.
	Competitors map[string]SiteMetrics `json:"competitors"`

	// Best identifies the strongest competitor. Ties are broken in
	// favour of the earlier-cited site.
	Best BestCompetitor `json:"best_competitor"`

	// Citations lists every citation in appearance order, for callers
	// that need per-citation detail.
	Citations []Citation `json:"citations,omitempty"`

	// TotalWords is the prose word count across all paragraphs.
	TotalWords int `json:"total_words"`
}

// Scores returns the four target scalars, the shape external callers
// persist keyed by content hash.
func (r CitationReport) Scores() (pos, word, quality, total float64) {
	return r.Metrics.Pos, r.Metrics.Word, r.Metrics.CitationQuality, r.Metrics.TotalScore
}
