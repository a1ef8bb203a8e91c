package services

import (
	"math"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// Citation quality scoring parameters.
const (
	// groupPosBonusBase and groupPosBonusStep reward early placement
	// within a citation group: max(0, 0.3 - 0.1*index).
	groupPosBonusBase = 0.3
	groupPosBonusStep = 0.1

	// longWindowBonus applies when the citing paragraph exceeds
	// longWindowWords prose words.
	longWindowBonus = 0.2
	longWindowWords = 20

	// Solo/group factors: mixed solo and grouped citations score full,
	// solo-only slightly below, grouped-only lowest.
	mixedCitationFactor = 1.0
	soloOnlyFactor      = 0.9
	groupOnlyFactor     = 0.7

	// uniqueBonus applies when the site is the only one cited in the
	// entire response, with exactly one citation.
	uniqueBonus = 0.1
)

// pos computes the positional weight for a site: each citation
// contributes 10 * 0.5^position, summed, normalised by 10 and capped
// at 1. A citation at global position 0 is worth the full weight;
// every later position halves the contribution.
func (ix *citationIndex) pos(site string) float64 {
	citations := ix.byDomain[site]
	if len(citations) == 0 {
		return 0
	}

	raw := 0.0
	for _, c := range citations {
		raw += 10 * math.Pow(0.5, float64(c.Position))
	}
	return math.Min(raw/10, 1.0)
}

// wordShare computes the share of response prose attributed to a site.
// Each paragraph's word budget is split proportionally among its
// citation slots; the site collects one share per mention.
func (ix *citationIndex) wordShare(site string) float64 {
	if ix.totalWords == 0 {
		return 0
	}
	citations := ix.byDomain[site]
	if len(citations) == 0 {
		return 0
	}

	mentions := make(map[int]int)
	for _, c := range citations {
		mentions[c.ParagraphIndex]++
	}

	attributed := 0.0
	for paraIdx, count := range mentions {
		if paraIdx >= len(ix.paragraphs) {
			continue
		}
		para := ix.paragraphs[paraIdx]
		slots := len(para.Citations)
		if slots == 0 {
			continue
		}
		attributed += float64(para.WordCount) * float64(count) / float64(slots)
	}

	return math.Min(attributed/float64(ix.totalWords), 1.0)
}

// citationQuality scores how a site is cited: inverse group size plus
// bonuses for early in-group placement and long prose windows, averaged
// over the site's citations, scaled by the solo/group factor, plus the
// uniqueness bonus. Clamped to [0, 1].
func (ix *citationIndex) citationQuality(site string) float64 {
	citations := ix.byDomain[site]
	if len(citations) == 0 {
		return 0
	}

	hasSolo := false
	hasGroup := false
	for _, c := range citations {
		if c.GroupSize == 1 {
			hasSolo = true
		}
		if c.GroupSize > 1 {
			hasGroup = true
		}
	}

	factor := groupOnlyFactor
	switch {
	case hasSolo && hasGroup:
		factor = mixedCitationFactor
	case hasSolo:
		factor = soloOnlyFactor
	}

	bonus := 0.0
	if len(ix.byDomain) == 1 && len(ix.citations) == 1 {
		bonus = uniqueBonus
	}

	sum := 0.0
	for _, c := range citations {
		base := 1.0 / float64(c.GroupSize)
		posBonus := math.Max(0, groupPosBonusBase-groupPosBonusStep*float64(c.IndexInGroup))
		lengthBonus := 0.0
		if c.WindowWords > longWindowWords {
			lengthBonus = longWindowBonus
		}
		sum += base + posBonus + lengthBonus
	}
	avg := sum / float64(len(citations))

	return math.Min(avg*factor+bonus, 1.0)
}

// metricsFor computes all four scores for a site.
func (ix *citationIndex) metricsFor(site string) domain.SiteMetrics {
	m := domain.SiteMetrics{
		Pos:             ix.pos(site),
		Word:            ix.wordShare(site),
		CitationQuality: ix.citationQuality(site),
	}
	m.TotalScore = m.Pos*domain.PosWeight + m.Word*domain.WordWeight + m.CitationQuality*domain.QualityWeight
	return m
}
