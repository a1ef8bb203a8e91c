package services

import (
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.AnalyzerService = (*AnalyzerService)(nil)

// AnalyzerService scores citation visibility in answer-engine
// responses. The service itself is stateless; every Evaluate call
// builds and discards its own citation index, so a single instance is
// safe for concurrent use.
type AnalyzerService struct{}

// NewAnalyzerService creates a new analyzer service.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Evaluate analyses responseText against targetSite and returns the
// fixed-field report: target metrics, every competitor's metrics, and
// the best competitor. All scores are rounded to 4 decimal places.
// Empty or citation-free input yields zero-valued metrics.
func (s *AnalyzerService) Evaluate(responseText, targetSite string) domain.CitationReport {
	target := normalizeDomain(targetSite)

	logger.Section("Citation Analysis")
	logger.Debug("Target: %q", target)

	paragraphs := segment(responseText)
	ix := buildIndex(paragraphs)
	logger.Debug("Paragraphs: %d, citations: %d, prose words: %d",
		len(paragraphs), len(ix.citations), ix.totalWords)

	report := domain.CitationReport{
		Target:      target,
		Metrics:     ix.metricsFor(target).Rounded(),
		Competitors: make(map[string]domain.SiteMetrics),
		Citations:   ix.citations,
		TotalWords:  ix.totalWords,
	}

	// Competitors are visited in first-citation order, so a Total Score
	// tie resolves to the earlier-cited site.
	for _, site := range ix.order {
		if site == target {
			continue
		}
		m := ix.metricsFor(site).Rounded()
		report.Competitors[site] = m
		if m.TotalScore > report.Best.Score {
			report.Best = domain.BestCompetitor{Site: site, Score: m.TotalScore}
		}
	}

	logger.Info("Target %q total score: %.4f (%d competitors)",
		target, report.Metrics.TotalScore, len(report.Competitors))
	return report
}

// ExtractDomains returns every normalised domain found in text, in
// order of appearance.
func (s *AnalyzerService) ExtractDomains(text string) []string {
	return extractDomains(text)
}
