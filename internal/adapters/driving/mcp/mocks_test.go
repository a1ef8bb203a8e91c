package mcp

import (
	"context"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// mockAnalyzerService is a mock implementation of driving.AnalyzerService.
type mockAnalyzerService struct {
	report  domain.CitationReport
	domains []string
}

func (m *mockAnalyzerService) Evaluate(_, targetSite string) domain.CitationReport {
	report := m.report
	report.Target = targetSite
	return report
}

func (m *mockAnalyzerService) ExtractDomains(_ string) []string {
	return m.domains
}

// mockComparatorService is a mock implementation of driving.ComparatorService.
type mockComparatorService struct {
	report domain.SimilarityReport
}

func (m *mockComparatorService) Compare(_, _ string) domain.SimilarityReport {
	return m.report
}

func (m *mockComparatorService) Similarity(_, _ string, _ domain.StopwordSet, _ domain.NGramRange) float64 {
	return m.report.Unigram
}

// mockAuditService is a mock implementation of driving.AuditService.
type mockAuditService struct {
	result  *domain.AuditResult
	err     error
	lastReq domain.AuditRequest
}

func (m *mockAuditService) Run(_ context.Context, req domain.AuditRequest) (*domain.AuditResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	result := *m.result
	result.Request = req
	return &result, nil
}

// mockScoreStore is a mock implementation of driven.ScoreStore.
type mockScoreStore struct {
	records []domain.ScoreRecord
	record  *domain.ScoreRecord
	getErr  error
	listErr error
}

func (m *mockScoreStore) Get(_ context.Context, _ string) (*domain.ScoreRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.record, nil
}

func (m *mockScoreStore) Put(_ context.Context, _ domain.ScoreRecord) error {
	return nil
}

func (m *mockScoreStore) List(_ context.Context, _ int) ([]domain.ScoreRecord, error) {
	return m.records, m.listErr
}

func (m *mockScoreStore) Purge(context.Context) error { return nil }

func (m *mockScoreStore) Close() error { return nil }

// newTestPorts returns ports with working analyzer and comparator mocks.
func newTestPorts() *Ports {
	return &Ports{
		Analyzer: &mockAnalyzerService{
			report: domain.CitationReport{
				Metrics: domain.SiteMetrics{Pos: 1, Word: 0.375, CitationQuality: 1, TotalScore: 0.8125},
				Competitors: map[string]domain.SiteMetrics{
					"flowers.ru": {Pos: 0.5, Word: 0.625, CitationQuality: 1, TotalScore: 0.5875},
				},
				Best:       domain.BestCompetitor{Site: "flowers.ru", Score: 0.5875},
				TotalWords: 6,
			},
		},
		Comparator: &mockComparatorService{
			report: domain.SimilarityReport{Unigram: 0.42, UniBigram: 0.21},
		},
	}
}
