package cli

import (
	"context"
	"time"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
)

// Shared command test fixtures. Each mock implements just enough of its
// port for the command under test.

var (
	_ driving.AnalyzerService   = (*mockAnalyzer)(nil)
	_ driving.ComparatorService = (*mockComparator)(nil)
	_ driving.AuditService      = (*mockAudit)(nil)
	_ driving.SettingsService   = (*mockSettings)(nil)
	_ driven.ScoreStore         = (*mockStore)(nil)
)

type mockAnalyzer struct {
	report   domain.CitationReport
	lastText string
	calls    int
}

func (m *mockAnalyzer) Evaluate(responseText, targetSite string) domain.CitationReport {
	m.lastText = responseText
	m.calls++
	report := m.report
	report.Target = targetSite
	return report
}

func (m *mockAnalyzer) ExtractDomains(string) []string { return nil }

type mockComparator struct {
	report domain.SimilarityReport
}

func (m *mockComparator) Compare(_, _ string) domain.SimilarityReport { return m.report }

func (m *mockComparator) Similarity(_, _ string, _ domain.StopwordSet, _ domain.NGramRange) float64 {
	return m.report.Unigram
}

type mockAudit struct {
	result  *domain.AuditResult
	err     error
	lastReq domain.AuditRequest
}

func (m *mockAudit) Run(_ context.Context, req domain.AuditRequest) (*domain.AuditResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	result := *m.result
	result.Request = req
	return &result, nil
}

type mockSettings struct {
	settings domain.AppSettings
	values   map[string]string
	setErr   error
}

func (m *mockSettings) Get(key string) string { return m.values[key] }

func (m *mockSettings) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *mockSettings) All() domain.AppSettings { return m.settings }

func (m *mockSettings) Keys() []string { return domain.KnownSettingKeys() }

type mockStore struct {
	records  []domain.ScoreRecord
	listErr  error
	purged   bool
	purgeErr error
}

func (m *mockStore) Get(context.Context, string) (*domain.ScoreRecord, error) {
	return nil, domain.ErrNotFound
}

func (m *mockStore) Put(context.Context, domain.ScoreRecord) error { return nil }

func (m *mockStore) List(_ context.Context, limit int) ([]domain.ScoreRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockStore) Purge(context.Context) error {
	if m.purgeErr != nil {
		return m.purgeErr
	}
	m.purged = true
	return nil
}

func (m *mockStore) Close() error { return nil }

// testReport is a small but fully populated citation report.
func testReport() domain.CitationReport {
	return domain.CitationReport{
		Metrics: domain.SiteMetrics{Pos: 1, Word: 0.375, CitationQuality: 1, TotalScore: 0.8125},
		Competitors: map[string]domain.SiteMetrics{
			"flowers.ru": {Pos: 0.5, Word: 0.625, CitationQuality: 1, TotalScore: 0.5875},
		},
		Best:       domain.BestCompetitor{Site: "flowers.ru", Score: 0.5875},
		TotalWords: 6,
	}
}

func testAuditResult() *domain.AuditResult {
	return &domain.AuditResult{
		ID:         "run-1",
		Answer:     "ответ",
		Report:     testReport(),
		Similarity: domain.SimilarityReport{Unigram: 0.42, UniBigram: 0.21},
		CreatedAt:  time.Now(),
	}
}

// setupTestServices wires mock services into the package-level slots and
// returns a cleanup restoring the previous ones.
func setupTestServices() func() {
	oldAnalyzer := analyzerService
	oldComparator := comparatorService
	oldAudit := auditService
	oldSettings := settingsService
	oldStore := scoreStore

	analyzerService = &mockAnalyzer{report: testReport()}
	comparatorService = &mockComparator{report: domain.SimilarityReport{Unigram: 0.42, UniBigram: 0.21}}
	auditService = &mockAudit{result: testAuditResult()}
	settingsService = &mockSettings{settings: domain.DefaultAppSettings()}
	scoreStore = &mockStore{}

	return func() {
		analyzerService = oldAnalyzer
		comparatorService = oldComparator
		auditService = oldAudit
		settingsService = oldSettings
		scoreStore = oldStore
	}
}
