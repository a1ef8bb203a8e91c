package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
)

// mockFetcher returns a fixed page and records the requested URL.
type mockFetcher struct {
	page    *domain.Page
	err     error
	lastURL string
	fetched int
}

var _ driven.PageFetcher = (*mockFetcher)(nil)

func (m *mockFetcher) Fetch(_ context.Context, url string) (*domain.Page, error) {
	m.lastURL = url
	m.fetched++
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockFetcher) Close() error { return nil }

// mockEngine returns a fixed answer and records the asked query.
type mockEngine struct {
	answer    string
	err       error
	lastQuery string
}

var _ driven.AnswerEngine = (*mockEngine)(nil)

func (m *mockEngine) Ask(_ context.Context, query string) (string, error) {
	m.lastQuery = query
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockEngine) Ping(context.Context) error { return nil }
func (m *mockEngine) Close() error               { return nil }

// mockLLM serves canned summaries and query suggestions.
type mockLLM struct {
	summary      string
	summariseErr error
	summarised   int
	queries      []string
	suggestErr   error
	suggested    int
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Summarise(_ context.Context, _ string, _ int) (string, error) {
	m.summarised++
	return m.summary, m.summariseErr
}

func (m *mockLLM) SuggestQueries(_ context.Context, _ string) ([]string, error) {
	m.suggested++
	return m.queries, m.suggestErr
}

func (m *mockLLM) ModelName() string          { return "mock-model" }
func (m *mockLLM) Ping(context.Context) error { return nil }
func (m *mockLLM) Close() error               { return nil }

// mockScoreStore is an in-memory ScoreStore.
type mockScoreStore struct {
	records map[string]domain.ScoreRecord
	getErr  error
	putErr  error
	puts    int
}

var _ driven.ScoreStore = (*mockScoreStore)(nil)

func newMockScoreStore() *mockScoreStore {
	return &mockScoreStore{records: make(map[string]domain.ScoreRecord)}
}

func (m *mockScoreStore) Get(_ context.Context, hash string) (*domain.ScoreRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.records[hash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (m *mockScoreStore) Put(_ context.Context, record domain.ScoreRecord) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.records[record.Hash] = record
	return nil
}

func (m *mockScoreStore) List(_ context.Context, _ int) ([]domain.ScoreRecord, error) {
	return nil, nil
}

func (m *mockScoreStore) Purge(context.Context) error { return nil }
func (m *mockScoreStore) Close() error                { return nil }

const auditAnswer = "Лучшие советы по растениям есть здесь.\nbotanichka.ru\n\nЕсть и другой сайт с советами.\nflowers.ru"

func newTestAuditService(fetcher driven.PageFetcher, engine driven.AnswerEngine) *AuditService {
	return NewAuditService(
		fetcher,
		engine,
		NewAnalyzerService(),
		NewComparatorService(domain.RussianStopwords()),
	)
}

func TestAuditRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full run with explicit query", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{URL: "https://botanichka.ru", Text: "Советы по растениям и уходу за ними."}}
		engine := &mockEngine{answer: auditAnswer}
		svc := newTestAuditService(fetcher, engine)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "советы по растениям"})
		require.NoError(t, err)

		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "botanichka.ru", result.Request.TargetSite)
		assert.Equal(t, "советы по растениям", engine.lastQuery)
		assert.Equal(t, auditAnswer, result.Answer)
		assert.False(t, result.FromCache)
		assert.False(t, result.CreatedAt.IsZero())

		assert.Equal(t, "botanichka.ru", result.Report.Target)
		assert.False(t, result.Report.Metrics.IsZero())
		assert.Contains(t, result.Report.Competitors, "flowers.ru")
		assert.Greater(t, result.Similarity.Unigram, 0.0)
	})

	t.Run("bare domain fetched over https", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		engine := &mockEngine{answer: auditAnswer}
		svc := newTestAuditService(fetcher, engine)

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, "https://botanichka.ru", fetcher.lastURL)
	})

	t.Run("explicit scheme preserved and target normalised", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		engine := &mockEngine{answer: auditAnswer}
		svc := newTestAuditService(fetcher, engine)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "http://www.botanichka.ru/blog", Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, "http://www.botanichka.ru/blog", fetcher.lastURL)
		assert.Equal(t, "botanichka.ru", result.Request.TargetSite)
	})

	t.Run("empty target rejected", func(t *testing.T) {
		svc := newTestAuditService(&mockFetcher{}, &mockEngine{})

		_, err := svc.Run(ctx, domain.AuditRequest{Query: "q"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing fetcher", func(t *testing.T) {
		svc := newTestAuditService(nil, &mockEngine{})
		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		assert.ErrorIs(t, err, domain.ErrFetcherUnavailable)
	})

	t.Run("missing engine", func(t *testing.T) {
		svc := newTestAuditService(&mockFetcher{}, nil)
		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
	})

	t.Run("fetch failure surfaces", func(t *testing.T) {
		fetcher := &mockFetcher{err: errors.New("connection refused")}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch target page")
	})

	t.Run("engine failure surfaces", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		engine := &mockEngine{err: domain.ErrEngineUnavailable}
		svc := newTestAuditService(fetcher, engine)

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
	})
}

func TestAuditRunQuerySuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("llm suggestion used when query omitted", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст о растениях"}}
		engine := &mockEngine{answer: auditAnswer}
		svc := newTestAuditService(fetcher, engine)
		svc.SetLLMService(&mockLLM{queries: []string{"как ухаживать за растениями", "другой вопрос"}})

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru"})
		require.NoError(t, err)
		assert.Equal(t, "как ухаживать за растениями", engine.lastQuery)
		assert.Equal(t, "как ухаживать за растениями", result.Request.Query)
	})

	t.Run("no query and no llm", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru"})
		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	})

	t.Run("llm returning no suggestions", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		svc.SetLLMService(&mockLLM{})

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuditRunScoreCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and stores", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		store := newMockScoreStore()
		svc.SetScoreStore(store)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.False(t, result.FromCache)
		assert.Equal(t, 1, store.puts)

		rec, ok := store.records[domain.HashContent(auditAnswer)]
		require.True(t, ok)
		assert.Equal(t, "botanichka.ru", rec.Target)
		assert.Equal(t, result.Report.Metrics, rec.Metrics)
	})

	t.Run("hit returns cached target metrics", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		store := newMockScoreStore()
		cached := domain.ScoreRecord{
			Hash:      domain.HashContent(auditAnswer),
			Target:    "botanichka.ru",
			Metrics:   domain.SiteMetrics{Pos: 1, Word: 0.5, CitationQuality: 1, TotalScore: 0.85},
			CreatedAt: time.Now(),
		}
		store.records[cached.Hash] = cached
		svc.SetScoreStore(store)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.True(t, result.FromCache)
		assert.Equal(t, cached.Metrics, result.Report.Metrics)
		assert.Empty(t, result.Report.Competitors)
		assert.Zero(t, store.puts)
	})

	t.Run("hit for a different target recomputes", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		store := newMockScoreStore()
		store.records[domain.HashContent(auditAnswer)] = domain.ScoreRecord{
			Hash:   domain.HashContent(auditAnswer),
			Target: "flowers.ru",
		}
		svc.SetScoreStore(store)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.False(t, result.FromCache)
		assert.Equal(t, 1, store.puts)
	})

	t.Run("skip cache bypasses lookup but still stores", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		store := newMockScoreStore()
		store.records[domain.HashContent(auditAnswer)] = domain.ScoreRecord{
			Hash:   domain.HashContent(auditAnswer),
			Target: "botanichka.ru",
		}
		svc.SetScoreStore(store)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q", SkipCache: true})
		require.NoError(t, err)
		assert.False(t, result.FromCache)
		assert.Equal(t, 1, store.puts)
	})

	t.Run("store failures degrade to recomputation", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		store := newMockScoreStore()
		store.getErr = errors.New("disk gone")
		store.putErr = errors.New("disk gone")
		svc.SetScoreStore(store)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.False(t, result.FromCache)
		assert.False(t, result.Report.Metrics.IsZero())
	})
}

func TestAuditRunSummarisation(t *testing.T) {
	ctx := context.Background()

	t.Run("long pages summarised before comparison", func(t *testing.T) {
		longText := strings.Repeat("на этом сайте есть советы по уходу за растениями ", 300)
		fetcher := &mockFetcher{page: &domain.Page{Text: longText}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		llm := &mockLLM{summary: "короткое описание растений"}
		svc.SetLLMService(llm)

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, 1, llm.summarised)
	})

	t.Run("short pages compared as is", func(t *testing.T) {
		fetcher := &mockFetcher{page: &domain.Page{Text: "короткий текст"}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		llm := &mockLLM{summary: "не должно понадобиться"}
		svc.SetLLMService(llm)

		_, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.Zero(t, llm.summarised)
	})

	t.Run("summarise failure falls back to full text", func(t *testing.T) {
		longText := strings.Repeat("на этом сайте есть советы по уходу за растениями ", 300)
		fetcher := &mockFetcher{page: &domain.Page{Text: longText}}
		svc := newTestAuditService(fetcher, &mockEngine{answer: auditAnswer})
		llm := &mockLLM{summariseErr: errors.New("model offline")}
		svc.SetLLMService(llm)

		result, err := svc.Run(ctx, domain.AuditRequest{TargetSite: "botanichka.ru", Query: "q"})
		require.NoError(t, err)
		assert.Greater(t, result.Similarity.Unigram, 0.0)
	})
}
