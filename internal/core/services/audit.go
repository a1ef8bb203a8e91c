package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// Ensure AuditService implements the interface.
var _ driving.AuditService = (*AuditService)(nil)

// Pages longer than summariseAbove characters are summarised before
// similarity comparison, when an LLM is available.
const (
	summariseAbove  = 4000
	summaryMaxChars = 500
)

// AuditService runs end-to-end audits: fetch the target page, obtain
// an engine answer, analyse citations, compare similarity, cache
// scores by content hash.
type AuditService struct {
	fetcher    driven.PageFetcher
	engine     driven.AnswerEngine
	llm        driven.LLMService // optional
	scores     driven.ScoreStore // optional
	analyzer   *AnalyzerService
	comparator *ComparatorService
}

// NewAuditService creates a new audit service. The LLM service and
// score store are optional and set separately.
func NewAuditService(
	fetcher driven.PageFetcher,
	engine driven.AnswerEngine,
	analyzer *AnalyzerService,
	comparator *ComparatorService,
) *AuditService {
	return &AuditService{
		fetcher:    fetcher,
		engine:     engine,
		analyzer:   analyzer,
		comparator: comparator,
	}
}

// SetLLMService sets the optional LLM service for summarisation and
// query suggestion.
func (s *AuditService) SetLLMService(llm driven.LLMService) {
	s.llm = llm
}

// SetScoreStore sets the optional score cache.
func (s *AuditService) SetScoreStore(store driven.ScoreStore) {
	s.scores = store
}

// Run executes one audit.
func (s *AuditService) Run(ctx context.Context, req domain.AuditRequest) (*domain.AuditResult, error) {
	logger.Section("Audit Run")

	if s.fetcher == nil {
		return nil, domain.ErrFetcherUnavailable
	}
	if s.engine == nil {
		return nil, domain.ErrEngineUnavailable
	}

	pageURL := ensureScheme(strings.TrimSpace(req.TargetSite))
	target := normalizeDomain(req.TargetSite)
	if target == "" {
		return nil, fmt.Errorf("%w: empty target site", domain.ErrInvalidInput)
	}
	req.TargetSite = target
	logger.Debug("Target: %q, page URL: %q", target, pageURL)

	page, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch target page: %w", err)
	}
	logger.Debug("Page text: %d characters", len(page.Text))

	query, err := s.resolveQuery(ctx, req.Query, page)
	if err != nil {
		return nil, err
	}
	req.Query = query
	logger.Info("Query: %q", query)

	answer, err := s.engine.Ask(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query answer engine: %w", err)
	}
	logger.Debug("Answer: %d characters", len(answer))

	report, fromCache := s.scoreAnswer(ctx, answer, target, req.SkipCache)
	similarity := s.comparator.Compare(s.comparisonText(ctx, page.Text), answer)

	return &domain.AuditResult{
		ID:         uuid.New().String(),
		Request:    req,
		Answer:     answer,
		Report:     report,
		Similarity: similarity,
		FromCache:  fromCache,
		CreatedAt:  time.Now(),
	}, nil
}

// resolveQuery returns the explicit query, or asks the LLM to suggest
// one from the page content.
func (s *AuditService) resolveQuery(ctx context.Context, query string, page *domain.Page) (string, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		return query, nil
	}
	if s.llm == nil {
		return "", fmt.Errorf("no query given and %w", domain.ErrLLMUnavailable)
	}

	logger.Debug("No query given, asking LLM for suggestions")
	queries, err := s.llm.SuggestQueries(ctx, page.Text)
	if err != nil {
		return "", fmt.Errorf("suggest queries: %w", err)
	}
	if len(queries) == 0 {
		return "", fmt.Errorf("%w: LLM returned no query suggestions", domain.ErrInvalidInput)
	}
	return queries[0], nil
}

// scoreAnswer returns the citation report for the answer, consulting
// the score cache first. A cache hit carries only the target metrics;
// competitor detail is recomputed on demand. Cache failures degrade to
// recomputation, never to a failed audit.
func (s *AuditService) scoreAnswer(ctx context.Context, answer, target string, skipCache bool) (domain.CitationReport, bool) {
	hash := domain.HashContent(answer)

	if s.scores != nil && !skipCache {
		rec, err := s.scores.Get(ctx, hash)
		if err == nil && rec != nil && rec.Target == target {
			logger.Info("Score cache hit: %s", hash[:12])
			return domain.CitationReport{
				Target:      target,
				Metrics:     rec.Metrics,
				Competitors: make(map[string]domain.SiteMetrics),
			}, true
		}
	}

	report := s.analyzer.Evaluate(answer, target)

	if s.scores != nil {
		rec := domain.ScoreRecord{
			Hash:      hash,
			Target:    target,
			Metrics:   report.Metrics,
			CreatedAt: time.Now(),
		}
		if err := s.scores.Put(ctx, rec); err != nil {
			logger.Warn("Score cache write failed: %v", err)
		}
	}

	return report, false
}

// comparisonText returns the page text to compare against the answer,
// summarised first when the page is long and an LLM is available.
func (s *AuditService) comparisonText(ctx context.Context, pageText string) string {
	if s.llm == nil || len(pageText) <= summariseAbove {
		return pageText
	}

	summary, err := s.llm.Summarise(ctx, pageText, summaryMaxChars)
	if err != nil {
		logger.Warn("Summarise failed: %v (comparing full page text)", err)
		return pageText
	}
	if summary == "" {
		return pageText
	}
	logger.Debug("Page summarised: %d -> %d characters", len(pageText), len(summary))
	return summary
}

// ensureScheme prefixes https:// when the target has no scheme, so a
// bare domain can be fetched directly.
func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
