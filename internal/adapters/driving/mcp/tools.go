package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// AnalyzeInput is the input schema for the analyze_citations tool.
type AnalyzeInput struct {
	ResponseText string `json:"response_text" jsonschema:"the answer-engine response text to analyze"`
	TargetSite   string `json:"target_site" jsonschema:"the site to score, as a domain or URL"`
}

// SiteMetricsOutput holds the four visibility scores for one site.
type SiteMetricsOutput struct {
	Pos             float64 `json:"pos"`
	Word            float64 `json:"word"`
	CitationQuality float64 `json:"citation_quality"`
	TotalScore      float64 `json:"total_score"`
}

// AnalyzeOutput is the output schema for the analyze_citations tool.
type AnalyzeOutput struct {
	Target         string                       `json:"target"`
	Metrics        SiteMetricsOutput            `json:"metrics"`
	Competitors    map[string]SiteMetricsOutput `json:"competitors"`
	BestCompetitor string                       `json:"best_competitor,omitempty"`
	BestScore      float64                      `json:"best_score,omitempty"`
	TotalWords     int                          `json:"total_words"`
}

// CompareInput is the input schema for the compare_texts tool.
type CompareInput struct {
	TextA string `json:"text_a" jsonschema:"the first text"`
	TextB string `json:"text_b" jsonschema:"the second text"`
}

// CompareOutput is the output schema for the compare_texts tool.
type CompareOutput struct {
	Unigram   float64 `json:"unigram"`
	UniBigram float64 `json:"uni_bigram"`
}

// AuditInput is the input schema for the audit_site tool.
type AuditInput struct {
	TargetSite string `json:"target_site" jsonschema:"the site to audit, as a domain or URL"`
	Query      string `json:"query,omitempty" jsonschema:"question to ask the answer engine (suggested from the page when omitted)"`
	SkipCache  bool   `json:"skip_cache,omitempty" jsonschema:"force recomputation even when scores are cached"`
}

// AuditOutput is the output schema for the audit_site tool.
type AuditOutput struct {
	ID             string            `json:"id"`
	Target         string            `json:"target"`
	Query          string            `json:"query"`
	Answer         string            `json:"answer"`
	Metrics        SiteMetricsOutput `json:"metrics"`
	BestCompetitor string            `json:"best_competitor,omitempty"`
	BestScore      float64           `json:"best_score,omitempty"`
	Unigram        float64           `json:"unigram"`
	UniBigram      float64           `json:"uni_bigram"`
	FromCache      bool              `json:"from_cache"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_citations",
		Description: "Score how well a site is cited in an answer-engine response",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compare_texts",
		Description: "Compute TF-IDF cosine similarity between two texts",
	}, s.handleCompare)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "audit_site",
		Description: "Run a full visibility audit: fetch the site, query the answer engine, score citations",
	}, s.handleAudit)
}

// handleAnalyze handles the analyze_citations tool invocation.
func (s *Server) handleAnalyze(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report := s.ports.Analyzer.Evaluate(input.ResponseText, input.TargetSite)
	return nil, analyzeOutput(report), nil
}

// handleCompare handles the compare_texts tool invocation.
func (s *Server) handleCompare(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, CompareOutput, error) {
	report := s.ports.Comparator.Compare(input.TextA, input.TextB)
	return nil, CompareOutput{
		Unigram:   report.Unigram,
		UniBigram: report.UniBigram,
	}, nil
}

// handleAudit handles the audit_site tool invocation.
func (s *Server) handleAudit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AuditInput,
) (*mcp.CallToolResult, AuditOutput, error) {
	if s.ports.Audit == nil {
		return nil, AuditOutput{}, ErrAuditUnavailable
	}

	result, err := s.ports.Audit.Run(ctx, domain.AuditRequest{
		TargetSite: input.TargetSite,
		Query:      input.Query,
		SkipCache:  input.SkipCache,
	})
	if err != nil {
		return nil, AuditOutput{}, err
	}

	return nil, AuditOutput{
		ID:             result.ID,
		Target:         result.Request.TargetSite,
		Query:          result.Request.Query,
		Answer:         result.Answer,
		Metrics:        metricsOutput(result.Report.Metrics),
		BestCompetitor: result.Report.Best.Site,
		BestScore:      result.Report.Best.Score,
		Unigram:        result.Similarity.Unigram,
		UniBigram:      result.Similarity.UniBigram,
		FromCache:      result.FromCache,
	}, nil
}

func analyzeOutput(report domain.CitationReport) AnalyzeOutput {
	competitors := make(map[string]SiteMetricsOutput, len(report.Competitors))
	for site, m := range report.Competitors {
		competitors[site] = metricsOutput(m)
	}

	return AnalyzeOutput{
		Target:         report.Target,
		Metrics:        metricsOutput(report.Metrics),
		Competitors:    competitors,
		BestCompetitor: report.Best.Site,
		BestScore:      report.Best.Score,
		TotalWords:     report.TotalWords,
	}
}

func metricsOutput(m domain.SiteMetrics) SiteMetricsOutput {
	return SiteMetricsOutput{
		Pos:             m.Pos,
		Word:            m.Word,
		CitationQuality: m.CitationQuality,
		TotalScore:      m.TotalScore,
	}
}
