package domain

import "time"

// Page is the text content of a fetched web page, after HTML stripping.
type Page struct {
	// URL is the page location the content was fetched from.
	URL string

	// Title is the page title, if one was present.
	Title string

	// Text is the plain text content with markup removed.
	Text string

	// FetchedAt is when the page was retrieved.
	FetchedAt time.Time
}

// AuditRequest describes one end-to-end audit run: which site to score
// and what to ask the answer engine.
type AuditRequest struct {
	// TargetSite is the site being audited. Accepts a bare domain, a URL
	// with scheme, or a URL with path; normalised before comparison.
	TargetSite string

	// Query is the question posed to the answer engine. When empty and
	// an LLM is configured, a query is suggested from the page content.
	Query string

	// SkipCache forces recomputation even when a cached record exists.
	SkipCache bool
}

// AuditResult is the outcome of one audit run.
type AuditResult struct {
	// ID uniquely identifies the run.
	ID string

	// Request echoes the audited request with the target normalised.
	Request AuditRequest

	// Answer is the raw response text obtained from the answer engine.
	Answer string

	// Report is the citation analysis of the answer.
	Report CitationReport

	// Similarity compares the target page's text with the answer.
	Similarity SimilarityReport

	// FromCache is true when the report scores came from the score cache.
	FromCache bool

	// CreatedAt is when the run completed.
	CreatedAt time.Time
}
