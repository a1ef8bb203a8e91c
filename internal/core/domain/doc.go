// Package domain defines the core business entities for citelens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Citation: One occurrence of a cited domain in a response
//   - Paragraph: A segmented paragraph with its adjacent citations
//   - SiteMetrics: The four per-site visibility scores
//   - CitationReport: The fixed-field result of one analysis run
//   - SimilarityReport: Dual-granularity TF-IDF similarity scores
//   - ScoreRecord: A content-hash keyed cached score entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
