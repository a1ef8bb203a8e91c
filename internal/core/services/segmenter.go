package services

import (
	"regexp"
	"strings"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// paragraphBreak splits a response on blank-line boundaries.
var paragraphBreak = regexp.MustCompile(`\n\s*\n|\n{2,}`)

// citationLineRule decides whether a line is primarily a domain
// listing. Rules only apply to lines containing at least one domain;
// any single matching rule classifies the line.
type citationLineRule struct {
	name    string
	matches func(domainCount, wordCount int) bool
}

var citationLineRules = []citationLineRule{
	// At least a third of the line's words are domains.
	{name: "domain-dense", matches: func(d, w int) bool {
		return float64(d) >= float64(w)/3.0
	}},
	// Short lines with any domain are treated as citation lines.
	{name: "short-line", matches: func(_, w int) bool {
		return w < 5
	}},
}

func isCitationLine(domainCount, wordCount int) bool {
	if domainCount == 0 {
		return false
	}
	for _, rule := range citationLineRules {
		if rule.matches(domainCount, wordCount) {
			return true
		}
	}
	return false
}

// segment splits a response into paragraphs, separating prose lines
// from citation lines. Citation-line domains are collected per
// paragraph in line order; prose lines are joined into the paragraph
// text.
func segment(text string) []domain.Paragraph {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var paragraphs []domain.Paragraph
	for _, block := range paragraphBreak.Split(trimmed, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		var proseLines []string
		var citations []string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lineDomains := extractDomains(line)
			if isCitationLine(len(lineDomains), countWords(line)) {
				citations = append(citations, lineDomains...)
			} else {
				proseLines = append(proseLines, line)
			}
		}

		if len(proseLines) == 0 && len(citations) == 0 {
			continue
		}
		prose := strings.Join(proseLines, " ")
		paragraphs = append(paragraphs, domain.Paragraph{
			Text:      prose,
			WordCount: countWords(prose),
			Citations: citations,
		})
	}

	return foldTrailingCitations(paragraphs)
}

// foldTrailingCitations merges a paragraph that has citations but no
// prose into the immediately preceding paragraph's citation list and
// drops the empty paragraph. This repairs the common case where a
// model emits a references block with no accompanying sentence.
func foldTrailingCitations(paragraphs []domain.Paragraph) []domain.Paragraph {
	folded := make([]domain.Paragraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		if strings.TrimSpace(p.Text) == "" && len(p.Citations) > 0 && len(folded) > 0 {
			prev := &folded[len(folded)-1]
			prev.Citations = append(prev.Citations, p.Citations...)
			continue
		}
		folded = append(folded, p)
	}
	return folded
}
