package services

import "github.com/citelens-labs/citelens-cli/internal/core/domain"

// citationIndex is the state of one analysis run: every citation in
// appearance order, the per-domain grouping, and the prose word total.
// An index is built fresh per Evaluate call and discarded afterwards;
// it is never shared or mutated across calls.
type citationIndex struct {
	paragraphs []domain.Paragraph
	citations  []domain.Citation
	byDomain   map[string][]domain.Citation

	// order lists domains by first citation, the iteration order used
	// for competitor ranking.
	order []string

	totalWords int
}

// buildIndex walks the segmented paragraphs in order, assigning each
// citation a dense global position starting at 0 and recording its
// group metadata.
func buildIndex(paragraphs []domain.Paragraph) *citationIndex {
	ix := &citationIndex{
		paragraphs: paragraphs,
		byDomain:   make(map[string][]domain.Citation),
	}

	position := 0
	for paraIdx, para := range paragraphs {
		ix.totalWords += para.WordCount
		groupSize := len(para.Citations)
		for idxInGroup, d := range para.Citations {
			c := domain.Citation{
				Domain:         d,
				Position:       position,
				ParagraphIndex: paraIdx,
				IndexInGroup:   idxInGroup,
				GroupSize:      groupSize,
				WindowWords:    para.WordCount,
			}
			ix.citations = append(ix.citations, c)
			if _, seen := ix.byDomain[d]; !seen {
				ix.order = append(ix.order, d)
			}
			ix.byDomain[d] = append(ix.byDomain[d], c)
			position++
		}
	}

	return ix
}
