package domain

// Citation is one occurrence of a cited domain in a response. Positions
// are dense and global: the first citation in the response is position 0
// regardless of which paragraph it appears in.
type Citation struct {
	// Domain is the normalised domain name, lowercase, without scheme,
	// www prefix, path or port.
	Domain string `json:"domain"`

	// Position is the citation's zero-based index across the whole
	// response, in appearance order.
	Position int `json:"position"`

	// ParagraphIndex is the index of the paragraph the citation is
	// attached to.
	ParagraphIndex int `json:"paragraph_index"`

	// IndexInGroup is the citation's zero-based order within its
	// paragraph's citation group.
	IndexInGroup int `json:"index_in_group"`

	// GroupSize is the number of citations sharing the paragraph.
	GroupSize int `json:"group_size"`

	// WindowWords is the prose word count of the paragraph, the word
	// window attributed to the citation group.
	WindowWords int `json:"window_words"`
}

// Paragraph is one segmented block of a response: its prose text, the
// prose word count, and the domains cited on the paragraph's citation
// lines in line order.
type Paragraph struct {
	Text      string   `json:"text"`
	WordCount int      `json:"word_count"`
	Citations []string `json:"citations"`
}
