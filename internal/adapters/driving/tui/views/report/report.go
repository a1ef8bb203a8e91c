// Package report provides the audit report view for the TUI.
package report

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/keymap"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/messages"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/styles"
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// View renders one audit result: target scores, a navigable competitor
// list and the content similarity.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	result      *domain.AuditResult
	competitors []string
	selected    int

	width  int
	height int
}

// NewView creates the report view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetResult loads an audit result into the view.
func (v *View) SetResult(result *domain.AuditResult) {
	v.result = result
	v.selected = 0
	v.competitors = v.competitors[:0]

	if result == nil {
		return
	}
	for site := range result.Report.Competitors {
		v.competitors = append(v.competitors, site)
	}
	sort.Slice(v.competitors, func(i, j int) bool {
		a := result.Report.Competitors[v.competitors[i]]
		b := result.Report.Competitors[v.competitors[j]]
		if a.TotalScore == b.TotalScore {
			return v.competitors[i] < v.competitors[j]
		}
		return a.TotalScore > b.TotalScore
	})
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewForm}
			}
		case keymap.Matches(msg.String(), v.keymap.Up):
			v.MoveUp()
		case keymap.Matches(msg.String(), v.keymap.Down):
			v.MoveDown()
		}
	}

	return v, nil
}

// MoveUp moves the competitor selection up.
func (v *View) MoveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

// MoveDown moves the competitor selection down.
func (v *View) MoveDown() {
	if v.selected < len(v.competitors)-1 {
		v.selected++
	}
}

// SelectedCompetitor returns the highlighted competitor site, or empty.
func (v *View) SelectedCompetitor() string {
	if v.selected < 0 || v.selected >= len(v.competitors) {
		return ""
	}
	return v.competitors[v.selected]
}

// View renders the report.
func (v *View) View() string {
	if v.result == nil {
		return v.styles.Muted.Render("No audit result yet.")
	}

	var b strings.Builder
	report := v.result.Report

	b.WriteString(v.styles.Title.Render("Audit Report"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Target: %s", report.Target)))
	if v.result.FromCache {
		b.WriteString(v.styles.Muted.Render("  (cached)"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Query: %s", v.result.Request.Query)))
	b.WriteString("\n\n")

	b.WriteString(v.renderMetrics(report.Metrics))
	b.WriteString("\n")

	if len(v.competitors) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Competitors"))
		b.WriteString("\n")
		for i, site := range v.competitors {
			m := report.Competitors[site]
			line := fmt.Sprintf("%-30s %.4f", site, m.TotalScore)
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(v.styles.Muted.Render("No competitors cited."))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
		"Similarity: unigram %.4f, 1-2gram %.4f",
		v.result.Similarity.Unigram, v.result.Similarity.UniBigram)))
	b.WriteString("\n")

	return b.String()
}

// renderMetrics renders the four target scores, colour-coded.
func (v *View) renderMetrics(m domain.SiteMetrics) string {
	var b strings.Builder
	rows := []struct {
		label string
		value float64
	}{
		{"Pos", m.Pos},
		{"Word", m.Word},
		{"Quality", m.CitationQuality},
		{"Total", m.TotalScore},
	}
	for _, row := range rows {
		label := v.styles.Muted.Render(fmt.Sprintf("%-8s", row.label))
		value := v.styles.ScoreStyle(row.value).Render(fmt.Sprintf("%.4f", row.value))
		b.WriteString(label + value + "\n")
	}
	return b.String()
}

// SetDimensions updates the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
