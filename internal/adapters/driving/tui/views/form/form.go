// Package form provides the audit form view for the TUI.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/components/input"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/keymap"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/messages"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/styles"
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// View is the audit form: target site and query inputs.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	target *input.TextField
	query  *input.TextField

	// focusTarget is true while the target field has focus.
	focusTarget bool

	width  int
	height int
}

// NewView creates the audit form view. defaultTarget prefills the
// target field when non-empty.
func NewView(s *styles.Styles, km *keymap.KeyMap, defaultTarget string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	target := input.NewTextField(s, "Target site", "botanichka.ru")
	query := input.NewTextField(s, "Query", "how to care for roses (optional)")
	target.SetValue(defaultTarget)
	target.Focus()

	return &View{
		styles:      s,
		keymap:      km,
		target:      target,
		query:       query,
		focusTarget: true,
		width:       80,
		height:      24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.target.Init()
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v.forward(msg)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.NextField):
		v.toggleFocus()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Run):
		target := strings.TrimSpace(v.target.Value())
		if target == "" {
			return v, nil
		}
		req := domain.AuditRequest{
			TargetSite: target,
			Query:      strings.TrimSpace(v.query.Value()),
		}
		return v, func() tea.Msg {
			return messages.AuditRequested{Request: req}
		}
	}

	return v.forward(msg)
}

func (v *View) toggleFocus() {
	v.focusTarget = !v.focusTarget
	if v.focusTarget {
		v.target.Focus()
		v.query.Blur()
	} else {
		v.query.Focus()
		v.target.Blur()
	}
}

// forward passes a message to the focused field.
func (v *View) forward(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	if v.focusTarget {
		v.target, cmd = v.target.Update(msg)
	} else {
		v.query, cmd = v.query.Update(msg)
	}
	return v, cmd
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Run Audit"))
	b.WriteString("\n\n")
	b.WriteString(v.target.View())
	b.WriteString("\n")
	b.WriteString(v.query.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(
		"Leave the query empty to let the configured LLM suggest one."))
	b.WriteString("\n")

	return b.String()
}

// SetDimensions updates the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.target.SetWidth(width)
	v.query.SetWidth(width)
}

// Target returns the current target field value.
func (v *View) Target() string {
	return v.target.Value()
}

// Query returns the current query field value.
func (v *View) Query() string {
	return v.query.Value()
}

// FocusTarget reports whether the target field has focus.
func (v *View) FocusTarget() bool {
	return v.focusTarget
}
