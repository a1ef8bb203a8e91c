package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/messages"
)

func TestNewView_PrefillsTarget(t *testing.T) {
	v := NewView(nil, nil, "botanichka.ru")
	assert.Equal(t, "botanichka.ru", v.Target())
	assert.True(t, v.FocusTarget())
}

func TestView_TabSwitchesFocus(t *testing.T) {
	v := NewView(nil, nil, "")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, v.FocusTarget())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, v.FocusTarget())
}

func TestView_EnterSubmitsAudit(t *testing.T) {
	v := NewView(nil, nil, "botanichka.ru")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	requested, ok := msg.(messages.AuditRequested)
	require.True(t, ok)
	assert.Equal(t, "botanichka.ru", requested.Request.TargetSite)
	assert.Empty(t, requested.Request.Query)
	_ = v
}

func TestView_EnterWithEmptyTargetDoesNothing(t *testing.T) {
	v := NewView(nil, nil, "")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestView_TypingFillsFocusedField(t *testing.T) {
	v := NewView(nil, nil, "")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a.ru")})
	assert.Equal(t, "a.ru", v.Target())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("вопрос")})
	assert.Equal(t, "вопрос", v.Query())
	assert.Equal(t, "a.ru", v.Target())
}

func TestView_RendersHelp(t *testing.T) {
	v := NewView(nil, nil, "")
	out := v.View()
	assert.Contains(t, out, "Run Audit")
	assert.Contains(t, out, "Leave the query empty")
}
