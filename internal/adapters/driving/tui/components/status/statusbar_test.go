package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)
	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}

func TestBar_StateTransitions(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateRunning)
	assert.Equal(t, StateRunning, bar.State())
	assert.Contains(t, bar.View(), "Running audit...")

	bar.SetState(StateError)
	bar.SetMessage("engine down")
	assert.Contains(t, bar.View(), "Error: engine down")

	bar.SetState(StateReport)
	bar.SetMessage("Target total 0.8125")
	assert.Contains(t, bar.View(), "Target total 0.8125")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_HintsFollowState(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "run audit")

	bar.SetState(StateReport)
	assert.Contains(t, bar.View(), "back")
}
