package levels

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// mockSettings tracks the applied level.
type mockSettings struct {
	level  domain.LogLevel
	setErr error
}

func (m *mockSettings) LogLevel() domain.LogLevel {
	if m.level == "" {
		return domain.LogLevelInfo
	}
	return m.level
}

func (m *mockSettings) SetLogLevel(level domain.LogLevel) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.level = level
	return nil
}

func TestView_Init_CursorOnActiveLevel(t *testing.T) {
	v := NewView(nil, &mockSettings{level: domain.LogLevelWarn})

	v.Init()

	assert.Equal(t, 2, v.Selected())
}

func TestView_Update_Navigation(t *testing.T) {
	v := NewView(nil, &mockSettings{})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())
}

func TestView_Update_EnterAppliesLevel(t *testing.T) {
	settings := &mockSettings{}
	v := NewView(nil, settings)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	applied, ok := cmd().(messages.LevelApplied)
	require.True(t, ok)
	assert.NoError(t, applied.Err)
	assert.Equal(t, domain.LogLevelDebug, applied.Level)
	assert.Equal(t, domain.LogLevelDebug, settings.level)
}

func TestView_Update_LevelAppliedShowsConfirmation(t *testing.T) {
	v := NewView(nil, &mockSettings{})

	v, _ = v.Update(messages.LevelApplied{Level: domain.LogLevelError})

	assert.Contains(t, v.View(), "Level set to error")
}

func TestView_Update_LevelAppliedError(t *testing.T) {
	v := NewView(nil, &mockSettings{})

	v, _ = v.Update(messages.LevelApplied{Err: errors.New("persist failed")})

	assert.Contains(t, v.View(), "persist failed")
}

func TestView_Update_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &mockSettings{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_ApplyLevel_NilSettings(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	applied, ok := cmd().(messages.LevelApplied)
	require.True(t, ok)
	assert.Error(t, applied.Err)
}

func TestView_View_ListsAllLevels(t *testing.T) {
	v := NewView(nil, &mockSettings{level: domain.LogLevelDebug})

	out := v.View()

	assert.Contains(t, out, "Log level")
	assert.Contains(t, out, "Current: debug")
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "info")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "- detailed pipeline diagnostics")
	assert.NotContains(t, out, "—")
}

func TestView_Reset(t *testing.T) {
	v := NewView(nil, &mockSettings{})
	v, _ = v.Update(messages.LevelApplied{Level: domain.LogLevelWarn})

	v.Reset()

	assert.NotContains(t, v.View(), "Level set to")
}
