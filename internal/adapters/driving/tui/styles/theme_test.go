package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#2DD4BF"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#FBBF24"), theme.Secondary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles_RendersText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Anagram"), "Anagram")
	assert.Contains(t, s.Error.Render("boom"), "boom")
	assert.Contains(t, s.GroupKey.Render("(act)"), "(act)")
}
