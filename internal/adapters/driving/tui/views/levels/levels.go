// Package levels provides the log level selection view for the TUI.
package levels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// option pairs a level with its menu description.
type option struct {
	level domain.LogLevel
	desc  string
}

// View represents the log level selection view.
type View struct {
	styles   *styles.Styles
	settings driving.SettingsService

	options  []option
	selected int
	applied  *domain.LogLevel
	err      error

	width  int
	height int
}

// NewView creates a new levels view.
// The settings parameter is optional; without it the view is read-only.
func NewView(s *styles.Styles, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		settings: settings,
		options: []option{
			{domain.LogLevelDebug, "detailed pipeline diagnostics"},
			{domain.LogLevelInfo, "normal operational messages (default)"},
			{domain.LogLevelWarn, "warnings and errors only"},
			{domain.LogLevelError, "errors only"},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the view, placing the cursor on the active level.
func (v *View) Init() tea.Cmd {
	if v.settings != nil {
		current := v.settings.LogLevel()
		for i, opt := range v.options {
			if opt.level == current {
				v.selected = i
				break
			}
		}
	}
	return nil
}

// Update handles messages for the levels view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case "down", "j":
			if v.selected < len(v.options)-1 {
				v.selected++
			}
			return v, nil
		case "enter":
			return v, v.applyLevel(v.options[v.selected].level)
		}

	case messages.LevelApplied:
		if msg.Err != nil {
			v.err = msg.Err
			v.applied = nil
		} else {
			level := msg.Level
			v.applied = &level
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// applyLevel changes the level through the settings port.
func (v *View) applyLevel(level domain.LogLevel) tea.Cmd {
	settings := v.settings
	return func() tea.Msg {
		if settings == nil {
			return messages.LevelApplied{Err: fmt.Errorf("settings service unavailable")}
		}
		if err := settings.SetLogLevel(level); err != nil {
			return messages.LevelApplied{Err: err}
		}
		return messages.LevelApplied{Level: level}
	}
}

// View renders the levels view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Log level"))
	b.WriteString("\n\n")

	current := domain.LogLevelInfo
	if v.settings != nil {
		current = v.settings.LogLevel()
	}
	b.WriteString(v.styles.Muted.Render("Current: " + current.String()))
	b.WriteString("\n\n")

	for i, opt := range v.options {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		line := fmt.Sprintf("%s%s - %s", cursor, style.Render(string(opt.level)),
			v.styles.Muted.Render(opt.desc))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case v.applied != nil:
		b.WriteString(v.styles.Success.Render("Level set to " + v.applied.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Apply  [esc] Menu"))

	return b.String()
}

// Reset clears transient state for a fresh visit.
func (v *View) Reset() {
	v.applied = nil
	v.err = nil
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
