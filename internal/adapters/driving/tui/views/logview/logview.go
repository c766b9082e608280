// Package logview provides the log file inspection view for the TUI.
package logview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// tailLines is how many entries the view loads from the log file.
const tailLines = 200

// View represents the log file view: file info at the top, a
// scrollable viewport of recent entries below.
type View struct {
	styles *styles.Styles
	logs   driving.LogService
	ctx    context.Context

	viewport viewport.Model
	info     domain.LogFileInfo
	lines    []string
	loaded   bool
	missing  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new log file view.
// The logs parameter is optional; without it the view shows a notice.
func NewView(s *styles.Styles, logs driving.LogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		logs:   logs,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for log reads.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial load.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Update handles messages for the log file view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			v.loaded = false
			return v, v.load()
		}

	case messages.LogsLoaded:
		v.loaded = true
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrNotFound) {
				v.missing = true
				v.err = nil
			} else {
				v.missing = false
				v.err = msg.Err
			}
			return v, nil
		}
		v.missing = false
		v.err = nil
		v.info = msg.Info
		v.lines = msg.Lines
		v.viewport.SetContent(strings.Join(v.lines, "\n"))
		v.viewport.GotoBottom()
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// load reads the log file through the logs port.
func (v *View) load() tea.Cmd {
	logs := v.logs
	ctx := v.ctx
	return func() tea.Msg {
		if logs == nil {
			return messages.LogsLoaded{Err: fmt.Errorf("log service unavailable")}
		}
		info, err := logs.Info(ctx)
		if err != nil {
			return messages.LogsLoaded{Err: err}
		}
		lines, err := logs.Tail(ctx, tailLines)
		if err != nil {
			return messages.LogsLoaded{Err: err}
		}
		return messages.LogsLoaded{Info: info, Lines: lines}
	}
}

// View renders the log file view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Log file"))
	b.WriteString("\n\n")

	switch {
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.missing:
		b.WriteString(v.styles.Muted.Render("No log file yet. Run a command first."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	default:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s  (%d bytes, %d entries)",
			v.info.Path, v.info.SizeBytes, v.info.Entries)))
		b.WriteString("\n\n")
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [r] Reload  [esc] Menu"))

	return b.String()
}

// Reset clears state so the next visit reloads.
func (v *View) Reset() {
	v.loaded = false
	v.missing = false
	v.err = nil
	v.lines = nil
}

// SetDimensions sets the view dimensions and resizes the viewport.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	vpHeight := height - 8
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !v.ready {
		v.viewport = viewport.New(width-4, vpHeight)
		v.ready = true
	} else {
		v.viewport.Width = width - 4
		v.viewport.Height = vpHeight
	}
	if len(v.lines) > 0 {
		v.viewport.SetContent(strings.Join(v.lines, "\n"))
	}
}

// Lines returns the loaded log lines.
func (v *View) Lines() []string {
	return v.lines
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
