// Package find provides the text entry and results view for the TUI.
package find

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// View represents the find view: a text input above the grouped
// results, with a status line at the bottom.
type View struct {
	styles  *styles.Styles
	input   textinput.Model
	bar     *status.Bar
	service driving.AnagramService
	ctx     context.Context

	result  domain.Result
	hasRun  bool
	running bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new find view.
func NewView(s *styles.Styles, service driving.AnagramService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter text to group..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &View{
		styles:  s,
		input:   ti,
		bar:     status.NewBar(s, nil),
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for pipeline calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the find view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FindCompleted:
		v.running = false
		v.hasRun = true
		v.result = msg.Result
		v.err = msg.Err
		v.syncBar()
		return v, nil

	case messages.ErrorOccurred:
		v.running = false
		v.err = msg.Err
		v.syncBar()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		text := v.input.Value()
		if strings.TrimSpace(text) == "" {
			return v, nil
		}
		v.running = true
		v.err = nil
		v.input.Blur()
		v.bar.SetState(status.StateGrouping)
		return v, v.performFind(text)
	}

	// "n" clears the input after a run; otherwise it is regular typing.
	if v.hasRun && !v.input.Focused() && msg.String() == "n" {
		v.input.SetValue("")
		return v, v.input.Focus()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// performFind runs the pipeline asynchronously.
func (v *View) performFind(text string) tea.Cmd {
	service := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("anagram service unavailable")}
		}
		result, err := service.FindAnagrams(ctx, text, domain.FindOptions{})
		return messages.FindCompleted{Result: result, Err: err}
	}
}

// View renders the find view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Find anagrams"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n\n")
	b.WriteString(v.renderResults())
	b.WriteString("\n")
	b.WriteString(v.renderStatus())

	return b.String()
}

// renderResults renders the grouped words.
func (v *View) renderResults() string {
	if v.err != nil {
		return v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err))
	}
	if v.running {
		return v.styles.Muted.Render("Grouping...")
	}
	if !v.hasRun {
		return v.styles.Muted.Render("Type a text and press Enter.")
	}
	if v.result.Empty() {
		return v.styles.Muted.Render("No anagram groups found.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Success.Render(
		fmt.Sprintf("Found %d groups:", len(v.result.Groups))))
	b.WriteString("\n\n")
	for i, group := range v.result.Groups {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			v.styles.Subtitle.Render(fmt.Sprintf("[%d]", i+1)),
			v.styles.Normal.Render(strings.Join(group.Words, ", ")),
			v.styles.GroupKey.Render("("+group.Key+")"),
		))
	}
	return b.String()
}

// renderStatus renders the bottom status bar.
func (v *View) renderStatus() string {
	return v.bar.View()
}

// syncBar updates the status bar from the view state.
func (v *View) syncBar() {
	switch {
	case v.err != nil:
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(v.err.Error())
	case v.running:
		v.bar.SetState(status.StateGrouping)
	case v.hasRun:
		v.bar.SetState(status.StateResults)
		v.bar.SetCounts(len(v.result.Groups), v.result.TotalWords())
	default:
		v.bar.Clear()
	}
}

// Reset clears input and results for a fresh visit.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.result = domain.Result{}
	v.hasRun = false
	v.running = false
	v.err = nil
	v.bar.Clear()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	v.input.Width = inputWidth
	v.bar.SetWidth(width)
}

// Result returns the last grouping result.
func (v *View) Result() domain.Result {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
