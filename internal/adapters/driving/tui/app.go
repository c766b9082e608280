package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/views/find"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/views/levels"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/views/logview"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// findView is the text input and results view.
	findView *find.View

	// levelsView is the log level selection view.
	levelsView *levels.View

	// logView is the log file inspection view.
	logView *logview.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		findView:    find.NewView(s, ports.Anagram),
		levelsView:  levels.NewView(s, ports.Settings),
		logView:     logview.NewView(s, ports.Logs),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.findView = a.findView.WithContext(ctx)
	a.logView = a.logView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("anagram - Group Words"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.findView.SetDimensions(msg.Width, msg.Height)
		a.levelsView.SetDimensions(msg.Width, msg.Height)
		a.logView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewFind:
			a.findView, cmd = a.findView.Update(msg)
			a.err = a.findView.Err()
			return a, cmd

		case messages.ViewLevels:
			a.levelsView, cmd = a.levelsView.Update(msg)
			return a, cmd

		case messages.ViewLogs:
			a.logView, cmd = a.logView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewFind:
			a.findView.Reset()
			return a, a.findView.Init()
		case messages.ViewLevels:
			a.levelsView.Reset()
			return a, a.levelsView.Init()
		case messages.ViewLogs:
			a.logView.Reset()
			return a, a.logView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No special initialisation
		}
		return a, nil

	case messages.FindCompleted:
		a.findView, cmd = a.findView.Update(msg)
		a.err = a.findView.Err()
		return a, cmd

	case messages.LevelApplied:
		a.levelsView, cmd = a.levelsView.Update(msg)
		return a, cmd

	case messages.LogsLoaded:
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewFind {
			a.findView, cmd = a.findView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewFind:
		a.findView, cmd = a.findView.Update(msg)
	case messages.ViewLevels:
		a.levelsView, cmd = a.levelsView.Update(msg)
	case messages.ViewLogs:
		a.logView, cmd = a.logView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewFind:
		return a.findView.View()
	case messages.ViewLevels:
		return a.levelsView.View()
	case messages.ViewLogs:
		return a.logView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Find anagrams:
  (type)      Enter text to group
  enter       Group the words
  n           New text after a run
  esc         Back to Menu

Log level:
  j/k, ↑/↓    Navigate levels
  enter       Apply level
  esc         Back to Menu

Log file:
  j/k, ↑/↓    Scroll entries
  r           Reload
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the last grouping result from the find view.
func (a *App) Result() domain.Result {
	return a.findView.Result()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.findView.SetDimensions(width, height)
	a.logView.SetDimensions(width, height)
}
