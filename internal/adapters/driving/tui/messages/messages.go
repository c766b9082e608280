// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewFind is the text input and results view.
	ViewFind
	// ViewLevels is the log level selection view.
	ViewLevels
	// ViewLogs is the log file inspection view.
	ViewLogs
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewFind:
		return "find"
	case ViewLevels:
		return "levels"
	case ViewLogs:
		return "logs"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FindCompleted carries a grouping result back to the model.
type FindCompleted struct {
	Result domain.Result
	Err    error
}

// LevelApplied signals a log level change finished.
type LevelApplied struct {
	Level domain.LogLevel
	Err   error
}

// LogsLoaded carries log file info and recent entries.
type LogsLoaded struct {
	Info  domain.LogFileInfo
	Lines []string
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
