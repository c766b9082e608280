package tui

import (
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// Ports bundles the driving ports the TUI needs.
type Ports struct {
	// Anagram runs the grouping pipeline. Required.
	Anagram driving.AnagramService

	// Logs inspects the log file. Optional; the logs view degrades to
	// a notice when absent.
	Logs driving.LogService

	// Settings reads and changes the log level. Optional; the levels
	// view degrades to read-only display when absent.
	Settings driving.SettingsService
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Anagram == nil {
		return ErrMissingAnagramService
	}
	return nil
}
