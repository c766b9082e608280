package driving

import (
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// SettingsService manages the persisted application settings.
type SettingsService interface {
	// LogLevel returns the configured log level, falling back to
	// domain.LogLevelInfo when nothing valid is stored.
	LogLevel() domain.LogLevel

	// SetLogLevel validates the level, applies it to the running logger
	// and persists it for future invocations.
	SetLogLevel(level domain.LogLevel) error
}
