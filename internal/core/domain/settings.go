package domain

import "strings"

// LogLevel is a logger verbosity label.
type LogLevel string

const (
	// LogLevelDebug enables detailed pipeline diagnostics.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default operational level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn limits output to potential problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError limits output to failures.
	LogLevelError LogLevel = "error"
)

// Valid reports whether the level is one of the known labels.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the level label.
func (l LogLevel) String() string {
	return string(l)
}

// ParseLogLevel converts a user-supplied label to a LogLevel.
// Matching is case-insensitive and accepts "warning" for warn.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return "", ErrInvalidInput
	}
}
