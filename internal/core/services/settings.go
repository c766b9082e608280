package services

import (
	"fmt"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
	"github.com/custodia-labs/anagram-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// configKeyLogLevel is the config store key for the persisted level.
const configKeyLogLevel = "log.level"

// SettingsService manages persisted settings backed by a ConfigStore.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// The config parameter is optional (can be nil); without it the
// service only affects the running process.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// LogLevel resolves the configured log level.
// Missing or invalid stored values fall back to info.
func (s *SettingsService) LogLevel() domain.LogLevel {
	if s.config == nil {
		return domain.LogLevelInfo
	}

	raw := s.config.GetString(configKeyLogLevel)
	if raw == "" {
		return domain.LogLevelInfo
	}

	level, err := domain.ParseLogLevel(raw)
	if err != nil {
		logger.Warn("Ignoring invalid stored log level %q", raw)
		return domain.LogLevelInfo
	}
	return level
}

// SetLogLevel validates, applies and persists the level.
func (s *SettingsService) SetLogLevel(level domain.LogLevel) error {
	if !level.Valid() {
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidInput, level)
	}

	logger.SetLevel(LoggerLevel(level))
	logger.Info("Log level changed to %s", level)

	if s.config == nil {
		return nil
	}
	if err := s.config.Set(configKeyLogLevel, level.String()); err != nil {
		return fmt.Errorf("persist log level: %w", err)
	}
	return nil
}

// LoggerLevel maps a domain log level to the logger's level type.
func LoggerLevel(level domain.LogLevel) logger.Level {
	switch level {
	case domain.LogLevelDebug:
		return logger.LevelDebug
	case domain.LogLevelWarn:
		return logger.LevelWarn
	case domain.LogLevelError:
		return logger.LevelError
	case domain.LogLevelInfo:
		return logger.LevelInfo
	default:
		return logger.LevelInfo
	}
}
