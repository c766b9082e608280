package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/logger"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_LogLevel_DefaultsToInfo(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.LogLevelInfo, service.LogLevel())
}

func TestSettingsService_LogLevel_NilStoreDefaultsToInfo(t *testing.T) {
	service := NewSettingsService(nil)

	assert.Equal(t, domain.LogLevelInfo, service.LogLevel())
}

func TestSettingsService_LogLevel_ReturnsStoredValue(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("log.level", "debug")
	service := NewSettingsService(store)

	assert.Equal(t, domain.LogLevelDebug, service.LogLevel())
}

func TestSettingsService_LogLevel_InvalidStoredValueFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("log.level", "shouting")
	service := NewSettingsService(store)

	assert.Equal(t, domain.LogLevelInfo, service.LogLevel())
}

func TestSettingsService_SetLogLevel_Persists(t *testing.T) {
	defer logger.SetLevel(logger.LevelInfo)

	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetLogLevel(domain.LogLevelWarn)

	require.NoError(t, err)
	assert.Equal(t, "warn", store.GetString("log.level"))
	assert.Equal(t, domain.LogLevelWarn, service.LogLevel())
	assert.Equal(t, logger.LevelWarn, logger.CurrentLevel())
}

func TestSettingsService_SetLogLevel_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetLogLevel(domain.LogLevel("loud"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetLogLevel_NilStoreStillApplies(t *testing.T) {
	defer logger.SetLevel(logger.LevelInfo)

	service := NewSettingsService(nil)

	err := service.SetLogLevel(domain.LogLevelDebug)

	require.NoError(t, err)
	assert.Equal(t, logger.LevelDebug, logger.CurrentLevel())
}

func TestLoggerLevel(t *testing.T) {
	assert.Equal(t, logger.LevelDebug, LoggerLevel(domain.LogLevelDebug))
	assert.Equal(t, logger.LevelInfo, LoggerLevel(domain.LogLevelInfo))
	assert.Equal(t, logger.LevelWarn, LoggerLevel(domain.LogLevelWarn))
	assert.Equal(t, logger.LevelError, LoggerLevel(domain.LogLevelError))
	assert.Equal(t, logger.LevelInfo, LoggerLevel(domain.LogLevel("unknown")))
}
