package tui

import (
	"context"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// MockAnagramService implements driving.AnagramService for TUI tests.
type MockAnagramService struct {
	FindFunc func(
		ctx context.Context, text string, opts domain.FindOptions,
	) (domain.Result, error)
}

func (m *MockAnagramService) FindAnagrams(
	ctx context.Context, text string, opts domain.FindOptions,
) (domain.Result, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, text, opts)
	}
	return domain.Result{}, nil
}

// MockLogService implements driving.LogService for TUI tests.
type MockLogService struct {
	InfoFunc func(ctx context.Context) (domain.LogFileInfo, error)
	TailFunc func(ctx context.Context, n int) ([]string, error)
}

func (m *MockLogService) Info(ctx context.Context) (domain.LogFileInfo, error) {
	if m.InfoFunc != nil {
		return m.InfoFunc(ctx)
	}
	return domain.LogFileInfo{Path: "/tmp/test.log", SizeBytes: 10, Entries: 1}, nil
}

func (m *MockLogService) Tail(ctx context.Context, n int) ([]string, error) {
	if m.TailFunc != nil {
		return m.TailFunc(ctx, n)
	}
	return []string{"entry"}, nil
}

// MockSettingsService implements driving.SettingsService for TUI tests.
type MockSettingsService struct {
	Level  domain.LogLevel
	SetErr error
}

func (m *MockSettingsService) LogLevel() domain.LogLevel {
	if m.Level == "" {
		return domain.LogLevelInfo
	}
	return m.Level
}

func (m *MockSettingsService) SetLogLevel(level domain.LogLevel) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Level = level
	return nil
}
