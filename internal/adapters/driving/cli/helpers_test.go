package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// fakeAnagramService returns a canned result.
type fakeAnagramService struct {
	result   domain.Result
	err      error
	lastText string
	lastOpts domain.FindOptions
}

func (s *fakeAnagramService) FindAnagrams(
	_ context.Context, text string, opts domain.FindOptions,
) (domain.Result, error) {
	s.lastText = text
	s.lastOpts = opts
	return s.result, s.err
}

// fakeLogService serves canned log file data.
type fakeLogService struct {
	info  domain.LogFileInfo
	lines []string
	err   error
}

func (s *fakeLogService) Info(_ context.Context) (domain.LogFileInfo, error) {
	if s.err != nil {
		return domain.LogFileInfo{}, s.err
	}
	return s.info, nil
}

func (s *fakeLogService) Tail(_ context.Context, n int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.lines) > n {
		return s.lines[len(s.lines)-n:], nil
	}
	return s.lines, nil
}

// fakeSettingsService tracks the applied level in memory.
type fakeSettingsService struct {
	level  domain.LogLevel
	setErr error
}

func (s *fakeSettingsService) LogLevel() domain.LogLevel {
	if s.level == "" {
		return domain.LogLevelInfo
	}
	return s.level
}

func (s *fakeSettingsService) SetLogLevel(level domain.LogLevel) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.level = level
	return nil
}

// defaultTestResult mirrors a two-group finding.
func defaultTestResult() domain.Result {
	return domain.Result{Groups: []domain.Group{
		{Key: "act", Words: []string{"cat", "tac"}},
		{Key: "eilnst", Words: []string{"enlist", "listen", "silent"}},
	}}
}

// setupTestServices swaps the package services for fakes and returns a
// cleanup restoring the originals.
func setupTestServices() func() {
	oldAnagram := anagramService
	oldLogs := logService
	oldSettings := settingsService

	anagramService = &fakeAnagramService{result: defaultTestResult()}
	logService = &fakeLogService{
		info: domain.LogFileInfo{
			Path:      "/tmp/anagram-test.log",
			SizeBytes: 128,
			Entries:   4,
		},
		lines: []string{"entry one", "entry two", "entry three", "entry four"},
	}
	settingsService = &fakeSettingsService{level: domain.LogLevelInfo}

	return func() {
		anagramService = oldAnagram
		logService = oldLogs
		settingsService = oldSettings
	}
}

// errNotConfigured helps asserting service-missing paths.
var errServiceBroken = errors.New("service broken")
