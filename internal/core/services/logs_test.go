package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

func writeTestLog(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "anagram.log")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0600))
	return path
}

func TestLogService_Info(t *testing.T) {
	path := writeTestLog(t, "line one\nline two\nline three\n")
	service := NewLogService(path)

	info, err := service.Info(context.Background())

	require.NoError(t, err)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len("line one\nline two\nline three\n")), info.SizeBytes)
	assert.Equal(t, 3, info.Entries)
}

func TestLogService_Info_MissingFile(t *testing.T) {
	service := NewLogService(filepath.Join(t.TempDir(), "missing.log"))

	_, err := service.Info(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogService_Tail(t *testing.T) {
	path := writeTestLog(t, "one\ntwo\nthree\nfour\nfive\n")
	service := NewLogService(path)

	lines, err := service.Tail(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"four", "five"}, lines)
}

func TestLogService_Tail_FewerLinesThanRequested(t *testing.T) {
	path := writeTestLog(t, "one\ntwo\n")
	service := NewLogService(path)

	lines, err := service.Tail(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestLogService_Tail_NonPositiveCount(t *testing.T) {
	path := writeTestLog(t, "one\n")
	service := NewLogService(path)

	lines, err := service.Tail(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLogService_Tail_MissingFile(t *testing.T) {
	service := NewLogService(filepath.Join(t.TempDir(), "missing.log"))

	_, err := service.Tail(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
