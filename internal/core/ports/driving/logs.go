package driving

import (
	"context"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

// LogService provides read-only inspection of the log file.
type LogService interface {
	// Info returns path, size and entry count of the log file.
	// Returns domain.ErrNotFound if the file does not exist yet.
	Info(ctx context.Context) (domain.LogFileInfo, error)

	// Tail returns the last n log lines, oldest first.
	// Returns domain.ErrNotFound if the file does not exist yet.
	Tail(ctx context.Context, n int) ([]string, error)
}
