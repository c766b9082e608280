package services

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
)

// Ensure LogService implements the interface.
var _ driving.LogService = (*LogService)(nil)

// LogService inspects the on-disk log file.
type LogService struct {
	path string
}

// NewLogService creates a log service for the given file path.
func NewLogService(path string) *LogService {
	return &LogService{path: path}
}

// Info returns path, size and entry count of the log file.
func (s *LogService) Info(_ context.Context) (domain.LogFileInfo, error) {
	stat, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.LogFileInfo{}, fmt.Errorf("log file %s: %w", s.path, domain.ErrNotFound)
		}
		return domain.LogFileInfo{}, fmt.Errorf("stat log file: %w", err)
	}

	lines, err := s.readLines()
	if err != nil {
		return domain.LogFileInfo{}, err
	}

	return domain.LogFileInfo{
		Path:      s.path,
		SizeBytes: stat.Size(),
		Entries:   len(lines),
	}, nil
}

// Tail returns the last n log lines, oldest first.
func (s *LogService) Tail(_ context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// readLines loads the whole log file. Log files here are transient and
// small, so a full read keeps the code simple.
func (s *LogService) readLines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("log file %s: %w", s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return lines, nil
}
