// Package logger provides leveled logging for the anagram CLI.
// Messages at or above the current level are printed to stderr and,
// when a log file is configured, appended to it with timestamps.
// The level can be switched at runtime.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level controls which messages are emitted.
type Level int

const (
	// LevelDebug emits everything, including pipeline internals.
	LevelDebug Level = iota
	// LevelInfo is the default operational level.
	LevelInfo
	// LevelWarn emits warnings and errors only.
	LevelWarn
	// LevelError emits errors only.
	LevelError
)

// String returns the level tag used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var (
	mu       sync.RWMutex
	level    Level     = LevelInfo
	output   io.Writer = os.Stderr
	file     *os.File
	filePath string
)

// SetLevel changes the minimum emitted level at runtime.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the active level.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput sets the console writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// OpenFile configures the file sink, creating parent directories as
// needed. Lines are appended; an already-open sink is closed first.
func OpenFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
		file = nil
		filePath = ""
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	file = f
	filePath = path
	return nil
}

// CloseFile closes the file sink if one is open.
func CloseFile() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	filePath = ""
	return err
}

// FilePath returns the file sink path, or "" when none is configured.
func FilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return filePath
}

// Debug logs detailed diagnostic information.
func Debug(format string, args ...any) {
	emit(LevelDebug, format, args...)
}

// Info logs normal operational messages.
func Info(format string, args ...any) {
	emit(LevelInfo, format, args...)
}

// Warn logs indications of potential problems.
func Warn(format string, args ...any) {
	emit(LevelWarn, format, args...)
}

// Error logs failures that did not stop the program.
func Error(format string, args ...any) {
	emit(LevelError, format, args...)
}

// Section prints a section header at debug level.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level > LevelDebug {
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
	if file != nil {
		fmt.Fprintf(file, "%s [DEBUG] === %s ===\n", time.Now().Format(timeFormat), name)
	}
}

const timeFormat = "2006-01-02 15:04:05"

func emit(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if l < level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(output, "[%s] %s\n", l, msg)
	if file != nil {
		fmt.Fprintf(file, "%s [%s] %s\n", time.Now().Format(timeFormat), l, msg)
	}
}
