// Package cli implements the cobra command surface of the anagram CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/anagram-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/anagram-cli/internal/adapters/driven/trace"
	"github.com/custodia-labs/anagram-cli/internal/core/domain"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driven"
	"github.com/custodia-labs/anagram-cli/internal/core/ports/driving"
	"github.com/custodia-labs/anagram-cli/internal/core/services"
	"github.com/custodia-labs/anagram-cli/internal/logger"
	"github.com/custodia-labs/anagram-cli/internal/normalisers/text"
	"github.com/custodia-labs/anagram-cli/internal/tokenisers/whitespace"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired in Execute; tests may swap them.
var (
	anagramService  driving.AnagramService
	logService      driving.LogService
	settingsService driving.SettingsService
)

var (
	flagVerbose   bool
	flagLogLevel  string
	flagLogFile   string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "anagram",
	Short: "Group words of a text into anagram classes",
	Long: `Anagram groups the words of an input text into anagram classes:
words that are letter-permutations of one another. Latin and Cyrillic
texts are supported alike.

Run "anagram find" for one-shot grouping or "anagram tui" for the
interactive interface.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "log file path")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.anagram)")
}

// Execute wires the services and runs the root command.
func Execute() error {
	wireServices()
	defer func() {
		_ = logger.CloseFile()
	}()
	return rootCmd.Execute()
}

// wireServices builds the adapters and services the commands use.
// Configuration problems degrade to console-only logging rather than
// preventing the core from running.
func wireServices() {
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		logger.Warn("Config store unavailable: %v", err)
		store = nil
	}

	settings := services.NewSettingsService(configStoreOrNil(store))
	settingsService = settings

	logger.SetLevel(services.LoggerLevel(resolveLevel(settings)))

	logPath := resolveLogPath(store)
	if err := logger.OpenFile(logPath); err != nil {
		logger.Warn("Log file unavailable, console only: %v", err)
	}
	logService = services.NewLogService(logPath)

	core := services.NewAnagramService(text.New(), whitespace.New())
	anagramService = services.NewTracedAnagramService(core, trace.New())
}

// configStoreOrNil converts a possibly-nil concrete store to the port
// type. A plain assignment would wrap the nil pointer in a non-nil
// interface and defeat the nil guards downstream.
func configStoreOrNil(store *file.ConfigStore) driven.ConfigStore {
	if store == nil {
		return nil
	}
	return store
}

// resolveLevel picks the log level: explicit flag, then --verbose,
// then the persisted setting.
func resolveLevel(settings driving.SettingsService) domain.LogLevel {
	if flagLogLevel != "" {
		if level, err := domain.ParseLogLevel(flagLogLevel); err == nil {
			return level
		}
		logger.Warn("Ignoring invalid --log-level %q", flagLogLevel)
	}
	if flagVerbose {
		return domain.LogLevelDebug
	}
	return settings.LogLevel()
}

// resolveLogPath picks the log file location: explicit flag, then the
// configured path, then <config dir>/logs/anagram.log.
func resolveLogPath(store *file.ConfigStore) string {
	if flagLogFile != "" {
		return flagLogFile
	}
	if store != nil {
		if configured := store.GetString("log.file"); configured != "" {
			return configured
		}
		return filepath.Join(filepath.Dir(store.Path()), "logs", "anagram.log")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("logs", "anagram.log")
	}
	return filepath.Join(home, ".anagram", "logs", "anagram.log")
}
