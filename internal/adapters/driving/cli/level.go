package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

var levelCmd = &cobra.Command{
	Use:   "level [debug|info|warn|error]",
	Short: "Show or change the log level",
	Long: `Without arguments, prints the configured log level.
With a level name, applies it immediately and persists it for future
invocations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevel,
}

func init() {
	rootCmd.AddCommand(levelCmd)
}

func runLevel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		cmd.Printf("Current log level: %s\n", settingsService.LogLevel())
		return nil
	}

	level, err := domain.ParseLogLevel(args[0])
	if err != nil {
		return fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", args[0])
	}

	if err := settingsService.SetLogLevel(level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	cmd.Printf("Log level set to %s\n", level)
	return nil
}
