package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

var (
	logsTail   int
	logsFollow bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect the log file",
	Long: `Shows the log file location, size and entry count, followed by the
most recent entries. With --follow, keeps printing entries as they are
appended until interrupted.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 5, "number of recent entries to show")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "keep printing new entries")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, _ []string) error {
	if logService == nil {
		return errors.New("log service not configured")
	}

	ctx := cmd.Context()

	info, err := logService.Info(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No log file has been written yet.")
			return nil
		}
		return fmt.Errorf("log file info: %w", err)
	}

	cmd.Printf("File:    %s\n", info.Path)
	cmd.Printf("Size:    %d bytes\n", info.SizeBytes)
	cmd.Printf("Entries: %d\n", info.Entries)

	lines, err := logService.Tail(ctx, logsTail)
	if err != nil {
		return fmt.Errorf("tail log file: %w", err)
	}

	if len(lines) > 0 {
		cmd.Println()
		cmd.Printf("Last %d entries:\n", len(lines))
		for _, line := range lines {
			cmd.Printf("  %s\n", line)
		}
	}

	if logsFollow {
		return followLog(cmd, info.Path)
	}
	return nil
}

// followLog prints entries appended to the log file until interrupted.
// A rate limiter collapses bursts of write events into one read.
func followLog(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and log rotation replace files,
	// and a watch on the file itself would go stale.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 1)
	reader := bufio.NewReader(f)
	var pending string

	cmd.Println()
	cmd.Println("Following log (ctrl+c to stop)...")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			// Print complete lines only; a partial line stays pending
			// until its terminator arrives.
			for {
				chunk, err := reader.ReadString('\n')
				if err != nil {
					pending += chunk
					break
				}
				cmd.Print(pending + chunk)
				pending = ""
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		}
	}
}
