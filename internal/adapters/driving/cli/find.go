package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

var (
	findJSON      bool
	findMinLength int
	findSample    bool
)

// sampleText exercises Cyrillic and Latin groups in one input.
const sampleText = "кот ток кто отк тко. listen silent enlist. Азора роза."

var findCmd = &cobra.Command{
	Use:   "find [text...]",
	Short: "Find anagram groups in a text",
	Long: `Groups the words of the given text into anagram classes.
Text is taken from the arguments, from stdin when piped in, or from a
built-in sample with --sample. Punctuation and case are ignored;
single-letter words are dropped.`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output groups as JSON")
	findCmd.Flags().IntVarP(&findMinLength, "min-length", "m", domain.DefaultMinWordLength,
		"minimum word length in letters")
	findCmd.Flags().BoolVar(&findSample, "sample", false, "use the built-in sample text")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if anagramService == nil {
		return errors.New("anagram service not configured")
	}

	input, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}

	opts := domain.FindOptions{
		MinWordLength: findMinLength,
	}

	result, err := anagramService.FindAnagrams(cmd.Context(), input, opts)
	if err != nil {
		return fmt.Errorf("find anagrams: %w", err)
	}

	if findJSON {
		return outputFindJSON(cmd, result)
	}

	return outputFindTable(cmd, result)
}

// resolveInput picks the text source: --sample, arguments, or piped
// stdin. An interactive terminal with no arguments is an error; the
// TUI covers that case.
func resolveInput(cmd *cobra.Command, args []string) (string, error) {
	if findSample {
		return sampleText, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no text provided: pass text as arguments, pipe it in, or use --sample")
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func outputFindJSON(cmd *cobra.Command, result domain.Result) error {
	data, err := json.MarshalIndent(result.Lists(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal groups: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFindTable(cmd *cobra.Command, result domain.Result) error {
	if result.Empty() {
		cmd.Println("No anagram groups found.")
		return nil
	}

	cmd.Printf("Found %d anagram groups:\n", len(result.Groups))
	cmd.Println()
	for i, group := range result.Groups {
		cmd.Printf("  [%d] %s\n", i+1, strings.Join(group.Words, ", "))
	}
	cmd.Println()
	cmd.Printf("%d words in total\n", result.TotalWords())

	return nil
}
