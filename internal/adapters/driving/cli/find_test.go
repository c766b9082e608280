package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/anagram-cli/internal/core/domain"
)

func TestFindCmd_Use(t *testing.T) {
	assert.Equal(t, "find [text...]", findCmd.Use)
}

func TestFindCmd_Short(t *testing.T) {
	assert.Equal(t, "Find anagram groups in a text", findCmd.Short)
}

func TestFindCmd_HasFlags(t *testing.T) {
	jsonFlag := findCmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)

	minFlag := findCmd.Flags().Lookup("min-length")
	require.NotNil(t, minFlag)
	assert.Equal(t, "m", minFlag.Shorthand)
	assert.Equal(t, "2", minFlag.DefValue)

	sampleFlag := findCmd.Flags().Lookup("sample")
	require.NotNil(t, sampleFlag)
}

func TestFindCmd_ExecutesWithArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"find", "cat", "tac"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 2 anagram groups:")
	assert.Contains(t, buf.String(), "cat, tac")
	assert.Contains(t, buf.String(), "enlist, listen, silent")
	assert.Contains(t, buf.String(), "5 words in total")
}

func TestFindCmd_JoinsArguments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := anagramService.(*fakeAnagramService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"find", "listen", "silent", "enlist"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "listen silent enlist", fake.lastText)
}

func TestFindCmd_SampleFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := anagramService.(*fakeAnagramService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"find", "--sample"})
	defer func() {
		rootCmd.SetArgs(nil)
		findSample = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, sampleText, fake.lastText)
}

func TestFindCmd_MinLengthFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := anagramService.(*fakeAnagramService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"find", "-m", "4", "enlist", "listen"})
	defer func() {
		rootCmd.SetArgs(nil)
		findMinLength = domain.DefaultMinWordLength
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 4, fake.lastOpts.MinWordLength)
}

func TestFindCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"find", "--json", "cat", "tac"})
	defer func() {
		rootCmd.SetArgs(nil)
		findJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"cat"`)
	assert.Contains(t, buf.String(), `"tac"`)
	assert.NotContains(t, buf.String(), "Found")
}

func TestFindCmd_ReadsPipedStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := anagramService.(*fakeAnagramService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("cat tac dog"))
	rootCmd.SetArgs([]string{"find"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	// Test stdin is never a terminal, so input comes from the reader.
	assert.NoError(t, err)
	assert.Equal(t, "cat tac dog", fake.lastText)
}

func TestFindCmd_ServiceNotConfigured(t *testing.T) {
	oldService := anagramService
	anagramService = nil
	defer func() {
		anagramService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"find", "cat", "tac"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "anagram service not configured")
}

func TestFindCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	anagramService.(*fakeAnagramService).err = errServiceBroken

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"find", "cat"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "find anagrams")
}

func TestOutputFindTable_EmptyResult(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputFindTable(rootCmd, domain.Result{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No anagram groups found.")
}

func TestOutputFindJSON_EmptyResult(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputFindJSON(rootCmd, domain.Result{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}
