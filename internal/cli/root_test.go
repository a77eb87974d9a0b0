package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// setupTestEnv prepares an isolated database path and mocks the exit
// function so commands under test record their exit code instead of
// terminating the process.
func setupTestEnv(t *testing.T) (dbFile string, cleanup func()) {
	t.Helper()
	dbFile = filepath.Join(t.TempDir(), "sheets.db")

	origExitFunc := ExitFunc
	ExitFunc = func(code int) {
		ExitCode = code
		// Don't actually exit in tests
	}
	ExitCode = 0
	resetFlags()

	cleanup = func() {
		resetFlags()
		ExitFunc = origExitFunc
		ExitCode = 0
	}
	return dbFile, cleanup
}

// resetFlags resets global command flags for test isolation.
func resetFlags() {
	// Global flags
	jsonOutput = false
	configPath = ""
	dbPath = ""
	quiet = false
	// add command flags
	addTitle = ""
	addX = ""
	addY = ""
	addZ = ""
	addNotes = ""
	addTools = nil
	addSubTools = nil
	addProjection = ""
	addBarSize = ""
	addColletSize = ""
	// edit command flags
	editTitle = ""
	editX = ""
	editY = ""
	editZ = ""
	editNotes = ""
	editTools = nil
	editSubTools = nil
	editProjection = ""
	editBarSize = ""
	editColletSize = ""
	// list command flags
	listSearch = ""
	// rm command flags
	rmYes = false
	// reset command flags
	resetYes = false
	// export/import command flags
	exportOutput = ""
	importKeepIDs = false
	// watch command flags
	watchSearch = ""

	// Clear cobra's changed-state so edit's flag overlay starts fresh
	rootCmd.PersistentFlags().Visit(func(f *pflag.Flag) { f.Changed = false })
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
	}
}

// runCommand executes a CLI invocation in-process against the given
// database and returns captured stdout.
func runCommand(t *testing.T, dbFile string, args ...string) (output string, err error) {
	t.Helper()
	resetFlags()
	ExitCode = 0

	oldStdout := os.Stdout
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create pipe: %v", pipeErr)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	rootCmd.SetArgs(append([]string{"--db", dbFile}, args...))
	err = rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout
	output = <-done
	return output, err
}

// seedSheet adds a minimal valid sheet through the CLI and returns
// nothing; identifiers are assigned in insertion order starting at 1.
func seedSheet(t *testing.T, dbFile, title string) {
	t.Helper()
	_, err := runCommand(t, dbFile, "add",
		"--title", title,
		"--x", "1", "--y", "2", "--z", "3",
		"--tool", "T1=Face",
		"--projection", "150",
		"--bar-size", "1.25")
	if err != nil {
		t.Fatalf("failed to seed sheet %q: %v", title, err)
	}
	if ExitCode != 0 {
		t.Fatalf("failed to seed sheet %q: exit code %d", title, ExitCode)
	}
}
