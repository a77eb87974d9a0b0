// Package cli provides the command-line interface for setup sheets.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/config"
	"github.com/CopelandCodes/setupsheets/internal/storage"
)

// Global flags
var (
	jsonOutput bool
	configPath string
	dbPath     string
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "setupsheets",
	Short: "Record and look up CNC machine setup sheets",
	Long: `Setup Sheets is a single-binary tool for machinists to record CNC
machine setup notes: part name, coordinate offsets, tool lists for the
main and sub spindles, bar size, collet size, and projection length.

Records live in a local SQLite database. The list and watch commands
give a live, searchable view; add, edit and rm manage individual sheets.

Examples:
  setupsheets add --title "Bracket-7" --x 1 --y 2 --z 3 \
      --tool "T1=Face" --projection 150 --bar-size 1.25
  setupsheets list --search bracket
  setupsheets watch
  setupsheets show 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/setupsheets/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")
}

// ExitCode is used to communicate exit codes for testing
var ExitCode int

// ExitFunc is the function called to exit the program
// Can be overridden for testing
var ExitFunc = os.Exit

// Exit sets the exit code and calls the exit function
func Exit(code int) {
	ExitCode = code
	ExitFunc(code)
}

// GetJSONOutput returns whether JSON output is enabled
func GetJSONOutput() bool {
	return jsonOutput
}

// IsQuiet returns whether quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// resolveDatabasePath picks the database location: the --db flag wins,
// then the config file, then built-in defaults.
func resolveDatabasePath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	return cfg.DatabasePath(), nil
}

// storeLogf returns the anomaly logger for storage, honoring --quiet.
func storeLogf() storage.LogFunc {
	if quiet {
		return nil
	}
	return func(format string, args ...interface{}) {
		log.Printf(format, args...)
	}
}

// openStore opens the record store for a command invocation. The caller
// owns the returned handle and must Close it.
func openStore() (*storage.Store, error) {
	path, err := resolveDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	store, err := storage.NewStore(path, storeLogf())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}
