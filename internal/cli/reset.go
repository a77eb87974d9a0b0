package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all sheets and restart identifiers",
	Long: `Drop every setup sheet and reset the identifier sequence so the next
sheet gets id 1. This cannot be undone.

Examples:
  setupsheets reset
  setupsheets reset --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		// JSON mode is non-interactive; destruction needs explicit consent.
		if GetJSONOutput() {
			ExitValidationError("reset requires --yes with --json")
			return nil
		}
		if !confirmDelete("Delete ALL sheets?") {
			notice("Aborted.")
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}

	notice("All sheets deleted.")
	if GetJSONOutput() {
		printJSON(map[string]interface{}{"reset": true})
	}
	return nil
}
