package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one setup sheet in full",
	Long: `Show a single setup sheet with both tool lists in setup-step order.

Examples:
  setupsheets show 3
  setupsheets show 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		ExitValidationError(fmt.Sprintf("invalid sheet id: %s", args[0]))
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			ExitRecordNotFound(id)
			return nil
		}
		return fmt.Errorf("failed to load sheet: %w", err)
	}

	printRecordDetail(rec)
	return nil
}
