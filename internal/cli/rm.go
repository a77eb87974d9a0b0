package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/repository"
	"github.com/CopelandCodes/setupsheets/internal/session"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a setup sheet",
	Long: `Delete a setup sheet after confirmation.

Deleting a sheet that no longer exists is not an error: the end state is
the same either way.

Examples:
  setupsheets rm 3
  setupsheets rm 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVar(&rmYes, "yes", false, "Skip confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
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
			// Idempotent from the user's perspective: already gone.
			notice("Sheet %d is already gone", id)
			return nil
		}
		return fmt.Errorf("failed to load sheet: %w", err)
	}

	if !rmYes && !confirmDelete(fmt.Sprintf("Delete sheet %d (%s)?", rec.ID, rec.Title)) {
		notice("Cancelled")
		return nil
	}

	sess, err := session.New(context.Background(), repository.New(store))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()

	if err := sess.Delete(rec); err != nil {
		ExitSaveFailed(err)
		return nil
	}

	if GetJSONOutput() {
		printJSON(map[string]interface{}{"id": id, "deleted": true})
	} else {
		notice("Deleted sheet %d (%s)", id, rec.Title)
	}
	return nil
}

// confirmDelete prompts for confirmation on stdin.
func confirmDelete(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
