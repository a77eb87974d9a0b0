package cli

import (
	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/storage"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List setup sheets",
	Long: `List setup sheets, newest first.

--search narrows the list to sheets whose title or notes contain the
term (case-insensitive). For a continuously updating view, use watch.

Examples:
  setupsheets list
  setupsheets list --search bracket
  setupsheets list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by title/notes substring")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := listRecords(store)
	if err != nil {
		return err
	}

	printRecordList(records)
	return nil
}

// listRecords runs the one-shot query for the current search flag.
func listRecords(store *storage.Store) ([]*model.Record, error) {
	if listSearch != "" {
		return store.Search(listSearch)
	}
	return store.ListAll()
}
