package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

var importKeepIDs bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sheets from a JSON Lines file",
	Long: `Read one JSON object per line and insert each as a setup sheet.
By default imported sheets get fresh identifiers; --keep-ids preserves
the identifiers from the file, replacing any existing sheet with the
same identifier. Use '-' to read from stdin.

Examples:
  setupsheets import sheets.jsonl
  setupsheets import --keep-ids sheets.jsonl
  cat sheets.jsonl | setupsheets import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importKeepIDs, "keep-ids", false, "Preserve sheet identifiers from the file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var count int
	if args[0] == "-" {
		count, err = store.ImportJSONL(os.Stdin, importKeepIDs)
	} else {
		count, err = store.ImportJSONLFile(args[0], importKeepIDs)
	}
	if err != nil {
		if errors.Is(err, model.ErrMalformedRecord) {
			ExitWithError(1, ErrCodeMalformedData, err.Error(), nil)
			return nil
		}
		return fmt.Errorf("failed to import sheets: %w", err)
	}

	notice("Imported %d sheet(s)", count)
	if GetJSONOutput() {
		printJSON(map[string]interface{}{"imported": count})
	}
	return nil
}
