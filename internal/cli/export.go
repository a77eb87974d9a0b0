package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sheets as JSON Lines",
	Long: `Write every setup sheet as one JSON object per line, newest first.
Without --output the lines go to stdout.

Examples:
  setupsheets export
  setupsheets export --output sheets.jsonl`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var count int
	if exportOutput != "" {
		count, err = store.ExportJSONLFile(exportOutput)
	} else {
		count, err = store.ExportJSONL(os.Stdout)
	}
	if err != nil {
		return fmt.Errorf("failed to export sheets: %w", err)
	}

	if exportOutput != "" {
		notice("Exported %d sheet(s) to %s", count, exportOutput)
	}
	return nil
}
