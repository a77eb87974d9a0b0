package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/editor"
	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/repository"
	"github.com/CopelandCodes/setupsheets/internal/session"
)

var (
	addTitle      string
	addX          string
	addY          string
	addZ          string
	addNotes      string
	addTools      []string
	addSubTools   []string
	addProjection string
	addBarSize    string
	addColletSize string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new setup sheet",
	Long: `Add a new setup sheet.

Required: --title, all three coordinates, at least one --tool entry,
--projection and --bar-size. Tool entries are NAME=DESCRIPTION and are
kept in the order given; tool numbers are sequential setup steps.

Examples:
  setupsheets add --title "Bracket-7" --x 1 --y 2 --z 3 \
      --tool "T1=Face" --tool "T2=Rough OD" \
      --projection 150 --bar-size 1.25
  setupsheets add --title "Flange-2" --x 0 --y 0 --z 1.5 \
      --tool "T1=Drill 5mm" --sub-tool "T21=Part off" \
      --projection 80 --bar-size 0.75 --collet-size 16C`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Part name (required)")
	addCmd.Flags().StringVar(&addX, "x", "", "X offset (required)")
	addCmd.Flags().StringVar(&addY, "y", "", "Y offset (required)")
	addCmd.Flags().StringVar(&addZ, "z", "", "Z offset (required)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-text notes")
	addCmd.Flags().StringArrayVar(&addTools, "tool", nil, "Main spindle tool NAME=DESC (can be repeated)")
	addCmd.Flags().StringArrayVar(&addSubTools, "sub-tool", nil, "Sub spindle tool NAME=DESC (can be repeated)")
	addCmd.Flags().StringVar(&addProjection, "projection", "", "Projection length (required)")
	addCmd.Flags().StringVar(&addBarSize, "bar-size", "", "Bar size (required)")
	addCmd.Flags().StringVar(&addColletSize, "collet-size", "", "Sub spindle collet size")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	form := &editor.Form{
		Title:                addTitle,
		X:                    addX,
		Y:                    addY,
		Z:                    addZ,
		Content:              addNotes,
		MainTools:            parseToolFlags(addTools),
		SubTools:             parseToolFlags(addSubTools),
		ProjectionLength:     addProjection,
		BarSize:              addBarSize,
		SubSpindleColletSize: addColletSize,
	}

	// Validation is resolved entirely at this boundary: an invalid form
	// never opens a session or touches the store.
	rec, err := form.Record(0)
	if err != nil {
		var verr *editor.ValidationError
		if errors.As(err, &verr) {
			ExitValidationError(verr.Error())
			return nil
		}
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := session.New(context.Background(), repository.New(store))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()

	id, err := sess.Add(rec)
	if err != nil {
		ExitSaveFailed(err)
		return nil
	}

	if GetJSONOutput() {
		printJSON(map[string]interface{}{"id": id, "saved": true})
	} else {
		notice("Saved sheet %d (%s)", id, rec.Title)
	}
	return nil
}

// parseToolFlags converts repeated NAME=DESC flag values to tools,
// preserving order.
func parseToolFlags(values []string) []model.Tool {
	tools := make([]model.Tool, 0, len(values))
	for _, value := range values {
		tools = append(tools, editor.ParseToolFlag(value))
	}
	return tools
}
