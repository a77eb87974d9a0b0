package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/editor"
	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/repository"
	"github.com/CopelandCodes/setupsheets/internal/session"
)

var (
	editTitle      string
	editX          string
	editY          string
	editZ          string
	editNotes      string
	editTools      []string
	editSubTools   []string
	editProjection string
	editBarSize    string
	editColletSize string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing setup sheet",
	Long: `Edit an existing setup sheet.

The form is pre-populated from the stored sheet; only the flags you pass
change. --tool and --sub-tool replace the whole corresponding tool list
when given. The edited sheet must still pass the same required-field
validation as a new one.

Examples:
  setupsheets edit 3 --bar-size 1.50
  setupsheets edit 3 --tool "T1=Face" --tool "T2=Finish OD"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "Part name")
	editCmd.Flags().StringVar(&editX, "x", "", "X offset")
	editCmd.Flags().StringVar(&editY, "y", "", "Y offset")
	editCmd.Flags().StringVar(&editZ, "z", "", "Z offset")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "Free-text notes")
	editCmd.Flags().StringArrayVar(&editTools, "tool", nil, "Replace main spindle tools (NAME=DESC, can be repeated)")
	editCmd.Flags().StringArrayVar(&editSubTools, "sub-tool", nil, "Replace sub spindle tools (NAME=DESC, can be repeated)")
	editCmd.Flags().StringVar(&editProjection, "projection", "", "Projection length")
	editCmd.Flags().StringVar(&editBarSize, "bar-size", "", "Bar size")
	editCmd.Flags().StringVar(&editColletSize, "collet-size", "", "Sub spindle collet size")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	current, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			ExitRecordNotFound(id)
			return nil
		}
		return fmt.Errorf("failed to load sheet: %w", err)
	}

	form := editor.FromRecord(current)
	applyEditFlags(cmd, form)

	rec, err := form.Record(id)
	if err != nil {
		var verr *editor.ValidationError
		if errors.As(err, &verr) {
			ExitValidationError(verr.Error())
			return nil
		}
		return err
	}

	sess, err := session.New(context.Background(), repository.New(store))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()

	if err := sess.Update(rec); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			// The sheet vanished between load and save; from the user's
			// perspective it is already gone.
			ExitRecordNotFound(id)
			return nil
		}
		ExitSaveFailed(err)
		return nil
	}

	if GetJSONOutput() {
		printJSON(map[string]interface{}{"id": id, "updated": true})
	} else {
		notice("Updated sheet %d (%s)", id, rec.Title)
	}
	return nil
}

// applyEditFlags overlays only the flags the user actually set.
func applyEditFlags(cmd *cobra.Command, form *editor.Form) {
	if cmd.Flags().Changed("title") {
		form.Title = editTitle
	}
	if cmd.Flags().Changed("x") {
		form.X = editX
	}
	if cmd.Flags().Changed("y") {
		form.Y = editY
	}
	if cmd.Flags().Changed("z") {
		form.Z = editZ
	}
	if cmd.Flags().Changed("notes") {
		form.Content = editNotes
	}
	if cmd.Flags().Changed("tool") {
		form.MainTools = parseToolFlags(editTools)
	}
	if cmd.Flags().Changed("sub-tool") {
		form.SubTools = parseToolFlags(editSubTools)
	}
	if cmd.Flags().Changed("projection") {
		form.ProjectionLength = editProjection
	}
	if cmd.Flags().Changed("bar-size") {
		form.BarSize = editBarSize
	}
	if cmd.Flags().Changed("collet-size") {
		form.SubSpindleColletSize = editColletSize
	}
}
