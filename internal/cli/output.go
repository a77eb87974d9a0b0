package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

var (
	idColor     = color.New(color.FgCyan)
	titleColor  = color.New(color.Bold)
	labelColor  = color.New(color.FgYellow)
	noticeColor = color.New(color.FgGreen)
)

// printRecordLine prints the one-line list form of a record.
func printRecordLine(rec *model.Record) {
	fmt.Printf("%s  %s  %s  bar %s\n",
		idColor.Sprintf("%4d", rec.ID),
		titleColor.Sprintf("%-24s", rec.Title),
		rec.Coordinates,
		rec.BarSize)
}

// printRecordList prints records one per line, or as a JSON array.
func printRecordList(records []*model.Record) {
	if GetJSONOutput() {
		printJSON(records)
		return
	}
	if len(records) == 0 {
		if !IsQuiet() {
			fmt.Println("No sheets found.")
		}
		return
	}
	for _, rec := range records {
		printRecordLine(rec)
	}
}

// printRecordDetail prints the full sheet, tool tables included.
func printRecordDetail(rec *model.Record) {
	if GetJSONOutput() {
		printJSON(rec)
		return
	}

	fmt.Printf("%s %s\n", idColor.Sprintf("#%d", rec.ID), titleColor.Sprint(rec.Title))
	fmt.Printf("%s %s\n", labelColor.Sprint("Coordinates:"), rec.Coordinates)
	fmt.Printf("%s %s\n", labelColor.Sprint("Projection length:"), rec.ProjectionLength)
	fmt.Printf("%s %s\n", labelColor.Sprint("Bar size:"), rec.BarSize)
	if rec.SubSpindleColletSize != "" {
		fmt.Printf("%s %s\n", labelColor.Sprint("Sub spindle collet:"), rec.SubSpindleColletSize)
	}

	printToolTable("Main spindle tools:", rec.MainSpindleTools)
	if len(rec.SubSpindleTools) > 0 {
		printToolTable("Sub spindle tools:", rec.SubSpindleTools)
	}

	if rec.Content != "" {
		fmt.Printf("%s\n%s\n", labelColor.Sprint("Notes:"), rec.Content)
	}
}

// printToolTable prints one spindle's tools in setup-step order.
func printToolTable(header string, tools []model.Tool) {
	fmt.Println(labelColor.Sprint(header))
	if len(tools) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, tool := range tools {
		fmt.Printf("  %-8s %s\n", tool.Name, tool.Description)
	}
}

// printJSON marshals v to stdout.
func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("{}")
		return
	}
	fmt.Println(string(data))
}

// notice prints a transient confirmation line unless quiet.
func notice(format string, args ...interface{}) {
	if IsQuiet() || GetJSONOutput() {
		return
	}
	fmt.Println(noticeColor.Sprintf(format, args...))
}
