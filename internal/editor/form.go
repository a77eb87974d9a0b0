// Package editor implements the editing boundary for setup sheets: form
// state, required-field validation, and record construction. Validation
// lives entirely here; nothing invalid ever reaches the repository.
package editor

import (
	"fmt"
	"strings"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

// ValidationError reports the required fields missing from a form.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill out all required fields (missing: %s)",
		strings.Join(e.Missing, ", "))
}

// Form holds the editable field state for one setup sheet, mirroring the
// editor's input rows. Coordinates are held as three separate components
// and recombined into the stored form on save.
type Form struct {
	Title                string
	X, Y, Z              string
	Content              string
	MainTools            []model.Tool
	SubTools             []model.Tool
	ProjectionLength     string
	BarSize              string
	SubSpindleColletSize string
}

// NewForm returns a blank form for create mode.
func NewForm() *Form {
	return &Form{}
}

// FromRecord pre-populates a form from an existing record for edit mode.
// The stored coordinate text is split back into components via the fixed
// pattern; text that does not match leaves the components blank for the
// user to re-enter.
func FromRecord(rec *model.Record) *Form {
	f := &Form{
		Title:                rec.Title,
		Content:              rec.Content,
		MainTools:            append([]model.Tool(nil), rec.MainSpindleTools...),
		SubTools:             append([]model.Tool(nil), rec.SubSpindleTools...),
		ProjectionLength:     rec.ProjectionLength,
		BarSize:              rec.BarSize,
		SubSpindleColletSize: rec.SubSpindleColletSize,
	}
	if coords, ok := model.ParseCoordinates(rec.Coordinates); ok {
		f.X, f.Y, f.Z = coords.X, coords.Y, coords.Z
	}
	return f
}

// Validate checks the required fields: title, all three coordinate
// components, at least one non-blank main spindle tool row, projection
// length, and bar size. Sub spindle tools, collet size and notes are
// optional.
func (f *Form) Validate() error {
	var missing []string

	if strings.TrimSpace(f.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(f.X) == "" {
		missing = append(missing, "X coordinate")
	}
	if strings.TrimSpace(f.Y) == "" {
		missing = append(missing, "Y coordinate")
	}
	if strings.TrimSpace(f.Z) == "" {
		missing = append(missing, "Z coordinate")
	}
	if !hasNonBlankTool(f.MainTools) {
		missing = append(missing, "main spindle tools")
	}
	if strings.TrimSpace(f.ProjectionLength) == "" {
		missing = append(missing, "projection length")
	}
	if strings.TrimSpace(f.BarSize) == "" {
		missing = append(missing, "bar size")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Record validates the form and builds the record to persist. id is the
// existing record's id in edit mode, or zero in create mode. Blank tool
// rows are dropped from both spindles before persistence.
func (f *Form) Record(id int64) (*model.Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	coords := model.Coordinates{
		X: strings.TrimSpace(f.X),
		Y: strings.TrimSpace(f.Y),
		Z: strings.TrimSpace(f.Z),
	}

	return &model.Record{
		ID:                   id,
		Title:                f.Title,
		Coordinates:          coords.String(),
		Content:              f.Content,
		MainSpindleTools:     dropBlankTools(f.MainTools),
		SubSpindleTools:      dropBlankTools(f.SubTools),
		ProjectionLength:     f.ProjectionLength,
		BarSize:              f.BarSize,
		SubSpindleColletSize: f.SubSpindleColletSize,
	}, nil
}

// hasNonBlankTool reports whether at least one row has content.
func hasNonBlankTool(tools []model.Tool) bool {
	for _, tool := range tools {
		if !tool.IsBlank() {
			return true
		}
	}
	return false
}

// dropBlankTools removes fully blank rows, preserving order.
func dropBlankTools(tools []model.Tool) []model.Tool {
	kept := make([]model.Tool, 0, len(tools))
	for _, tool := range tools {
		if !tool.IsBlank() {
			kept = append(kept, tool)
		}
	}
	return kept
}

// ParseToolFlag parses a NAME=DESCRIPTION tool flag value. The part
// before the first '=' is the tool name; everything after it is the
// description. A value with no '=' is a name-only tool.
func ParseToolFlag(value string) model.Tool {
	parts := strings.SplitN(value, "=", 2)
	tool := model.Tool{Name: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		tool.Description = strings.TrimSpace(parts[1])
	}
	return tool
}
