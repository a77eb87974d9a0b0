package model

import "strings"

// Record represents a single machine setup sheet.
//
// ID is assigned by the store on first insert; a zero ID means the record
// has not been persisted yet. The two tool lists are ordered: tool numbers
// are sequential setup steps, and that order survives storage round trips.
type Record struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Coordinates          string `json:"coordinates"`
	Content              string `json:"content"`
	MainSpindleTools     []Tool `json:"main_spindle_tools"`
	SubSpindleTools      []Tool `json:"sub_spindle_tools"`
	ProjectionLength     string `json:"projection_length"`
	BarSize              string `json:"bar_size"`
	SubSpindleColletSize string `json:"sub_spindle_collet_size"`
}

// Tool holds one tool entry with its number and description.
// Tools are value types owned by their containing record.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IsBlank returns true when both tool fields are empty after trimming.
func (t Tool) IsBlank() bool {
	return strings.TrimSpace(t.Name) == "" && strings.TrimSpace(t.Description) == ""
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.MainSpindleTools = append([]Tool(nil), r.MainSpindleTools...)
	c.SubSpindleTools = append([]Tool(nil), r.SubSpindleTools...)
	return &c
}

// Matches reports whether the record's title or content contains the query
// as a case-insensitive substring. An empty query matches everything.
func (r *Record) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Content), q)
}
