package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Matches(t *testing.T) {
	rec := &Record{Title: "Bracket-Search", Content: "0.75in hex stock"}

	t.Run("blank query matches", func(t *testing.T) {
		assert.True(t, rec.Matches(""))
		assert.True(t, rec.Matches("   "))
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		assert.True(t, rec.Matches("search"))
		assert.True(t, rec.Matches("BRACKET"))
	})

	t.Run("content match", func(t *testing.T) {
		assert.True(t, rec.Matches("hex"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, rec.Matches("flange"))
	})
}

func TestRecord_Clone(t *testing.T) {
	orig := &Record{
		ID:               3,
		Title:            "Bracket-7",
		MainSpindleTools: []Tool{{Name: "T1", Description: "Face"}},
		SubSpindleTools:  []Tool{{Name: "T21", Description: "Part off"}},
	}

	clone := orig.Clone()
	assert.Equal(t, orig, clone)

	// Mutating the clone's tool lists must not touch the original.
	clone.MainSpindleTools[0].Name = "T9"
	assert.Equal(t, "T1", orig.MainSpindleTools[0].Name)
}

func TestTool_IsBlank(t *testing.T) {
	assert.True(t, Tool{}.IsBlank())
	assert.True(t, Tool{Name: "  ", Description: "\t"}.IsBlank())
	assert.False(t, Tool{Name: "T1"}.IsBlank())
	assert.False(t, Tool{Description: "Face"}.IsBlank())
}
