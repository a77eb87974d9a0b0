// Package testutil provides shared helpers for integration tests of the
// setup sheets store and session.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/storage"
)

// SetupStore opens a fresh store in a temporary directory. The store is
// closed and the directory removed automatically via t.Cleanup.
func SetupStore(t *testing.T) *storage.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sheets.db")
	store, err := storage.NewStore(dbPath, t.Logf)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SetupStoreWithSheets opens a fresh store pre-populated with the given
// sheets, inserted in order.
func SetupStoreWithSheets(t *testing.T, sheets ...*model.Record) *storage.Store {
	t.Helper()

	store := SetupStore(t)
	for _, sheet := range sheets {
		if _, err := store.Insert(sheet); err != nil {
			t.Fatalf("failed to insert sheet %q: %v", sheet.Title, err)
		}
	}
	return store
}

// Sheet builds a valid minimal record with the given title.
func Sheet(title string) *model.Record {
	return &model.Record{
		Title:            title,
		Coordinates:      "X:1 Y:2 Z:3",
		MainSpindleTools: []model.Tool{{Name: "T1", Description: "Face"}},
		ProjectionLength: "150",
		BarSize:          "1.25",
	}
}
