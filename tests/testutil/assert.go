package testutil

import (
	"errors"
	"testing"
	"time"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/storage"
)

// AssertSheetExists verifies a sheet with the given id exists and has
// the expected title.
func AssertSheetExists(t *testing.T, store *storage.Store, id int64, title string) {
	t.Helper()

	rec, err := store.GetByID(id)
	if err != nil {
		t.Fatalf("expected sheet %d to exist: %v", id, err)
	}
	if rec.Title != title {
		t.Fatalf("expected sheet %d to be %q, got %q", id, title, rec.Title)
	}
}

// AssertSheetGone verifies no sheet with the given id exists.
func AssertSheetGone(t *testing.T, store *storage.Store, id int64) {
	t.Helper()

	_, err := store.GetByID(id)
	if !errors.Is(err, model.ErrRecordNotFound) {
		t.Fatalf("expected sheet %d to be gone, got err=%v", id, err)
	}
}

// WaitForTitles reads from a visible-records channel until an emission
// carries exactly the expected titles in order, or the deadline passes.
// Intermediate emissions are allowed; only convergence matters.
func WaitForTitles(t *testing.T, ch <-chan []*model.Record, want ...string) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	var last []string
	for {
		select {
		case records, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed before reaching %v (last seen %v)", want, last)
			}
			last = titles(records)
			if equalStrings(last, want) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v (last seen %v)", want, last)
		}
	}
}

func titles(records []*model.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
