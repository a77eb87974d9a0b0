package integration

import (
	"context"
	"testing"

	"github.com/CopelandCodes/setupsheets/internal/repository"
	"github.com/CopelandCodes/setupsheets/internal/session"
	"github.com/CopelandCodes/setupsheets/tests/testutil"
)

// TestSheetLifecycle drives a sheet through its full life via the
// session: add, observe, filter, edit, delete.
func TestSheetLifecycle(t *testing.T) {
	store := testutil.SetupStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess, err := session.New(ctx, repository.New(store))
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	defer sess.Close()

	// Initial emission: empty store
	testutil.WaitForTitles(t, sess.Visible())

	// Add two sheets; the view converges newest first
	id1, err := sess.Add(testutil.Sheet("Bracket-7"))
	if err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	id2, err := sess.Add(testutil.Sheet("Flange-2"))
	if err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	testutil.WaitForTitles(t, sess.Visible(), "Flange-2", "Bracket-7")
	testutil.AssertSheetExists(t, store, id1, "Bracket-7")
	testutil.AssertSheetExists(t, store, id2, "Flange-2")

	// Filter narrows the view without touching the store
	sess.SetFilter("bracket")
	testutil.WaitForTitles(t, sess.Visible(), "Bracket-7")
	testutil.AssertSheetExists(t, store, id2, "Flange-2")

	// Clearing the filter restores the full view
	sess.SetFilter("")
	testutil.WaitForTitles(t, sess.Visible(), "Flange-2", "Bracket-7")

	// Edit keeps identity, view picks up the new title
	rec, err := store.GetByID(id1)
	if err != nil {
		t.Fatalf("failed to load sheet: %v", err)
	}
	rec.Title = "Bracket-7B"
	if err := sess.Update(rec); err != nil {
		t.Fatalf("failed to update sheet: %v", err)
	}
	testutil.WaitForTitles(t, sess.Visible(), "Flange-2", "Bracket-7B")

	// Delete removes it from store and view
	if err := sess.Delete(rec); err != nil {
		t.Fatalf("failed to delete sheet: %v", err)
	}
	testutil.WaitForTitles(t, sess.Visible(), "Flange-2")
	testutil.AssertSheetGone(t, store, id1)

	// Deleting again is harmless
	if err := sess.Delete(rec); err != nil {
		t.Fatalf("expected repeat delete to succeed, got %v", err)
	}
	testutil.AssertSheetGone(t, store, id1)
}

// TestPrePopulatedStore checks the session's first emission reflects
// sheets inserted before it started.
func TestPrePopulatedStore(t *testing.T) {
	store := testutil.SetupStoreWithSheets(t,
		testutil.Sheet("Bracket-7"),
		testutil.Sheet("Flange-2"),
		testutil.Sheet("Spacer-1"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess, err := session.New(ctx, repository.New(store))
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	defer sess.Close()

	testutil.WaitForTitles(t, sess.Visible(), "Spacer-1", "Flange-2", "Bracket-7")
}
