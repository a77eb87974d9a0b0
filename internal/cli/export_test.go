package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

func TestExportImportCommands(t *testing.T) {
	t.Run("export writes one JSON object per line", func(t *testing.T) {
		dbFile, cleanup := setupTestEnv(t)
		defer cleanup()

		seedSheet(t, dbFile, "Bracket-7")
		seedSheet(t, dbFile, "Flange-2")

		output, err := runCommand(t, dbFile, "export")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), output)
		}
		var first model.Record
		if jerr := json.Unmarshal([]byte(lines[0]), &first); jerr != nil {
			t.Fatalf("failed to parse first line: %v", jerr)
		}
		if first.Title != "Flange-2" {
			t.Errorf("expected newest sheet first, got %s", first.Title)
		}
	})

	t.Run("round-trips through a file into a fresh store", func(t *testing.T) {
		dbFile, cleanup := setupTestEnv(t)
		defer cleanup()

		seedSheet(t, dbFile, "Bracket-7")
		seedSheet(t, dbFile, "Flange-2")

		exportFile := filepath.Join(filepath.Dir(dbFile), "sheets.jsonl")
		if _, err := runCommand(t, dbFile, "export", "--output", exportFile); err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if _, err := os.Stat(exportFile); err != nil {
			t.Fatalf("expected export file to exist: %v", err)
		}

		freshDB := filepath.Join(filepath.Dir(dbFile), "fresh.db")
		output, err := runCommand(t, freshDB, "import", exportFile)
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if !strings.Contains(output, "Imported 2 sheet(s)") {
			t.Errorf("expected import count, got %q", output)
		}

		listOut, err := runCommand(t, freshDB, "list")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if !strings.Contains(listOut, "Bracket-7") || !strings.Contains(listOut, "Flange-2") {
			t.Errorf("expected both sheets after import, got %q", listOut)
		}
	})

	t.Run("keep-ids preserves identifiers", func(t *testing.T) {
		dbFile, cleanup := setupTestEnv(t)
		defer cleanup()

		seedSheet(t, dbFile, "Bracket-7")
		seedSheet(t, dbFile, "Flange-2")

		exportFile := filepath.Join(filepath.Dir(dbFile), "sheets.jsonl")
		if _, err := runCommand(t, dbFile, "export", "--output", exportFile); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		freshDB := filepath.Join(filepath.Dir(dbFile), "fresh.db")
		if _, err := runCommand(t, freshDB, "import", "--keep-ids", exportFile); err != nil {
			t.Fatalf("import failed: %v", err)
		}

		showOut, err := runCommand(t, freshDB, "--json", "show", "2")
		if err != nil {
			t.Fatalf("show failed: %v", err)
		}
		var rec model.Record
		if jerr := json.Unmarshal([]byte(showOut), &rec); jerr != nil {
			t.Fatalf("failed to parse record: %v", jerr)
		}
		if rec.Title != "Flange-2" {
			t.Errorf("expected sheet 2 to be Flange-2, got %s", rec.Title)
		}
	})

	t.Run("malformed line fails the import", func(t *testing.T) {
		dbFile, cleanup := setupTestEnv(t)
		defer cleanup()

		badFile := filepath.Join(filepath.Dir(dbFile), "bad.jsonl")
		if err := os.WriteFile(badFile, []byte("{not json\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		output, err := runCommand(t, dbFile, "--json", "import", badFile)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", ExitCode)
		}
		if !strings.Contains(output, ErrCodeMalformedData) {
			t.Errorf("expected malformed data code, got %q", output)
		}
	})
}
