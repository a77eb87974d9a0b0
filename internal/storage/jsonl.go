package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

// ExportJSONL writes every record to w as one JSON object per line,
// newest first (the store's canonical ordering). Returns the number of
// records written.
func (s *Store) ExportJSONL(w io.Writer) (int, error) {
	records, err := s.ListAll()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal record %d: %w", rec.ID, err)
		}
		if _, err := bw.Write(append(data, '\n')); err != nil {
			return 0, fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	return len(records), nil
}

// ExportJSONLFile writes the snapshot to path atomically via a temp file.
func (s *Store) ExportJSONLFile(path string) (int, error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "sheets-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	count, err := s.ExportJSONL(tmpFile)
	if err != nil {
		tmpFile.Close()
		return 0, err
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return 0, fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("failed to rename temp file: %w", err)
	}
	return count, nil
}

// ImportJSONL reads one JSON record per line from r and inserts each.
// By default records get freshly assigned ids; keepIDs preserves the ids
// in the snapshot (replacing any stored record sharing an id). A line
// that does not parse fails the import with model.ErrMalformedRecord;
// records inserted before the bad line stay inserted.
func (s *Store) ImportJSONL(r io.Reader, keepIDs bool) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	count := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec model.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return count, fmt.Errorf("%w: line %d: %v", model.ErrMalformedRecord, lineNum, err)
		}
		if !keepIDs {
			rec.ID = 0
		}

		if _, err := s.Insert(&rec); err != nil {
			return count, fmt.Errorf("failed to import line %d: %w", lineNum, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read import data: %w", err)
	}
	return count, nil
}

// ImportJSONLFile imports a snapshot from path.
func (s *Store) ImportJSONLFile(path string, keepIDs bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	return s.ImportJSONL(file, keepIDs)
}
