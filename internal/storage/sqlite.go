// Package storage provides persistent storage for setup sheet records.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

// LogFunc is called to log non-fatal anomalies (malformed rows and the like).
type LogFunc func(format string, args ...interface{})

// SQLiteStore persists setup sheet records in a single-table SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	logf   LogFunc
}

// OpenSQLite opens (or creates) the database at dbPath and ensures the schema.
func OpenSQLite(dbPath string, logf LogFunc) (*SQLiteStore, error) {
	if logf == nil {
		logf = func(format string, args ...interface{}) {} // no-op
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{
		db:     db,
		dbPath: dbPath,
		logf:   logf,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initSchema creates the sheets table if it doesn't exist.
func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sheets (
			id                      INTEGER PRIMARY KEY AUTOINCREMENT,
			title                   TEXT NOT NULL,
			coordinates             TEXT NOT NULL,
			content                 TEXT NOT NULL,
			main_spindle_tools      TEXT NOT NULL,
			sub_spindle_tools       TEXT NOT NULL,
			projection_length       TEXT NOT NULL,
			bar_size                TEXT NOT NULL,
			sub_spindle_collet_size TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create sheets table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Reset drops the sheets table and recreates it empty.
// This is the only schema migration the tool supports.
func (s *SQLiteStore) Reset() error {
	if _, err := s.db.Exec(`DROP TABLE IF EXISTS sheets`); err != nil {
		return fmt.Errorf("failed to drop sheets table: %w", err)
	}
	// sqlite_sequence only exists after the first AUTOINCREMENT insert
	s.db.Exec(`DELETE FROM sqlite_sequence WHERE name = 'sheets'`)
	return s.initSchema()
}

const sheetColumns = `id, title, coordinates, content, main_spindle_tools,
	sub_spindle_tools, projection_length, bar_size, sub_spindle_collet_size`

// Insert persists a new record and returns the assigned id.
// A zero id lets SQLite assign the next value; an explicit id uses
// replace-on-conflict semantics, matching the store's upsert contract.
func (s *SQLiteStore) Insert(rec *model.Record) (int64, error) {
	mainTools, subTools, err := encodeToolColumns(rec)
	if err != nil {
		return 0, err
	}

	var result sql.Result
	if rec.ID == 0 {
		result, err = s.db.Exec(`
			INSERT INTO sheets (title, coordinates, content, main_spindle_tools,
				sub_spindle_tools, projection_length, bar_size, sub_spindle_collet_size)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.Title, rec.Coordinates, rec.Content, mainTools, subTools,
			rec.ProjectionLength, rec.BarSize, rec.SubSpindleColletSize)
	} else {
		result, err = s.db.Exec(`
			INSERT OR REPLACE INTO sheets (`+sheetColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.Title, rec.Coordinates, rec.Content, mainTools, subTools,
			rec.ProjectionLength, rec.BarSize, rec.SubSpindleColletSize)
	}
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return 0, fmt.Errorf("%w: %v", model.ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned id: %w", err)
	}
	return id, nil
}

// Update replaces the stored record sharing rec.ID.
// Returns model.ErrRecordNotFound when no such record exists.
func (s *SQLiteStore) Update(rec *model.Record) error {
	mainTools, subTools, err := encodeToolColumns(rec)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE sheets
		SET title = ?, coordinates = ?, content = ?, main_spindle_tools = ?,
			sub_spindle_tools = ?, projection_length = ?, bar_size = ?,
			sub_spindle_collet_size = ?
		WHERE id = ?
	`, rec.Title, rec.Coordinates, rec.Content, mainTools, subTools,
		rec.ProjectionLength, rec.BarSize, rec.SubSpindleColletSize, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

// Delete removes the record with rec.ID. Deleting an absent record is a
// no-op, not an error. Returns true when a row was actually removed.
func (s *SQLiteStore) Delete(rec *model.Record) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM sheets WHERE id = ?`, rec.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetByID retrieves a single record by id.
func (s *SQLiteStore) GetByID(id int64) (*model.Record, error) {
	row := s.db.QueryRow(`SELECT `+sheetColumns+` FROM sheets WHERE id = ?`, id)

	rec, err := s.scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// ListAll returns every record ordered by id descending.
func (s *SQLiteStore) ListAll() ([]*model.Record, error) {
	return s.queryRecords(`SELECT ` + sheetColumns + ` FROM sheets ORDER BY id DESC`)
}

// Search returns records whose title or content contains term as a
// case-insensitive substring, ordered by id descending. Matching runs in
// memory through the same predicate the live view uses, so one-shot and
// live searches agree on case folding beyond ASCII (SQLite's LIKE does
// not fold non-ASCII letters).
func (s *SQLiteStore) Search(term string) ([]*model.Record, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Record, 0, len(records))
	for _, rec := range records {
		if rec.Matches(term) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sheets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// queryRecords runs a SELECT over sheetColumns and scans all rows.
func (s *SQLiteStore) queryRecords(query string, args ...interface{}) ([]*model.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*model.Record
	for rows.Next() {
		rec, err := s.scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanRecord scans one row into a Record and decodes both tool columns.
// A malformed tool column degrades to an empty list with a logged anomaly
// so one bad row can never break the whole list view.
func (s *SQLiteStore) scanRecord(scan func(dest ...interface{}) error) (*model.Record, error) {
	var rec model.Record
	var mainTools, subTools string

	err := scan(&rec.ID, &rec.Title, &rec.Coordinates, &rec.Content,
		&mainTools, &subTools, &rec.ProjectionLength, &rec.BarSize,
		&rec.SubSpindleColletSize)
	if err != nil {
		return nil, err
	}

	rec.MainSpindleTools, err = model.DecodeTools(mainTools)
	if err != nil {
		s.logf("record %d: malformed main spindle tool data: %v", rec.ID, err)
		rec.MainSpindleTools = []model.Tool{}
	}
	rec.SubSpindleTools, err = model.DecodeTools(subTools)
	if err != nil {
		s.logf("record %d: malformed sub spindle tool data: %v", rec.ID, err)
		rec.SubSpindleTools = []model.Tool{}
	}

	return &rec, nil
}

// encodeToolColumns serializes both tool lists for storage.
func encodeToolColumns(rec *model.Record) (string, string, error) {
	mainTools, err := model.EncodeTools(rec.MainSpindleTools)
	if err != nil {
		return "", "", err
	}
	subTools, err := model.EncodeTools(rec.SubSpindleTools)
	if err != nil {
		return "", "", err
	}
	return mainTools, subTools, nil
}
