package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/CopelandCodes/setupsheets/internal/model"
)

// Store combines the SQLite layer with change notification, turning
// one-shot queries into live ones. It is constructed once by the
// composition root and injected wherever records are needed; there is no
// package-level singleton.
type Store struct {
	sqlite  *SQLiteStore
	notify  *notifier
	watcher *Watcher
	logf    LogFunc

	// closing is closed before the database handle, so observers can tell
	// a shutdown-time query failure from a real one.
	closing   chan struct{}
	closeOnce sync.Once
}

// NewStore opens the database at dbPath and wires up change notification.
// logf receives non-fatal anomalies; nil disables logging.
func NewStore(dbPath string, logf LogFunc) (*Store, error) {
	if logf == nil {
		logf = func(format string, args ...interface{}) {}
	}

	sqlite, err := OpenSQLite(dbPath, logf)
	if err != nil {
		return nil, err
	}

	return &Store{
		sqlite:  sqlite,
		notify:  newNotifier(),
		closing: make(chan struct{}),
		logf:    logf,
	}, nil
}

// Close stops the external watcher (if running) and closes the database.
// Safe to call more than once.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closing)
		if s.watcher != nil {
			s.watcher.Close()
			s.watcher = nil
		}
		err = s.sqlite.Close()
	})
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.sqlite.Path()
}

// WatchExternal starts a filesystem watcher on the database file so
// mutations made by other processes also trigger live re-emission.
// Call once, before long-lived observation; Close tears it down.
func (s *Store) WatchExternal() error {
	if s.watcher != nil {
		return nil
	}
	w, err := NewWatcher(s.sqlite.Path(), s.notify.Notify, s.logf)
	if err != nil {
		return fmt.Errorf("failed to watch database file: %w", err)
	}
	if err := w.Start(); err != nil {
		w.Close()
		return fmt.Errorf("failed to start database watcher: %w", err)
	}
	s.watcher = w
	return nil
}

// Version returns the store's logical version. It increases by one per
// locally committed mutation.
func (s *Store) Version() uint64 {
	return s.notify.Version()
}

// Insert persists a new record, returns the assigned id, and notifies
// live observers.
func (s *Store) Insert(rec *model.Record) (int64, error) {
	id, err := s.sqlite.Insert(rec)
	if err != nil {
		return 0, err
	}
	s.notify.Notify()
	return id, nil
}

// Update replaces the stored record with rec.ID and notifies observers.
func (s *Store) Update(rec *model.Record) error {
	if err := s.sqlite.Update(rec); err != nil {
		return err
	}
	s.notify.Notify()
	return nil
}

// Delete removes the record with rec.ID. Absent records are a no-op;
// observers are only notified when a row was actually removed.
func (s *Store) Delete(rec *model.Record) error {
	removed, err := s.sqlite.Delete(rec)
	if err != nil {
		return err
	}
	if removed {
		s.notify.Notify()
	}
	return nil
}

// GetByID retrieves a single record.
func (s *Store) GetByID(id int64) (*model.Record, error) {
	return s.sqlite.GetByID(id)
}

// ListAll returns every record ordered by id descending.
func (s *Store) ListAll() ([]*model.Record, error) {
	return s.sqlite.ListAll()
}

// Search returns records matching term, ordered by id descending.
func (s *Store) Search(term string) ([]*model.Record, error) {
	return s.sqlite.Search(term)
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	return s.sqlite.Count()
}

// Reset destructively recreates the schema and notifies observers.
func (s *Store) Reset() error {
	if err := s.sqlite.Reset(); err != nil {
		return err
	}
	s.notify.Notify()
	return nil
}

// ObserveAll returns a live, order-preserving view of all records,
// ordered by id descending. The first snapshot is delivered immediately;
// afterwards every committed mutation triggers a re-query and re-emission.
// Delivery coalesces under load (latest state wins, the final state is
// never missed) and two snapshots never arrive out of commit order.
// The subscription ends and the channel closes when ctx is cancelled.
func (s *Store) ObserveAll(ctx context.Context) (<-chan []*model.Record, error) {
	id, signal := s.notify.subscribe()

	initial, err := s.sqlite.ListAll()
	if err != nil {
		s.notify.unsubscribe(id)
		return nil, err
	}

	out := make(chan []*model.Record, 1)
	out <- initial

	go func() {
		defer close(out)
		defer s.notify.unsubscribe(id)

		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
				records, err := s.sqlite.ListAll()
				if err != nil {
					select {
					case <-s.closing:
						// Shutdown, not a fault: the signal lost the race
						// against Close. End the subscription quietly.
						return
					default:
					}
					// Keep the subscription alive; the next signal retries.
					s.logf("live query re-emission failed: %v", err)
					continue
				}
				// Drop a stale undelivered snapshot so the consumer
				// always sees the latest state.
				select {
				case <-out:
				default:
				}
				out <- records
			}
		}
	}()

	return out, nil
}
