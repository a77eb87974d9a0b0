// Package session holds presentation state: a live filter string joined
// with the repository's live record stream into a derived visible list.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/repository"
)

// Session owns a live filter and derives the visible record list by
// combining the repository's all-records stream with it. The derivation
// re-runs when either side changes: this is a continuous join, not a
// one-shot computation.
//
// Mutations (Add, Update, Delete) return their outcome to the caller
// instead of being fire-and-forget; completion is additionally visible
// through the next Visible emission.
type Session struct {
	repo repository.Repository

	mu     sync.Mutex
	filter string

	filterCh chan struct{}
	visible  chan []*model.Record

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// New subscribes to the repository and starts the join. The session runs
// until Close is called or ctx ends; both tear down the subscription.
func New(ctx context.Context, repo repository.Repository) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)

	records, err := repo.AllRecords(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	s := &Session{
		repo:     repo,
		filterCh: make(chan struct{}, 1),
		visible:  make(chan []*model.Record, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go s.run(ctx, records)
	return s, nil
}

// run is the join loop: one goroutine selects over both live sources, so
// derived snapshots can never reorder across mutations.
func (s *Session) run(ctx context.Context, records <-chan []*model.Record) {
	defer close(s.done)

	var latest []*model.Record
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-records:
			if !ok {
				return
			}
			latest = snapshot
			s.emit(latest)
		case <-s.filterCh:
			s.emit(latest)
		}
	}
}

// emit pushes the filtered view of latest, coalescing stale snapshots.
func (s *Session) emit(latest []*model.Record) {
	filtered := Filter(latest, s.CurrentFilter())

	select {
	case <-s.visible:
	default:
	}
	s.visible <- filtered
}

// Filter derives the visible subset of records for a filter string.
// A blank (trimmed) filter passes everything through unchanged; otherwise
// only records whose title or content contains the filter as a
// case-insensitive substring remain. Relative order is preserved.
func Filter(records []*model.Record, filter string) []*model.Record {
	if strings.TrimSpace(filter) == "" {
		return records
	}

	filtered := make([]*model.Record, 0, len(records))
	for _, rec := range records {
		if rec.Matches(filter) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// SetFilter synchronously updates the filter text. Concurrent calls are
// last-write-wins; the derived list re-emits shortly after.
func (s *Session) SetFilter(text string) {
	s.mu.Lock()
	s.filter = text
	s.mu.Unlock()

	select {
	case s.filterCh <- struct{}{}:
	default: // re-derivation already pending; it will read the new filter
	}
}

// CurrentFilter returns the filter text as last set.
func (s *Session) CurrentFilter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Visible is the live derived record list. Delivery coalesces: a slow
// consumer sees the latest state, never a stale intermediate as final.
func (s *Session) Visible() <-chan []*model.Record {
	return s.visible
}

// Add persists a new record through the repository and returns the
// assigned id.
func (s *Session) Add(rec *model.Record) (int64, error) {
	return s.repo.Insert(rec)
}

// Update persists changes to an existing record.
func (s *Session) Update(rec *model.Record) error {
	return s.repo.Update(rec)
}

// Delete removes a record. Deleting an already-absent record is not an
// error; from the caller's perspective the record is simply gone.
func (s *Session) Delete(rec *model.Record) error {
	return s.repo.Delete(rec)
}

// Close tears down the subscription and waits for the join loop to stop.
// Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}
