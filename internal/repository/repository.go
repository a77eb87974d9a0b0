// Package repository decouples the presentation layer from the storage
// technology. It is a pass-through façade: no transformation, no
// validation, no state of its own.
package repository

import (
	"context"

	"github.com/CopelandCodes/setupsheets/internal/model"
	"github.com/CopelandCodes/setupsheets/internal/storage"
)

// Repository is the narrow contract the session layer depends on. The
// SQLite-backed store satisfies it in production; tests substitute a
// double without touching the session.
type Repository interface {
	Insert(rec *model.Record) (int64, error)
	Update(rec *model.Record) error
	Delete(rec *model.Record) error
	GetByID(id int64) (*model.Record, error)
	AllRecords(ctx context.Context) (<-chan []*model.Record, error)
}

// StoreRepository adapts storage.Store to the Repository contract.
type StoreRepository struct {
	store *storage.Store
}

// New wraps a store handle. The caller owns the store's lifecycle.
func New(store *storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Insert forwards to the store unchanged.
func (r *StoreRepository) Insert(rec *model.Record) (int64, error) {
	return r.store.Insert(rec)
}

// Update forwards to the store unchanged.
func (r *StoreRepository) Update(rec *model.Record) error {
	return r.store.Update(rec)
}

// Delete forwards to the store unchanged.
func (r *StoreRepository) Delete(rec *model.Record) error {
	return r.store.Delete(rec)
}

// GetByID forwards to the store unchanged.
func (r *StoreRepository) GetByID(id int64) (*model.Record, error) {
	return r.store.GetByID(id)
}

// AllRecords republishes the store's live all-records stream.
func (r *StoreRepository) AllRecords(ctx context.Context) (<-chan []*model.Record, error) {
	return r.store.ObserveAll(ctx)
}
