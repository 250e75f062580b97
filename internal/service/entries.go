package service

import (
	"context"
	"fmt"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// EntryService defines CRUD over the active book plus the recycle bin's
// recover/purge operations. Reads are open to everyone; every mutation
// requires a logged-in session.
type EntryService interface {
	// List returns the active book in insertion order.
	List(ctx context.Context) ([]model.Entry, error)
	// Add validates the entry, assigns it an ID, and appends it.
	Add(ctx context.Context, e model.Entry) (model.Entry, error)
	// Update replaces the entry's fields in place.
	Update(ctx context.Context, id uuid.UUID, e model.Entry) error
	// SoftDelete moves the entry from the active book to the recycle bin.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// SoftDeleteAll moves every active entry to the recycle bin.
	SoftDeleteAll(ctx context.Context) error

	// Deleted returns the recycle bin in insertion order.
	Deleted(ctx context.Context) ([]model.Entry, error)
	// Recover moves the entry from the recycle bin to the end of the active
	// book.
	Recover(ctx context.Context, id uuid.UUID) error
	// RecoverAll moves every recycled entry to the end of the active book.
	RecoverAll(ctx context.Context) error
	// Purge permanently removes the entry from the recycle bin.
	Purge(ctx context.Context, id uuid.UUID) error
	// PurgeAll permanently empties the recycle bin.
	PurgeAll(ctx context.Context) error
}

type EntryServiceImpl struct {
	active  repository.EntryRepository
	recycle repository.EntryRepository
	session *Session
}

var _ EntryService = (*EntryServiceImpl)(nil)

// NewEntryService constructs EntryService over the active and recycle stores.
// session gates mutations; reads stay open.
func NewEntryService(active, recycle repository.EntryRepository, session *Session) *EntryServiceImpl {
	return &EntryServiceImpl{active: active, recycle: recycle, session: session}
}

// List returns the active book.
func (s *EntryServiceImpl) List(ctx context.Context) ([]model.Entry, error) {
	return s.active.All(ctx)
}

// Add appends a validated entry with a fresh ID.
func (s *EntryServiceImpl) Add(ctx context.Context, e model.Entry) (model.Entry, error) {
	if err := s.requireLogin(ctx); err != nil {
		return model.Entry{}, err
	}
	if err := validateEntry(e); err != nil {
		return model.Entry{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Entry{}, err
	}
	e.ID = id
	if err := s.active.Append(ctx, e); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// Update replaces the fields of the active entry with the given ID.
func (s *EntryServiceImpl) Update(ctx context.Context, id uuid.UUID, e model.Entry) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	if err := validateEntry(e); err != nil {
		return err
	}
	return s.active.Replace(ctx, id, e)
}

// SoftDelete appends the entry to the recycle bin before removing it from the
// active book, so an interrupted move can duplicate an entry but never lose
// one.
func (s *EntryServiceImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	entries, err := s.active.All(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id {
			if err := s.recycle.Append(ctx, e); err != nil {
				return err
			}
			_, err := s.active.Take(ctx, id)
			return err
		}
	}
	return errs.ErrNotFound
}

// SoftDeleteAll moves the whole active book to the recycle bin. An already
// empty book leaves both stores unchanged.
func (s *EntryServiceImpl) SoftDeleteAll(ctx context.Context) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	entries, err := s.active.All(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.recycle.Append(ctx, entries...); err != nil {
		return err
	}
	_, err = s.active.TakeAll(ctx)
	return err
}

// Deleted returns the recycle bin.
func (s *EntryServiceImpl) Deleted(ctx context.Context) ([]model.Entry, error) {
	return s.recycle.All(ctx)
}

// Recover moves the entry back to the end of the active book.
func (s *EntryServiceImpl) Recover(ctx context.Context, id uuid.UUID) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	entries, err := s.recycle.All(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id {
			if err := s.active.Append(ctx, e); err != nil {
				return err
			}
			_, err := s.recycle.Take(ctx, id)
			return err
		}
	}
	return errs.ErrNotFound
}

// RecoverAll appends every recycled entry to the active book and empties the
// bin. An already empty bin leaves both stores unchanged.
func (s *EntryServiceImpl) RecoverAll(ctx context.Context) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	entries, err := s.recycle.All(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.active.Append(ctx, entries...); err != nil {
		return err
	}
	_, err = s.recycle.TakeAll(ctx)
	return err
}

// Purge permanently removes one recycled entry.
func (s *EntryServiceImpl) Purge(ctx context.Context, id uuid.UUID) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	_, err := s.recycle.Take(ctx, id)
	return err
}

// PurgeAll permanently empties the recycle bin.
func (s *EntryServiceImpl) PurgeAll(ctx context.Context) error {
	if err := s.requireLogin(ctx); err != nil {
		return err
	}
	_, err := s.recycle.TakeAll(ctx)
	return err
}

func (s *EntryServiceImpl) requireLogin(ctx context.Context) error {
	if _, err := s.session.Current(ctx); err != nil {
		return errs.ErrUnauthenticated
	}
	return nil
}

// validateEntry requires all nine fields non-empty and a known type.
func validateEntry(e model.Entry) error {
	if err := requireFields(
		field{"name", e.Name},
		field{"phone", e.Phone},
		field{"email", e.Email},
		field{"address", e.Address},
		field{"city", e.City},
		field{"state", e.State},
		field{"pincode", e.Pincode},
		field{"country", e.Country},
		field{"type", string(e.Type)},
	); err != nil {
		return err
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidEntryType, e.Type)
	}
	return nil
}
