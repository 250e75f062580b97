package repository

import (
	"context"

	"github.com/and161185/abook/internal/model"
	"github.com/gofrs/uuid/v5"
)

// EntryRepository provides ordered access to address book entries. The active
// book and the recycle bin are two instances over different store files.
type EntryRepository interface {
	// All returns every entry in insertion order.
	All(ctx context.Context) ([]model.Entry, error)
	// Append adds entries to the end of the store.
	Append(ctx context.Context, entries ...model.Entry) error
	// Replace overwrites the entry with the given ID in place, keeping its
	// position and ID.
	Replace(ctx context.Context, id uuid.UUID, e model.Entry) error
	// Take removes and returns the entry with the given ID. Later entries
	// keep their relative order.
	Take(ctx context.Context, id uuid.UUID) (model.Entry, error)
	// TakeAll removes and returns every entry, leaving the store empty.
	TakeAll(ctx context.Context) ([]model.Entry, error)
}
