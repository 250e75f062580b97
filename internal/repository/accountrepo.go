// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/abook/internal/model"
)

// AccountRepository provides CRUD access to registered accounts.
// Username lookups are case-insensitive throughout.
type AccountRepository interface {
	// All returns every account in store order.
	All(ctx context.Context) ([]model.Account, error)
	// GetByUsername loads an account by username.
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	// Create appends a new account. Uniqueness is validated by the caller.
	Create(ctx context.Context, a model.Account) error
	// Update replaces the account currently stored under username.
	Update(ctx context.Context, username string, a model.Account) error
	// Delete removes the account stored under username; no-op if absent.
	Delete(ctx context.Context, username string) error
}
