// Package csvrepo implements the repository interfaces over flat CSV stores.
//
// Every operation re-reads the backing file and every mutation rewrites it in
// full. That matches the stores' whole-file replace contract and keeps the
// repositories free of cached state; record counts are assumed small.
package csvrepo

import (
	"context"
	"strings"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository"
	"github.com/and161185/abook/internal/storage/csvtable"
)

// Account store column order.
var accountFields = []string{"Username", "Email", "Mobile", "Password"}

// Accounts is a CSV-backed account repository.
type Accounts struct {
	table *csvtable.Table
}

var _ repository.AccountRepository = (*Accounts)(nil)

// NewAccounts returns an account repository stored at path.
func NewAccounts(path string) *Accounts {
	return &Accounts{table: csvtable.New(path, accountFields)}
}

// All returns every account in store order.
func (r *Accounts) All(_ context.Context) ([]model.Account, error) {
	records := r.table.Load()
	accounts := make([]model.Account, 0, len(records))
	for _, rec := range records {
		accounts = append(accounts, model.Account{
			Username: rec["Username"],
			Email:    rec["Email"],
			Mobile:   rec["Mobile"],
			PwdHash:  rec["Password"],
		})
	}
	return accounts, nil
}

// GetByUsername loads an account by case-insensitive username.
func (r *Accounts) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Username, username) {
			a := accounts[i]
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}

// Create appends a new account and persists the store.
func (r *Accounts) Create(ctx context.Context, a model.Account) error {
	accounts, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.save(append(accounts, a))
}

// Update replaces the account stored under username (case-insensitive).
func (r *Accounts) Update(ctx context.Context, username string, a model.Account) error {
	accounts, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Username, username) {
			accounts[i] = a
			return r.save(accounts)
		}
	}
	return errs.ErrNotFound
}

// Delete removes the account stored under username; absent accounts are a
// no-op.
func (r *Accounts) Delete(ctx context.Context, username string) error {
	accounts, err := r.All(ctx)
	if err != nil {
		return err
	}
	kept := accounts[:0]
	for _, a := range accounts {
		if !strings.EqualFold(a.Username, username) {
			kept = append(kept, a)
		}
	}
	return r.save(kept)
}

func (r *Accounts) save(accounts []model.Account) error {
	records := make([]map[string]string, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, map[string]string{
			"Username": a.Username,
			"Email":    a.Email,
			"Mobile":   a.Mobile,
			"Password": a.PwdHash,
		})
	}
	return r.table.Save(records)
}
