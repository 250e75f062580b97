package csvrepo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/stretchr/testify/require"
)

func newAccounts(t *testing.T) *Accounts {
	t.Helper()
	return NewAccounts(filepath.Join(t.TempDir(), "users.csv"))
}

func TestAccounts_CreateAndGetByUsername(t *testing.T) {
	r := newAccounts(t)
	ctx := context.Background()

	a := model.Account{Username: "Alice", Email: "a@example.com", Mobile: "100", PwdHash: "h1"}
	require.NoError(t, r.Create(ctx, a))

	got, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, a, *got)

	_, err = r.GetByUsername(ctx, "bob")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAccounts_Update(t *testing.T) {
	r := newAccounts(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, model.Account{Username: "Alice", Email: "a@example.com", Mobile: "100", PwdHash: "h1"}))

	updated := model.Account{Username: "alicia", Email: "new@example.com", Mobile: "200", PwdHash: "h2"}
	require.NoError(t, r.Update(ctx, "ALICE", updated))

	got, err := r.GetByUsername(ctx, "Alicia")
	require.NoError(t, err)
	require.Equal(t, updated, *got)

	require.ErrorIs(t, r.Update(ctx, "ghost", updated), errs.ErrNotFound)
}

func TestAccounts_Delete_Idempotent(t *testing.T) {
	r := newAccounts(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, model.Account{Username: "Alice", Email: "a@example.com", Mobile: "100"}))
	require.NoError(t, r.Create(ctx, model.Account{Username: "Bob", Email: "b@example.com", Mobile: "200"}))

	require.NoError(t, r.Delete(ctx, "ALICE"))
	require.NoError(t, r.Delete(ctx, "alice")) // already gone

	all, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Bob", all[0].Username)
}

func TestAccounts_PersistAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	ctx := context.Background()

	require.NoError(t, NewAccounts(path).Create(ctx, model.Account{Username: "Alice", Email: "a@example.com", Mobile: "100", PwdHash: "h"}))

	got, err := NewAccounts(path).GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", got.Email)
}
