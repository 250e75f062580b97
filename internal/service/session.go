package service

import (
	"context"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository"
)

// Session tracks the currently authenticated account for one running process.
// It stores the username only and re-resolves it against the account store on
// every Current call, so profile edits made elsewhere are reflected and a
// deleted account logs itself out. There is no package-level session; callers
// own the value.
type Session struct {
	accounts repository.AccountRepository
	username string
}

// NewSession returns a logged-out session over the given account store.
func NewSession(accounts repository.AccountRepository) *Session {
	return &Session{accounts: accounts}
}

// LogIn sets the session identity to the account's username.
func (s *Session) LogIn(a model.Account) {
	s.username = a.Username
}

// LogOut clears the session identity.
func (s *Session) LogOut() {
	s.username = ""
}

// LoggedIn reports whether an identity is set, without resolving it.
func (s *Session) LoggedIn() bool { return s.username != "" }

// Current resolves the session identity against the account store. It returns
// ErrUnauthenticated when no identity is set and ErrNotFound when the account
// has since been deleted.
func (s *Session) Current(ctx context.Context) (*model.Account, error) {
	if s.username == "" {
		return nil, errs.ErrUnauthenticated
	}
	return s.accounts.GetByUsername(ctx, s.username)
}
