// Package service contains application services for accounts, entries, and
// the session.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/abook/internal/crypto"
	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository"
)

// Registration is the input for creating a new account.
type Registration struct {
	Username string
	Email    string
	Mobile   string
	Password string
}

// ProfileUpdate carries new account fields. NewPassword is optional; setting
// it requires OldPassword to match the stored password.
type ProfileUpdate struct {
	Username    string
	Email       string
	Mobile      string
	OldPassword string
	NewPassword string
}

// AccountService defines registration, authentication, and profile operations.
type AccountService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, reg Registration) (model.Account, error)
	// Authenticate verifies credentials and returns the matching account.
	Authenticate(ctx context.Context, username, password string) (model.Account, error)
	// UpdateProfile replaces the account's fields, enforcing uniqueness
	// against other accounts and the old-password gate.
	UpdateProfile(ctx context.Context, currentUsername string, upd ProfileUpdate) (model.Account, error)
	// ResetPassword sets a new password for an existing username without the
	// old one (forgot-password flow).
	ResetPassword(ctx context.Context, username, newPassword string) error
	// Exists reports whether an account with the username is registered.
	Exists(ctx context.Context, username string) (bool, error)
	// Delete removes the account; absent accounts are a no-op.
	Delete(ctx context.Context, username string) error
}

type AccountServiceImpl struct {
	accounts repository.AccountRepository
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService constructs AccountService over the given store.
func NewAccountService(accounts repository.AccountRepository) *AccountServiceImpl {
	return &AccountServiceImpl{accounts: accounts}
}

// Register validates all fields, checks uniqueness (username, then email,
// then mobile; the first violation wins), and persists the new account.
func (s *AccountServiceImpl) Register(ctx context.Context, reg Registration) (model.Account, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Mobile = strings.TrimSpace(reg.Mobile)
	if err := requireFields(
		field{"username", reg.Username},
		field{"email", reg.Email},
		field{"mobile", reg.Mobile},
		field{"password", reg.Password},
	); err != nil {
		return model.Account{}, err
	}

	existing, err := s.accounts.All(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if err := checkUnique(existing, reg.Username, reg.Email, reg.Mobile, ""); err != nil {
		return model.Account{}, err
	}

	hash, err := crypto.HashPassword(reg.Password)
	if err != nil {
		return model.Account{}, err
	}
	a := model.Account{Username: reg.Username, Email: reg.Email, Mobile: reg.Mobile, PwdHash: hash}
	if err := s.accounts.Create(ctx, a); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

// Authenticate matches the username case-insensitively and verifies the
// password against the stored hash. Unknown usernames and wrong passwords
// both come back as ErrInvalidCredentials.
func (s *AccountServiceImpl) Authenticate(ctx context.Context, username, password string) (model.Account, error) {
	a, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil || !crypto.VerifyPassword(password, a.PwdHash) {
		return model.Account{}, errs.ErrInvalidCredentials
	}
	return *a, nil
}

// UpdateProfile validates the new fields, checks uniqueness against every
// other account, applies the optional password change, and persists.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, currentUsername string, upd ProfileUpdate) (model.Account, error) {
	upd.Username = strings.TrimSpace(upd.Username)
	upd.Email = strings.TrimSpace(upd.Email)
	upd.Mobile = strings.TrimSpace(upd.Mobile)
	if err := requireFields(
		field{"username", upd.Username},
		field{"email", upd.Email},
		field{"mobile", upd.Mobile},
	); err != nil {
		return model.Account{}, err
	}

	current, err := s.accounts.GetByUsername(ctx, currentUsername)
	if err != nil {
		return model.Account{}, err
	}

	existing, err := s.accounts.All(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if err := checkUnique(existing, upd.Username, upd.Email, upd.Mobile, current.Username); err != nil {
		return model.Account{}, err
	}

	hash := current.PwdHash
	if upd.NewPassword != "" {
		if upd.OldPassword == "" {
			return model.Account{}, errs.ErrOldPasswordRequired
		}
		if !crypto.VerifyPassword(upd.OldPassword, current.PwdHash) {
			return model.Account{}, errs.ErrWrongOldPassword
		}
		if hash, err = crypto.HashPassword(upd.NewPassword); err != nil {
			return model.Account{}, err
		}
	}

	updated := model.Account{Username: upd.Username, Email: upd.Email, Mobile: upd.Mobile, PwdHash: hash}
	if err := s.accounts.Update(ctx, current.Username, updated); err != nil {
		return model.Account{}, err
	}
	return updated, nil
}

// ResetPassword sets a new password for username.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password", errs.ErrMissingField)
	}
	a, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	a.PwdHash = hash
	return s.accounts.Update(ctx, a.Username, *a)
}

// Exists reports whether username is registered.
func (s *AccountServiceImpl) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Delete removes the account stored under username.
func (s *AccountServiceImpl) Delete(ctx context.Context, username string) error {
	return s.accounts.Delete(ctx, username)
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", errs.ErrMissingField, f.name)
		}
	}
	return nil
}

// checkUnique enforces uniqueness in the order username, email, mobile; the
// account named by exclude (the one being updated) is skipped.
func checkUnique(existing []model.Account, username, email, mobile, exclude string) error {
	others := existing[:0:0]
	for _, a := range existing {
		if exclude == "" || !strings.EqualFold(a.Username, exclude) {
			others = append(others, a)
		}
	}
	for _, a := range others {
		if strings.EqualFold(a.Username, username) {
			return errs.ErrUsernameTaken
		}
	}
	for _, a := range others {
		if strings.EqualFold(a.Email, email) {
			return errs.ErrEmailTaken
		}
	}
	for _, a := range others {
		if a.Mobile == mobile {
			return errs.ErrMobileTaken
		}
	}
	return nil
}
