// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested account or entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingField indicates a required field was empty. Callers wrap it
	// with the field name: fmt.Errorf("%w: email", errs.ErrMissingField).
	ErrMissingField = errors.New("missing field")

	// ErrInvalidEntryType indicates an entry type outside Personal/Business.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrUsernameTaken indicates another account already has the username
	// (case-insensitive match).
	ErrUsernameTaken = errors.New("username taken")

	// ErrEmailTaken indicates another account already has the email
	// (case-insensitive match).
	ErrEmailTaken = errors.New("email taken")

	// ErrMobileTaken indicates another account already has the mobile number
	// (exact match).
	ErrMobileTaken = errors.New("mobile taken")

	// ErrInvalidCredentials indicates failed authentication. It intentionally
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongOldPassword indicates the current password supplied with a
	// password change did not match the stored one.
	ErrWrongOldPassword = errors.New("wrong old password")

	// ErrOldPasswordRequired indicates a password change was requested
	// without supplying the current password.
	ErrOldPasswordRequired = errors.New("old password required")

	// ErrUnauthenticated indicates a mutation attempted without a logged-in
	// account.
	ErrUnauthenticated = errors.New("not logged in")
)
