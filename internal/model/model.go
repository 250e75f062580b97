// Package model defines domain entities used by services and repositories.
package model

import "github.com/gofrs/uuid/v5"

// EntryType classifies an address book entry.
type EntryType string

// Valid entry types.
const (
	TypePersonal EntryType = "Personal"
	TypeBusiness EntryType = "Business"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == TypePersonal || t == TypeBusiness
}

// Account is a registered user of the address book. Passwords are never
// stored in plaintext.
type Account struct {
	Username string // unique key, compared case-insensitively
	Email    string // unique, compared case-insensitively
	Mobile   string // unique, compared exactly
	PwdHash  string // argon2id encoded hash (see internal/crypto)
}

// Entry is a single address book record. The ID is assigned at creation and
// stays stable as the entry moves between the active book and the recycle
// bin, so callers never need to address entries by list position.
type Entry struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Email   string
	Address string // free text, may span multiple lines
	City    string
	State   string
	Pincode string
	Country string
	Type    EntryType
}
