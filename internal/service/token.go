package service

import (
	"errors"
	"time"

	"github.com/and161185/abook/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens let a CLI login survive process restarts: the presentation
// layer stores the signed token and replays it on startup. The token only
// names the account; Current still re-resolves against the account store.

// IssueSessionToken creates a signed HS256 token with the username as subject.
func IssueSessionToken(username string, key []byte, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(key)
	return signed, exp, err
}

// ParseSessionToken verifies the token and returns the username it names.
// Expired, tampered, or foreign-key tokens come back as ErrUnauthenticated.
func ParseSessionToken(token string, key []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrUnauthenticated
	}
	return claims.Subject, nil
}
