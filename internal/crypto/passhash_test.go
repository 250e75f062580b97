package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword_EncodedForm(t *testing.T) {
	t.Parallel()

	enc, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	parts := strings.Split(enc, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		t.Fatalf("unexpected encoding %q", enc)
	}
	if strings.ContainsAny(enc, "\n,") {
		t.Fatalf("encoding %q is not safe for a CSV column", enc)
	}

	enc2, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if enc == enc2 {
		t.Fatalf("same password hashed twice produced identical encodings; salt looks non-random")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	enc, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", enc) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("wrong", enc) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword("", enc) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	t.Parallel()

	for _, enc := range []string{
		"",
		"plaintext",
		"argon2id$only-two-parts",
		"md5$c2FsdA$aGFzaA",
		"argon2id$!!!$aGFzaA",
		"argon2id$c2FsdA$!!!",
	} {
		if VerifyPassword("anything", enc) {
			t.Fatalf("VerifyPassword(%q): expected false for malformed encoding", enc)
		}
	}
}
