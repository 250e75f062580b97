package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/and161185/abook/internal/model"
)

func TestParsePos(t *testing.T) {
	t.Parallel()

	if idx, err := parsePos("1", 3); err != nil || idx != 0 {
		t.Fatalf("parsePos(1,3) = (%d, %v)", idx, err)
	}
	if idx, err := parsePos("3", 3); err != nil || idx != 2 {
		t.Fatalf("parsePos(3,3) = (%d, %v)", idx, err)
	}
	for _, arg := range []string{"0", "-1", "4", "x", ""} {
		if _, err := parsePos(arg, 3); err == nil {
			t.Fatalf("parsePos(%q,3): expected error", arg)
		}
	}
}

func TestEntryInput_Apply(t *testing.T) {
	t.Parallel()

	base := model.Entry{Name: "Ann", City: "Pune", Type: model.TypePersonal}
	in := &entryInput{city: "Nashik", kind: "Business"}

	got := in.apply(base)
	if got.Name != "Ann" {
		t.Fatalf("unset flag overwrote Name: %q", got.Name)
	}
	if got.City != "Nashik" || got.Type != model.TypeBusiness {
		t.Fatalf("set flags not applied: %+v", got)
	}
}

func TestPrintEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printEntries(&buf, []model.Entry{
		{Name: "Ann", Phone: "1", Email: "a@x", Address: "line1\nline2", City: "Pune",
			State: "Maharashtra", Pincode: "411001", Country: "India", Type: model.TypePersonal},
		{Name: "Bob", Type: model.TypeBusiness},
	})
	out := buf.String()

	if !strings.HasPrefix(out, "1. Ann (Personal)") {
		t.Fatalf("unexpected first line: %q", out)
	}
	if !strings.Contains(out, "2. Bob (Business)") {
		t.Fatalf("missing numbered second entry: %q", out)
	}
	if !strings.Contains(out, "line1 / line2") {
		t.Fatalf("multi-line address not flattened for the list view: %q", out)
	}
}

func TestTokenFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg", "token.json")
	if err := saveToken(path, "tok-123", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken(path)
	if err != nil || tok != "tok-123" {
		t.Fatalf("loadToken = (%q, %v)", tok, err)
	}

	if err := saveToken(path, "tok-456", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("saveToken(expired): %v", err)
	}
	if _, err := loadToken(path); err == nil {
		t.Fatalf("loadToken: expected error for expired token")
	}
}

func TestLoadOrCreateKey_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg", "session.key")
	k1, err := loadOrCreateKey(path)
	if err != nil {
		t.Fatalf("loadOrCreateKey: %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	k2, err := loadOrCreateKey(path)
	if err != nil {
		t.Fatalf("loadOrCreateKey(2): %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("key changed between calls")
	}
}
