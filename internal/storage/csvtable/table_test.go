package csvtable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testFields = []string{"Name", "Phone", "Note"}

func TestTable_SaveLoad_RoundTrip(t *testing.T) {
	tab := New(filepath.Join(t.TempDir(), "book.csv"), testFields)

	records := []map[string]string{
		{"Name": "Ann", "Phone": "111", "Note": "first"},
		{"Name": "Бób, \"quoted\"", "Phone": "222", "Note": "line one\nline two"},
		{"Name": "第三", "Phone": "333", "Note": ""},
	}
	require.NoError(t, tab.Save(records))

	got := tab.Load()
	require.Len(t, got, len(records))
	for i, want := range records {
		require.Equal(t, want, got[i], "record %d", i)
	}
}

func TestTable_Load_MissingFile(t *testing.T) {
	tab := New(filepath.Join(t.TempDir(), "never-written.csv"), testFields)
	require.Empty(t, tab.Load())
}

func TestTable_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Phone\n\"unterminated"), 0o600))

	tab := New(path, testFields)
	require.Empty(t, tab.Load())
}

func TestTable_Save_WritesHeaderOnlyForEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "book.csv")
	tab := New(path, testFields)

	require.NoError(t, tab.Save(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Name,Phone,Note\n", string(b))
	require.Empty(t, tab.Load())
}

func TestTable_Save_ReplacesPreviousContents(t *testing.T) {
	tab := New(filepath.Join(t.TempDir(), "book.csv"), testFields)

	require.NoError(t, tab.Save([]map[string]string{{"Name": "old", "Phone": "1", "Note": ""}}))
	require.NoError(t, tab.Save([]map[string]string{{"Name": "new", "Phone": "2", "Note": ""}}))

	got := tab.Load()
	require.Len(t, got, 1)
	require.Equal(t, "new", got[0]["Name"])
}

func TestTable_Load_IgnoresExtraColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Phone\nAnn,111\n"), 0o600))

	tab := New(path, testFields)
	got := tab.Load()
	require.Len(t, got, 1)
	require.Equal(t, "Ann", got[0]["Name"])
	_, ok := got[0]["Note"]
	require.False(t, ok)
}
