// Package csvtable implements flat CSV stores with whole-file replace semantics.
//
// Each store is a single UTF-8 CSV file: a header row naming the fields,
// followed by one row per record. Every save rewrites the file in full; there
// is no append path and no partial update.
package csvtable

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Table is one CSV store with a fixed field order.
type Table struct {
	path   string
	fields []string
}

// New returns a table backed by path. fields fixes the column order for both
// the header row and every record row.
func New(path string, fields []string) *Table {
	return &Table{path: path, fields: append([]string(nil), fields...)}
}

// Path returns the backing file path.
func (t *Table) Path() string { return t.path }

// Fields returns a copy of the table's field order.
func (t *Table) Fields() []string { return append([]string(nil), t.fields...) }

// Load reads every record in file order. A store that is missing, unreadable
// or corrupt loads as empty; load never fails. Records map field name to
// value, keyed by the file's own header so older files with fewer columns
// still load.
func (t *Table) Load() []map[string]string {
	f, err := os.Open(t.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

// Save replaces the store's entire contents with records. The data is written
// to a temp sibling and renamed over the store file, so a concurrent or
// subsequent Load never observes a partial write. Missing parent directories
// are created.
func (t *Table) Save(records []map[string]string) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.fields); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(t.fields))
	for _, rec := range records {
		for i, name := range t.fields {
			row[i] = rec[name]
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
