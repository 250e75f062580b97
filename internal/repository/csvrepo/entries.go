package csvrepo

import (
	"context"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository"
	"github.com/and161185/abook/internal/storage/csvtable"
	"github.com/gofrs/uuid/v5"
)

// Entry store column order. ID leads so the data columns match the classic
// nine-field layout.
var entryFields = []string{"ID", "Name", "Phone", "Email", "Address", "City", "State", "Pincode", "Country", "Type"}

// Entries is a CSV-backed entry repository. The same type backs both the
// active book and the recycle bin.
type Entries struct {
	table *csvtable.Table
}

var _ repository.EntryRepository = (*Entries)(nil)

// NewEntries returns an entry repository stored at path.
func NewEntries(path string) *Entries {
	return &Entries{table: csvtable.New(path, entryFields)}
}

// All returns every entry in insertion order.
func (r *Entries) All(_ context.Context) ([]model.Entry, error) {
	records := r.table.Load()
	entries := make([]model.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, model.Entry{
			// Rows from files predating the ID column come back with a nil
			// ID; they stay listable and get a real ID on the next rewrite.
			ID:      uuid.FromStringOrNil(rec["ID"]),
			Name:    rec["Name"],
			Phone:   rec["Phone"],
			Email:   rec["Email"],
			Address: rec["Address"],
			City:    rec["City"],
			State:   rec["State"],
			Pincode: rec["Pincode"],
			Country: rec["Country"],
			Type:    model.EntryType(rec["Type"]),
		})
	}
	return entries, nil
}

// Append adds entries to the end of the store and persists it.
func (r *Entries) Append(ctx context.Context, entries ...model.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	all, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.save(append(all, entries...))
}

// Replace overwrites the entry with the given ID, preserving its position.
func (r *Entries) Replace(ctx context.Context, id uuid.UUID, e model.Entry) error {
	all, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			e.ID = id
			all[i] = e
			return r.save(all)
		}
	}
	return errs.ErrNotFound
}

// Take removes and returns the entry with the given ID.
func (r *Entries) Take(ctx context.Context, id uuid.UUID) (model.Entry, error) {
	all, err := r.All(ctx)
	if err != nil {
		return model.Entry{}, err
	}
	for i := range all {
		if all[i].ID == id {
			taken := all[i]
			if err := r.save(append(all[:i:i], all[i+1:]...)); err != nil {
				return model.Entry{}, err
			}
			return taken, nil
		}
	}
	return model.Entry{}, errs.ErrNotFound
}

// TakeAll removes and returns every entry, leaving the store empty.
func (r *Entries) TakeAll(ctx context.Context) ([]model.Entry, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.save(nil); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *Entries) save(entries []model.Entry) error {
	records := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		id := e.ID
		if id == uuid.Nil {
			id = uuid.Must(uuid.NewV4())
		}
		records = append(records, map[string]string{
			"ID":      id.String(),
			"Name":    e.Name,
			"Phone":   e.Phone,
			"Email":   e.Email,
			"Address": e.Address,
			"City":    e.City,
			"State":   e.State,
			"Pincode": e.Pincode,
			"Country": e.Country,
			"Type":    string(e.Type),
		})
	}
	return r.table.Save(records)
}
