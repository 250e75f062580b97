// Package refdata ships the state and country lookup tables used to assist
// entry input. The lists are data, not validation rules: entries may carry
// values outside them.
package refdata

import (
	"embed"
	"encoding/csv"
	"strings"
	"sync"
)

//go:embed states.csv countries.csv
var files embed.FS

var load = sync.OnceValues(func() (tables, error) {
	states, err := readNames("states.csv")
	if err != nil {
		return tables{}, err
	}
	countries, err := readNames("countries.csv")
	if err != nil {
		return tables{}, err
	}
	return tables{states: states, countries: countries}, nil
})

type tables struct {
	states    []string
	countries []string
}

func readNames(name string) ([]string, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows[1:] { // skip header
		if len(row) > 0 && row[0] != "" {
			names = append(names, row[0])
		}
	}
	return names, nil
}

// States returns the Indian state and union territory names in table order.
func States() []string {
	t, _ := load()
	return append([]string(nil), t.states...)
}

// Countries returns the country names in table order.
func Countries() []string {
	t, _ := load()
	return append([]string(nil), t.countries...)
}

// IsState reports whether name is in the state table, case-insensitively.
func IsState(name string) bool { return contains(States(), name) }

// IsCountry reports whether name is in the country table, case-insensitively.
func IsCountry(name string) bool { return contains(Countries(), name) }

func contains(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
