// Package tables provides the lookup tables that map small integer codes
// of the game memory to display names.
package tables

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Table maps integer codes to display names.
type Table map[int]string

// Get returns the name for the code.
func (t Table) Get(code int) (string, bool) {
	name, ok := t[code]
	return name, ok
}

// Lookup returns the name for the code or a placeholder naming the code
// if the table does not contain it.
func (t Table) Lookup(code int) string {
	if name, ok := t[code]; ok {
		return name
	}
	return Unknown(code)
}

// Unknown returns the placeholder name used for codes missing in a table.
func Unknown(code int) string {
	return fmt.Sprintf("Unknown(%d)", code)
}

// Set contains all lookup tables used for decoding a dump.
type Set struct {
	Charset Table
	Species Table
	Moves   Table
	Types   Table
	Items   Table
}

// NewSet returns a set of empty tables.
func NewSet() *Set {
	return &Set{
		Charset: Table{},
		Species: Table{},
		Moves:   Table{},
		Types:   Table{},
		Items:   Table{},
	}
}

// FromStrings converts a string keyed mapping into a table. Keys can be
// written in any Go integer literal notation like 0x50 or 80.
func FromStrings(values map[string]string) (Table, error) {
	table := make(Table, len(values))
	for key, name := range values {
		code, err := ParseCode(key)
		if err != nil {
			return nil, err
		}
		table[code] = norm.NFC.String(name)
	}
	return table, nil
}

// ParseCode parses a table key.
func ParseCode(key string) (int, error) {
	code, err := strconv.ParseInt(strings.TrimSpace(key), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid table key '%s': %w", key, err)
	}
	return int(code), nil
}
