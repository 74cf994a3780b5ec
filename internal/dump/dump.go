// Package dump provides the raw memory dump entries and the address index
// used to resolve fields that span multiple dump entries.
package dump

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Entry is a single labeled memory byte of a dump.
type Entry struct {
	Address uint16
	Label   string
	Raw     byte
}

// LoadFile reads and parses a dump file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dump file '%s': %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dump file '%s': %w", path, err)
	}
	return entries, nil
}

// Parse parses a JSON array of [address, label, raw] triples. The address
// is a hex string with an optional 0x prefix, raw is a byte value.
func Parse(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("expected array of entries but got %s", root.Type)
	}

	items := root.Array()
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(item gjson.Result) (Entry, error) {
	if !item.IsArray() {
		return Entry{}, errors.New("expected [address, label, raw] triple")
	}
	fields := item.Array()
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("expected 3 fields but got %d", len(fields))
	}

	if fields[0].Type != gjson.String {
		return Entry{}, errors.New("address is not a string")
	}
	address, err := ParseAddress(fields[0].Str)
	if err != nil {
		return Entry{}, err
	}

	if fields[1].Type != gjson.String {
		return Entry{}, errors.New("label is not a string")
	}

	raw := fields[2]
	if raw.Type != gjson.Number {
		return Entry{}, fmt.Errorf("raw value of '%s' is not a number", fields[1].Str)
	}
	value := raw.Int()
	if value < 0 || value > 0xFF || float64(value) != raw.Num {
		return Entry{}, fmt.Errorf("raw value %s of '%s' is not a byte", raw.Raw, fields[1].Str)
	}

	return Entry{
		Address: address,
		Label:   fields[1].Str,
		Raw:     byte(value),
	}, nil
}

// ParseAddress parses a 16 bit hex address with an optional 0x prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	address, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(address), nil
}
