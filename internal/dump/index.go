package dump

import (
	"errors"
	"fmt"
)

// ErrMissingAddress is matched by errors returned for addresses that are
// not part of the dump.
var ErrMissingAddress = errors.New("missing required address")

// MissingAddressError identifies a required address that is not part of the dump.
type MissingAddressError struct {
	Field   string
	Address uint16
}

func (e *MissingAddressError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s 0x%04X", ErrMissingAddress, e.Address)
	}
	return fmt.Sprintf("%s 0x%04X for %s", ErrMissingAddress, e.Address, e.Field)
}

// Is reports whether the target is ErrMissingAddress.
func (e *MissingAddressError) Is(target error) bool {
	return target == ErrMissingAddress
}

type indexed struct {
	label string
	raw   byte
}

// Index maps addresses to the entries of a dump.
type Index struct {
	entries map[uint16]indexed
}

// NewIndex builds the address index of a dump. Later entries for the same
// address overwrite earlier ones.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries: make(map[uint16]indexed, len(entries)),
	}
	for _, entry := range entries {
		idx.entries[entry.Address] = indexed{label: entry.Label, raw: entry.Raw}
	}
	return idx
}

// Len returns the number of distinct addresses.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Label returns the label stored for the address.
func (idx *Index) Label(address uint16) (string, bool) {
	entry, ok := idx.entries[address]
	return entry.label, ok
}

// Byte returns the raw byte stored at the address.
func (idx *Index) Byte(address uint16) (byte, error) {
	entry, ok := idx.entries[address]
	if !ok {
		return 0, &MissingAddressError{Address: address}
	}
	return entry.raw, nil
}

// Bytes returns the raw bytes of all given addresses in order.
// The field name is used to identify the group in a returned error.
func (idx *Index) Bytes(field string, addresses ...uint16) ([]byte, error) {
	data := make([]byte, len(addresses))
	for i, address := range addresses {
		b, err := idx.Byte(address)
		if err != nil {
			return nil, &MissingAddressError{Field: field, Address: address}
		}
		data[i] = b
	}
	return data, nil
}

// Range returns length consecutive bytes starting at the base address.
func (idx *Index) Range(field string, base uint16, length int) ([]byte, error) {
	addresses := make([]uint16, length)
	for i := range addresses {
		addresses[i] = base + uint16(i)
	}
	return idx.Bytes(field, addresses...)
}
