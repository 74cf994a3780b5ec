// Package layout defines the fixed memory addresses of a game memory layout
// revision that multi byte fields of a dump are resolved from.
package layout

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/set"
	"gopkg.in/ini.v1"
)

// DefaultRevision is the revision name of the built in layout.
const DefaultRevision = "red-blue-en"

// Range is a run of consecutive bytes.
type Range struct {
	Base   uint16
	Length int
}

// Addresses returns all addresses of the range.
func (r Range) Addresses() []uint16 {
	addresses := make([]uint16, r.Length)
	for i := range addresses {
		addresses[i] = r.Base + uint16(i)
	}
	return addresses
}

// Layout contains the fixed addresses of one memory layout revision.
type Layout struct {
	Revision    string
	Money       [3]uint16 // packed BCD, most significant byte first
	CasinoChips [2]uint16 // packed BCD, most significant byte first
	TrainerName Range
	RivalName   Range
	Badges      uint16 // bitfield, one bit per badge
}

// Default returns the layout of the english Red/Blue versions.
func Default() Layout {
	return Layout{
		Revision:    DefaultRevision,
		Money:       [3]uint16{0xD347, 0xD348, 0xD349},
		CasinoChips: [2]uint16{0xD5A4, 0xD5A5},
		TrainerName: Range{Base: 0xD158, Length: 5},
		RivalName:   Range{Base: 0xD34A, Length: 8},
		Badges:      0xD356,
	}
}

// Names of the required multi byte fields.
const (
	FieldMoney       = "money"
	FieldCasinoChips = "casino chips"
	FieldTrainerName = "trainer name"
	FieldRivalName   = "rival name"
)

type fieldAddresses struct {
	name      string
	addresses []uint16
}

func (l Layout) fields() []fieldAddresses {
	return []fieldAddresses{
		{FieldMoney, l.Money[:]},
		{FieldCasinoChips, l.CasinoChips[:]},
		{FieldTrainerName, l.TrainerName.Addresses()},
		{FieldRivalName, l.RivalName.Addresses()},
	}
}

// RequiredAddresses returns all addresses that a dump must contain to be
// decodable with this layout.
func (l Layout) RequiredAddresses() set.Set[uint16] {
	required := set.New[uint16]()
	for _, field := range l.fields() {
		for _, address := range field.addresses {
			required.Add(address)
		}
	}
	return required
}

// FieldOf returns the name of the first required field that contains the
// address.
func (l Layout) FieldOf(address uint16) (string, bool) {
	for _, field := range l.fields() {
		if slices.Contains(field.addresses, address) {
			return field.name, true
		}
	}
	return "", false
}

// Load reads a layout profile INI file. Keys that are not set in the file
// keep the value of the default layout.
//
//	revision = red-blue-en
//	[money]
//	addresses = 0xD347, 0xD348, 0xD349
//	[trainer_name]
//	base   = 0xD158
//	length = 5
func Load(path string) (Layout, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Layout{}, fmt.Errorf("loading layout file '%s': %w", path, err)
	}

	l, err := parse(file)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing layout file '%s': %w", path, err)
	}
	return l, nil
}

func parse(file *ini.File) (Layout, error) {
	l := Default()

	root := file.Section(ini.DefaultSection)
	if root.HasKey("revision") {
		l.Revision = strings.TrimSpace(root.Key("revision").String())
	}

	if err := parseAddressList(file, "money", l.Money[:]); err != nil {
		return Layout{}, err
	}
	if err := parseAddressList(file, "casino_chips", l.CasinoChips[:]); err != nil {
		return Layout{}, err
	}
	if err := parseRange(file, "trainer_name", &l.TrainerName); err != nil {
		return Layout{}, err
	}
	if err := parseRange(file, "rival_name", &l.RivalName); err != nil {
		return Layout{}, err
	}

	if sec, err := file.GetSection("badges"); err == nil && sec.HasKey("address") {
		address, err := parseAddress(sec.Key("address").String())
		if err != nil {
			return Layout{}, fmt.Errorf("section badges: %w", err)
		}
		l.Badges = address
	}

	return l, nil
}

func parseAddressList(file *ini.File, section string, target []uint16) error {
	sec, err := file.GetSection(section)
	if err != nil || !sec.HasKey("addresses") {
		return nil
	}

	values := sec.Key("addresses").Strings(",")
	if len(values) != len(target) {
		return fmt.Errorf("section %s: expected %d addresses but got %d", section, len(target), len(values))
	}
	for i, value := range values {
		address, err := parseAddress(value)
		if err != nil {
			return fmt.Errorf("section %s: %w", section, err)
		}
		target[i] = address
	}
	return nil
}

func parseRange(file *ini.File, section string, target *Range) error {
	sec, err := file.GetSection(section)
	if err != nil {
		return nil
	}

	if sec.HasKey("base") {
		address, err := parseAddress(sec.Key("base").String())
		if err != nil {
			return fmt.Errorf("section %s: %w", section, err)
		}
		target.Base = address
	}
	if sec.HasKey("length") {
		length, err := sec.Key("length").Int()
		if err != nil || length <= 0 {
			return fmt.Errorf("section %s: invalid length '%s'", section, sec.Key("length").String())
		}
		target.Length = length
	}
	if int(target.Base)+target.Length > 0x10000 {
		return fmt.Errorf("section %s: range exceeds address space", section)
	}
	return nil
}

func parseAddress(s string) (uint16, error) {
	address, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(address), nil
}
