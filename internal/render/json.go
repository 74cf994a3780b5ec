package render

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrodump/internal/decode"
	"github.com/retroenv/retrodump/internal/summary"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// field is a key of a JSON object and its value.
type field struct {
	key   string
	value any
}

// JSON renders the summary as indented JSON document. Object keys are
// written in a fixed order, inventories and flags in insertion order.
func JSON(s *summary.Summary) ([]byte, error) {
	doc := []byte(`{}`)
	t := s.Trainer
	m := s.Map
	g := s.GameOptions

	doc, err := setObject(doc, "trainer", []field{
		{"name", t.Name},
		{"id_hi", t.IDHi},
		{"id_lo", t.IDLo},
		{"party_size", t.PartySize},
	})
	if err != nil {
		return nil, err
	}

	for _, f := range []field{
		{"money", s.Money},
		{"casino_chips", s.CasinoChips},
		{"badges", s.Badges},
	} {
		if doc, err = setValue(doc, escapeKey(f.key), f.value); err != nil {
			return nil, err
		}
	}

	doc, err = setObject(doc, "map", []field{
		{"number", m.Number},
		{"tileset", m.Tileset},
		{"width", m.Width},
		{"height", m.Height},
		{"player_x", m.PlayerX},
		{"player_y", m.PlayerY},
		{"last_location", m.LastLocation},
	})
	if err != nil {
		return nil, err
	}

	doc, err = setObject(doc, "game_options", []field{
		{"value", g.Value},
		{"audio_track", g.AudioTrack},
		{"audio_bank", g.AudioBank},
	})
	if err != nil {
		return nil, err
	}

	if doc, err = setParty(doc, s.Party); err != nil {
		return nil, err
	}
	if doc, err = setObject(doc, "bag", inventoryFields(s.Bag)); err != nil {
		return nil, err
	}
	if doc, err = setObject(doc, "pc", inventoryFields(s.PC)); err != nil {
		return nil, err
	}
	if doc, err = setObject(doc, "flags", flagFields(s.Flags)); err != nil {
		return nil, err
	}

	return []byte(gjson.GetBytes(doc, "@pretty").Raw), nil
}

func setParty(doc []byte, party []summary.Creature) ([]byte, error) {
	doc, err := sjson.SetRawBytes(doc, "party", []byte(`[]`))
	if err != nil {
		return nil, fmt.Errorf("setting party: %w", err)
	}

	for i, c := range party {
		path := fmt.Sprintf("party.%d", i)
		doc, err = setObject(doc, path, []field{
			{"species", c.Species},
			{"level", c.Level},
			{"hp_current", c.HPCurrent},
			{"status", c.Status},
			{"types", c.Types[:]},
			{"moves", c.Moves[:]},
			{"pp", c.PP[:]},
		})
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// setObject sets an object at the path with the fields in the given order.
func setObject(doc []byte, path string, fields []field) ([]byte, error) {
	doc, err := sjson.SetRawBytes(doc, path, []byte(`{}`))
	if err != nil {
		return nil, fmt.Errorf("setting '%s': %w", path, err)
	}

	for _, f := range fields {
		if doc, err = setValue(doc, path+"."+escapeKey(f.key), f.value); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func setValue(doc []byte, path string, value any) ([]byte, error) {
	switch v := value.(type) {
	case decode.Value:
		value = v.Interface()
	case []decode.Value:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item.Interface()
		}
		value = items
	}

	doc, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, fmt.Errorf("setting '%s': %w", path, err)
	}
	return doc, nil
}

func inventoryFields(inv *summary.Inventory) []field {
	names := inv.Names()
	fields := make([]field, len(names))
	for i, name := range names {
		quantity, _ := inv.Quantity(name)
		fields[i] = field{name, quantity}
	}
	return fields
}

func flagFields(flags *summary.Flags) []field {
	names := flags.Names()
	fields := make([]field, len(names))
	for i, name := range names {
		state, _ := flags.Get(name)
		fields[i] = field{name, state}
	}
	return fields
}

// pathEscaper escapes the characters that have a meaning in sjson paths.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`=`, `\=`,
	`<`, `\<`,
	`>`, `\>`,
	`%`, `\%`,
	`:`, `\:`,
)

// escapeKey escapes an object key for use in an sjson path. Keys that
// consist of digits only get a colon prefix to be set as object keys.
func escapeKey(key string) string {
	escaped := pathEscaper.Replace(key)
	if isDigits(key) {
		return ":" + escaped
	}
	return escaped
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
