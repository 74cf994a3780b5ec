// Package render formats a structured summary as prose text or JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrodump/internal/decode"
	"github.com/retroenv/retrodump/internal/summary"
)

// Prose renders the summary as line oriented human readable text.
func Prose(s *summary.Summary) string {
	var lines []string
	t := s.Trainer
	m := s.Map
	g := s.GameOptions

	lines = append(lines,
		fmt.Sprintf("Trainer %s (ID: %s.%s), Party Size: %d", t.Name, t.IDHi, t.IDLo, t.PartySize),
		fmt.Sprintf("Money: ₽%s, Casino Chips: %s", s.Money, s.CasinoChips),
		"Badges: "+s.Badges.String(),
		fmt.Sprintf("Map: Number=%s, Tileset=%s, Size=%sx%s, Player Position=(%s,%s), Last Location=%s",
			m.Number, m.Tileset, m.Width, m.Height, m.PlayerX, m.PlayerY, m.LastLocation),
		fmt.Sprintf("Game Options: Value=%s, Audio Track=%s, Audio Bank=%s", g.Value, g.AudioTrack, g.AudioBank),
	)

	lines = append(lines, "Party:")
	for i, c := range s.Party {
		lines = append(lines, fmt.Sprintf(" %d. %s - Level %s, HP %d, Status: %s, Types: %s, Moves: %s",
			i+1, c.Species, c.Level, c.HPCurrent, status(c.Status), joinValues(c.Types[:], "/"), moves(c)))
	}

	lines = append(lines, "Bag:")
	lines = appendInventory(lines, s.Bag)
	lines = append(lines, "PC Storage:")
	lines = appendInventory(lines, s.PC)

	lines = append(lines, "Flags:")
	for _, name := range s.Flags.Names() {
		state, _ := s.Flags.Get(name)
		lines = append(lines, fmt.Sprintf(" - %s: %s", name, yesNo(state)))
	}

	return strings.Join(lines, "\n")
}

func status(v decode.Value) string {
	if !v.Truthy() {
		return "None"
	}
	return v.String()
}

func moves(c summary.Creature) string {
	parts := make([]string, len(c.Moves))
	for i, move := range c.Moves {
		parts[i] = fmt.Sprintf("%s (PP %s)", move, c.PP[i])
	}
	return strings.Join(parts, ", ")
}

func joinValues(values []decode.Value, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

func appendInventory(lines []string, inv *summary.Inventory) []string {
	for _, name := range inv.Names() {
		quantity, _ := inv.Quantity(name)
		lines = append(lines, fmt.Sprintf(" - %s: %s", name, quantity))
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
