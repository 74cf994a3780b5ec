package summary

import (
	"fmt"

	"github.com/retroenv/retrodump/internal/decode"
	"github.com/retroenv/retrodump/internal/tables"
)

// Labels of the flat mapping read by the assembler.
const (
	labelPartySize   = "Party Size"
	labelTrainerName = "Trainer Name[1]"
	labelMoney       = "Money[1]"
	labelCasinoChips = "Casino Chips[1]"
	labelBadges      = "Badges Bitfield"
)

const (
	creatureTypes = 2
	creatureMoves = 4
)

// Assemble builds the structured summary from the decoded values. Absent
// labels result in null values or empty collections.
func Assemble(values *decode.Values, tbls *tables.Set) *Summary {
	partySize := values.IntOr(labelPartySize, 0)

	return &Summary{
		Trainer: Trainer{
			Name:      values.Value(labelTrainerName),
			IDHi:      values.Value("Player ID-hi"),
			IDLo:      values.Value("Player ID-lo"),
			PartySize: partySize,
		},
		Money:       values.Value(labelMoney),
		CasinoChips: values.Value(labelCasinoChips),
		Badges:      values.Value(labelBadges),
		Map: MapState{
			Number:       values.Value("Current Map Number"),
			Tileset:      values.Value("Map Tileset"),
			Width:        values.Value("Map Width (blocks)"),
			Height:       values.Value("Map Height (blocks)"),
			PlayerX:      values.Value("Player X-Position"),
			PlayerY:      values.Value("Player Y-Position"),
			LastLocation: values.Value("Last Map Location"),
		},
		GameOptions: GameOptions{
			Value:      values.Value("Game Options"),
			AudioTrack: values.Value("Audio Track"),
			AudioBank:  values.Value("Audio Bank"),
		},
		Party: assembleParty(values, tbls.Species, partySize),
		Bag:   assembleInventory(values, "Bag"),
		PC:    assembleInventory(values, "PC"),
		Flags: assembleFlags(values),
	}
}

func assembleParty(values *decode.Values, species tables.Table, size int) []Creature {
	party := make([]Creature, 0, max(size, 0))
	for i := 1; i <= size; i++ {
		field := func(name string) string {
			return fmt.Sprintf("PKM%d %s", i, name)
		}

		// the byte named hi holds the low order bits of the current hp
		hi := values.IntOr(field("HP hi"), 0)
		lo := values.IntOr(field("HP lo"), 0)

		creature := Creature{
			Species:   species.Lookup(values.IntOr(field("Species"), 0)),
			Level:     values.Value(field("Level")),
			HPCurrent: hi + lo<<8,
			Status:    values.Value(field("Status")),
		}
		for j := range creatureTypes {
			creature.Types[j] = values.Value(field(fmt.Sprintf("Type%d", j+1)))
		}
		for j := range creatureMoves {
			creature.Moves[j] = values.Value(field(fmt.Sprintf("Move%d", j+1)))
			creature.PP[j] = values.Value(field(fmt.Sprintf("PP%d", j+1)))
		}
		party = append(party, creature)
	}
	return party
}

// assembleInventory reads the item slots of the inventory with the given
// label prefix. Slots without an item are skipped.
func assembleInventory(values *decode.Values, prefix string) *Inventory {
	inv := NewInventory()
	count := values.IntOr(prefix+" Count", 0)

	for i := 1; i <= count; i++ {
		idLabel := fmt.Sprintf("%s%d ID", prefix, i)
		id, ok := values.Get(idLabel)
		if !ok || !id.Truthy() {
			continue
		}
		if raw, _ := values.Raw(idLabel); raw == 0 {
			continue
		}

		quantity := values.Value(fmt.Sprintf("%s%d Qty", prefix, i))
		inv.Set(id.String(), quantity)
	}
	return inv
}

func assembleFlags(values *decode.Values) *Flags {
	flags := NewFlags()
	for _, label := range values.Labels() {
		if decode.IsFlagLabel(label) {
			flags.Set(label, values.Value(label).Truthy())
		}
	}
	return flags
}
