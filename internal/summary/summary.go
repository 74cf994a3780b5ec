// Package summary assembles the flat label mapping of a decoded dump into a
// structured save state summary.
package summary

import (
	"slices"

	"github.com/retroenv/retrodump/internal/decode"
)

// Summary is the structured save state of a dump.
type Summary struct {
	Trainer     Trainer
	Money       decode.Value
	CasinoChips decode.Value
	Badges      decode.Value
	Map         MapState
	GameOptions GameOptions
	Party       []Creature
	Bag         *Inventory
	PC          *Inventory
	Flags       *Flags
}

// Trainer contains the player information.
type Trainer struct {
	Name      decode.Value
	IDHi      decode.Value
	IDLo      decode.Value
	PartySize int
}

// MapState contains the current map and player position.
type MapState struct {
	Number       decode.Value
	Tileset      decode.Value
	Width        decode.Value
	Height       decode.Value
	PlayerX      decode.Value
	PlayerY      decode.Value
	LastLocation decode.Value
}

// GameOptions contains the options and audio state.
type GameOptions struct {
	Value      decode.Value
	AudioTrack decode.Value
	AudioBank  decode.Value
}

// Creature is a party member.
type Creature struct {
	Species   string
	Level     decode.Value
	HPCurrent int
	Status    decode.Value
	Types     [2]decode.Value
	Moves     [4]decode.Value
	PP        [4]decode.Value
}

// Inventory maps item names to quantities in order of first insertion.
type Inventory struct {
	names    []string
	quantity map[string]decode.Value
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		quantity: make(map[string]decode.Value),
	}
}

// Set stores the quantity of an item, replacing an existing quantity.
func (inv *Inventory) Set(name string, quantity decode.Value) {
	if _, ok := inv.quantity[name]; !ok {
		inv.names = append(inv.names, name)
	}
	inv.quantity[name] = quantity
}

// Quantity returns the quantity of an item.
func (inv *Inventory) Quantity(name string) (decode.Value, bool) {
	quantity, ok := inv.quantity[name]
	return quantity, ok
}

// Names returns all item names in insertion order.
func (inv *Inventory) Names() []string {
	return slices.Clone(inv.names)
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.names)
}

// Flags maps event flag names to their state in order of first insertion.
type Flags struct {
	names []string
	state map[string]bool
}

// NewFlags returns an empty flag mapping.
func NewFlags() *Flags {
	return &Flags{
		state: make(map[string]bool),
	}
}

// Set stores the state of a flag.
func (f *Flags) Set(name string, state bool) {
	if _, ok := f.state[name]; !ok {
		f.names = append(f.names, name)
	}
	f.state[name] = state
}

// Get returns the state of a flag.
func (f *Flags) Get(name string) (bool, bool) {
	state, ok := f.state[name]
	return state, ok
}

// Names returns all flag names in insertion order.
func (f *Flags) Names() []string {
	return slices.Clone(f.names)
}

// Len returns the number of flags.
func (f *Flags) Len() int {
	return len(f.names)
}
