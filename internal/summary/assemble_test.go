package summary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrodump/internal/decode"
	"github.com/retroenv/retrodump/internal/tables"
	"github.com/retroenv/retrogolib/assert"
)

var compareOptions = []cmp.Option{
	cmp.Comparer(func(a, b decode.Value) bool { return a.Equal(b) }),
	cmp.AllowUnexported(Inventory{}, Flags{}),
}

func testTables() *tables.Set {
	set := tables.NewSet()
	set.Species = tables.Table{0x99: "BULBASAUR", 0xB0: "CHARMANDER"}
	return set
}

func TestAssembleEmpty(t *testing.T) {
	s := Assemble(decode.NewValues(), testTables())

	want := &Summary{
		Party: []Creature{},
		Bag:   NewInventory(),
		PC:    NewInventory(),
		Flags: NewFlags(),
	}
	if diff := cmp.Diff(want, s, compareOptions...); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.Money.IsNull())
	assert.True(t, s.Trainer.Name.IsNull())
}

func TestAssembleParty(t *testing.T) {
	values := decode.NewValues()
	values.Set("Party Size", decode.Int(2), 2)
	values.Set("PKM1 Species", decode.Int(0xB0), 0xB0)
	values.Set("PKM1 Level", decode.Int(12), 12)
	values.Set("PKM1 HP hi", decode.Int(0x01), 0x01)
	values.Set("PKM1 HP lo", decode.Int(0x00), 0x00)
	values.Set("PKM1 Status", decode.List(nil), 0)
	values.Set("PKM1 Type1", decode.String("FIRE"), 0x14)
	values.Set("PKM1 Type2", decode.String("FIRE"), 0x14)
	values.Set("PKM1 Move1", decode.String("SCRATCH"), 0x0A)
	values.Set("PKM1 Move2", decode.String("GROWL"), 0x2D)
	values.Set("PKM1 PP1", decode.Int(35), 35)
	values.Set("PKM1 PP2", decode.Int(40), 40)
	values.Set("PKM2 Species", decode.Int(0x42), 0x42)
	values.Set("PKM2 HP hi", decode.Int(0x00), 0x00)
	values.Set("PKM2 HP lo", decode.Int(0x01), 0x01)
	values.Set("PKM3 Species", decode.Int(0x99), 0x99)

	s := Assemble(values, testTables())

	want := []Creature{
		{
			Species:   "CHARMANDER",
			Level:     decode.Int(12),
			HPCurrent: 1,
			Status:    decode.List(nil),
			Types:     [2]decode.Value{decode.String("FIRE"), decode.String("FIRE")},
			Moves:     [4]decode.Value{decode.String("SCRATCH"), decode.String("GROWL")},
			PP:        [4]decode.Value{decode.Int(35), decode.Int(40)},
		},
		{
			Species:   "Unknown(66)",
			HPCurrent: 256,
		},
	}
	if diff := cmp.Diff(want, s.Party, compareOptions...); diff != "" {
		t.Errorf("party mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, s.Trainer.PartySize)
}

func TestAssembleCurrentHP(t *testing.T) {
	tests := []struct {
		hi, lo byte
		want   int
	}{
		{hi: 0x01, lo: 0x00, want: 1},
		{hi: 0x00, lo: 0x01, want: 256},
		{hi: 0x2C, lo: 0x01, want: 300},
		{hi: 0xFF, lo: 0xFF, want: 0xFFFF},
	}

	for _, tt := range tests {
		values := decode.NewValues()
		values.Set("Party Size", decode.Int(1), 1)
		values.Set("PKM1 HP hi", decode.Int(int(tt.hi)), tt.hi)
		values.Set("PKM1 HP lo", decode.Int(int(tt.lo)), tt.lo)

		s := Assemble(values, testTables())
		assert.Len(t, s.Party, 1)
		assert.Equal(t, tt.want, s.Party[0].HPCurrent)
	}
}

func TestAssemblePartySizeZero(t *testing.T) {
	values := decode.NewValues()
	values.Set("Party Size", decode.Int(0), 0)
	values.Set("PKM1 Species", decode.Int(0x99), 0x99)

	withZero := Assemble(values, testTables())
	absent := Assemble(decode.NewValues(), testTables())

	assert.Len(t, withZero.Party, 0)
	assert.Len(t, absent.Party, 0)
	assert.Equal(t, absent.Trainer.PartySize, withZero.Trainer.PartySize)
}

func TestAssembleInventory(t *testing.T) {
	values := decode.NewValues()
	values.Set("Bag Count", decode.Int(4), 4)
	values.Set("Bag1 ID", decode.String("POTION"), 0x14)
	values.Set("Bag1 Qty", decode.Int(3), 3)
	values.Set("Bag2 ID", decode.String("Unknown(0)"), 0x00)
	values.Set("Bag2 Qty", decode.Int(9), 9)
	values.Set("Bag3 ID", decode.String("POKé BALL"), 0x04)
	values.Set("Bag3 Qty", decode.Int(5), 5)
	values.Set("Bag4 ID", decode.String("POTION"), 0x14)
	values.Set("Bag4 Qty", decode.Int(1), 1)
	values.Set("Bag5 ID", decode.String("ANTIDOTE"), 0x0B)
	values.Set("Bag5 Qty", decode.Int(2), 2)
	values.Set("PC Count", decode.Int(2), 2)
	values.Set("PC2 ID", decode.String("ESCAPE ROPE"), 0x1D)

	s := Assemble(values, testTables())

	assert.Equal(t, []string{"POTION", "POKé BALL"}, s.Bag.Names())
	potion, ok := s.Bag.Quantity("POTION")
	assert.True(t, ok)
	// duplicate slots replace the quantity instead of adding it up
	assert.Equal(t, decode.Int(1), potion)

	_, ok = s.Bag.Quantity("Unknown(0)")
	assert.False(t, ok)
	_, ok = s.Bag.Quantity("ANTIDOTE")
	assert.False(t, ok)

	assert.Equal(t, []string{"ESCAPE ROPE"}, s.PC.Names())
	rope, _ := s.PC.Quantity("ESCAPE ROPE")
	assert.True(t, rope.IsNull())
}

func TestAssembleFlags(t *testing.T) {
	values := decode.NewValues()
	values.Set("Fought Brock", decode.Bool(true), 1)
	values.Set("Money[1]", decode.Int(3000), 0x00)
	values.Set("Snorlax gone", decode.Bool(false), 0)
	values.Set("Have Bicycle", decode.Int(1), 1)

	s := Assemble(values, testTables())

	assert.Equal(t, []string{"Fought Brock", "Snorlax gone", "Have Bicycle"}, s.Flags.Names())
	state, ok := s.Flags.Get("Have Bicycle")
	assert.True(t, ok)
	assert.True(t, state)
	state, _ = s.Flags.Get("Snorlax gone")
	assert.False(t, state)
	assert.Equal(t, decode.Int(3000), s.Money)
}
