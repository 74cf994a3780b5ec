package decode

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrodump/internal/tables"
)

// StringTerminator ends a fixed length string in game memory.
const StringTerminator = 0x50

// BadgeNames is the badge roster in bitfield order, bit 0 first.
var BadgeNames = [8]string{"Boulder", "Cascade", "Thunder", "Rainbow", "Soul", "Marsh", "Volcano", "Earth"}

// bcdDigits returns the two decimal digits of a packed BCD byte.
// Nibbles above 9 are not rejected and carry over into the tens.
func bcdDigits(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

// PackedBCD3 decodes a 6 digit packed BCD number, most significant byte first.
func PackedBCD3(b1, b2, b3 byte) int {
	return bcdDigits(b1)*10000 + bcdDigits(b2)*100 + bcdDigits(b3)
}

// PackedBCD2 decodes a 4 digit packed BCD number, most significant byte first.
func PackedBCD2(b1, b2 byte) int {
	return bcdDigits(b1)*100 + bcdDigits(b2)
}

// FixedString decodes an in game string using the charset table.
// Decoding stops at the first terminator byte, bytes without a charset
// entry are rendered as '?'.
func FixedString(charset tables.Table, data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		if b == StringTerminator {
			break
		}
		char, ok := charset.Get(int(b))
		if !ok {
			char = "?"
		}
		sb.WriteString(char)
	}
	return sb.String()
}

// StatusFlags decodes a status condition byte. All set conditions are
// returned in the order PAR, FRZ, BRN, PSN, SLP(n), the game itself never
// sets more than one.
func StatusFlags(b byte) []string {
	conditions := []string{}
	if b&0x40 != 0 {
		conditions = append(conditions, "PAR")
	}
	if b&0x20 != 0 {
		conditions = append(conditions, "FRZ")
	}
	if b&0x10 != 0 {
		conditions = append(conditions, "BRN")
	}
	if b&0x08 != 0 {
		conditions = append(conditions, "PSN")
	}
	if turns := b & 0x07; turns != 0 {
		conditions = append(conditions, fmt.Sprintf("SLP(%d)", turns))
	}
	return conditions
}

// Badges returns the names of all badges set in the bitfield.
func Badges(bitfield byte) []string {
	badges := []string{}
	for i, name := range BadgeNames {
		if bitfield>>i&1 == 1 {
			badges = append(badges, name)
		}
	}
	return badges
}
