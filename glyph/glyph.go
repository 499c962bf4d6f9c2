package glyph

import "sort"

// Table maps a character to its segment mask. Tables are read-only.
type Table struct {
	name  string
	masks map[rune]byte
}

// Normal is the upright character set.
var Normal = &Table{
	name: "normal",
	masks: map[rune]byte{
		' ': 0x00,
		'-': 0x01,
		'0': 0x7e,
		'1': 0x30,
		'2': 0x6d,
		'3': 0x79,
		'4': 0x33,
		'5': 0x5b,
		'6': 0x5f,
		'7': 0x70,
		'8': 0x7f,
		'9': 0x7b,
		'A': 0x77,
		'B': 0x1f,
		'C': 0x0d,
		'D': 0x3d,
		'E': 0x4f,
		'F': 0x47,
		'G': 0x5e,
		'H': 0x17,
		'I': 0x10,
		'J': 0x3c,
		'K': 0x2f,
		'L': 0x0e,
		'M': 0x54,
		'N': 0x15,
		'O': 0x1d,
		'P': 0x67,
		'Q': 0x73,
		'R': 0x05,
		'S': 0x5b,
		'T': 0x0f,
		'U': 0x1c,
		'V': 0x2a,
		'W': 0x2a,
		'X': 0x37,
		'Y': 0x33,
		'Z': 0x6d,
	},
}

// Rotated is the digit set for a display turned by 90 degrees. Only digits
// and space are available.
var Rotated = &Table{
	name: "rotated",
	masks: map[rune]byte{
		' ': 0x00,
		'0': 0x1d,
		'1': 0x08,
		'2': 0x25,
		'3': 0x1c,
		'4': 0x0d,
		'5': 0x13,
		'6': 0x05,
		'7': 0x18,
		'8': 0x14,
		'9': 0x98,
	},
}

// Lookup returns the mask for r in the Normal table.
func Lookup(r rune) (byte, bool) {
	return Normal.Lookup(r)
}

// Lookup returns the mask for r. ok is false when the table has no glyph for
// r; the returned mask is then 0 and must not be taken as a blank digit.
func (t *Table) Lookup(r rune) (mask byte, ok bool) {
	mask, ok = t.masks[r]
	return mask, ok
}

// Decode returns the character drawn by mask. When several characters share
// a mask the lowest code point wins, so digits are preferred over letters.
func (t *Table) Decode(mask byte) (rune, bool) {
	found := false
	var best rune
	for r, m := range t.masks {
		if m != mask {
			continue
		}
		if !found || r < best {
			best = r
			found = true
		}
	}
	return best, found
}

// Runes returns the characters of the table in ascending order.
func (t *Table) Runes() []rune {
	runes := make([]rune, 0, len(t.masks))
	for r := range t.masks {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.masks)
}

func (t *Table) String() string {
	return "glyph." + t.name
}
