// Package glyph holds the segment tables used to render characters on a
// seven-segment digit driven in raw (no-decode) mode.
//
// Each mask is one byte, bit i lighting segment i:
//
//	 bit:  7  6  5  4  3  2  1  0
//	 seg:  DP A  B  C  D  E  F  G
//
// The decimal point bit is never set by the tables.
//
// Two tables are provided:
//
// - Normal: space, hyphen, 0-9 and A-Z. Letters that cannot be drawn on seven
// segments are approximated, so some share a mask with a digit (5 and S).
//
// - Rotated: 0-9 and space, for a digit mounted 90 degrees from its usual
// orientation.
//
// Example usage:
//
//	mask, ok := glyph.Normal.Lookup('7')
//	if !ok {
//		// not in the table
//	}
//
//	r, _ := glyph.Normal.Decode(0x7e)
//	println(string(r)) // Output: 0
package glyph
