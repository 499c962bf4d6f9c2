package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalLookup(t *testing.T) {
	tests := []struct {
		name   string
		r      rune
		want   byte
		wantOK bool
	}{
		{"space is blank", ' ', 0x00, true},
		{"hyphen is segment G", '-', 0x01, true},
		{"zero", '0', 0x7e, true},
		{"eight lights everything", '8', 0x7f, true},
		{"letter", 'H', 0x17, true},
		{"approximated letter", 'W', 0x2a, true},
		{"lower case is missing", 'h', 0, false},
		{"punctuation is missing", '.', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normal.Lookup(tt.r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupDefaultsToNormal(t *testing.T) {
	for _, r := range Normal.Runes() {
		want, _ := Normal.Lookup(r)
		got, ok := Lookup(r)
		assert.True(t, ok, "rune %q", r)
		assert.Equal(t, want, got, "rune %q", r)
	}
}

func TestRotatedCharset(t *testing.T) {
	assert.Equal(t, []rune(" 0123456789"), Rotated.Runes())

	for _, r := range []rune{'-', 'A', 'z'} {
		_, ok := Rotated.Lookup(r)
		assert.False(t, ok, "rune %q should not be in the rotated table", r)
	}
}

func TestRotatedDiffersFromNormal(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		n, ok := Normal.Lookup(r)
		require.True(t, ok)
		rot, ok := Rotated.Lookup(r)
		require.True(t, ok)
		assert.NotEqual(t, n, rot, "digit %q has the same mask in both tables", r)
	}
}

func TestNoDecimalPoint(t *testing.T) {
	for _, r := range Normal.Runes() {
		m, _ := Normal.Lookup(r)
		assert.Zero(t, m&0x80, "rune %q sets the decimal point", r)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		table  *Table
		mask   byte
		want   rune
		wantOK bool
	}{
		{"digit", Normal, 0x7e, '0', true},
		{"digit wins over S", Normal, 0x5b, '5', true},
		{"digit wins over Y", Normal, 0x33, '4', true},
		{"V wins over W", Normal, 0x2a, 'V', true},
		{"blank", Normal, 0x00, ' ', true},
		{"rotated nine", Rotated, 0x98, '9', true},
		{"unknown", Normal, 0xff, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.Decode(tt.mask)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, table := range []*Table{Normal, Rotated} {
		for r := '0'; r <= '9'; r++ {
			m, _ := table.Lookup(r)
			got, ok := table.Decode(m)
			require.True(t, ok)
			assert.Equal(t, r, got, "%v digit %q", table, r)
		}
	}
}

func TestTableString(t *testing.T) {
	assert.Equal(t, "glyph.normal", Normal.String())
	assert.Equal(t, "glyph.rotated", Rotated.String())
	assert.Equal(t, 38, Normal.Len())
	assert.Equal(t, 11, Rotated.Len())
}
