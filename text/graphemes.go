package text

import "github.com/rivo/uniseg"

// GraphemeBoundaries returns the rune offsets in s at which a grapheme
// cluster starts, excluding offset 0. Breaking a line anywhere else would
// separate a combining mark from its base character.
func GraphemeBoundaries(s string) []int {
	if s == "" {
		return nil
	}
	var offsets []int
	pos := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if pos > 0 {
			offsets = append(offsets, pos)
		}
		pos += len(g.Runes())
	}
	return offsets
}
