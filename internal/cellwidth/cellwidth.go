// Package cellwidth reports how many terminal columns a codepoint occupies.
package cellwidth

import "github.com/mattn/go-runewidth"

// cond is fixed rather than derived from the locale environment:
// East-Asian ambiguous codepoints are narrow.
var cond = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// Rune returns the display width of r: 0 for combining and zero-width
// codepoints, 2 for wide (CJK, emoji) codepoints and 1 otherwise.
// Codepoints outside the Unicode range report 1.
func Rune(r rune) int {
	if r < 0 || r > 0x10FFFF {
		return 1
	}
	w := cond.RuneWidth(r)
	if w < 0 {
		return 0
	}
	if w > 2 {
		return 2
	}
	return w
}

// Cell returns the width a codepoint takes on the current platform's
// terminal. Some consoles cannot show a zero-width cell and always advance
// at least one column; on those Cell never reports less than MinCell.
func Cell(r rune) int {
	w := Rune(r)
	if w < MinCell {
		return MinCell
	}
	return w
}
