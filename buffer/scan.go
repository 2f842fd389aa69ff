package buffer

import "github.com/iw2rmb/linebuf/internal/cellwidth"

const esc = 0x1B

func isFollower(c byte) bool {
	return c >= 0x80 && c <= 0xBF
}

// NextUnit returns the byte length and display width of the display unit
// starting at pos in s. A complete escape sequence is one unit of width 0;
// otherwise the unit is a lead byte plus its continuation bytes.
// It returns (0, 0) when pos is not in [0, len(s)).
func NextUnit(s []byte, pos int) (n, width int) {
	if pos < 0 || pos >= len(s) {
		return 0, 0
	}
	if n, ok := escapeLen(s[pos:]); ok {
		return n, 0
	}
	n = 1
	for pos+n < len(s) && isFollower(s[pos+n]) {
		n++
	}
	return n, unitWidth(s[pos : pos+n])
}

// PrevUnit returns the byte length and display width of the codepoint
// ending at pos in s. Escape sequences are not recognized scanning
// backward. It returns (0, 0) when pos is not in (0, len(s)].
func PrevUnit(s []byte, pos int) (n, width int) {
	if pos <= 0 || pos > len(s) {
		return 0, 0
	}
	n = 1
	for pos > n && isFollower(s[pos-n]) {
		n++
	}
	return n, unitWidth(s[pos-n : pos])
}

// escapeLen reports the length of the escape sequence s starts with:
// ESC '[' or ESC ']' followed by parameter bytes 0x30-0x3F, intermediate
// bytes 0x20-0x2F and a final byte 0x40-0x7E, or ESC and any other byte.
func escapeLen(s []byte) (int, bool) {
	if len(s) < 2 || s[0] != esc {
		return 0, false
	}
	if s[1] != '[' && s[1] != ']' {
		return 2, true
	}
	intermediate := false
	for n := 2; n < len(s); n++ {
		c := s[n]
		switch {
		case c >= 0x30 && c <= 0x3F:
			// parameter bytes cannot follow intermediate bytes
			if intermediate {
				return 0, false
			}
		case c >= 0x20 && c <= 0x2F:
			intermediate = true
		case c >= 0x40 && c <= 0x7E:
			return n + 1, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// unitWidth is the column width of a single unit. Control bytes, and so
// escape sequences, take no column.
func unitWidth(u []byte) int {
	if len(u) == 0 || u[0] < ' ' {
		return 0
	}
	b := u[0]
	var c rune
	switch {
	case b <= 0x7F:
		return 1
	case b <= 0xC1:
		// stray continuation byte, or an overlong 0xC0/0xC1 lead
		return 1
	case b <= 0xDF && len(u) >= 2:
		c = rune(b&0x1F)<<6 | rune(u[1]&0x3F)
	case b <= 0xEF && len(u) >= 3:
		c = rune(b&0x0F)<<12 | rune(u[1]&0x3F)<<6 | rune(u[2]&0x3F)
	case b <= 0xF4 && len(u) >= 4:
		c = rune(b&0x07)<<18 | rune(u[1]&0x3F)<<12 | rune(u[2]&0x3F)<<6 | rune(u[3]&0x3F)
	default:
		return 1
	}
	return cellwidth.Cell(c)
}

// columnWidth is the display width of s, summed unit by unit.
func columnWidth(s []byte) int {
	w := 0
	for i := 0; i < len(s); {
		n, cw := NextUnit(s, i)
		if n <= 0 {
			break
		}
		w += cw
		i += n
	}
	return w
}
