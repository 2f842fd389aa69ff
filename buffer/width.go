package buffer

// StringWidth returns the display width of s. Escape sequences take no
// columns.
func StringWidth(s string) int {
	return columnWidth([]byte(s))
}

// SkipUntilFit drops display units from the front of s until the rest fits
// in maxWidth columns.
func SkipUntilFit(s string, maxWidth int) string {
	b := []byte(s)
	w := columnWidth(b)
	pos := 0
	for w > maxWidth {
		n, cw := NextUnit(b, pos)
		if n <= 0 {
			break
		}
		w -= cw
		pos += n
	}
	return s[pos:]
}

// PrevChar returns the position of the codepoint before pos in s, or -1.
func PrevChar(s string, pos int) int {
	if pos < 0 || pos > len(s) {
		return -1
	}
	n, _ := PrevUnit([]byte(s), pos)
	if n <= 0 {
		return -1
	}
	return pos - n
}

// NextChar returns the position of the display unit after pos in s, or -1.
func NextChar(s string, pos int) int {
	if pos < 0 || pos > len(s) {
		return -1
	}
	n, _ := NextUnit([]byte(s), pos)
	if n <= 0 {
		return -1
	}
	return pos + n
}
