package strutil

import "strconv"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanNumber reads optional whitespace, an optional sign (when signed) and
// a run of decimal digits starting at i. It returns the number text and the
// index after it.
func scanNumber(s string, i int, signed bool) (string, int, bool) {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return "", start, false
	}
	return s[start:i], i, true
}

// ParseInt parses a leading decimal integer, ignoring leading whitespace
// and any trailing text.
func ParseInt(s string) (int, bool) {
	v, _, ok := parseIntAt(s, 0)
	return v, ok
}

// ParseIntPair parses two decimal integers separated by ';', as found in
// terminal replies such as a cursor position report.
func ParseIntPair(s string) (int, int, bool) {
	a, i, ok := parseIntAt(s, 0)
	if !ok || i >= len(s) || s[i] != ';' {
		return 0, 0, false
	}
	b, _, ok := parseIntAt(s, i+1)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

// ParseUint32 parses a leading unsigned 32-bit decimal.
func ParseUint32(s string) (uint32, bool) {
	text, _, ok := scanNumber(s, 0, false)
	if !ok {
		return 0, false
	}
	if text[0] == '+' {
		text = text[1:]
	}
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func parseIntAt(s string, i int) (int, int, bool) {
	text, next, ok := scanNumber(s, i, true)
	if !ok {
		return 0, i, false
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, i, false
	}
	return v, next, true
}
