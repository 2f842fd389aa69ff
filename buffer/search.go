package buffer

// MatchFunc classifies one display unit.
type MatchFunc func(unit []byte) bool

// FindBackward walks s unit by unit backward from pos and returns the
// position just after the first unit that matches. With skipImmediate a
// run of matching units directly before pos is skipped first. It returns
// -1 when the start of s is reached.
func FindBackward(s []byte, pos int, match MatchFunc, skipImmediate bool) int {
	i := clampInt(pos, 0, len(s))
	if skipImmediate {
		for i > 0 {
			n, _ := PrevUnit(s, i)
			if n <= 0 || !match(s[i-n:i]) {
				break
			}
			i -= n
		}
	}
	for i > 0 {
		n, _ := PrevUnit(s, i)
		if n <= 0 {
			break
		}
		if match(s[i-n : i]) {
			return i
		}
		i -= n
	}
	return -1
}

// FindForward walks s unit by unit forward from pos and returns the
// position of the first unit that matches. With skipImmediate a run of
// matching units at pos is skipped first. It returns -1 when the end of s
// is reached.
func FindForward(s []byte, pos int, match MatchFunc, skipImmediate bool) int {
	i := clampInt(pos, 0, len(s))
	if skipImmediate {
		for i < len(s) {
			n, _ := NextUnit(s, i)
			if n <= 0 || !match(s[i:i+n]) {
				break
			}
			i += n
		}
	}
	for i < len(s) {
		n, _ := NextUnit(s, i)
		if n <= 0 {
			break
		}
		if match(s[i : i+n]) {
			return i
		}
		i += n
	}
	return -1
}

// IsLinefeed matches a newline (or the terminating NUL).
func IsLinefeed(u []byte) bool {
	return len(u) == 1 && (u[0] == '\n' || u[0] == 0)
}

// IsNonWord matches units that cannot be part of a word. Words are made of
// ASCII letters and digits, '_', '-' and any multibyte unit.
func IsNonWord(u []byte) bool {
	if len(u) == 0 {
		return true
	}
	if len(u) > 1 {
		return false
	}
	c := u[0]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	case c == '_' || c == '-' || c > '~':
		return false
	}
	return true
}

// IsWhitespace matches a space, tab, newline or carriage return.
func IsWhitespace(u []byte) bool {
	if len(u) != 1 {
		return false
	}
	switch u[0] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func orStart(pos int) int {
	if pos < 0 {
		return 0
	}
	return pos
}

func orEnd(pos, n int) int {
	if pos < 0 {
		return n
	}
	return pos
}

// FindLineStart returns the start of the line containing pos.
func FindLineStart(s []byte, pos int) int {
	return orStart(FindBackward(s, pos, IsLinefeed, false))
}

// FindLineEnd returns the position of the newline ending the line that
// contains pos, or len(s).
func FindLineEnd(s []byte, pos int) int {
	return orEnd(FindForward(s, pos, IsLinefeed, false), len(s))
}

// FindWordStart returns the start of the word before pos.
func FindWordStart(s []byte, pos int) int {
	return orStart(FindBackward(s, pos, IsNonWord, true))
}

// FindWordEnd returns the end of the word after pos.
func FindWordEnd(s []byte, pos int) int {
	return orEnd(FindForward(s, pos, IsNonWord, true), len(s))
}

// FindWSWordStart is FindWordStart for words delimited only by whitespace.
func FindWSWordStart(s []byte, pos int) int {
	return orStart(FindBackward(s, pos, IsWhitespace, true))
}

// FindWSWordEnd is FindWordEnd for words delimited only by whitespace.
func FindWSWordEnd(s []byte, pos int) int {
	return orEnd(FindForward(s, pos, IsWhitespace, true), len(s))
}
