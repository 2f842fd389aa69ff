// Package strutil holds small string helpers used around a line editor:
// ASCII case-insensitive matching and sscanf-style decimal parsing.
package strutil

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// HasPrefixFold reports whether s starts with prefix, ignoring ASCII case.
func HasPrefixFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

// CompareFold compares a and b bytewise ignoring ASCII case and returns
// -1, 0 or 1.
func CompareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		c1, c2 := lower(a[i]), lower(b[i])
		if c1 < c2 {
			return -1
		}
		if c1 > c2 {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// IndexFold returns the index of the first occurrence of pat in s ignoring
// ASCII case, or -1. An empty pattern matches at 0.
func IndexFold(s, pat string) int {
	if pat == "" {
		return 0
	}
	for i := 0; i+len(pat) <= len(s); i++ {
		if HasPrefixFold(s[i:], pat) {
			return i
		}
	}
	return -1
}
