// Package qutf8 is a UTF-8 codec extended with raw bytes.
//
// A byte in 0x80..0xFF that is not part of a valid UTF-8 sequence is carried
// through the codec as the codepoint RawBase+b, so text in a foreign
// single-byte locale can sit inside a UTF-8 buffer and be recovered exactly.
package qutf8

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// RawBase is the first codepoint of the raw-byte block. Only
// RawBase+0x80..RawBase+0xFF are produced.
const RawBase rune = 0xEE000

// Raw returns the codepoint that tags b as a raw byte.
func Raw(b byte) rune {
	return RawBase + rune(b)
}

// IsRaw reports whether r tags a raw byte, and returns that byte.
func IsRaw(r rune) (byte, bool) {
	if r < RawBase+0x80 || r > RawBase+0xFF {
		return 0, false
	}
	return byte(r - RawBase), true
}

// AppendRune appends the encoding of r to dst. Raw codepoints are
// valid scalars and encode as ordinary UTF-8.
func AppendRune(dst []byte, r rune) []byte {
	return utf8.AppendRune(dst, r)
}

// Encode returns the encoding of r.
func Encode(r rune) []byte {
	return AppendRune(make([]byte, 0, utf8.UTFMax), r)
}

// Decode decodes the first codepoint of s. An invalid lead byte b >= 0x80
// decodes as Raw(b) with size 1. Empty input returns (0, 0).
func Decode(s []byte) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		if s[0] >= 0x80 {
			return Raw(s[0]), 1
		}
		return rune(s[0]), 1
	}
	return r, size
}

// FromLocale converts input bytes to the internal UTF-8 form.
//
// With a nil charmap valid UTF-8 passes through unchanged and every byte
// that does not start a valid sequence becomes a raw codepoint. With a
// charmap every byte >= 0x80 is decoded through it; bytes the charmap does
// not define become raw codepoints.
func FromLocale(src []byte, cs *charmap.Charmap) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if c < 0x80 {
			out = append(out, c)
			i++
			continue
		}
		if cs != nil {
			r := cs.DecodeByte(c)
			if r == utf8.RuneError {
				r = Raw(c)
			}
			out = AppendRune(out, r)
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			out = AppendRune(out, Raw(c))
			i++
			continue
		}
		out = append(out, src[i:i+size]...)
		i += size
	}
	return out
}
