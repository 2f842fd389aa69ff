package buffer

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/iw2rmb/linebuf/internal/qutf8"
)

// InsertLocale converts raw terminal input to the internal form (see
// qutf8.FromLocale) and inserts it at pos.
func (b *Buffer) InsertLocale(pos int, raw []byte, cs *charmap.Charmap) int {
	return b.Insert(pos, qutf8.FromLocale(raw, cs))
}

// ToLocale returns the content for a terminal that cannot show UTF-8.
// Single bytes and raw-byte codepoints pass through and escape sequences
// are dropped. Other codepoints above ASCII are encoded through cs when it
// can represent them and dropped otherwise.
func (b *Buffer) ToLocale(cs *charmap.Charmap) []byte {
	s := b.Bytes()
	if len(s) == 0 {
		return nil
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		n, _ := NextUnit(s, i)
		if n <= 0 {
			break
		}
		switch {
		case n == 1:
			out = append(out, s[i])
		case s[i] == esc:
		default:
			r, _ := qutf8.Decode(s[i : i+n])
			if c, ok := qutf8.IsRaw(r); ok {
				out = append(out, c)
			} else if r <= 0x7F {
				out = append(out, byte(r))
			} else if cs != nil {
				if c, ok := cs.EncodeRune(r); ok {
					out = append(out, c)
				}
			}
		}
		i += n
	}
	return out
}
