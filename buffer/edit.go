package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/linebuf/internal/qutf8"
)

// maxSwapUnit bounds the unit SwapChar relocates through scratch space.
const maxSwapUnit = 63

// insert is the single insertion path. Input is cut at its first NUL so the
// sentinel stays unique. It returns the position after the inserted text,
// or pos unchanged when nothing was inserted.
func (b *Buffer) insert(pos int, s string) int {
	if pos < 0 || pos > b.count {
		b.outOfRange("insert", pos)
		return pos
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	n := len(s)
	if n == 0 || !b.ensureExtra(n) {
		return pos
	}
	copy(b.buf[pos+n:], b.buf[pos:b.count])
	copy(b.buf[pos:], s)
	b.count += n
	b.buf[b.count] = 0
	b.version++
	return pos + n
}

// Insert inserts s at pos and returns the position after it. On an
// out-of-range pos or a failed growth nothing changes and pos is returned.
func (b *Buffer) Insert(pos int, s []byte) int {
	return b.insert(pos, string(s))
}

// InsertString is Insert for a string.
func (b *Buffer) InsertString(pos int, s string) int {
	return b.insert(pos, s)
}

// InsertByte inserts a single byte at pos.
func (b *Buffer) InsertByte(pos int, c byte) int {
	return b.insert(pos, string([]byte{c}))
}

// InsertRune inserts the encoding of r at pos. Raw-byte codepoints keep
// their tag.
func (b *Buffer) InsertRune(pos int, r rune) int {
	return b.insert(pos, string(qutf8.Encode(r)))
}

func (b *Buffer) Append(s []byte) int { return b.insert(b.count, string(s)) }

func (b *Buffer) AppendString(s string) int { return b.insert(b.count, s) }

func (b *Buffer) AppendByte(c byte) int { return b.InsertByte(b.count, c) }

// Appendf appends formatted text, reserving maxNeeded bytes for it first.
// Output beyond the free capacity is cut at a codepoint boundary. It
// returns the new length.
func (b *Buffer) Appendf(maxNeeded int, format string, args ...any) int {
	if maxNeeded < 0 {
		maxNeeded = 0
	}
	if !b.ensureExtra(maxNeeded) {
		return b.count
	}
	out := fmt.Appendf(nil, format, args...)
	for i, c := range out {
		if c == 0 {
			out = out[:i]
			break
		}
	}
	if avail := b.size - b.count; len(out) > avail {
		n := avail
		for n > 0 && !utf8.RuneStart(out[n]) {
			n--
		}
		out = out[:n]
	}
	if len(out) == 0 {
		return b.count
	}
	copy(b.buf[b.count:], out)
	b.count += len(out)
	b.buf[b.count] = 0
	b.version++
	return b.count
}

// Delete removes up to count bytes at pos.
func (b *Buffer) Delete(pos, count int) {
	if pos < 0 || pos > b.count {
		b.outOfRange("delete", pos)
		return
	}
	if pos == b.count || count <= 0 {
		return
	}
	if pos+count > b.count || pos+count < pos {
		count = b.count - pos
	}
	copy(b.buf[pos:], b.buf[pos+count:b.count])
	b.count -= count
	b.buf[b.count] = 0
	b.version++
}

// DeleteRange removes [start, end).
func (b *Buffer) DeleteRange(start, end int) {
	if end <= start {
		return
	}
	b.Delete(start, end-start)
}

// DeleteFrom removes everything from pos on.
func (b *Buffer) DeleteFrom(pos int) {
	b.Delete(pos, b.count-pos)
}

// Clear removes all content but keeps the storage.
func (b *Buffer) Clear() {
	b.Delete(0, b.count)
}

// Replace sets the content to s.
func (b *Buffer) Replace(s string) {
	b.Clear()
	b.AppendString(s)
}

// Next returns the position after the display unit at pos and its width,
// or -1 at the end.
func (b *Buffer) Next(pos int) (int, int) {
	n, w := NextUnit(b.Bytes(), pos)
	if n <= 0 {
		return -1, 0
	}
	return pos + n, w
}

// Prev returns the position of the codepoint before pos and its width, or
// -1 at the start.
func (b *Buffer) Prev(pos int) (int, int) {
	n, w := PrevUnit(b.Bytes(), pos)
	if n <= 0 {
		return -1, 0
	}
	return pos - n, w
}

// DeleteCharBefore removes the codepoint before pos and returns the new
// position, or pos if there is nothing before it.
func (b *Buffer) DeleteCharBefore(pos int) int {
	n, _ := PrevUnit(b.Bytes(), pos)
	if n <= 0 {
		return pos
	}
	b.Delete(pos-n, n)
	return pos - n
}

// DeleteCharAt removes the display unit at pos.
func (b *Buffer) DeleteCharAt(pos int) {
	n, _ := NextUnit(b.Bytes(), pos)
	if n <= 0 {
		return
	}
	b.Delete(pos, n)
}

// SwapChar exchanges the codepoint before pos with the unit at pos and
// returns the position where the swapped pair starts. It refuses, returning
// pos, at either end of the content or when the codepoint before pos is
// longer than maxSwapUnit bytes.
func (b *Buffer) SwapChar(pos int) int {
	s := b.Bytes()
	next, _ := NextUnit(s, pos)
	if next <= 0 {
		return pos
	}
	prev, _ := PrevUnit(s, pos)
	if prev <= 0 || prev >= maxSwapUnit {
		return pos
	}
	var scratch [maxSwapUnit + 1]byte
	start := pos - prev
	copy(scratch[:prev], b.buf[start:pos])
	copy(b.buf[start:], b.buf[pos:pos+next])
	copy(b.buf[start+next:], scratch[:prev])
	b.version++
	return start
}

func (b *Buffer) FindLineStart(pos int) int { return FindLineStart(b.Bytes(), pos) }

func (b *Buffer) FindLineEnd(pos int) int { return FindLineEnd(b.Bytes(), pos) }

func (b *Buffer) FindWordStart(pos int) int { return FindWordStart(b.Bytes(), pos) }

func (b *Buffer) FindWordEnd(pos int) int { return FindWordEnd(b.Bytes(), pos) }

func (b *Buffer) FindWSWordStart(pos int) int { return FindWSWordStart(b.Bytes(), pos) }

func (b *Buffer) FindWSWordEnd(pos int) int { return FindWSWordEnd(b.Bytes(), pos) }

// ForEachRow lays out the content; see the package-level ForEachRow.
func (b *Buffer) ForEachRow(l Layout, fn RowFunc) int {
	return ForEachRow(b.Bytes(), l, fn)
}

// RowColAt returns the row and column of pos and the total row count.
func (b *Buffer) RowColAt(l Layout, pos int) (RowCol, int) {
	return RowColAt(b.Bytes(), l, pos)
}

// PosAt returns the position at (row, col), or -1 if there is no such row.
func (b *Buffer) PosAt(l Layout, row, col int) int {
	return PosAt(b.Bytes(), l, row, col)
}
