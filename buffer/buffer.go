package buffer

import "log/slog"

// minAlloc is the capacity of the first allocation.
const minAlloc = 124

type Options struct {
	Allocator Allocator    // default: HeapAllocator
	Logger    *slog.Logger // diagnostics; nil is silent
}

// Buffer is a growable, NUL-terminated byte string holding UTF-8 text
// interspersed with ANSI escape sequences.
//
// The content is buf[:count]; buf[count] is always 0 once storage exists.
// Capacity excludes the sentinel byte, so len(buf) == size+1.
// The zero Buffer is empty and ready to use.
type Buffer struct {
	buf     []byte
	count   int
	size    int
	version uint64

	opt Options
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{opt: opt}
	b.insert(0, text)
	b.version = 0
	return b
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int { return b.count }

// Cap returns the capacity in bytes, not counting the sentinel.
func (b *Buffer) Cap() int { return b.size }

// Version increments on every effective change of the content.
func (b *Buffer) Version() uint64 { return b.version }

// Bytes returns the content. The slice is only valid until the next
// mutation.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf[:b.count:b.count]
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

// BytesAt returns the content from pos on, valid until the next mutation.
// It reports false if pos is outside [0, Len()].
func (b *Buffer) BytesAt(pos int) ([]byte, bool) {
	if pos < 0 || pos > b.count {
		return nil, false
	}
	if b.buf == nil {
		return []byte{}, true
	}
	return b.buf[pos:b.count:b.count], true
}

// ByteAt returns the byte at pos, or 0 outside the content.
func (b *Buffer) ByteAt(pos int) byte {
	if b.buf == nil || pos < 0 || pos >= b.count {
		return 0
	}
	return b.buf[pos]
}

// Dup returns an owned copy of the content.
func (b *Buffer) Dup() string {
	return b.String()
}

// DupAt returns an owned copy of the content from pos on.
func (b *Buffer) DupAt(pos int) (string, bool) {
	s, ok := b.BytesAt(pos)
	if !ok {
		return "", false
	}
	return string(s), true
}

// Detach hands the content out as a string and leaves the buffer empty
// with no storage.
func (b *Buffer) Detach() string {
	s := b.String()
	b.Reset()
	return s
}

// Reset releases the storage.
func (b *Buffer) Reset() {
	if b.count > 0 {
		b.version++
	}
	b.buf = nil
	b.count = 0
	b.size = 0
}

// Width returns the display width of the whole content.
func (b *Buffer) Width() int {
	return columnWidth(b.Bytes())
}

// ensureExtra makes room for extra more bytes. Growth is all-or-nothing:
// on failure the buffer is untouched.
func (b *Buffer) ensureExtra(extra int) bool {
	if extra < 0 {
		return false
	}
	if b.size-b.count >= extra {
		return true
	}
	need := b.count + extra
	if need < b.count {
		b.warn("buffer: size overflow", "len", b.count, "extra", extra)
		return false
	}
	size := max(2*b.size, minAlloc, need)
	b.debug("buffer: reallocate", "old", b.size, "new", size)
	next, ok := b.allocator().Realloc(b.buf, size+1)
	if !ok || len(next) != size+1 {
		b.warn("buffer: reallocation failed", "old", b.size, "new", size)
		return false
	}
	b.buf = next
	b.size = size
	b.buf[b.count] = 0
	b.buf[b.size] = 0
	return true
}

func (b *Buffer) allocator() Allocator {
	if b.opt.Allocator == nil {
		return HeapAllocator{}
	}
	return b.opt.Allocator
}

func (b *Buffer) debug(msg string, args ...any) {
	if b.opt.Logger != nil {
		b.opt.Logger.Debug(msg, args...)
	}
}

func (b *Buffer) warn(msg string, args ...any) {
	if b.opt.Logger != nil {
		b.opt.Logger.Warn(msg, args...)
	}
}

// outOfRange logs a position outside [0, Len()] handed to op.
func (b *Buffer) outOfRange(op string, pos int) {
	b.warn("buffer: position out of range", "op", op, "pos", pos, "len", b.count)
}
