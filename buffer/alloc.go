package buffer

// Allocator provides a Buffer's storage.
//
// Realloc returns storage of exactly size bytes whose prefix holds the
// content of old (up to the shorter of the two), or false when size cannot
// be provided. On failure old must remain valid.
type Allocator interface {
	Realloc(old []byte, size int) ([]byte, bool)
}

// HeapAllocator allocates from the Go heap. It never fails.
type HeapAllocator struct{}

func (HeapAllocator) Realloc(old []byte, size int) ([]byte, bool) {
	if size < 0 {
		return nil, false
	}
	next := make([]byte, size)
	copy(next, old)
	return next, true
}

// LimitAllocator allocates from the Go heap but refuses any request for
// more than Max bytes.
type LimitAllocator struct {
	Max int
}

func (a LimitAllocator) Realloc(old []byte, size int) ([]byte, bool) {
	if size > a.Max {
		return nil, false
	}
	return HeapAllocator{}.Realloc(old, size)
}
