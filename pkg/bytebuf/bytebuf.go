// Package bytebuf provides a fixed-capacity byte container over a
// caller-owned region. It never reallocates: the logical length grows by
// reslicing within the region, and writing past the region's capacity
// panics through the slice bounds check.
package bytebuf

// Buffer tracks a logical length over a borrowed fixed-size byte region.
// Length lives in len(b), the fixed capacity in cap(b). The zero value is
// an empty buffer of zero capacity.
type Buffer struct {
	b []byte
}

// New returns an empty Buffer whose capacity is the full region.
func New(region []byte) Buffer {
	return Buffer{region[:0:len(region)]}
}

// FromSliceLen returns a Buffer over region with the first n bytes counted
// as occupied. Panics if n exceeds the region size.
func FromSliceLen(region []byte, n int) Buffer {
	return Buffer{region[:n:len(region)]}
}

// Bytes returns the occupied prefix, sharing storage with the region.
func (f *Buffer) Bytes() []byte { return f.b }

// Raw returns the entire region, occupied or not.
func (f *Buffer) Raw() []byte { return f.b[:cap(f.b)] }

func (f *Buffer) Len() int   { return len(f.b) }
func (f *Buffer) Cap() int   { return cap(f.b) }
func (f *Buffer) Avail() int { return cap(f.b) - len(f.b) }

func (f *Buffer) PutByte(c byte)    { f.Extend(1)[0] = c }
func (f *Buffer) PutBytes(p []byte) { copy(f.Extend(len(p)), p) }

// Extend grows the occupied range by n bytes and returns the newly
// occupied tail for the caller to fill. Panics if n exceeds the remaining
// capacity.
func (f *Buffer) Extend(n int) []byte {
	b := f.b
	offset := len(b)
	b = b[:offset+n]
	f.b = b
	return b[offset:]
}

// Truncate shortens the occupied range to n bytes. No-op when n is not
// smaller than the current length.
func (f *Buffer) Truncate(n int) {
	if n < len(f.b) {
		f.b = f.b[:n]
	}
}

// SplitOff divides the buffer at byte offset at. The receiver keeps the
// occupied bytes [0, at) and its capacity shrinks to at; the returned
// Buffer owns the rest of the region, with the remaining occupied bytes
// [at, len) as its contents. Panics if at exceeds the occupied length.
func (f *Buffer) SplitOff(at int) Buffer {
	tail := f.b[at:len(f.b):cap(f.b)]
	f.b = f.b[:at:at]
	return Buffer{tail}
}
