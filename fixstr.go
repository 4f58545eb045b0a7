// Package fixstr implements a fixed-capacity UTF-8 string over a
// caller-owned byte region. It never allocates and never grows past the
// region it was given; at every observable point the occupied prefix of
// the region is valid UTF-8.
//
// Two invariants hold for every String:
//
//	I1: bytes [0, Len) of the region are valid UTF-8
//	I2: Len <= Cap, and no operation writes past Cap
//
// Appends that would exceed the capacity fail with ErrCapacity and leave
// the string byte-for-byte unchanged. Offset-based operations (Truncate,
// SplitOff) require rune-boundary offsets and panic otherwise: a
// misaligned offset is caller bookkeeping gone wrong, not input to
// recover from. The unchecked constructors and RawBuffer transfer
// responsibility for I1 and I2 to the caller; everything else maintains
// them mechanically.
package fixstr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rawbytedev/fixstr/internal/common"
	"github.com/rawbytedev/fixstr/pkg/bytebuf"
)

// ErrCapacity is returned by appends that would exceed the backing
// region's fixed capacity. The failed operation has no partial effect.
var ErrCapacity = errors.New("fixstr: insufficient capacity")

// DecodeError reports bytes that are not valid UTF-8 in a claimed
// occupied range. Offset is the position of the first invalid sequence.
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fixstr: invalid UTF-8 sequence at byte %d", e.Offset)
}

// String is a fixed-capacity UTF-8 string view over a borrowed byte
// region. The zero value is an empty string of zero capacity. While a
// String holds a region no other code may read or write it, except
// through the escape hatches documented as such.
type String struct {
	buf bytebuf.Buffer
}

// New returns an empty String over region. The length-0 string is
// always valid UTF-8, so no validation is needed.
func New(region []byte) String {
	return FromUTF8Unchecked(region, 0)
}

// FromUTF8 builds a String over region whose first n bytes are the
// initial contents. Returns a *DecodeError when region[:n] is not valid
// UTF-8. Panics if n exceeds the region size.
func FromUTF8(region []byte, n int) (String, error) {
	if off := common.UTF8Offset(region[:n]); off >= 0 {
		return String{}, &DecodeError{Offset: off}
	}
	// validity of region[:n] has just been checked
	return FromUTF8Unchecked(region, n), nil
}

// FromUTF8Unchecked builds a String over region whose first n bytes are
// the initial contents, skipping validation. The caller must guarantee
// region[:n] is valid UTF-8; every later operation relies on it.
func FromUTF8Unchecked(region []byte, n int) String {
	return NewUnchecked(bytebuf.FromSliceLen(region, n))
}

// NewUnchecked wraps a container whose occupied bytes the caller
// guarantees are valid UTF-8.
func NewUnchecked(buf bytebuf.Buffer) String {
	return String{buf: buf}
}

// FromBuffer wraps a container after validating its occupied bytes.
func FromBuffer(buf bytebuf.Buffer) (String, error) {
	if off := common.UTF8Offset(buf.Bytes()); off >= 0 {
		return String{}, &DecodeError{Offset: off}
	}
	return NewUnchecked(buf), nil
}

// Wrap interprets the entire region as the initial contents, validating
// it. Equivalent to FromUTF8(region, len(region)).
func Wrap(region []byte) (String, error) {
	return FromUTF8(region, len(region))
}

// Len returns the occupied length in bytes.
func (s *String) Len() int { return s.buf.Len() }

// Cap returns the fixed capacity of the backing region in bytes.
func (s *String) Cap() int { return s.buf.Cap() }

func (s *String) IsEmpty() bool { return s.buf.Len() == 0 }

// Bytes returns the occupied bytes, sharing storage with the region.
// In-place edits through it must keep the bytes valid UTF-8; the slice
// length is fixed, so no edit through it can change Len.
func (s *String) Bytes() []byte { return s.buf.Bytes() }

// Clear resets the occupied length to zero.
func (s *String) Clear() { s.buf.Truncate(0) }

// Truncate shortens the string to n bytes. When n is not smaller than
// the current length it does nothing, n above the length included; this
// asymmetry with the other offset checks is deliberate and relied upon.
// Panics when n cuts a multi-byte rune.
func (s *String) Truncate(n int) {
	if n > s.buf.Len() {
		return
	}
	if !common.IsBoundary(s.buf.Bytes(), n) {
		panic("fixstr: truncate offset is not a rune boundary")
	}
	s.buf.Truncate(n)
}

// Pop removes and returns the last rune. Returns (0, false) when the
// string is empty; never fails otherwise, the last rune's boundary is
// always known under I1.
func (s *String) Pop() (rune, bool) {
	b := s.buf.Bytes()
	if len(b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b)
	s.buf.Truncate(len(b) - size)
	return r, true
}

// Push appends one rune, encoded as 1-4 bytes of UTF-8. Returns
// ErrCapacity, with the string unchanged, when the encoding does not
// fit. Invalid runes encode as U+FFFD, matching strings.Builder.
func (s *String) Push(r rune) error {
	if uint32(r) < utf8.RuneSelf {
		if s.buf.Avail() < 1 {
			return ErrCapacity
		}
		s.buf.PutByte(byte(r))
		return nil
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	if s.buf.Avail() < n {
		return ErrCapacity
	}
	s.buf.PutBytes(tmp[:n])
	return nil
}

// PushString appends the bytes of str. Returns ErrCapacity, with the
// string unchanged, when they do not fit; no partial append happens.
func (s *String) PushString(str string) error {
	if s.buf.Avail() < len(str) {
		return ErrCapacity
	}
	copy(s.buf.Extend(len(str)), str)
	return nil
}

// SplitOff divides the string at byte offset at. The receiver keeps
// [0, at) and its capacity shrinks to at; the returned String owns the
// rest of the region with the remaining occupied bytes as its contents.
// The two results never share storage. Panics when at is within the
// occupied range but not on a rune boundary; at beyond the occupied
// length panics through the container's bounds check.
func (s *String) SplitOff(at int) String {
	if at <= s.buf.Len() && !common.IsBoundary(s.buf.Bytes(), at) {
		panic("fixstr: split offset is not a rune boundary")
	}
	// both halves of a boundary-aligned split stay valid UTF-8
	return NewUnchecked(s.buf.SplitOff(at))
}

// RawBuffer exposes the underlying container for direct mutation.
// Any mutation through it must re-establish I1 and I2 before the next
// safe operation; no finite set of safe primitives covers every valid
// low-level write, so this hatch stays dangerous on purpose.
func (s *String) RawBuffer() *bytebuf.Buffer {
	return &s.buf
}

// IntoRaw consumes the String and hands back its region and occupied
// length. Reconstructing via FromUTF8Unchecked from the pair yields the
// identical string.
func (s *String) IntoRaw() ([]byte, int) {
	return s.buf.Raw(), s.buf.Len()
}
