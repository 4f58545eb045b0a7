package zc

// Package zc (zero-copy) contains the opt-in unsafe aliasing conversions
// between strings and byte slices. Everything in here shares memory with
// its input: the caller owns the lifetime and mutation rules. Safe code
// should convert by copying; this package exists for callers that can
// prove the buffer outlives the alias and is not mutated through it.

import "unsafe"

// String aliases b as a string without copying.
// Mutating b afterwards changes the returned string, which breaks the
// immutability assumption the rest of the runtime makes. Only use when b
// is not written through for the alias's lifetime.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes aliases s as a byte slice without copying.
// The result must be treated as read-only: writing through it is
// undefined behaviour since string data may live in read-only memory.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
