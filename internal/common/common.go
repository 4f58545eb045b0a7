package common

import "unicode/utf8"

// UTF8Offset returns the byte offset of the first invalid UTF-8 sequence
// in b, or -1 when b is entirely valid.
func UTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// IsBoundary reports whether offset i falls on a rune boundary of b.
// Both ends of the slice count as boundaries.
func IsBoundary(b []byte, i int) bool {
	if i == 0 || i == len(b) {
		return true
	}
	if i < 0 || i > len(b) {
		return false
	}
	return utf8.RuneStart(b[i])
}
