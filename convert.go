package fixstr

import (
	"github.com/rawbytedev/fixstr/internal/common"
	"github.com/rawbytedev/fixstr/zc"
)

// String returns a copy of the occupied bytes as a string. Allocates;
// callers on the no-alloc path should use Bytes or UnsafeString.
func (s *String) String() string {
	return string(s.buf.Bytes())
}

// UnsafeString returns the occupied bytes aliased as a string without
// copying. The result is only valid until the next mutation and must
// not outlive the backing region; see package zc for the rules.
func (s *String) UnsafeString() string {
	return zc.String(s.buf.Bytes())
}

// MarshalText implements encoding.TextMarshaler.
func (s *String) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.buf.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing the
// contents with text. Returns ErrCapacity when text does not fit in the
// backing region and a *DecodeError when it is not valid UTF-8; the
// previous contents survive either failure.
func (s *String) UnmarshalText(text []byte) error {
	if len(text) > s.buf.Cap() {
		return ErrCapacity
	}
	if off := common.UTF8Offset(text); off >= 0 {
		return &DecodeError{Offset: off}
	}
	s.buf.Truncate(0)
	s.buf.PutBytes(text)
	return nil
}
