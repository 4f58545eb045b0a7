package fixstr

import (
	"unicode/utf8"

	"github.com/rawbytedev/fixstr/internal/common"
)

// io.Writer-family appends. All of them are atomic: on any error the
// string is byte-for-byte unchanged. They make a String usable as a
// destination for fmt.Fprintf and friends without allocating.

// Write appends p after validating it as UTF-8. Returns (0, ErrCapacity)
// when p does not fit and (0, *DecodeError) when it is not valid UTF-8.
func (s *String) Write(p []byte) (int, error) {
	if s.buf.Avail() < len(p) {
		return 0, ErrCapacity
	}
	if off := common.UTF8Offset(p); off >= 0 {
		return 0, &DecodeError{Offset: off}
	}
	s.buf.PutBytes(p)
	return len(p), nil
}

// WriteString appends str; it is PushString with the io.StringWriter
// signature.
func (s *String) WriteString(str string) (int, error) {
	if err := s.PushString(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteRune appends one rune, reporting the encoded byte count.
func (s *String) WriteRune(r rune) (int, error) {
	before := s.buf.Len()
	if err := s.Push(r); err != nil {
		return 0, err
	}
	return s.buf.Len() - before, nil
}

// WriteByte appends a single ASCII byte. Bytes >= 0x80 are rejected
// with a *DecodeError: a lone continuation or lead byte would break the
// UTF-8 prefix.
func (s *String) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return &DecodeError{Offset: s.buf.Len()}
	}
	if s.buf.Avail() < 1 {
		return ErrCapacity
	}
	s.buf.PutByte(c)
	return nil
}
