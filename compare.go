package fixstr

import (
	"bytes"
	"hash/crc32"

	"github.com/rawbytedev/fixstr/zc"
)

// Byte-wise comparison of valid UTF-8 equals lexicographic order by
// Unicode scalar sequence, so all of these delegate to the bytes.

// Equal reports whether s and other hold the same text.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.buf.Bytes(), other.buf.Bytes())
}

// EqualString reports whether s holds exactly the text t.
func (s *String) EqualString(t string) bool {
	return bytes.Equal(s.buf.Bytes(), zc.Bytes(t))
}

// Compare orders s against other like bytes.Compare.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.buf.Bytes(), other.buf.Bytes())
}

// CompareString orders s against a plain string.
func (s *String) CompareString(t string) int {
	return bytes.Compare(s.buf.Bytes(), zc.Bytes(t))
}

// Sum32 returns the CRC-32 (IEEE) checksum of the occupied bytes. Two
// strings holding the same text always hash alike.
func (s *String) Sum32() uint32 {
	return crc32.ChecksumIEEE(s.buf.Bytes())
}
