package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtendWithinRegion(t *testing.T) {
	region := make([]byte, 8)
	b := New(region)
	require.Equal(t, 0, b.Len())
	require.Equal(t, 8, b.Cap())
	require.Equal(t, 8, b.Avail())

	b.PutByte('a')
	b.PutBytes([]byte("bcd"))
	require.Equal(t, []byte("abcd"), b.Bytes())
	require.Equal(t, 4, b.Avail())

	// the region itself carries the writes
	require.Equal(t, []byte("abcd"), region[:4])
}

func TestExtendOverflowPanics(t *testing.T) {
	b := New(make([]byte, 2))
	b.PutBytes([]byte("ab"))
	require.Panics(t, func() { b.PutByte('c') })
	require.Panics(t, func() { b.Extend(1) })
}

func TestFromSliceLen(t *testing.T) {
	region := []byte("abcdefgh")
	b := FromSliceLen(region, 3)
	require.Equal(t, []byte("abc"), b.Bytes())
	require.Equal(t, 8, b.Cap())
	require.Equal(t, region, b.Raw())

	require.Panics(t, func() { FromSliceLen(region, 9) })
}

func TestTruncateNoopAboveLen(t *testing.T) {
	b := FromSliceLen([]byte("abcdefgh"), 4)
	b.Truncate(100)
	require.Equal(t, 4, b.Len())
	b.Truncate(4)
	require.Equal(t, 4, b.Len())
	b.Truncate(1)
	require.Equal(t, []byte("a"), b.Bytes())
}

func TestSplitOffDividesRegion(t *testing.T) {
	region := []byte("abcdef\x00\x00")
	b := FromSliceLen(region, 6)

	tail := b.SplitOff(2)
	require.Equal(t, []byte("ab"), b.Bytes())
	require.Equal(t, 2, b.Cap())
	require.Equal(t, []byte("cdef"), tail.Bytes())
	require.Equal(t, 6, tail.Cap())

	// halves write into disjoint parts of the region
	tail.PutByte('!')
	require.Equal(t, []byte("ab"), b.Bytes())
	require.Equal(t, byte('!'), region[6])

	require.Panics(t, func() { tail.SplitOff(10) })
}
