package derpdu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeIdentifier_ShortForm(t *testing.T) {
	buf := NewByteBuffer()
	n := EncodeIdentifier(buf, Identifier{Class: ClassUniversal, Encoding: Constructed, Tag: TagSequence})
	require.Equal(t, 1, n)
	require.Equal(t, []byte{0x30}, buf.Bytes())
}

func TestEncodeIdentifier_ShortFormThresholdIs30(t *testing.T) {
	// spec resolution: tag <= 30 is short form, tag == 31 requires the
	// high-tag-number escape (X.690 8.1.2.4), not tag <= 31.
	buf := NewByteBuffer()
	n := EncodeIdentifier(buf, Identifier{Class: ClassContextSpecific, Encoding: Primitive, Tag: 30})
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x9E), buf.Bytes()[0]) // 10 011110

	buf2 := NewByteBuffer()
	n2 := EncodeIdentifier(buf2, Identifier{Class: ClassContextSpecific, Encoding: Primitive, Tag: 31})
	require.Equal(t, 2, n2)
	require.Equal(t, byte(0x9F), buf2.Bytes()[0]) // escape marker, high-tag-number form
}

func TestEncodeIdentifier_HighTagNumberContinuationBits(t *testing.T) {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: ClassApplication, Encoding: Primitive, Tag: 1000})
	out := buf.Bytes()

	require.Equal(t, byte(0x5F), out[0]) // APPLICATION, primitive, escape 0x1F
	require.Len(t, out, 3)

	// Every continuation octet except the last carries the high bit.
	for i := 1; i < len(out)-1; i++ {
		require.NotZero(t, out[i]&0x80, "octet %d should carry continuation bit", i)
	}
	require.Zero(t, out[len(out)-1]&0x80, "final digit octet must not carry continuation bit")

	require.Equal(t, byte(0x87), out[1]) // 7 | 0x80
	require.Equal(t, byte(0x68), out[2]) // 104, no continuation bit
}

func TestEncodeIdentifier_HighTagNumberSingleDigit(t *testing.T) {
	buf := NewByteBuffer()
	n := EncodeIdentifier(buf, Identifier{Class: ClassPrivate, Encoding: Constructed, Tag: 40})
	require.Equal(t, 2, n)
	out := buf.Bytes()
	require.Zero(t, out[1]&0x80, "single-digit high tag number has no continuation bit set")
	require.Equal(t, byte(40), out[1])
}
