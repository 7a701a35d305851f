package derpdu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeLength_ShortForm(t *testing.T) {
	buf := NewByteBuffer()
	buf.Append(0x04, 0x01, 0x02, 0x03) // value already written
	n := EncodeLength(buf, Definite(), 4, 0)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{0x04, 0x04, 0x01, 0x02, 0x03}, buf.Bytes())
}

func TestEncodeLength_ShortFormUpperBound(t *testing.T) {
	buf := NewByteBuffer()
	n := EncodeLength(buf, Definite(), 127, 0)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x7F), buf.Bytes()[0])
}

func TestEncodeLength_LongForm(t *testing.T) {
	buf := NewByteBuffer()
	n := EncodeLength(buf, Definite(), 128, 0)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x81, 0x80}, buf.Bytes())
}

func TestEncodeLength_LongFormMultiByte(t *testing.T) {
	buf := NewByteBuffer()
	n := EncodeLength(buf, Definite(), 70000, 0)
	require.Equal(t, 4, n)
	// 70000 == 0x0111_70 -> minimal big-endian: 0x01 0x11 0x70
	require.Equal(t, []byte{0x83, 0x01, 0x11, 0x70}, buf.Bytes())
}

func TestEncodeLength_Indefinite(t *testing.T) {
	buf := NewByteBuffer()
	buf.Append(0x01, 0x02) // value
	n := EncodeLength(buf, Indefinite(), 2, 0)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0x80, 0x01, 0x02, 0x00, 0x00}, buf.Bytes())
}

func TestEncodeLength_Override(t *testing.T) {
	buf := NewByteBuffer()
	buf.Append(0x01) // value, one byte, but we lie about the length below
	n := EncodeLength(buf, OverrideLength([]byte{0x81, 0xFF}), 1, 0)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x81, 0xFF, 0x01}, buf.Bytes())
}
