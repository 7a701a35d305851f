package derpdu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeBitString(t *testing.T) {
	got := EncodeBitString(BitStringSpec{Class: ClassUniversal, Payload: []byte{0xA5}})
	want := []byte{0x03, 0x02, 0x00, 0xA5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBitString_EmptyPayload(t *testing.T) {
	got := EncodeBitString(BitStringSpec{Class: ClassUniversal})
	require.Equal(t, []byte{0x03, 0x01, 0x00}, got)
}

func TestEncodeInteger(t *testing.T) {
	got := EncodeInteger(IntegerSpec{Class: ClassUniversal, Payload: []byte{0x01, 0x00}})
	require.Equal(t, []byte{0x02, 0x02, 0x01, 0x00}, got)
}

func TestEncodeUTCTime_NoZulu(t *testing.T) {
	d := UTCTimeDigits{Digits: [12]int{2, 5, 0, 1, 0, 1, 1, 2, 0, 0, 0, 0}}
	got := EncodeUTCTime(d)
	require.Equal(t, byte(0x17), got[0]) // tag 23
	require.Equal(t, byte(12), got[1])
	require.Len(t, got, 14)
}

func TestEncodeUTCTime_Zulu(t *testing.T) {
	d := UTCTimeDigits{Digits: [12]int{2, 5, 0, 1, 0, 1, 1, 2, 0, 0, 0, 0}, Zulu: true}
	got := EncodeUTCTime(d)
	require.Equal(t, byte(13), got[1])
	require.Equal(t, byte('Z'), got[len(got)-1])
	require.Len(t, got, 15)
}

func TestEncodeGeneralizedTime(t *testing.T) {
	d := GeneralizedTimeDigits{Digits: [14]int{2, 0, 2, 5, 0, 1, 0, 1, 1, 2, 0, 0, 0, 0}, Zulu: true}
	got := EncodeGeneralizedTime(d)
	require.Equal(t, byte(0x18), got[0]) // tag 24
	require.Equal(t, byte(15), got[1])
	require.Equal(t, byte('Z'), got[len(got)-1])
}

func TestEncodeUTCTime_OutOfRangeDigitsAreNotValidated(t *testing.T) {
	// All-9 digits give month 99, day 99, hour 99, minute 99 and second
	// 99 -- not a valid calendar time, but this encoder is deliberately
	// not a validator and emits each digit as ASCII '9'.
	d := UTCTimeDigits{Digits: [12]int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}}
	got := EncodeUTCTime(d)
	for _, b := range got[2:] {
		require.Equal(t, byte('9'), b)
	}
}

func TestEncodeAlgorithmIdentifier(t *testing.T) {
	spec := AlgorithmIdentifierSpec{
		ObjectIdentifier: OIDRSAEncryption,
		Parameters:       NullParameters,
	}
	got := EncodeAlgorithmIdentifier(spec)
	require.Equal(t, byte(0x30), got[0]) // SEQUENCE
	require.Equal(t, byte(len(OIDRSAEncryption)+len(NullParameters)), got[1])

	want := append([]byte{0x30, byte(len(OIDRSAEncryption) + len(NullParameters))}, OIDRSAEncryption...)
	want = append(want, NullParameters...)
	require.Equal(t, want, got)
}
