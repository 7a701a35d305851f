package derpdu

/*
length.go contains the ASN.1 length octet encoder: short-form and
long-form definite lengths, indefinite-form lengths, and caller-
supplied override octets. Grounded on the teacher's encodeLengthInto
/ encodeDERLengthInto dispatch in tlv.go/der.go, generalized with the
Indefinite and Override directives this encoder's fallback-driven
fuzzing grammar requires (the teacher's DER build only ever emits
Definite lengths; BER/CER in the teacher support Indefinite, which is
the shape this file's Indefinite case is adapted from).
*/

/*
LengthKind distinguishes the three ways a PDU's length octets may be
produced.
*/
type LengthKind int

const (
	LengthDefinite LengthKind = iota
	LengthIndefinite
	LengthOverride
)

/*
LengthDirective selects how a PDU's length is encoded. Override
carries the raw bytes to emit verbatim; Indefinite and Definite carry
no payload of their own.
*/
type LengthDirective struct {
	Kind     LengthKind
	Override []byte
}

/*
Definite returns a LengthDirective instructing the encoder to compute
a standard short- or long-form definite length from the PDU's actual
value length.
*/
func Definite() LengthDirective { return LengthDirective{Kind: LengthDefinite} }

/*
Indefinite returns a LengthDirective instructing the encoder to emit
the single 0x80 indefinite-length octet and terminate the PDU's value
with a two-byte EOC marker.
*/
func Indefinite() LengthDirective { return LengthDirective{Kind: LengthIndefinite} }

/*
OverrideLength returns a LengthDirective instructing the encoder to
splice raw verbatim in place of a computed length, with no
consistency check against the PDU's actual value length. This is how
malformed DER is produced on demand.
*/
func OverrideLength(raw []byte) LengthDirective {
	return LengthDirective{Kind: LengthOverride, Override: raw}
}

/*
EncodeLength inserts the length octets described by directive at
lenPos within buf (computing them from actualValueLen when directive
is Definite) and returns the number of octets this PDU's length
contributes to its own size -- 3 for Indefinite, since the two
trailing EOC octets are also attributed to the PDU that opened them.
*/
func EncodeLength(buf *ByteBuffer, directive LengthDirective, actualValueLen int, lenPos int) int {
	switch directive.Kind {
	case LengthOverride:
		buf.InsertAt(lenPos, directive.Override)
		return len(directive.Override)

	case LengthIndefinite:
		buf.InsertAt(lenPos, []byte{0x80})
		buf.Append(0x00, 0x00)
		return 3

	default: // LengthDefinite
		if actualValueLen <= 127 {
			buf.InsertAt(lenPos, []byte{byte(actualValueLen)})
			return 1
		}
		digits := bigEndianDigits(uint64(actualValueLen), 256)
		k := len(digits)
		out := make([]byte, 0, k+1)
		out = append(out, 0x80|byte(k))
		out = append(out, digits...)
		buf.InsertAt(lenPos, out)
		return k + 1
	}
}
