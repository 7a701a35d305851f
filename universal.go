package derpdu

/*
universal.go contains the fixed-shape encoders for the ASN.1
universal types this system needs typed support for: BIT STRING,
INTEGER, UTCTime, GeneralizedTime and AlgorithmIdentifier (a
SEQUENCE). Each returns a freshly-built octet sequence; none touch a
caller-supplied buffer directly, matching the spec's "caller splices"
contract.

Grounded on the teacher's bs.go (BitString), int.go's
encodeIntegerContent (INTEGER payload framing) and time.go's
UTCTime/GeneralizedTime layouts -- though the teacher encodes time
values from a parsed time.Time, whereas this encoder takes raw digits
directly so that a fuzzer-supplied tree can express out-of-range or
malformed date components without fighting a time.Time's own
validation.
*/

/*
BitStringSpec describes a BIT STRING value. UnusedBits is always
encoded as 0x00 by this system (spec §4.5's "unused-bits byte"
is fixed, not caller-supplied).
*/
type BitStringSpec struct {
	Class   Class
	Payload []byte
}

/*
EncodeBitString returns the DER encoding of spec as a primitive BIT
STRING (tag 3): identifier, a definite length of len(payload)+1, the
0x00 unused-bits octet, then the payload verbatim.
*/
func EncodeBitString(spec BitStringSpec) []byte {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: spec.Class, Encoding: Primitive, Tag: TagBitString})

	lenPos := buf.Size()
	buf.Append(0x00)
	buf.Append(spec.Payload...)

	EncodeLength(buf, Definite(), 1+len(spec.Payload), lenPos)
	return buf.Bytes()
}

/*
IntegerSpec describes an INTEGER value. Payload is the caller-supplied
two's-complement big-endian byte representation; this encoder does
not canonicalize sign or strip redundant leading bytes -- the caller
is responsible for supplying a valid two's-complement form if a valid
INTEGER is desired.
*/
type IntegerSpec struct {
	Class   Class
	Payload []byte
}

/*
EncodeInteger returns the DER encoding of spec as a primitive INTEGER
(tag 2): identifier, a definite length of len(payload), then the
payload verbatim.
*/
func EncodeInteger(spec IntegerSpec) []byte {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: spec.Class, Encoding: Primitive, Tag: TagInteger})

	lenPos := buf.Size()
	buf.Append(spec.Payload...)

	EncodeLength(buf, Definite(), len(spec.Payload), lenPos)
	return buf.Bytes()
}

/*
UTCTimeDigits holds the twelve base-10 digits (YY MM DD HH MM SS, two
digits each) of a UTCTime value plus its trailing zulu flag. Each
entry of Digits is expected to be in [0,9]; this encoder does not
validate calendar correctness, so out-of-range month/day/hour values
are emitted verbatim (malformed-by-design, per spec §7).
*/
type UTCTimeDigits struct {
	Digits [12]int
	Zulu   bool
}

/*
EncodeUTCTime returns the DER encoding of d as a primitive UTCTime
(tag 23): identifier, a definite length of 12 or 13, the twelve ASCII
digit octets, and an optional trailing 'Z'.
*/
func EncodeUTCTime(d UTCTimeDigits) []byte {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: ClassUniversal, Encoding: Primitive, Tag: TagUTCTime})

	lenPos := buf.Size()
	for _, digit := range d.Digits {
		buf.Append(0x30 + byte(digit))
	}
	valLen := 12
	if d.Zulu {
		buf.Append('Z')
		valLen = 13
	}

	EncodeLength(buf, Definite(), valLen, lenPos)
	return buf.Bytes()
}

/*
GeneralizedTimeDigits holds the fourteen base-10 digits (YYYY MM DD HH
MM SS) of a GeneralizedTime value plus its trailing zulu flag. As with
UTCTimeDigits, digits are not calendar-validated.
*/
type GeneralizedTimeDigits struct {
	Digits [14]int
	Zulu   bool
}

/*
EncodeGeneralizedTime returns the DER encoding of d as a primitive
GeneralizedTime (tag 24): identifier, a definite length of 14 or 15,
the fourteen ASCII digit octets, and an optional trailing 'Z'.
*/
func EncodeGeneralizedTime(d GeneralizedTimeDigits) []byte {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: ClassUniversal, Encoding: Primitive, Tag: TagGeneralizedTime})

	lenPos := buf.Size()
	for _, digit := range d.Digits {
		buf.Append(0x30 + byte(digit))
	}
	valLen := 14
	if d.Zulu {
		buf.Append('Z')
		valLen = 15
	}

	EncodeLength(buf, Definite(), valLen, lenPos)
	return buf.Bytes()
}

/*
AlgorithmIdentifierSpec describes an AlgorithmIdentifier value.
ObjectIdentifier and Parameters are supplied already DER-encoded --
this system performs no OID parsing or encoding of its own (spec
§4.5).
*/
type AlgorithmIdentifierSpec struct {
	ObjectIdentifier []byte
	Parameters       []byte
}

/*
EncodeAlgorithmIdentifier returns the DER encoding of spec as a
constructed SEQUENCE (tag 16): identifier, a definite length of
len(ObjectIdentifier)+len(Parameters), then the two fields verbatim
in order.
*/
func EncodeAlgorithmIdentifier(spec AlgorithmIdentifierSpec) []byte {
	buf := NewByteBuffer()
	EncodeIdentifier(buf, Identifier{Class: ClassUniversal, Encoding: Constructed, Tag: TagSequence})

	lenPos := buf.Size()
	buf.Append(spec.ObjectIdentifier...)
	buf.Append(spec.Parameters...)

	EncodeLength(buf, Definite(), len(spec.ObjectIdentifier)+len(spec.Parameters), lenPos)
	return buf.Bytes()
}

/*
Well-known pre-encoded AlgorithmIdentifier OIDs, supplied as a
convenience for building plausible certificates without hand-encoding
DER OID bytes. These are plain byte literals -- no OID
parsing/encoding logic backs them, consistent with this system never
owning OID semantics (see SPEC_FULL.md's supplemental-features
section).
*/
var (
	OIDRSAEncryption           = []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}
	OIDSHA256WithRSAEncryption = []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}
	OIDECPublicKey             = []byte{0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}
	NullParameters             = []byte{0x05, 0x00}
)
