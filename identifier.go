package derpdu

/*
identifier.go contains the ASN.1 identifier octet encoder: class,
encoding (primitive/constructed) and tag number, including the
high-tag-number escape form. Grounded on the teacher's encodeTLV
(tlv.go) identifier-octet logic and encodeBase128Int, adapted to the
correct short-form/high-tag-number threshold mandated by X.690 (see
DESIGN.md's open-question resolution: tag <= 30 is short form, tag >=
31 requires the escape marker 0x1F -- the teacher's own tlv.go uses
"< 31", matching this rule already, so no deviation was needed there).
*/

/*
TagNumber is the ASN.1 tag number component of an Identifier. Legal
values span [0, 2^32) per the data model; this encoder does not
reject tag numbers that are only legal in combination with a
particular class (e.g. tag 0 outside of Universal) -- malformed
identifiers are emitted verbatim by design.
*/
type TagNumber uint32

/*
Identifier is the (Class, Encoding, TagNumber) triple prefixing every
PDU.
*/
type Identifier struct {
	Class    Class
	Encoding Encoding
	Tag      TagNumber
}

/*
shortForm returns true when the receiver's tag number is representable
in a single identifier octet (tag <= 30).
*/
func (id Identifier) shortForm() bool { return id.Tag <= 30 }

/*
EncodeIdentifier appends the identifier octet(s) described by id to
the tail of buf and returns the number of octets written.
*/
func EncodeIdentifier(buf *ByteBuffer, id Identifier) int {
	if id.shortForm() {
		b := byte(id.Class)<<6 | byte(id.Encoding)<<5 | byte(id.Tag)
		buf.Append(b)
		return 1
	}

	first := byte(id.Class)<<6 | byte(id.Encoding)<<5 | 0x1F
	buf.Append(first)

	digits := bigEndianDigits(uint64(id.Tag), 128)
	for i, d := range digits {
		if i < len(digits)-1 {
			d |= 0x80
		}
		buf.Append(d)
	}

	return 1 + len(digits)
}
