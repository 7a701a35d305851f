package derpdu

/*
pdu.go contains the generic PDU tree type and its recursive encoder.
Grounded on the teacher's TLV/Packet write path (tlv.go's encodeTLV
and writeTLV): value bytes are always materialized before their
length prefix, and the length is inserted at a remembered buffer
position -- exactly the teacher's "remember len_pos, emit value,
insert length" idiom, generalized here to a Go-native tagged-union
value tree instead of the teacher's reflection-driven codec registry,
since this encoder has no decode side to keep in step with.
*/

/*
ValueElement is one item within a PDU's Value: either a nested PDU
(SubPDU) or a verbatim byte run (RawBytes).
*/
type ValueElement interface {
	isValueElement()
}

/*
SubPDU wraps a child PDU. Encoding a SubPDU recurses into the generic
encoder for that child.
*/
type SubPDU struct {
	PDU *PDU
}

func (SubPDU) isValueElement() {}

/*
RawBytes is a verbatim octet run appended directly to the parent
PDU's value, with no further structure.
*/
type RawBytes []byte

func (RawBytes) isValueElement() {}

/*
PDU is the generic ASN.1 Protocol Data Unit: an identifier, an
ordered sequence of value elements, and a length directive describing
how to encode the length octets. PDU trees form via SubPDU children.
*/
type PDU struct {
	ID     Identifier
	Value  []ValueElement
	Length LengthDirective
}

/*
Encoder recursively encodes a PDU tree into DER (or deliberately
malformed near-DER) bytes. An Encoder instance is single-use per
Encode call; construct a new one (or call Encode again, which resets
internal state) for each tree.
*/
type Encoder struct {
	buf         *ByteBuffer
	depth       int
	depthCapped bool
}

/*
NewEncoder returns an initialized *Encoder ready for a single Encode
call.
*/
func NewEncoder() *Encoder {
	return &Encoder{buf: NewByteBuffer()}
}

/*
DepthCapped reports whether the most recent Encode call hit MaxDepth
anywhere within the tree, causing some subtree to silently contribute
zero bytes. See SPEC_FULL.md's depth-cap telemetry supplement.
*/
func (e *Encoder) DepthCapped() bool { return e.depthCapped }

/*
Encode encodes pdu and returns the resulting byte sequence. Encode is
a pure function of pdu: no state survives across calls except the
DepthCapped flag, which each call resets before encoding.

A nil pdu is rejected with a nil-PDU error. Otherwise the only error
Encode can return is EncodingOverflow, raised when a
PDU's computed value length cannot be represented in this
implementation's integer width; per the spec this is fatal and
discards all partial output. Depth-cap truncation is not an error --
it is silent, per-subtree, zero-byte contribution, exposed only via
DepthCapped.
*/
func (e *Encoder) Encode(pdu *PDU) ([]byte, error) {
	if pdu == nil {
		return nil, errorNilPDU
	}

	e.buf = NewByteBuffer()
	e.depth = 0
	e.depthCapped = false

	exit := debugPath(pdu)
	if _, err := e.encodePDU(pdu); err != nil {
		exit(nil, err)
		return nil, err
	}

	out := make([]byte, e.buf.Size())
	copy(out, e.buf.Bytes())
	exit(out, nil)
	return out, nil
}

func (e *Encoder) encodePDU(pdu *PDU) (int, error) {
	e.depth++
	if e.depth > MaxDepth {
		e.depth--
		e.depthCapped = true
		debugInfo("depth cap reached, subtree dropped")
		return 0, nil
	}

	idLen := EncodeIdentifier(e.buf, pdu.ID)
	lenPos := e.buf.Size()

	valLen, err := e.emitValue(pdu.Value)
	if err != nil {
		e.depth--
		return 0, err
	}
	if valLen < 0 {
		e.depth--
		return 0, errorEncodingOverflow
	}

	lenLen := EncodeLength(e.buf, pdu.Length, valLen, lenPos)
	e.depth--

	return idLen + valLen + lenLen, nil
}

func (e *Encoder) emitValue(value []ValueElement) (int, error) {
	total := 0
	for _, el := range value {
		switch v := el.(type) {
		case SubPDU:
			if v.PDU == nil {
				continue
			}
			n, err := e.encodePDU(v.PDU)
			if err != nil {
				return total, err
			}
			total += n
		case RawBytes:
			e.buf.Append(v...)
			total += len(v)
		}
	}
	return total, nil
}

/*
Sizeof estimates the encoded size of a PDU without encoding it:
identifier octet count, plus the recursively estimated value size,
plus the length octet count that value size would require under a
Definite directive. It does not account for Override or Indefinite
directives (callers using those already know the exact contribution).
This mirrors the teacher's sizeTLV helper (tlv.go), extended to
recurse through SubPDU children -- see SPEC_FULL.md's Sizeof
supplement.
*/
func Sizeof(pdu *PDU) int {
	if pdu == nil {
		return 0
	}

	idLen := 1
	if !pdu.ID.shortForm() {
		idLen += len(bigEndianDigits(uint64(pdu.ID.Tag), 128))
	}

	valLen := 0
	for _, el := range pdu.Value {
		switch v := el.(type) {
		case SubPDU:
			valLen += Sizeof(v.PDU)
		case RawBytes:
			valLen += len(v)
		}
	}

	lenLen := 1
	if valLen > 127 {
		lenLen = 1 + byteCount(uint64(valLen), 256)
	}

	return idLen + valLen + lenLen
}
