package derpdu

/*
buffer.go contains the append-and-insert byte buffer underlying the
generic PDU encoder. See also pdu.go.

Grounded on the teacher's BERPacket.Append growth strategy (ber.go),
generalized to add mid-buffer insertion -- the operation the teacher
never needed for its read-oriented Packet type, but which is the
central idiom of this encoder (see pdu.go: value bytes are written
before their length prefix, then the length is inserted at a
remembered position).
*/

/*
ByteBuffer is a growable sequence of octets supporting append at the
tail and insertion before an arbitrary position. It is not safe for
concurrent use; each Encoder owns exactly one ByteBuffer for the
duration of a single Encode call.
*/
type ByteBuffer struct {
	data []byte
}

/*
NewByteBuffer returns an initialized, empty *ByteBuffer.
*/
func NewByteBuffer() *ByteBuffer {
	return &ByteBuffer{}
}

/*
Append adds octets to the tail of the receiver instance.
*/
func (b *ByteBuffer) Append(octets ...byte) {
	b.data = append(b.data, octets...)
}

/*
InsertAt inserts octets immediately before the byte currently at
position. Bytes at and beyond position shift right by len(octets).
Inserting at b.Size() is equivalent to Append.
*/
func (b *ByteBuffer) InsertAt(position int, octets []byte) {
	if len(octets) == 0 {
		return
	}

	n := len(octets)
	b.data = append(b.data, octets...) // grow to make room
	copy(b.data[position+n:], b.data[position:len(b.data)-n])
	copy(b.data[position:position+n], octets)
}

/*
Size returns the current length of the underlying buffer.
*/
func (b *ByteBuffer) Size() int { return len(b.data) }

/*
Bytes returns the underlying byte slice. Callers that retain the
result beyond the life of the encode call should copy it first, since
subsequent InsertAt/Append calls may reallocate or mutate it in place.
*/
func (b *ByteBuffer) Bytes() []byte { return b.data }

/*
At returns the octet found at the given index.
*/
func (b *ByteBuffer) At(i int) byte { return b.data[i] }

/*
Set overwrites the octet found at the given index, for callers that
must patch bytes (such as identifier class bits) after the fact. The
certificate composer does not use it: cert.go's IssuerUniqueId/
SubjectUniqueId handling passes the class down to the BIT STRING
encoder instead.
*/
func (b *ByteBuffer) Set(i int, v byte) { b.data[i] = v }
