package derpdu

/*
varint.go contains the variable-width unsigned integer serializer
used by both the length encoder (base 256) and the high-tag-number
identifier encoder (base 128). Grounded on the teacher's use of
golang.org/x/exp/constraints in constr_on.go for its own generic
Constraint[T] machinery, and on tlv.go's encodeBase128Int /
sizeTLV for the underlying arithmetic.
*/

import "golang.org/x/exp/constraints"

/*
byteCount returns the minimum number of base-ary digits needed to
represent value without a leading zero digit. Zero always requires
exactly one digit. There are no error conditions: byteCount is total
over its entire input domain.
*/
func byteCount[T constraints.Unsigned](value T, base T) int {
	if value == 0 {
		return 1
	}
	k := 0
	for value > 0 {
		k++
		value /= base
	}
	return k
}

/*
bigEndianDigits returns the minimal big-endian digit sequence
representing value in the given base, most-significant digit first.
For base == 256 this is exactly the big-endian byte representation
of value.
*/
func bigEndianDigits[T constraints.Unsigned](value T, base T) []byte {
	k := byteCount(value, base)
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = byte(value % base)
		value /= base
	}
	return out
}
