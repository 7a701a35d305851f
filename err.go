package derpdu

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

var (
	errorEncodingOverflow error = mkerr("actual value length cannot be represented in the implementation's integer width")
	errorNilPDU           error = mkerr("nil PDU instance")
	errorEmptyOID         error = mkerr("AlgorithmIdentifier: empty object identifier")
)

var errCache sync.Map

/*
mkerrf builds (and memoizes) an error from a sequence of string and
int parts, avoiding repeat allocation for frequently-raised errors.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	var b []byte
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b = append(b, v...)
		case int:
			b = append(b, itoa(v)...)
		default:
			b = append(b, "<not supported>"...)
		}
	}
	msg := string(b)

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
