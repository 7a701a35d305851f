/*
Package derpdu implements a DER (and deliberately near-DER)
encoder for a generic ASN.1 Protocol Data Unit tree, plus a fixed
X.509 v3 certificate composer built on top of it.

The encoder is built to be driven by an external structure-aware
fuzzer: every field of the certificate schema accepts either a typed
value or a raw fallback PDU in its place, every numeric serialization
is exposed directly rather than hidden behind validation, and apart
from rejecting a nil input the encoder's only failure mode is
EncodingOverflow -- a PDU whose value length cannot be represented by
this implementation's integer width.
Malformed identifier octets, inconsistent lengths, and invalid
calendar digits are not rejected; they are encoded verbatim, since
producing them on purpose is the point.

Set the DERPDU_DEBUG environment variable (and build with
-tags derpdu_debug) to have each top-level Encode call log its
enter/exit/info events to stderr under a per-call correlation ID.
*/
package derpdu
