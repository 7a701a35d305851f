package derpdu

/*
cert.go contains the X.509 v3 certificate composer: a fixed schema
layer over the generic PDU encoder (pdu.go) and the universal-type
encoders (universal.go). Every field is polymorphic between its typed
encoding and an arbitrary fallback PDU -- the "has_pdu" switch from
the original oss-fuzz asn1_proto grammar (see
_examples/original_source/projects/certs/X509_certificate_to_der.cc),
modeled here as a generic Choice[T] tagged union instead of the
original's per-field boolean predicate, in the same spirit as the
teacher's own heavy use of Go generics (NewInteger[T any] in int.go,
ConstraintGroup[T] throughout).

Field order and SEQUENCE nesting are taken directly from RFC 5280 via
the original source: Version, SerialNumber, Signature, Issuer,
Validity, Subject, SubjectPublicKeyInfo, [IssuerUniqueId],
[SubjectUniqueId], [Extensions] inside TBSCertificate; then
SignatureAlgorithm and SignatureValue alongside TBSCertificate inside
the outer Certificate.
*/

/*
Choice is a tagged union between a typed value and an arbitrary
fallback PDU. When Fallback is set, the composer splices the generic
PDU encoder's output verbatim in place of the field; this is how
malformed certificates are produced on demand (spec §4.7).
*/
type Choice[T any] struct {
	Typed       T
	Fallback    *PDU
	useFallback bool
}

/*
TypedValue returns a Choice carrying a typed field value.
*/
func TypedValue[T any](v T) Choice[T] { return Choice[T]{Typed: v} }

/*
FallbackValue returns a Choice that replaces its field with pdu
verbatim via the generic PDU encoder.
*/
func FallbackValue[T any](pdu *PDU) Choice[T] {
	return Choice[T]{Fallback: pdu, useFallback: true}
}

/*
HasFallback reports whether the receiver carries a fallback PDU
rather than a typed value.
*/
func (c Choice[T]) HasFallback() bool { return c.useFallback }

/*
Version is the X.509 Version field, encoded as a bare three-byte
INTEGER (02 01 vv) with no context-specific tag wrapper -- per spec
§4.7, the [0] EXPLICIT wrapper RFC 5280 normally requires is not
applied by this system's typed form.
*/
type Version int

const (
	VersionV1 Version = 0
	VersionV2 Version = 1
	VersionV3 Version = 2
)

/*
TimeValue is the Time CHOICE between UTCTime and GeneralizedTime. At
most one of UTC or Generalized should be set; if both are nil, the
typed writer emits nothing for this field.
*/
type TimeValue struct {
	UTC         *UTCTimeDigits
	Generalized *GeneralizedTimeDigits
}

/*
Validity is the notBefore/notAfter SEQUENCE.
*/
type Validity struct {
	NotBefore Choice[TimeValue]
	NotAfter  Choice[TimeValue]
}

/*
SubjectPublicKeyInfo is the AlgorithmIdentifier + BIT STRING SEQUENCE
carrying the subject's public key material.
*/
type SubjectPublicKeyInfo struct {
	Algorithm        Choice[AlgorithmIdentifierSpec]
	SubjectPublicKey Choice[BitStringSpec]
}

/*
TBSCertificate is the "to be signed" certificate body. Issuer and
Subject have no typed encoder in this system (Name is Fallback-only,
per spec §4.7) and so are plain *PDU fields rather than Choice --
there is no typed alternative to choose between.
*/
type TBSCertificate struct {
	Version              Choice[Version]
	SerialNumber         Choice[IntegerSpec]
	Signature            Choice[AlgorithmIdentifierSpec]
	Issuer               *PDU
	Validity             Choice[Validity]
	Subject              *PDU
	SubjectPublicKeyInfo Choice[SubjectPublicKeyInfo]
	IssuerUniqueId       *Choice[BitStringSpec]
	SubjectUniqueId      *Choice[BitStringSpec]
	Extensions           *PDU
}

/*
Certificate is the outer X.509 v3 Certificate SEQUENCE.
*/
type Certificate struct {
	TBSCertificate     Choice[TBSCertificate]
	SignatureAlgorithm Choice[AlgorithmIdentifierSpec]
	SignatureValue     Choice[BitStringSpec]
}

/*
CertEncoder composes the generic PDU encoder with the certificate
schema above. It shares its depth counter and buffer with an internal
*Encoder so that Fallback PDUs anywhere in a Certificate tree are
subject to the same MaxDepth cap as a standalone PDU tree.
*/
type CertEncoder struct {
	enc *Encoder
}

/*
NewCertEncoder returns an initialized *CertEncoder ready for a single
Encode call.
*/
func NewCertEncoder() *CertEncoder { return &CertEncoder{enc: NewEncoder()} }

/*
DepthCapped reports whether the most recent Encode call hit MaxDepth
anywhere in the certificate tree (including within Fallback
subtrees).
*/
func (c *CertEncoder) DepthCapped() bool { return c.enc.DepthCapped() }

/*
Encode encodes cert as a DER (or deliberately malformed) Certificate
byte sequence. As with Encoder.Encode, a nil cert is rejected with a
nil-PDU error, and otherwise the only error returned is
EncodingOverflow; depth-cap truncation is silent per spec §4.7's
state-machine note ("no retry; any failure short-circuits with
zero-byte contribution").
*/
func (c *CertEncoder) Encode(cert *Certificate) ([]byte, error) {
	if cert == nil {
		return nil, errorNilPDU
	}

	c.enc.buf = NewByteBuffer()
	c.enc.depth = 0
	c.enc.depthCapped = false

	exit := debugPath(cert)
	if _, err := writeCertificate(c.enc, *cert); err != nil {
		exit(nil, err)
		return nil, err
	}

	out := make([]byte, c.enc.buf.Size())
	copy(out, c.enc.buf.Bytes())
	exit(out, nil)
	return out, nil
}

/*
writeSequence appends a Universal/Constructed/tag-16 identifier, runs
body to emit the value, then inserts a full definite-form length
(short- or long-form as needed) at the remembered position -- the
open question resolved by spec §9: several of the oss-fuzz source
iterations insert a single raw length byte regardless of magnitude,
which breaks for bodies over 127 bytes; this composer always goes
through EncodeLength/Definite() instead.
*/
func writeSequence(enc *Encoder, body func() (int, error)) (int, error) {
	buf := enc.buf
	idLen := EncodeIdentifier(buf, Identifier{Class: ClassUniversal, Encoding: Constructed, Tag: TagSequence})

	lenPos := buf.Size()
	valLen, err := body()
	if err != nil {
		return 0, err
	}

	lenLen := EncodeLength(buf, Definite(), valLen, lenPos)
	return idLen + valLen + lenLen, nil
}

/*
encodeChoice dispatches a Choice[T] field to its fallback PDU (via the
shared generic encoder) or to typedWrite, whichever the field selects.
*/
func encodeChoice[T any](enc *Encoder, ch Choice[T], typedWrite func(*Encoder, T) (int, error)) (int, error) {
	if ch.useFallback {
		return encodeFallback(enc, ch.Fallback)
	}
	return typedWrite(enc, ch.Typed)
}

/*
encodeFallback runs the generic PDU encoder over pdu and reports its
byte count. A nil pdu contributes nothing -- this arises for the
Issuer/Subject fields when left unset, and for any Choice built with
FallbackValue(nil).
*/
func encodeFallback(enc *Encoder, pdu *PDU) (int, error) {
	if pdu == nil {
		return 0, nil
	}
	return enc.encodePDU(pdu)
}

func writeVersion(enc *Encoder, v Version) (int, error) {
	b := []byte{0x02, 0x01, byte(v)}
	enc.buf.Append(b...)
	return len(b), nil
}

func writeIntegerSpec(enc *Encoder, spec IntegerSpec) (int, error) {
	b := EncodeInteger(spec)
	enc.buf.Append(b...)
	return len(b), nil
}

func writeAlgorithmIdentifierSpec(enc *Encoder, spec AlgorithmIdentifierSpec) (int, error) {
	b := EncodeAlgorithmIdentifier(spec)
	enc.buf.Append(b...)
	return len(b), nil
}

func writeBitStringSpec(enc *Encoder, spec BitStringSpec) (int, error) {
	b := EncodeBitString(spec)
	enc.buf.Append(b...)
	return len(b), nil
}

/*
writeIssuerUniqueId and writeSubjectUniqueId force the BIT STRING's
class to Application / ContextSpecific respectively (RFC 5280 §4.1 /
§4.1.2.8) by passing the class into the typed encoder, rather than
post-hoc patching the identifier octet after the fact -- the approach
spec §9 recommends over the original source's "encode then patch
der_[pos_of_identifier]" technique.
*/
func writeIssuerUniqueId(enc *Encoder, spec BitStringSpec) (int, error) {
	spec.Class = ClassApplication
	return writeBitStringSpec(enc, spec)
}

func writeSubjectUniqueId(enc *Encoder, spec BitStringSpec) (int, error) {
	spec.Class = ClassContextSpecific
	return writeBitStringSpec(enc, spec)
}

func writeTimeValue(enc *Encoder, t TimeValue) (int, error) {
	var b []byte
	switch {
	case t.UTC != nil:
		b = EncodeUTCTime(*t.UTC)
	case t.Generalized != nil:
		b = EncodeGeneralizedTime(*t.Generalized)
	default:
		return 0, nil
	}
	enc.buf.Append(b...)
	return len(b), nil
}

func writeValidity(enc *Encoder, v Validity) (int, error) {
	return writeSequence(enc, func() (int, error) {
		total := 0
		n, err := encodeChoice(enc, v.NotBefore, writeTimeValue)
		if err != nil {
			return total, err
		}
		total += n

		n, err = encodeChoice(enc, v.NotAfter, writeTimeValue)
		if err != nil {
			return total, err
		}
		total += n

		return total, nil
	})
}

func writeSubjectPublicKeyInfo(enc *Encoder, spki SubjectPublicKeyInfo) (int, error) {
	return writeSequence(enc, func() (int, error) {
		total := 0
		n, err := encodeChoice(enc, spki.Algorithm, writeAlgorithmIdentifierSpec)
		if err != nil {
			return total, err
		}
		total += n

		n, err = encodeChoice(enc, spki.SubjectPublicKey, writeBitStringSpec)
		if err != nil {
			return total, err
		}
		total += n

		return total, nil
	})
}

func writeTBSCertificate(enc *Encoder, tbs TBSCertificate) (int, error) {
	return writeSequence(enc, func() (int, error) {
		total := 0

		steps := []func() (int, error){
			func() (int, error) { return encodeChoice(enc, tbs.Version, writeVersion) },
			func() (int, error) { return encodeChoice(enc, tbs.SerialNumber, writeIntegerSpec) },
			func() (int, error) { return encodeChoice(enc, tbs.Signature, writeAlgorithmIdentifierSpec) },
			func() (int, error) { return encodeFallback(enc, tbs.Issuer) },
			func() (int, error) { return encodeChoice(enc, tbs.Validity, writeValidity) },
			func() (int, error) { return encodeFallback(enc, tbs.Subject) },
			func() (int, error) { return encodeChoice(enc, tbs.SubjectPublicKeyInfo, writeSubjectPublicKeyInfo) },
		}

		for _, step := range steps {
			n, err := step()
			if err != nil {
				return total, err
			}
			total += n
		}

		if tbs.IssuerUniqueId != nil {
			n, err := encodeChoice(enc, *tbs.IssuerUniqueId, writeIssuerUniqueId)
			if err != nil {
				return total, err
			}
			total += n
		}

		if tbs.SubjectUniqueId != nil {
			n, err := encodeChoice(enc, *tbs.SubjectUniqueId, writeSubjectUniqueId)
			if err != nil {
				return total, err
			}
			total += n
		}

		if tbs.Extensions != nil {
			n, err := encodeFallback(enc, tbs.Extensions)
			if err != nil {
				return total, err
			}
			total += n
		}

		return total, nil
	})
}

func writeCertificate(enc *Encoder, cert Certificate) (int, error) {
	return writeSequence(enc, func() (int, error) {
		total := 0

		n, err := encodeChoice(enc, cert.TBSCertificate, writeTBSCertificate)
		if err != nil {
			return total, err
		}
		total += n

		n, err = encodeChoice(enc, cert.SignatureAlgorithm, writeAlgorithmIdentifierSpec)
		if err != nil {
			return total, err
		}
		total += n

		n, err = encodeChoice(enc, cert.SignatureValue, writeBitStringSpec)
		if err != nil {
			return total, err
		}
		total += n

		return total, nil
	})
}
