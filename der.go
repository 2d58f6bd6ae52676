// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements a streaming decoder for the Distinguished Encoding
// Rules (DER) of ASN.1 as specified in [Rec. ITU-T X.690]. See also “[A
// Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// The [Reader] type walks an in-memory buffer one tag-length-value (TLV) unit
// at a time and produces a flat stream of [Token] values. No intermediate tree
// is built. Constructed values (SEQUENCE and SET) are reported as a start token,
// followed by the tokens of their contents, followed by a matching end token.
//
// # Canonical Form
//
// The Reader only accepts the definite-length encoding. Length fields must be
// minimally encoded: a long-form length must not have leading zero bytes and
// must not encode a value below 128. Subidentifiers of an OBJECT IDENTIFIER
// must not start with a 0x80 byte. Violations of these rules are treated like
// any other syntax error.
//
// # Supported Types
//
// The following universal types are understood by the Reader:
//
//	BOOLEAN           [Boolean]
//	INTEGER           [Integer]
//	OCTET STRING      [OctetString]
//	NULL              [Null]
//	OBJECT IDENTIFIER [ObjectIdentifier]
//	UTF8String        [UTF8String]
//	PrintableString   [PrintableString]
//	SEQUENCE          [SequenceStart], [SequenceEnd]
//	SET               [SetStart], [SetEnd]
//
// The BIT STRING, IA5String and BMPString tags are recognized, but decoding
// them is not implemented. The Reader returns [ErrNotImplemented] for them. All
// other tags produce [ErrUnrecognizedTag].
//
// # Zero-Copy Decoding
//
// Tokens do not copy their contents. Byte and string payloads share memory
// with the buffer passed to [NewReader]. The buffer must not be modified while
// any token decoded from it is in use.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package der

//go:generate stringer -type=Tag -trimprefix=Tag

// Tag is the identifier octet of a TLV. This package only deals with
// single-byte identifiers in the UNIVERSAL class. Bit 6 of a Tag indicates the
// constructed encoding.
type Tag uint8

// These are the identifier octets understood by [Reader]. The tag numbers are
// assigned in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         Tag = 0x01
	TagInteger         Tag = 0x02
	TagBitString       Tag = 0x03
	TagOctetString     Tag = 0x04
	TagNull            Tag = 0x05
	TagOID             Tag = 0x06
	TagUTF8String      Tag = 0x0C
	TagPrintableString Tag = 0x13
	TagIA5String       Tag = 0x16
	TagBMPString       Tag = 0x1E
	TagSequence        Tag = 0x30
	TagSet             Tag = 0x31
)

// Constructed reports whether t uses the constructed encoding.
func (t Tag) Constructed() bool {
	return t&0x20 == 0x20
}

// Number returns the tag number of t, without class and constructed bits.
func (t Tag) Number() uint {
	return uint(t & 0x1f)
}
