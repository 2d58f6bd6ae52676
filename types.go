// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"unicode/utf8"
)

// A Token holds one of the token types defined in this package:
//
//	Null
//	Boolean
//	Integer
//	ObjectIdentifier
//	OctetString
//	UTF8String
//	PrintableString
//	SequenceStart, SequenceEnd
//	SetStart, SetEnd
//
// Use a type switch to distinguish between them. Tag returns the identifier
// octet of the TLV the token was decoded from. For end tokens this is the tag of
// the matching start token.
type Token interface {
	Tag() Tag
}

//region [UNIVERSAL 1] BOOLEAN

// Boolean is the token for an ASN.1 BOOLEAN.
type Boolean bool

// Tag returns [TagBoolean].
func (Boolean) Tag() Tag { return TagBoolean }

//endregion

//region [UNIVERSAL 2] INTEGER
// See integer.go.
//endregion

//region [UNIVERSAL 3] BIT STRING
// Decoding is not implemented.
//endregion

//region [UNIVERSAL 4] OCTET STRING

// OctetString is the token for an ASN.1 OCTET STRING. It shares memory with the
// decoded input.
type OctetString []byte

// Tag returns [TagOctetString].
func (OctetString) Tag() Tag { return TagOctetString }

//endregion

//region [UNIVERSAL 5] NULL

// Null is the token for an ASN.1 NULL.
//
// See also section 24 of Rec. ITU-T X.680.
type Null struct{}

// Tag returns [TagNull].
func (Null) Tag() Tag { return TagNull }

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER
// See oid.go.
//endregion

//region [UNIVERSAL 12] UTF8String

// UTF8String is the token for an ASN.1 UTF8String. Tokens produced by [Reader]
// always hold valid UTF-8.
//
// See also section 41 of Rec. ITU-T X.680.
type UTF8String string

// IsValid reports whether s is a valid UTF-8 string.
func (s UTF8String) IsValid() bool {
	return utf8.ValidString(string(s))
}

// Tag returns [TagUTF8String].
func (UTF8String) Tag() Tag { return TagUTF8String }

//endregion

//region [UNIVERSAL 16] SEQUENCE

// SequenceStart marks the beginning of an ASN.1 SEQUENCE. The tokens of the
// SEQUENCE elements follow until the matching [SequenceEnd].
type SequenceStart struct{}

// Tag returns [TagSequence].
func (SequenceStart) Tag() Tag { return TagSequence }

// SequenceEnd marks the end of an ASN.1 SEQUENCE.
type SequenceEnd struct{}

// Tag returns [TagSequence].
func (SequenceEnd) Tag() Tag { return TagSequence }

//endregion

//region [UNIVERSAL 17] SET

// SetStart marks the beginning of an ASN.1 SET. The tokens of the SET elements
// follow until the matching [SetEnd].
type SetStart struct{}

// Tag returns [TagSet].
func (SetStart) Tag() Tag { return TagSet }

// SetEnd marks the end of an ASN.1 SET.
type SetEnd struct{}

// Tag returns [TagSet].
func (SetEnd) Tag() Tag { return TagSet }

//endregion

//region [UNIVERSAL 19] PrintableString

// PrintableString is the token for an ASN.1 PrintableString. A printable string
// can only contain the characters accepted by [IsPrintable].
//
// See also section 41 of Rec. ITU-T X.680.
type PrintableString string

// IsValid reports whether s consists only of printable characters.
func (s PrintableString) IsValid() bool {
	for i := 0; i < len(s); i++ {
		if !IsPrintable(s[i]) {
			return false
		}
	}
	return true
}

// Tag returns [TagPrintableString].
func (PrintableString) Tag() Tag { return TagPrintableString }

//endregion

//region [UNIVERSAL 22] IA5String
// Decoding is not implemented.
//endregion

//region [UNIVERSAL 30] BMPString
// Decoding is not implemented.
//endregion
