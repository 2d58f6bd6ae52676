// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// printableMask holds one bit per byte value. A set bit marks a byte that may
// appear in a PrintableString:
//
//	A-Z	// upper case letters
//	a-z	// lower case letters
//	0-9	// digits
//	 	// space
//	'	// apostrophe
//	()	// Parenthesis
//	+-/	// plus, hyphen, solidus
//	.,:	// fill stop, comma, colon
//	=	// equals sign
//	?	// question mark
var printableMask = [8]uint32{
	0x00000000,
	0xa7fffb81, // space ' ( ) + , - . / 0-9 : = ?
	0x07fffffe, // A-Z
	0x07fffffe, // a-z
	0x00000000,
	0x00000000,
	0x00000000,
	0x00000000,
}

// IsPrintable reports whether b is in the ASN.1 PrintableString character set.
func IsPrintable(b byte) bool {
	return printableMask[b/32]&(1<<(b%32)) != 0
}

// ValidPrintable reports whether bs consists only of bytes in the
// PrintableString character set. An empty slice is valid.
func ValidPrintable(bs []byte) bool {
	for _, b := range bs {
		if !IsPrintable(b) {
			return false
		}
	}
	return true
}
