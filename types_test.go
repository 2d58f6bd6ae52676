// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"
)

func TestToken_Tag(t *testing.T) {
	tests := map[string]struct {
		t    Token
		want Tag
	}{
		"Boolean":          {Boolean(true), TagBoolean},
		"Integer":          {Integer{0x01}, TagInteger},
		"OctetString":      {OctetString{}, TagOctetString},
		"Null":             {Null{}, TagNull},
		"ObjectIdentifier": {ObjectIdentifier{}, TagOID},
		"UTF8String":       {UTF8String(""), TagUTF8String},
		"PrintableString":  {PrintableString(""), TagPrintableString},
		"SequenceStart":    {SequenceStart{}, TagSequence},
		"SequenceEnd":      {SequenceEnd{}, TagSequence},
		"SetStart":         {SetStart{}, TagSet},
		"SetEnd":           {SetEnd{}, TagSet},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.t.Tag(); got != tc.want {
				t.Errorf("Tag() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestUTF8String_IsValid(t *testing.T) {
	if !UTF8String("Grüße").IsValid() {
		t.Errorf("UTF8String.IsValid() = false, want true")
	}
	if UTF8String("\xff").IsValid() {
		t.Errorf("UTF8String.IsValid() = true, want false")
	}
}

func TestTag(t *testing.T) {
	tests := map[string]struct {
		t           Tag
		constructed bool
		number      uint
		str         string
	}{
		"Boolean":  {TagBoolean, false, 1, "Boolean"},
		"OID":      {TagOID, false, 6, "OID"},
		"BMP":      {TagBMPString, false, 30, "BMPString"},
		"Sequence": {TagSequence, true, 16, "Sequence"},
		"Set":      {TagSet, true, 17, "Set"},
		"Unknown":  {0xa3, true, 3, "Tag(163)"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.t.Constructed(); got != tc.constructed {
				t.Errorf("Constructed() = %t, want %t", got, tc.constructed)
			}
			if got := tc.t.Number(); got != tc.number {
				t.Errorf("Number() = %d, want %d", got, tc.number)
			}
			if got := tc.t.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
		})
	}
}
