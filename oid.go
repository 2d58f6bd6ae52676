// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"iter"
	"strconv"
	"strings"

	"codello.dev/der/internal/vlq"
)

// An ObjectIdentifier is the token for an ASN.1 OBJECT IDENTIFIER. It holds the
// validated content octets of the encoding. The components of the identifier
// are decoded on demand via [ObjectIdentifier.Digits].
//
// The zero value is an empty identifier without any components.
//
// See also section 32 of Rec. ITU-T X.680 and section 8.19 of Rec. ITU-T X.690.
type ObjectIdentifier struct {
	b []byte
}

// ParseObjectIdentifier validates the content octets b of an OBJECT IDENTIFIER
// encoding and returns an ObjectIdentifier referencing b.
//
// The first byte encodes the first two components as x*40+y and must be less
// than 120. Every following component is a base-128 number that must be
// minimally encoded and fit into 32 bits. A component may use at most 4
// continuation bytes. If b is invalid, the returned error is [ErrMalformedOID]
// or [ErrOIDTooLarge].
func ParseObjectIdentifier(b []byte) (ObjectIdentifier, error) {
	if len(b) == 0 || b[0] >= 3*40 {
		return ObjectIdentifier{}, ErrMalformedOID
	}
	for i := 1; i < len(b); {
		if b[i] != 0x80 && continuationBytes(b[i:]) > 4 {
			return ObjectIdentifier{}, ErrOIDTooLarge
		}
		_, n, err := vlq.DecodeMinimal[uint32](b[i:])
		switch err {
		case nil:
		case vlq.ErrOverflow:
			return ObjectIdentifier{}, ErrOIDTooLarge
		default:
			return ObjectIdentifier{}, ErrMalformedOID
		}
		i += n
	}
	return ObjectIdentifier{b}, nil
}

// continuationBytes returns the number of leading bytes of b that have the
// continuation bit set.
func continuationBytes(b []byte) int {
	n := 0
	for n < len(b) && b[n]&0x80 != 0 {
		n++
	}
	return n
}

// Digits returns the sequence of components of oid. Each call produces a new
// sequence decoding the content octets from the start.
func (oid ObjectIdentifier) Digits() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if len(oid.b) == 0 {
			return
		}
		if !yield(uint32(oid.b[0] / 40)) {
			return
		}
		if !yield(uint32(oid.b[0] % 40)) {
			return
		}
		for b := oid.b[1:]; len(b) > 0; {
			// the content has been validated by ParseObjectIdentifier
			v, n, _ := vlq.Decode[uint32](b)
			if !yield(v) {
				return
			}
			b = b[n:]
		}
	}
}

// Len returns the number of components of oid.
func (oid ObjectIdentifier) Len() int {
	if len(oid.b) == 0 {
		return 0
	}
	n := 2
	for _, b := range oid.b[1:] {
		if b&0x80 == 0 {
			n++
		}
	}
	return n
}

// Bytes returns the content octets of oid. The returned slice shares memory
// with the decoded input.
func (oid ObjectIdentifier) Bytes() []byte {
	return oid.b
}

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return bytes.Equal(oid.b, other.b)
}

// Tag returns [TagOID].
func (ObjectIdentifier) Tag() Tag { return TagOID }

// String returns the dot-separated notation of oid.
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 10)
	i := 0
	for v := range oid.Digits() {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, uint64(v), 10))
		i++
	}

	return s.String()
}
