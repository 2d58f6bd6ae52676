// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vlq implements decoding of [Variable-length quantities] as used in
// MIDI or BER. A VLQ is essentially a base-128 representation of an unsigned
// integer with the addition of the eighth bit to mark continuation of bytes.
// VLQ is identical to [LEB128] except in endianness.
//
// [Variable-length quantities]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

var (
	// ErrNotMinimal indicates a VLQ with a leading 0x80 byte.
	ErrNotMinimal = errors.New("vlq is not minimally encoded")
	// ErrOverflow indicates a VLQ that does not fit into the target type.
	ErrOverflow = errors.New("vlq too large for target type")
)

// Decode parses an unsigned VLQ from the beginning of b. It returns the decoded
// value and the number of bytes it occupies. The maximum allowed value is
// limited by the size of T.
//
// If b is empty, the returned error is io.EOF. If b ends before the last byte
// of the VLQ, the returned error is io.ErrUnexpectedEOF.
//
// Decode ignores an arbitrary amount of leading zeros (encoded as 0x80 bytes).
// Use [DecodeMinimal] to parse a minimally-encoded VLQ.
func Decode[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (T, int, error) {
	return decode[T](b, false)
}

// DecodeMinimal works like [Decode] but returns an error if the VLQ is not
// minimally encoded (i.e. if it starts with a 0x80 byte).
func DecodeMinimal[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (T, int, error) {
	return decode[T](b, true)
}

// decode implements [Decode] and [DecodeMinimal]. If minimal is true, the
// encoded VLQ must be minimally encoded.
func decode[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte, minimal bool) (ret T, n int, err error) {
	if len(b) == 0 {
		return 0, 0, io.EOF
	}
	c := b[0]
	if c == 0x80 && minimal {
		return 0, 0, ErrNotMinimal
	}
	n = 1

	ret = T(c & 0x7f)
	numBits := bits.Len8(c & 0x7f)

	for c&0x80 != 0 {
		if n == len(b) {
			return 0, n, io.ErrUnexpectedEOF
		}
		c = b[n]
		n++
		ret <<= 7
		ret |= T(c & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(c & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, n, ErrOverflow
		}
	}
	return ret, n, nil
}
