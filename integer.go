// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"math/big"
)

// Integer is the token for an ASN.1 INTEGER. It holds the content octets of the
// encoding without interpreting them. Accessors convert the value on demand.
//
// The unsigned accessors treat the content as a big-endian unsigned number.
// Use [Integer.Int64] or [Integer.Big] for the two's complement
// interpretation used by DER.
type Integer []byte

// Uint8 returns the value of i as an uint8. The second return value is false if
// i is wider than 1 byte. Like the wider accessors, Uint8 returns (0, true) for
// an empty Integer.
func (i Integer) Uint8() (uint8, bool) {
	if len(i) > 1 {
		return 0, false
	}
	var v uint8
	for _, b := range i {
		v = v<<8 | b
	}
	return v, true
}

// Uint32 returns the value of i as an uint32. The second return value is false
// if i is wider than 4 bytes.
func (i Integer) Uint32() (uint32, bool) {
	if len(i) > 4 {
		return 0, false
	}
	var v uint32
	for _, b := range i {
		v = v<<8 | uint32(b)
	}
	return v, true
}

// Uint64 returns the value of i as an uint64. The second return value is false
// if i is wider than 8 bytes.
func (i Integer) Uint64() (uint64, bool) {
	if len(i) > 8 {
		return 0, false
	}
	var v uint64
	for _, b := range i {
		v = v<<8 | uint64(b)
	}
	return v, true
}

// Int64 returns the two's complement value of i. The second return value is
// false if i is empty or wider than 8 bytes.
func (i Integer) Int64() (int64, bool) {
	if len(i) == 0 || len(i) > 8 {
		return 0, false
	}
	var v int64
	for _, b := range i {
		v = v<<8 | int64(b)
	}
	// sign extend
	shift := 64 - uint(len(i))*8
	return v << shift >> shift, true
}

// Big returns the two's complement value of i as a new [big.Int]. If i is
// empty, Big returns nil.
func (i Integer) Big() *big.Int {
	if len(i) == 0 {
		return nil
	}
	v := new(big.Int).SetBytes(i)
	if i[0]&0x80 != 0 {
		offset := new(big.Int).Lsh(big.NewInt(1), uint(len(i))*8)
		v.Sub(v, offset)
	}
	return v
}

// Bytes returns the content octets of i. The returned slice shares memory with
// the decoded input.
func (i Integer) Bytes() []byte {
	return i
}

// IsMinimal reports whether i is a minimal two's complement encoding as
// required by DER: it is not empty and its first 9 bits are neither all zero
// nor all one.
func (i Integer) IsMinimal() bool {
	if len(i) == 0 {
		return false
	}
	if len(i) == 1 {
		return true
	}
	return !(i[0] == 0x00 && i[1]&0x80 == 0 || i[0] == 0xff && i[1]&0x80 != 0)
}

// Tag returns [TagInteger].
func (Integer) Tag() Tag { return TagInteger }

// String returns the decimal representation of i.
func (i Integer) String() string {
	if len(i) == 0 {
		return ""
	}
	return i.Big().String()
}
