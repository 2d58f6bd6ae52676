// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// These errors identify the kind of a decoding failure. Errors returned by
// [Reader.Next] wrap exactly one of them (or [io.ErrUnexpectedEOF]) and can be
// tested with [errors.Is].
var (
	// ErrOverlongLength indicates a long-form length with more length bytes than
	// can be represented by an int.
	ErrOverlongLength = errors.New("der: length field too long")

	// ErrInvalidLength indicates a length that is not minimally encoded.
	ErrInvalidLength = errors.New("der: non-minimal length encoding")

	// ErrIndefiniteLength indicates the use of the indefinite-length form. DER
	// does not allow it. ErrIndefiniteLength wraps ErrInvalidLength.
	ErrIndefiniteLength = fmt.Errorf("%w: indefinite length", ErrInvalidLength)

	// ErrUnrecognizedTag indicates a tag not known to this package.
	ErrUnrecognizedTag = errors.New("der: unrecognized tag")

	// ErrNotImplemented indicates a valid tag whose decoding is not supported.
	ErrNotImplemented = errors.New("der: type not implemented")

	// ErrIncorrectLength indicates a wrong length for a fixed-size type such as
	// BOOLEAN or NULL.
	ErrIncorrectLength = errors.New("der: incorrect length")

	// ErrMalformed indicates invalid content octets, e.g. a BOOLEAN that is
	// neither 0x00 nor 0xFF.
	ErrMalformed = errors.New("der: malformed value")

	// ErrMalformedOID indicates an OBJECT IDENTIFIER whose content octets are
	// invalid.
	ErrMalformedOID = errors.New("der: malformed object identifier")

	// ErrOIDTooLarge indicates an OBJECT IDENTIFIER with a subidentifier that
	// does not fit into 32 bits.
	ErrOIDTooLarge = errors.New("der: object identifier component too large")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("der: invalid UTF-8")

	// ErrInvalidPrintableString indicates a PrintableString with characters
	// outside the allowed set.
	ErrInvalidPrintableString = errors.New("der: invalid PrintableString")

	// ErrStructureOverrun indicates a data value that extends past the end of
	// its enclosing SEQUENCE or SET.
	ErrStructureOverrun = errors.New("der: data value exceeds parent")
)

// errTopLevel is returned by Reader.Skip if no constructed value is open.
var errTopLevel = errors.New("der: no constructed value to skip")

// SyntaxError represents an error in the DER encoding. The error value contains
// the location of the error within the input as well as the tag of the data
// value that caused it.
type SyntaxError struct {
	requireKeyedLiterals
	nonComparable

	Err error // underlying error

	// ByteOffset is the location of the error. This is the offset of the
	// identifier octet of the offending TLV.
	ByteOffset int64

	// Tag is the tag of the offending TLV. It is zero if the identifier octet
	// could not be read.
	Tag Tag

	// Depth is the number of open constructed values enclosing the offending
	// TLV.
	Depth int
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("der: syntax error")
	if e.Tag != 0 {
		b = append(b, " decoding "...)
		b = append(b, e.Tag.String()...)
	}
	//goland:noinspection GoDirectComparisonOfErrors
	if e.Err == io.ErrUnexpectedEOF {
		b = strconv.AppendInt(append(b, " at offset "...), e.ByteOffset, 10)
	} else {
		b = strconv.AppendInt(append(b, " for TLV beginning at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()
