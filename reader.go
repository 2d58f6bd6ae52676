// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"io"
	"iter"
	"math"
	"math/bits"
	"unicode/utf8"
	"unsafe"
)

// Reader is a streaming decoder for DER-encoded data held in memory. It is used
// to read a sequence of top-level tag-length-value (TLV) constructs as a flat
// stream of tokens.
//
// A Reader never copies the input. Tokens returned by [Reader.Next] reference
// the buffer passed to [NewReader] or [Reader.Reset].
//
// Decoding errors are not recoverable. After [Reader.Next] has returned an
// error, all subsequent calls return the same error.
type Reader struct {
	state
	data []byte
	off  int
	err  error
}

// NewReader creates a new Reader reading from b.
func NewReader(b []byte) *Reader {
	r := new(Reader)
	r.Reset(b)
	return r
}

// Reset resets the state of r to read from b. Reset reuses the internal stack
// space of r.
func (r *Reader) Reset(b []byte) {
	r.state.reset()
	r.data = b
	r.off = 0
	r.err = nil
}

// Next reads the next token from the input. At the end of a SEQUENCE or SET a
// [SequenceEnd] or [SetEnd] token is returned.
//
// At the end of the input Next returns io.EOF. If the input ends in the middle
// of a TLV, the returned error wraps [io.ErrUnexpectedEOF]. All other errors are
// of type [*SyntaxError] and wrap one of the errors defined in this package.
func (r *Reader) Next() (Token, error) {
	if r.err != nil {
		return nil, r.err
	}
	start := r.off
	t, tag, err := r.next()
	if err != nil {
		//goland:noinspection GoDirectComparisonOfErrors
		if err != io.EOF {
			err = &SyntaxError{Err: err, ByteOffset: int64(start), Tag: tag, Depth: r.Depth()}
		}
		r.err = err
		return nil, err
	}
	return t, nil
}

// next implements Next. In addition to the token it returns the tag of the
// processed TLV so that errors can be annotated.
func (r *Reader) next() (Token, Tag, error) {
	if f, ok := r.top(); ok {
		if r.off > f.end {
			// not reachable as long as reads are bounded by r.limit
			return nil, f.tag, ErrStructureOverrun
		}
		if r.off == f.end {
			r.pop()
			if f.tag == TagSet {
				return SetEnd{}, f.tag, nil
			}
			return SequenceEnd{}, f.tag, nil
		}
	} else if r.off == len(r.data) {
		return nil, 0, io.EOF
	}

	b, err := r.readByte()
	if err != nil {
		return nil, 0, err
	}
	tag := Tag(b)
	length, err := r.readLength()
	if err != nil {
		return nil, tag, err
	}

	var t Token
	switch tag {
	case TagBoolean:
		t, err = r.readBoolean(length)
	case TagInteger:
		t, err = r.readInteger(length)
	case TagOctetString:
		t, err = r.readOctetString(length)
	case TagNull:
		t, err = r.readNull(length)
	case TagOID:
		t, err = r.readObjectIdentifier(length)
	case TagUTF8String:
		t, err = r.readUTF8String(length)
	case TagPrintableString:
		t, err = r.readPrintableString(length)
	case TagSequence, TagSet:
		t, err = r.readConstructed(tag, length)
	case TagBitString, TagIA5String, TagBMPString:
		err = ErrNotImplemented
	default:
		err = ErrUnrecognizedTag
	}
	return t, tag, err
}

// limit returns the offset up to which r may read. This is the end of the
// innermost constructed value or the end of the input.
func (r *Reader) limit() int {
	return r.state.limit(len(r.data))
}

// readByte consumes a single byte from the input.
func (r *Reader) readByte() (byte, error) {
	if r.off >= r.limit() {
		if r.off >= len(r.data) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, ErrStructureOverrun
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

// consume consumes n bytes from the input and returns them. The returned slice
// shares memory with the input but its capacity is limited to n.
func (r *Reader) consume(n int) ([]byte, error) {
	// the comparisons are arranged to avoid overflows for large n
	if n > len(r.data)-r.off {
		return nil, io.ErrUnexpectedEOF
	}
	if n > r.limit()-r.off {
		return nil, ErrStructureOverrun
	}
	b := r.data[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// readLength decodes the length octets of a TLV. Only the definite-length form
// is supported. Long-form lengths must be minimally encoded.
func (r *Reader) readLength() (int, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		return int(b), nil
	}
	if b == 0x80 {
		return 0, ErrIndefiniteLength
	}

	// Bottom 7 bits give the number of length bytes to follow.
	numBytes := int(b & 0x7f)
	if numBytes > bits.UintSize/8 {
		return 0, ErrOverlongLength
	}
	lb, err := r.consume(numBytes)
	if err != nil {
		return 0, err
	}
	if lb[0] == 0 {
		// a leading zero means more bytes than necessary were used
		return 0, ErrInvalidLength
	}
	length := 0
	for _, c := range lb {
		if length > math.MaxInt>>8 {
			// We can't shift length up without overflowing.
			return 0, ErrOverlongLength
		}
		length = length<<8 | int(c)
	}
	if length < 0x80 {
		// should have used the short form
		return 0, ErrInvalidLength
	}
	return length, nil
}

func (r *Reader) readBoolean(length int) (Token, error) {
	if length != 1 {
		return nil, ErrIncorrectLength
	}
	b, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0x00:
		return Boolean(false), nil
	case 0xff:
		return Boolean(true), nil
	default:
		return nil, ErrMalformed
	}
}

func (r *Reader) readInteger(length int) (Token, error) {
	b, err := r.consume(length)
	if err != nil {
		return nil, err
	}
	return Integer(b), nil
}

func (r *Reader) readOctetString(length int) (Token, error) {
	b, err := r.consume(length)
	if err != nil {
		return nil, err
	}
	return OctetString(b), nil
}

func (r *Reader) readNull(length int) (Token, error) {
	if length != 0 {
		return nil, ErrIncorrectLength
	}
	return Null{}, nil
}

func (r *Reader) readObjectIdentifier(length int) (Token, error) {
	b, err := r.consume(length)
	if err != nil {
		return nil, err
	}
	oid, err := ParseObjectIdentifier(b)
	if err != nil {
		return nil, err
	}
	return oid, nil
}

func (r *Reader) readUTF8String(length int) (Token, error) {
	b, err := r.consume(length)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return UTF8String(bytesToString(b)), nil
}

func (r *Reader) readPrintableString(length int) (Token, error) {
	b, err := r.consume(length)
	if err != nil {
		return nil, err
	}
	if !ValidPrintable(b) {
		return nil, ErrInvalidPrintableString
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return PrintableString(bytesToString(b)), nil
}

// readConstructed validates that a constructed value of the given length fits
// into its parent and pushes a new frame. The contents are read by subsequent
// calls to Next.
func (r *Reader) readConstructed(tag Tag, length int) (Token, error) {
	if length > r.limit()-r.off {
		return nil, io.ErrUnexpectedEOF
	}
	r.push(tag, r.off+length)
	if tag == TagSet {
		return SetStart{}, nil
	}
	return SequenceStart{}, nil
}

// bytesToString returns a string sharing memory with b.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// All returns a sequence of the remaining tokens in r. The sequence ends at the
// end of the input or after the first item with a non-nil error. io.EOF is
// never yielded.
func (r *Reader) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			t, err := r.Next()
			//goland:noinspection GoDirectComparisonOfErrors
			if err == io.EOF {
				return
			}
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}

// Skip discards the remainder of the innermost SEQUENCE or SET, including its
// end token. The skipped contents are validated as if read by Next. If at any
// point an error is encountered, skipping stops and the error is returned.
//
// Skip returns an error if r is at the top level.
func (r *Reader) Skip() error {
	if r.err != nil {
		return r.err
	}
	if r.root() {
		return errTopLevel
	}
	depth := r.Depth()
	for r.Depth() >= depth {
		if _, err := r.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Offset returns the current input byte offset. This is the offset of the first
// byte of the next TLV header or the end of the input.
func (r *Reader) Offset() int64 {
	return int64(r.off)
}

// Depth returns the number of SEQUENCE and SET values that have been started
// but not yet ended. It is zero at the top level.
func (r *Reader) Depth() int {
	return len(r.stack)
}
