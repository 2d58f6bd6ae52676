// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"codello.dev/der"
)

// certName is a minimal X.501 Name: SEQUENCE { SET { SEQUENCE { OID 2.5.4.3, PrintableString "Test" } } }
var certName = []byte{
	0x30, 0x0f,
	0x31, 0x0d,
	0x30, 0x0b,
	0x06, 0x03, 0x55, 0x04, 0x03,
	0x13, 0x04, 'T', 'e', 's', 't',
}

// mixed contains one value of every supported primitive type.
var mixed = []byte{
	0x01, 0x01, 0xff,
	0x02, 0x01, 0x80,
	0x04, 0x02, 0xca, 0xfe,
	0x05, 0x00,
	0x0c, 0x03, 'a', 'b', 'c',
	0x30, 0x00,
}

func TestTree(t *testing.T) {
	nodes, err := Tree(der.NewReader(certName))
	require.NoError(t, err)
	want := []Node{{
		Tag: der.TagSequence, Offset: 0, Children: []Node{{
			Tag: der.TagSet, Offset: 2, Children: []Node{{
				Tag: der.TagSequence, Offset: 4, Children: []Node{
					{Tag: der.TagOID, Offset: 6, Value: "2.5.4.3"},
					{Tag: der.TagPrintableString, Offset: 11, Value: "Test"},
				},
			}},
		}},
	}}
	assert.Equal(t, want, nodes)
}

func TestTree_Primitives(t *testing.T) {
	nodes, err := Tree(der.NewReader(mixed))
	require.NoError(t, err)
	want := []Node{
		{Tag: der.TagBoolean, Offset: 0, Value: true},
		{Tag: der.TagInteger, Offset: 3, Value: "-128"},
		{Tag: der.TagOctetString, Offset: 6, Value: []byte{0xca, 0xfe}},
		{Tag: der.TagNull, Offset: 10},
		{Tag: der.TagUTF8String, Offset: 12, Value: "abc"},
		{Tag: der.TagSequence, Offset: 17},
	}
	assert.Equal(t, want, nodes)
}

func TestTree_Errors(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		_, err := Tree(der.NewReader([]byte{0x30, 0x03, 0x01, 0x01, 0x02}))
		var sErr *der.SyntaxError
		require.ErrorAs(t, err, &sErr)
		assert.ErrorIs(t, err, der.ErrMalformed)
		assert.Equal(t, int64(2), sErr.ByteOffset)
	})
	t.Run("TooDeep", func(t *testing.T) {
		data := []byte{0x30, 0x04, 0x30, 0x02, 0x30, 0x00}
		_, err := Tree(der.NewReader(data), WithMaxDepth(2))
		assert.ErrorIs(t, err, ErrTooDeep)

		nodes, err := Tree(der.NewReader(data), WithMaxDepth(3))
		require.NoError(t, err)
		assert.Len(t, nodes, 1)

		_, err = Tree(der.NewReader(data), WithMaxDepth(0))
		assert.NoError(t, err)
	})
	t.Run("Truncated", func(t *testing.T) {
		_, err := Tree(der.NewReader([]byte{0x04, 0x05, 0x01}))
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}

func TestTree_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Tree(der.NewReader(certName), WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("entering constructed value").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Set", entries[1].ContextMap()["tag"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["offset"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["depth"])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	nodes, err := Tree(der.NewReader(append(append([]byte{}, certName...), mixed...)))
	require.NoError(t, err)
	require.NoError(t, WriteText(&buf, nodes))
	want := `Sequence {
  Set {
    Sequence {
      OID 2.5.4.3
      PrintableString "Test"
    }
  }
}
Boolean true
Integer -128
OctetString CAFE
Null
UTF8String "abc"
Sequence {}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	nodes, err := Tree(der.NewReader(mixed[:12]))
	require.NoError(t, err)
	require.NoError(t, WriteJSON(&buf, nodes))
	assert.JSONEq(t, `[
		{"tag": 1, "offset": 0, "value": true},
		{"tag": 2, "offset": 3, "value": "-128"},
		{"tag": 4, "offset": 6, "value": "yv4="},
		{"tag": 5, "offset": 10}
	]`, buf.String())
}

func TestWriteCBOR(t *testing.T) {
	var buf bytes.Buffer
	nodes, err := Tree(der.NewReader(certName))
	require.NoError(t, err)
	require.NoError(t, WriteCBOR(&buf, nodes))

	var got []Node
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, nodes, got)

	// deterministic encoding
	var again bytes.Buffer
	require.NoError(t, WriteCBOR(&again, nodes))
	assert.Equal(t, buf.Bytes(), again.Bytes())
}
