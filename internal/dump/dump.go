// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump converts the token stream of a [der.Reader] into a tree of
// nodes and renders it as indented text, JSON or CBOR.
package dump

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	"codello.dev/der"
)

// DefaultMaxDepth is the nesting limit used by [Tree] unless configured
// otherwise.
const DefaultMaxDepth = 64

// ErrTooDeep is returned by [Tree] if the input nests SEQUENCE and SET values
// deeper than the configured limit.
var ErrTooDeep = errors.New("dump: maximum nesting depth exceeded")

// Node is a single decoded data value. Constructed values hold their elements
// in Children.
//
// Value depends on the type of the data value: bool for BOOLEAN, the decimal
// representation for INTEGER, the dotted notation for OBJECT IDENTIFIER,
// []byte for OCTET STRING, string for UTF8String and PrintableString and nil
// for NULL and constructed values.
type Node struct {
	Tag      der.Tag `json:"tag" cbor:"1,keyasint"`
	Offset   int64   `json:"offset" cbor:"2,keyasint"`
	Value    any     `json:"value,omitempty" cbor:"3,keyasint,omitempty"`
	Children []Node  `json:"children,omitempty" cbor:"4,keyasint,omitempty"`
}

// Option configures [Tree].
type Option func(*config)

type config struct {
	logger   *zap.Logger
	maxDepth int
}

// WithLogger sets the logger used by [Tree]. Tree logs at debug level only. The
// default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth limits the nesting depth accepted by [Tree]. A value of 0 or
// less disables the limit.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Tree reads all remaining tokens from r and returns the top-level data values
// as a list of nodes. Any error returned by r is returned as-is.
func Tree(r *der.Reader, opts ...Option) ([]Node, error) {
	cfg := config{logger: zap.NewNop(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	var root Node
	// stack holds the open constructed values. Pointers stay valid because a
	// parent never appends while one of its children is open.
	stack := []*Node{&root}
	for {
		off := r.Offset()
		t, err := r.Next()
		//goland:noinspection GoDirectComparisonOfErrors
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		parent := stack[len(stack)-1]

		switch t.(type) {
		case der.SequenceStart, der.SetStart:
			if cfg.maxDepth > 0 && r.Depth() > cfg.maxDepth {
				return nil, fmt.Errorf("%w at offset %d", ErrTooDeep, off)
			}
			cfg.logger.Debug("entering constructed value",
				zap.Stringer("tag", t.Tag()),
				zap.Int64("offset", off),
				zap.Int("depth", r.Depth()))
			parent.Children = append(parent.Children, Node{Tag: t.Tag(), Offset: off})
			stack = append(stack, &parent.Children[len(parent.Children)-1])
		case der.SequenceEnd, der.SetEnd:
			stack = stack[:len(stack)-1]
		default:
			parent.Children = append(parent.Children, Node{Tag: t.Tag(), Offset: off, Value: value(t)})
		}
	}
	return root.Children, nil
}

// value converts the payload of a primitive token into its Node representation.
func value(t der.Token) any {
	switch t := t.(type) {
	case der.Boolean:
		return bool(t)
	case der.Integer:
		return t.String()
	case der.OctetString:
		return []byte(t)
	case der.ObjectIdentifier:
		return t.String()
	case der.UTF8String:
		return string(t)
	case der.PrintableString:
		return string(t)
	}
	return nil
}

// WriteText writes nodes to w as indented text, one data value per line.
func WriteText(w io.Writer, nodes []Node) error {
	var b strings.Builder
	appendText(&b, nodes, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func appendText(b *strings.Builder, nodes []Node, depth int) {
	for _, n := range nodes {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Tag.String())
		if n.Tag.Constructed() {
			if len(n.Children) == 0 {
				b.WriteString(" {}\n")
				continue
			}
			b.WriteString(" {\n")
			appendText(b, n.Children, depth+1)
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString("}\n")
			continue
		}
		switch v := n.Value.(type) {
		case nil:
		case bool:
			b.WriteByte(' ')
			b.WriteString(strconv.FormatBool(v))
		case []byte:
			if len(v) > 0 {
				b.WriteByte(' ')
				b.WriteString(strings.ToUpper(hex.EncodeToString(v)))
			}
		case string:
			b.WriteByte(' ')
			if n.Tag == der.TagInteger || n.Tag == der.TagOID {
				b.WriteString(v)
			} else {
				b.WriteString(strconv.Quote(v))
			}
		}
		b.WriteByte('\n')
	}
}

// WriteJSON writes nodes to w as an indented JSON array.
func WriteJSON(w io.Writer, nodes []Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}

// WriteCBOR writes nodes to w as a CBOR array. Map keys are sorted
// deterministically.
func WriteCBOR(w io.Writer, nodes []Node) error {
	opts := cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(nodes)
}
