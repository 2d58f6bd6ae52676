// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// frame represents a constructed data value whose contents are currently being
// decoded.
type frame struct {
	tag Tag // TagSequence or TagSet
	end int // input offset of the first byte after the value
}

// state maintains the nesting state of a [Reader]. The state consists of a
// stack of constructed values that are currently being processed. The stack is
// empty at the top level of the input.
//
// Frames are strictly nested: the end of a frame never exceeds the end of the
// frame below it.
type state struct {
	stack []frame
}

// reset clears the state to the top level. The allocated stack space is reused.
func (s *state) reset() {
	if s.stack == nil {
		s.stack = make([]frame, 0, 10)
	}
	s.stack = s.stack[:0]
}

// root indicates whether s is currently at the top level.
func (s *state) root() bool {
	return len(s.stack) == 0
}

// top returns the innermost frame. The second return value is false at the top
// level.
func (s *state) top() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// limit returns the end offset of the innermost frame or n at the top level.
func (s *state) limit(n int) int {
	if f, ok := s.top(); ok {
		return f.end
	}
	return n
}

// push puts a new frame onto the stack, indicating that the contents of a
// constructed value ending at end are now being processed.
func (s *state) push(t Tag, end int) {
	s.stack = append(s.stack, frame{tag: t, end: end})
}

// pop removes the innermost frame from the stack. This indicates that
// processing of the frame is completed.
func (s *state) pop() frame {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return f
}
