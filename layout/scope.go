// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "tokui.org/f32"

// scope is an open scope during a pass over the token stream.
type scope struct {
	// index of the begin token in the stream.
	index int
	// children counts the child subtrees folded so far.
	children int
	// cursor is where the next child is placed during painting.
	cursor f32.Point
	// slot is the space the enclosing scope offers this one.
	slot f32.Point
}

// scopeStack tracks the open scopes of a pass. The bottom entry is
// always the root and is never popped.
type scopeStack struct {
	entries []scope
	// overflow counts the open scopes that did not fit.
	overflow int
}

func (s *scopeStack) reset(root scope) {
	s.entries = append(s.entries[:0], root)
	s.overflow = 0
}

// push opens a scope. It reports false if the stack is full, in
// which case the scope is counted as overflowing.
func (s *scopeStack) push(sc scope) bool {
	if len(s.entries) == cap(s.entries) {
		s.overflow++
		return false
	}
	s.entries = append(s.entries, sc)
	return true
}

// skip closes the innermost overflowing scope. It reports false if
// there is none.
func (s *scopeStack) skip() bool {
	if s.overflow == 0 {
		return false
	}
	s.overflow--
	return true
}

// pop closes the innermost scope. It reports false if only the
// root is open.
func (s *scopeStack) pop() (scope, bool) {
	n := len(s.entries)
	if n <= 1 {
		return scope{}, false
	}
	sc := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return sc, true
}

// top returns the innermost open scope.
func (s *scopeStack) top() *scope {
	return &s.entries[len(s.entries)-1]
}

func (s *scopeStack) depth() int {
	return len(s.entries)
}
