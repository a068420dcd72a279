// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpn

import "rpncalc.dev/kernel/bcd"

// stackDepth is the fixed value-stack depth (§3.2), carried over from
// the firmware's BCD_stack[STACK_SIZE] array.
const stackDepth = 10

// Stack is a fixed-depth, array-backed value stack. It never grows
// past stackDepth; Push on a full stack reports ok=false instead of
// panicking or silently dropping the bottom entry, matching the
// original's "Stack full" guard ahead of every push site.
type Stack struct {
	cells [stackDepth]bcd.Value
	depth int
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Depth reports how many values are currently on the stack.
func (s *Stack) Depth() int { return s.depth }

// Push places v on top of the stack. It reports false without
// modifying the stack if the stack is already at capacity.
func (s *Stack) Push(v bcd.Value) bool {
	if s.depth == stackDepth {
		return false
	}
	s.cells[s.depth] = v
	s.depth++
	return true
}

// Pop removes and returns the top value. It reports false without
// modifying the stack if the stack is empty.
func (s *Stack) Pop() (bcd.Value, bool) {
	if s.depth == 0 {
		return bcd.Value{}, false
	}
	s.depth--
	return s.cells[s.depth], true
}

// Top returns the top value without removing it.
func (s *Stack) Top() (bcd.Value, bool) {
	if s.depth == 0 {
		return bcd.Value{}, false
	}
	return s.cells[s.depth-1], true
}

// At returns the value n positions below the top (At(0) == Top) and
// reports whether that position is occupied. It is used by binary
// operators that need both operands without popping twice in the
// wrong order.
func (s *Stack) At(n int) (bcd.Value, bool) {
	i := s.depth - 1 - n
	if i < 0 || i >= s.depth {
		return bcd.Value{}, false
	}
	return s.cells[i], true
}

// Replace overwrites the top value in place, the stack analogue of
// the firmware writing a computed result back into
// BCD_stack+(stack_ptr-1)*MATH_CELL_SIZE without changing stack_ptr.
func (s *Stack) Replace(v bcd.Value) bool {
	if s.depth == 0 {
		return false
	}
	s.cells[s.depth-1] = v
	return true
}

// Drop2Push1 pops the top two values and pushes v in their place —
// the shape every binary operator's result placement takes (§4.6
// ProcessOutput == 2): two operands consumed, one result produced.
func (s *Stack) Drop2Push1(v bcd.Value) {
	s.depth -= 2
	s.cells[s.depth] = v
	s.depth++
}

// Swap exchanges the top two values.
func (s *Stack) Swap() bool {
	if s.depth < 2 {
		return false
	}
	s.cells[s.depth-1], s.cells[s.depth-2] = s.cells[s.depth-2], s.cells[s.depth-1]
	return true
}

// Clear empties the stack, matching the 'z' key's stack_ptr=0.
func (s *Stack) Clear() { s.depth = 0 }

// RollUp rotates the whole stack up by one: the bottom value moves to
// the top, everything else shifts down one slot. Grounded on the
// KEY_UP case's shift loop.
func (s *Stack) RollUp() bool {
	if s.depth < 2 {
		return false
	}
	bottom := s.cells[0]
	copy(s.cells[0:s.depth-1], s.cells[1:s.depth])
	s.cells[s.depth-1] = bottom
	return true
}

// RollDown rotates the whole stack down by one: the top value moves
// to the bottom, everything else shifts up one slot. Grounded on the
// KEY_DOWN case's shift loop.
func (s *Stack) RollDown() bool {
	if s.depth < 2 {
		return false
	}
	top := s.cells[s.depth-1]
	copy(s.cells[1:s.depth], s.cells[0:s.depth-1])
	s.cells[0] = top
	return true
}
