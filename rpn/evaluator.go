// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpn implements the reverse-Polish evaluator: a fixed-depth
// value stack, an operator dispatch table, and the error taxonomy
// both report through. An Evaluator is owned by exactly one goroutine
// — it carries no mutex, the same single-threaded contract the
// original firmware's microcontroller deployment had by construction.
package rpn

import (
	"errors"
	"log/slog"

	"rpncalc.dev/kernel/bcd"
	"rpncalc.dev/kernel/config"
	"rpncalc.dev/kernel/cordic"
)

// Result is what every Evaluator operation reports: whether it
// succeeded, the new top of stack on success, or the error on
// failure. It is a value type so callers never need a type switch to
// find out what happened.
type Result struct {
	Ok    bool
	Value bcd.Value
	Err   *KernelError
}

// Evaluator owns the value stack and the settings that parameterize
// every CORDIC-backed operator (working precision, table sizes, angle
// mode).
type Evaluator struct {
	stack *Stack
	cfg   *config.Settings
	log   *slog.Logger
}

// NewEvaluator builds an Evaluator against the given settings. A nil
// cfg is accepted, same as every config.Settings getter, and falls
// back to the package defaults.
func NewEvaluator(cfg *config.Settings, log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.Default()
	}
	return &Evaluator{stack: NewStack(), cfg: cfg, log: log}
}

// Configure replaces the settings record an Evaluator computes
// against, letting changed settings take effect immediately without
// rebuilding the stack.
func (e *Evaluator) Configure(cfg *config.Settings) { e.cfg = cfg }

// Settings returns the Evaluator's current settings record.
func (e *Evaluator) Settings() *config.Settings { return e.cfg }

// Depth reports how many values are on the stack.
func (e *Evaluator) Depth() int { return e.stack.Depth() }

// Top returns the top of stack, if any.
func (e *Evaluator) Top() (bcd.Value, bool) { return e.stack.Top() }

// Push parses text as a decimal literal and pushes it, the
// evaluator's side of the firmware's digit-entry keys accumulating
// into stack_buffer before ENTER/'d'. Returns a ParseError for
// unparsable text and a StackFull error when the stack has no room.
func (e *Evaluator) Push(text string) Result {
	v, err := bcd.Parse(text)
	if err != nil {
		return e.fail("push", ParseError, err)
	}
	if !e.stack.Push(v) {
		return e.fail("push", StackFull, nil)
	}
	return e.ok(v)
}

// Dup duplicates the top of stack, grounded on the 'd'/ENTER case
// (CopyBCD onto the next free slot, stack_ptr++).
func (e *Evaluator) Dup() Result {
	top, ok := e.stack.Top()
	if !ok {
		return e.fail("dup", Underflow, nil)
	}
	if !e.stack.Push(top.Clone()) {
		return e.fail("dup", StackFull, nil)
	}
	return e.ok(top)
}

// Drop discards the top of stack, grounded on the backspace/delete
// case (stack_ptr--, no value produced).
func (e *Evaluator) Drop() Result {
	if _, ok := e.stack.Pop(); !ok {
		return e.fail("drop", Underflow, nil)
	}
	top, _ := e.stack.Top()
	return Result{Ok: true, Value: top}
}

// Swap exchanges the top two values, grounded on the 'w' case.
func (e *Evaluator) Swap() Result {
	if !e.stack.Swap() {
		return e.fail("swap", Underflow, nil)
	}
	top, _ := e.stack.Top()
	return e.ok(top)
}

// Clear empties the stack, grounded on the 'z' case.
func (e *Evaluator) Clear() Result {
	e.stack.Clear()
	return Result{Ok: true}
}

// RollUp rotates the whole stack up by one, grounded on KEY_UP.
func (e *Evaluator) RollUp() Result {
	if !e.stack.RollUp() {
		return e.fail("rollup", Underflow, nil)
	}
	top, _ := e.stack.Top()
	return e.ok(top)
}

// RollDown rotates the whole stack down by one, grounded on KEY_DOWN.
func (e *Evaluator) RollDown() Result {
	if !e.stack.RollDown() {
		return e.fail("rolldown", Underflow, nil)
	}
	top, _ := e.stack.Top()
	return e.ok(top)
}

// Apply looks up name in the control-operator set first (dup, drop,
// swap, clear, rollup, rolldown — the stack-shape operators that
// never call into the Operator table because they produce no new
// numeric value), then in the Operators table.
func (e *Evaluator) Apply(name string) (res Result) {
	switch name {
	case "dup":
		return e.Dup()
	case "drop":
		return e.Drop()
	case "swap":
		return e.Swap()
	case "clear":
		return e.Clear()
	case "rollup":
		return e.RollUp()
	case "rolldown":
		return e.RollDown()
	}

	op, found := Operators[name]
	if !found {
		return e.fail(name, ParseError, errors.New("unknown operator"))
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("operator panic recovered", "op", name, "panic", r)
			res = e.fail(name, DomainError, nil)
		}
	}()

	if op.Arity == 0 {
		if e.stack.Depth() == stackDepth {
			return e.fail(name, StackFull, nil)
		}
	} else if e.stack.Depth() < op.Arity {
		return e.fail(name, Underflow, nil)
	}

	args := make([]bcd.Value, op.Arity)
	for i := 0; i < op.Arity; i++ {
		v, _ := e.stack.At(op.Arity - 1 - i)
		args[i] = v
	}

	if op.Precondition != nil {
		if err := op.Precondition(args, e.cfg); err != nil {
			return e.fail(name, classify(err), err)
		}
	}

	result, err := op.Compute(args, e.cfg)
	if err != nil {
		return e.fail(name, classify(err), err)
	}
	result = bcd.FullShrink(result)

	switch op.Arity {
	case 0:
		e.stack.Push(result)
	case 1:
		e.stack.Replace(result)
	case 2:
		e.stack.Drop2Push1(result)
	default:
		for i := 1; i < op.Arity; i++ {
			e.stack.Pop()
		}
		e.stack.Replace(result)
	}
	return e.ok(result)
}

// classify maps a Compute/Precondition error to the ErrorKind the
// evaluator reports, matching the original's per-case ErrorMsg text
// ("Divide by zero" vs. "Invalid input" vs. "Argument too large").
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, bcd.ErrDivideByZero), errors.Is(err, errDivideByZero):
		return DivideByZero
	case errors.Is(err, bcd.ErrDomain), errors.Is(err, cordic.ErrDomain), errors.Is(err, errDomain):
		return DomainError
	case errors.Is(err, errOverflow):
		return Overflow
	default:
		return DomainError
	}
}

func (e *Evaluator) ok(v bcd.Value) Result {
	return Result{Ok: true, Value: v}
}

func (e *Evaluator) fail(op string, kind ErrorKind, cause error) Result {
	return Result{Err: wrapErr(op, kind, cause)}
}
