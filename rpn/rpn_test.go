// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpncalc.dev/kernel/bcd"
	"rpncalc.dev/kernel/config"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	cfg := config.Default()
	require.NoError(t, cfg.SetDecPlaces(12))
	return NewEvaluator(cfg, nil)
}

func push(t *testing.T, e *Evaluator, texts ...string) {
	t.Helper()
	for _, s := range texts {
		res := e.Push(s)
		require.True(t, res.Ok, "push %q: %v", s, res.Err)
	}
}

func assertValue(t *testing.T, got bcd.Value, want string) {
	t.Helper()
	w, err := bcd.Parse(want)
	require.NoError(t, err)
	if bcd.Compare(got, w) != bcd.EQ {
		t.Errorf("got %v, want %s", got, want)
	}
}

func TestPushAndDepth(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1", "2", "3")
	assert.Equal(t, 3, e.Depth())
}

func TestPushRejectsGarbage(t *testing.T) {
	e := newTestEvaluator(t)
	res := e.Push("abc")
	require.False(t, res.Ok)
	assert.Equal(t, ParseError, res.Err.Kind)
}

func TestStackFull(t *testing.T) {
	e := newTestEvaluator(t)
	for i := 0; i < stackDepth; i++ {
		require.True(t, e.Push("1").Ok)
	}
	res := e.Push("1")
	require.False(t, res.Ok)
	assert.Equal(t, StackFull, res.Err.Kind)
}

func TestAddUnderflow(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1")
	res := e.Apply("add")
	require.False(t, res.Ok)
	assert.Equal(t, Underflow, res.Err.Kind)
}

func TestAddSubMulDiv(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "3", "4")
	res := e.Apply("add")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "7")
	assert.Equal(t, 1, e.Depth())

	push(t, e, "2")
	res = e.Apply("mul")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "14")

	push(t, e, "4")
	res = e.Apply("div")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "3.5")
}

func TestDivByZero(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1", "0")
	res := e.Apply("div")
	require.False(t, res.Ok)
	assert.Equal(t, DivideByZero, res.Err.Kind)
	assert.Equal(t, 2, e.Depth(), "failed op must not consume operands")
}

func TestInvByZero(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "0")
	res := e.Apply("inv")
	require.False(t, res.Ok)
	assert.Equal(t, DivideByZero, res.Err.Kind)
}

func TestNeg(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "5")
	res := e.Apply("neg")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "-5")
}

func TestSquareSqrt(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "12")
	res := e.Apply("square")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "144")

	res = e.Apply("sqrt")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "12")
}

func TestSqrtNegativeIsDomainError(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "-4")
	res := e.Apply("sqrt")
	require.False(t, res.Ok)
	assert.Equal(t, DomainError, res.Err.Kind)
}

func TestTenPowExactIntegerExponent(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "3")
	res := e.Apply("tenpow")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "1000")
}

func TestLog10ExactPowerOfTen(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1000")
	res := e.Apply("log10")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "3")
}

func TestLnDomainError(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "-1")
	res := e.Apply("ln")
	require.False(t, res.Ok)
	assert.Equal(t, DomainError, res.Err.Kind)
}

func TestSinCosExact(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "90")
	res := e.Apply("sin")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "1")
}

func TestAsinDomainError(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "2")
	res := e.Apply("asin")
	require.False(t, res.Ok)
	assert.Equal(t, DomainError, res.Err.Kind)
}

func TestPowIntegerExponent(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "2", "10")
	res := e.Apply("pow")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "1024")
}

func TestPowNegativeBaseFractionalExponentIsDomainError(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "-2", "0.5")
	res := e.Apply("pow")
	require.False(t, res.Ok)
	assert.Equal(t, DomainError, res.Err.Kind)
}

func TestMod(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "17", "5")
	res := e.Apply("mod")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "2")
}

func TestModNegativeKeepsDividendSign(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "-17", "5")
	res := e.Apply("mod")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "-2")
}

func TestDupSwapDropClear(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1", "2")

	res := e.Apply("swap")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "1")

	res = e.Apply("dup")
	require.True(t, res.Ok)
	assert.Equal(t, 3, e.Depth())

	res = e.Apply("drop")
	require.True(t, res.Ok)
	assert.Equal(t, 2, e.Depth())

	res = e.Apply("clear")
	require.True(t, res.Ok)
	assert.Equal(t, 0, e.Depth())
}

func TestRollUpDown(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1", "2", "3")

	res := e.Apply("rollup")
	require.True(t, res.Ok)
	top, _ := e.Top()
	assertValue(t, top, "1")

	res = e.Apply("rolldown")
	require.True(t, res.Ok)
	top, _ = e.Top()
	assertValue(t, top, "3")
}

func TestPiPushesConstant(t *testing.T) {
	e := newTestEvaluator(t)
	res := e.Apply("pi")
	require.True(t, res.Ok)
	assert.Equal(t, 1, e.Depth())
	three, _ := bcd.Parse("3")
	assert.Equal(t, bcd.GT, bcd.Compare(res.Value, three))
}

func TestExpOverflow(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "178")
	res := e.Apply("exp")
	require.False(t, res.Ok)
	assert.Equal(t, Overflow, res.Err.Kind)
	assert.Equal(t, 1, e.Depth(), "failed op must not consume its operand")
}

func TestExpAtBoundaryIsAccepted(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "177")
	res := e.Apply("exp")
	require.True(t, res.Ok)
}

func TestTenPowOverflow(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "255")
	res := e.Apply("tenpow")
	require.False(t, res.Ok)
	assert.Equal(t, Overflow, res.Err.Kind)
}

func TestTenPowAtBoundaryIsAccepted(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "254")
	res := e.Apply("tenpow")
	require.True(t, res.Ok)
}

func TestAcosExactBoundaries(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "0")
	res := e.Apply("acos")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "90")

	e = newTestEvaluator(t)
	push(t, e, "1")
	res = e.Apply("acos")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "0")

	e = newTestEvaluator(t)
	push(t, e, "-1")
	res = e.Apply("acos")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "180")
}

func TestAsinExactBoundaries(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "0")
	res := e.Apply("asin")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "0")

	e = newTestEvaluator(t)
	push(t, e, "1")
	res = e.Apply("asin")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "90")

	e = newTestEvaluator(t)
	push(t, e, "-1")
	res = e.Apply("asin")
	require.True(t, res.Ok)
	assertValue(t, res.Value, "-90")
}

func TestUnknownOperator(t *testing.T) {
	e := newTestEvaluator(t)
	push(t, e, "1")
	res := e.Apply("bogus")
	require.False(t, res.Ok)
	assert.Equal(t, ParseError, res.Err.Kind)
}
