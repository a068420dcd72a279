// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpncalc.dev/kernel/config"
	"rpncalc.dev/kernel/rpn"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	eval := rpn.NewEvaluator(config.Default(), nil)
	return New(eval, &out, nil, 20), &out
}

func TestRunBatchPushAndAdd(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("3\n4\nadd\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3", strings.TrimSpace(lines[0]))
	assert.Equal(t, "4", strings.TrimSpace(lines[1]))
	assert.Equal(t, "7", strings.TrimSpace(lines[2]))
}

func TestRunBatchReportsUnderflow(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("add\n"))
	require.NoError(t, err)
	assert.Equal(t, "UNDERFLOW", strings.TrimSpace(out.String()))
}

func TestRunBatchReportsDivideByZero(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("5\n0\ndiv\n"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DIVIDE_BY_ZERO", strings.TrimSpace(lines[2]))
}

func TestRunBatchReportsParseError(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("garbage$$\n"))
	require.NoError(t, err)
	assert.Equal(t, "PARSE", strings.TrimSpace(out.String()))
}

func TestDispatchQuitStopsLoop(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("3\nquit\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, "3", strings.TrimSpace(out.String()))
}

func TestSkipsBlankLines(t *testing.T) {
	p, out := newTestREPL(t)
	err := p.RunBatch(strings.NewReader("3\n\n4\nadd\n"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
}
