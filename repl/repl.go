// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl drives rpn.Evaluator from a line-oriented input stream,
// supplementing the out-of-scope LCD/keyboard layer with the minimal
// terminal collaborator a reference protocol needs: one token per
// line in, one rendered result or error tag per line out. It offers
// two front ends over the same core loop — an interactive liner-based
// session (history, Ctrl-C abort, operator-name completion, grounded
// on rcornwell-S370's command/reader/reader.go) and a plain
// scanner-based batch mode for piped stdin or a script file, grounded
// on robpike-ivy's file-vs-stdin-vs-args branch in ivy.go's main/run.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"rpncalc.dev/kernel/format"
	"rpncalc.dev/kernel/rpn"
)

// operatorNames lists every token the evaluator recognizes as an
// operator rather than a numeric literal, used only to drive the
// interactive completer — Apply is still the single source of truth
// for what is actually valid.
var operatorNames = []string{
	"add", "sub", "mul", "div", "square", "sqrt", "inv", "neg", "round",
	"mod", "pow", "root", "tenpow", "log10", "ln", "exp",
	"sin", "cos", "tan", "asin", "acos", "atan", "pi",
	"shiftleft", "shiftright",
	"dup", "drop", "swap", "clear", "rollup", "rolldown",
	"quit", "exit",
}

// REPL couples an Evaluator to an input/output stream and the display
// width/notation it renders results at.
type REPL struct {
	eval  *rpn.Evaluator
	out   io.Writer
	log   *slog.Logger
	width int
}

// New builds a REPL around an existing Evaluator. A width of 0 falls
// back to format.DefaultWidth, the original firmware's one-line LCD.
func New(eval *rpn.Evaluator, out io.Writer, log *slog.Logger, width int) *REPL {
	if width <= 0 {
		width = format.DefaultWidth
	}
	if log == nil {
		log = slog.Default()
	}
	return &REPL{eval: eval, out: out, log: log, width: width}
}

// RunBatch reads one token per line from r until EOF, applying each to
// the evaluator and writing one rendered line per input line — no
// prompt, no history, the mode ivy.go uses for a named script file or
// a non-interactive stdin pipe.
func (p *REPL) RunBatch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if p.dispatch(line) {
			return nil
		}
	}
	return scanner.Err()
}

// RunInteractive drives a liner session: prompt, history, Ctrl-C
// abort, and tab-completion over the operator table, grounded on
// rcornwell-S370's ConsoleReader. It returns when the user quits or
// sends EOF (Ctrl-D).
func (p *REPL) RunInteractive(prompt string) error {
	p.log.Info("repl session started")
	defer p.log.Info("repl session stopped")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for _, name := range operatorNames {
			if strings.HasPrefix(name, partial) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	for {
		text, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || err == io.EOF {
				return nil
			}
			p.log.Error("repl read failed", "err", err)
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)
		if p.dispatch(text) {
			return nil
		}
	}
}

// dispatch applies one line of input and writes its rendered result,
// reporting whether the session should end.
func (p *REPL) dispatch(text string) (quit bool) {
	if text == "quit" || text == "exit" {
		return true
	}

	res := p.step(text)
	fmt.Fprintln(p.out, p.render(res))
	return false
}

// step routes a line to Apply when it names an operator, otherwise to
// Push, the same digit-entry-vs-operator-key branch the original
// firmware made per keystroke.
func (p *REPL) step(text string) rpn.Result {
	if isOperatorName(text) {
		return p.eval.Apply(text)
	}
	return p.eval.Push(text)
}

func isOperatorName(text string) bool {
	for _, name := range operatorNames {
		if name == text {
			return true
		}
	}
	return false
}

// render formats one Result as the line-oriented protocol's success
// row (the new top of stack) or one of its error tags
// (STACK_FULL/UNDERFLOW/DIVIDE_BY_ZERO/DOMAIN/OVERFLOW/PARSE).
func (p *REPL) render(res rpn.Result) string {
	if !res.Ok {
		return res.Err.Kind.String()
	}
	cfg := p.eval.Settings()
	return strings.TrimSpace(format.Render(res.Value, p.width, cfg.DecimalPlaces(), cfg.Scientific()))
}
