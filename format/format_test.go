// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
	"testing"

	"rpncalc.dev/kernel/bcd"
)

func parse(t *testing.T, s string) bcd.Value {
	t.Helper()
	v, err := bcd.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestFixedTrimsTrailingZeros(t *testing.T) {
	v, err := bcd.Div(parse(t, "14"), parse(t, "4"), 10)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	got := Fixed(v, DefaultWidth, 10)
	if strings.TrimSpace(got) != "3.5" {
		t.Fatalf("Fixed(14/4) = %q, want \"3.5\"", got)
	}
}

func TestFixedRightAligns(t *testing.T) {
	got := Fixed(parse(t, "42"), 10, 10)
	if len(got) != 10 {
		t.Fatalf("Fixed width = %d, want 10", len(got))
	}
	if strings.TrimSpace(got) != "42" {
		t.Fatalf("Fixed(42) = %q", got)
	}
}

func TestFixedOverflowMarker(t *testing.T) {
	big := parse(t, "123456789012345")
	got := Fixed(big, 10, 10)
	if len(got) != 10 {
		t.Fatalf("overflow width = %d, want 10", len(got))
	}
	if !strings.HasSuffix(got, ">") {
		t.Fatalf("Fixed overflow = %q, want trailing '>'", got)
	}
}

func TestFixedNegative(t *testing.T) {
	got := Fixed(parse(t, "-7.5"), 10, 10)
	if strings.TrimSpace(got) != "-7.5" {
		t.Fatalf("Fixed(-7.5) = %q", got)
	}
}

func TestScientificZero(t *testing.T) {
	got := Scientific(bcd.Zero(), 20)
	if strings.TrimSpace(got) != "0.e0" {
		t.Fatalf("Scientific(0) = %q, want \"0.e0\"", got)
	}
}

func TestScientificBasic(t *testing.T) {
	got := Scientific(parse(t, "123.456"), 20)
	want := "1.23456e+2"
	if strings.TrimSpace(got) != want {
		t.Fatalf("Scientific(123.456) = %q, want %q", got, want)
	}
}

func TestScientificNegative(t *testing.T) {
	got := Scientific(parse(t, "-0.00042"), 20)
	want := "-4.2e-4"
	if strings.TrimSpace(got) != want {
		t.Fatalf("Scientific(-0.00042) = %q, want %q", got, want)
	}
}

func TestScientificNarrowWidthTrimsMantissa(t *testing.T) {
	got := Scientific(parse(t, "1.23456789"), 8)
	if len(got) != 8 {
		t.Fatalf("width = %d, want 8", len(got))
	}
}

func TestRenderDispatch(t *testing.T) {
	v := parse(t, "10")
	if Render(v, 20, 10, false) != Fixed(v, 20, 10) {
		t.Fatalf("Render(sci=false) mismatch")
	}
	if Render(v, 20, 10, true) != Scientific(v, 20) {
		t.Fatalf("Render(sci=true) mismatch")
	}
}
