// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders a bcd.Value into the fixed-width character
// row the original firmware's PrintBCD wrote to its one-line LCD:
// either fixed-point with an overflow marker, or scientific notation,
// both right-justified into a caller-chosen column width.
package format

import (
	"fmt"
	"strings"

	"rpncalc.dev/kernel/bcd"
)

// DefaultWidth is the line width the original firmware's LCD imposed;
// callers needing a different terminal width pass it to Render
// explicitly instead of relying on this constant.
const DefaultWidth = 20

// Render dispatches to Fixed or Scientific per sci, the Go mapping of
// the external interface's format(value, width, sci_mode).
func Render(v bcd.Value, width int, decPlaces int, sci bool) string {
	if sci {
		return Scientific(v, width)
	}
	return Fixed(v, width, decPlaces)
}

// Fixed renders v in plain decimal notation, clamped to at most
// decPlaces fractional digits (PrintBCD's dec_point clamp) with
// trailing zero fractional digits trimmed for display, right-aligned
// into width columns. If the integer part alone is too wide to fit,
// the whole field is replaced by a right-justified '>' overflow
// marker rather than a truncated, misleading number.
func Fixed(v bcd.Value, width int, decPlaces int) string {
	v = bcd.Round(v, decPlaces)
	v = trimTrailingFracZeros(v)
	if bcd.IsZero(v) {
		v.Sign = false
	}

	intLen := v.Point
	if intLen < 1 {
		intLen = 1
	}
	if v.Sign {
		intLen++
	}
	if intLen > width {
		return overflow(width)
	}

	s := v.String()
	for len(s) > width {
		s = s[:len(s)-1]
		if strings.HasSuffix(s, ".") {
			s = s[:len(s)-1]
		}
	}
	return rightAlign(s, width)
}

// Scientific renders v as (−)d.ddd…e(±)e, the mantissa trimmed to
// whatever digits fit after sign, leading digit, decimal point, 'e',
// exponent sign, and exponent digits are reserved, right-aligned into
// width columns. Zero is the fixed literal "0.e0" per the governing
// numeric model's scientific-mode contract.
func Scientific(v bcd.Value, width int) string {
	v = bcd.FullShrink(v)
	if bcd.IsZero(v) {
		return rightAlign("0.e0", width)
	}

	sign := ""
	if v.Sign {
		sign = "-"
	}

	fnz := 0
	for fnz < len(v.Digits) && v.Digits[fnz] == 0 {
		fnz++
	}
	end := len(v.Digits)
	for end > fnz+1 && v.Digits[end-1] == 0 {
		end--
	}
	mantissa := v.Digits[fnz:end]
	exp := v.Point - 1 - fnz
	expStr := fmt.Sprintf("%+d", exp)

	reserved := len(sign) + 1 /* leading digit */ + 1 /* '.' */ + 1 /* 'e' */ + len(expStr)
	avail := width - reserved
	if avail < 0 {
		avail = 0
	}
	frac := mantissa[1:]
	if len(frac) > avail {
		frac = frac[:avail]
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('0' + mantissa[0])
	b.WriteByte('.')
	for _, d := range frac {
		b.WriteByte('0' + d)
	}
	b.WriteByte('e')
	b.WriteString(expStr)
	return rightAlign(b.String(), width)
}

// trimTrailingFracZeros strips trailing zero digits from the
// fractional part of v, never touching the integer digits, so "3.50"
// displays as "3.5" without altering the stored value (the rounding
// in Fixed always runs first).
func trimTrailingFracZeros(v bcd.Value) bcd.Value {
	end := len(v.Digits)
	floor := v.Point
	if floor < 0 {
		floor = 0
	}
	for end > floor && v.Digits[end-1] == 0 {
		end--
	}
	v.Digits = v.Digits[:end]
	if len(v.Digits) == 0 {
		v.Digits = []byte{0}
	}
	return v
}

func overflow(width int) string {
	if width <= 0 {
		return ">"
	}
	return strings.Repeat(" ", width-1) + ">"
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
