// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

// Round truncates v to at most maxFrac fractional digits, rounding
// half up on the first dropped digit: if it is 5 or greater, the last
// kept digit is incremented (with carry), otherwise it is simply
// dropped. Rounding is magnitude-only — away from zero on a tie — and
// the original sign is reapplied afterward, matching the point in the
// firmware's MultBCD/DivBCD where the "add 1 if next digit > 4" step
// runs before the sign byte is written.
func Round(v Value, maxFrac int) Value {
	frac := len(v.Digits) - v.Point
	if frac <= maxFrac {
		return v
	}
	drop := frac - maxFrac
	kept := len(v.Digits) - drop
	var firstDropped byte
	if kept >= 0 && kept < len(v.Digits) {
		firstDropped = v.Digits[kept]
	} else if kept < 0 {
		// Rounding position falls entirely before the first stored
		// digit; treat every dropped digit as contributing nothing
		// to round up, since there is no stored digit at that column.
		firstDropped = 0
	}
	var keepDigits []byte
	if kept > 0 {
		keepDigits = append([]byte{}, v.Digits[:kept]...)
	} else {
		keepDigits = []byte{0}
	}
	truncated := Value{Point: v.Point, Digits: keepDigits}
	if firstDropped >= 5 {
		unit := Value{Digits: []byte{1}, Point: 1 - maxFrac}
		truncated = Add(truncated, unit)
	}
	truncated = FullShrink(truncated)
	truncated.Sign = v.Sign
	if IsZero(truncated) {
		truncated.Sign = false
	}
	return truncated
}
