// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// reduceAngle folds a degree measure into [0, 360) by repeated
// addition or subtraction of 360, the same technique the firmware's
// TrigPrep used — a fixed-width BCD cell has no cheap integer-modulo
// shortcut, and this runs at most a handful of times per evaluation,
// so the repeated-subtraction approach is kept rather than replaced
// with a divide-and-multiply remainder.
func reduceAngle(thetaDeg bcd.Value) bcd.Value {
	full := bcd.FromInt(360)
	v := thetaDeg
	for bcd.Compare(v, full) != bcd.LT {
		v = bcd.Sub(v, full)
	}
	for v.Sign && !bcd.IsZero(v) {
		v = bcd.Add(v, full)
	}
	return v
}

// trigPrep folds a degree measure into [0, 90] and reports the sign
// corrections sin and cos need to reconstruct the true value — the Go
// equivalent of the firmware's TrigPrep, which produced the same
// reduction plus a cosine flag for CalcTanBCD to apply afterward.
// TrigPrep's own reduction loop retried with "theta -= 360" even when
// theta was already inside one turn of zero, which could leave it
// sitting on exactly 360 instead of wrapping to 0; reduceAngle's loop
// condition (>= 360, not > 360) closes that gap.
func trigPrep(thetaDeg bcd.Value) (reduced bcd.Value, negateSin, negateCos bool) {
	v := reduceAngle(thetaDeg)
	ninety := bcd.FromInt(90)
	oneEighty := bcd.FromInt(180)
	twoSeventy := bcd.FromInt(270)
	switch {
	case bcd.Compare(v, ninety) != bcd.GT:
		return v, false, false
	case bcd.Compare(v, oneEighty) != bcd.GT:
		return bcd.Sub(oneEighty, v), false, true
	case bcd.Compare(v, twoSeventy) != bcd.GT:
		return bcd.Sub(v, oneEighty), true, true
	default:
		return bcd.Sub(bcd.FromInt(360), v), true, false
	}
}
