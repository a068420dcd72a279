// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// SinCos jointly runs one circular CORDIC rotation, since sine and
// cosine fall out of the same iteration: starting from (1, 0), each
// step rotates (x, y) by atan(2^-i) in the direction that drives the
// remaining target angle z toward zero, landing on (cos, sin) once
// every table entry has been consumed. This is the Go equivalent of
// the firmware's CalcTanBCD, which computed the same pair in one pass
// for the same reason.
func SinCos(thetaDeg bcd.Value, n, workDigits int) (sin, cos bcd.Value) {
	wd := workDigits + 8
	reduced, negSin, negCos := trigPrep(thetaDeg)

	switch {
	case bcd.IsZero(reduced):
		sin, cos = bcd.Zero(), bcd.One()
	case bcd.Compare(reduced, bcd.FromInt(90)) == bcd.EQ:
		sin, cos = bcd.One(), bcd.Zero()
	default:
		rad := bcd.Mul(reduced, RadPerDeg(wd), wd)
		cos, sin = rotate(rad, n, wd)
	}
	if negSin {
		sin = negate(sin)
	}
	if negCos {
		cos = negate(cos)
	}
	return bcd.Round(sin, workDigits), bcd.Round(cos, workDigits)
}

// Sin returns the sine of a degree measure.
func Sin(thetaDeg bcd.Value, n, workDigits int) bcd.Value {
	sin, _ := SinCos(thetaDeg, n, workDigits)
	return sin
}

// Cos returns the cosine of a degree measure.
func Cos(thetaDeg bcd.Value, n, workDigits int) bcd.Value {
	_, cos := SinCos(thetaDeg, n, workDigits)
	return cos
}

// Tan returns the tangent of a degree measure, or ErrDomain at an odd
// multiple of 90 degrees, where the cosine vanishes.
func Tan(thetaDeg bcd.Value, n, workDigits int) (bcd.Value, error) {
	sin, cos := SinCos(thetaDeg, n, workDigits)
	if bcd.IsZero(cos) {
		return bcd.Value{}, ErrDomain
	}
	t, err := bcd.Div(sin, cos, workDigits)
	if err != nil {
		return bcd.Value{}, err
	}
	return t, nil
}

func negate(v bcd.Value) bcd.Value {
	if bcd.IsZero(v) {
		return v
	}
	v.Sign = !v.Sign
	return v
}

// rotate runs the rotation-mode circular CORDIC loop over a radian
// target angle already reduced to [0, 90] degrees worth of range,
// returning the scaled (cos, sin) pair.
func rotate(targetRad bcd.Value, n, workDigits int) (cos, sin bcd.Value) {
	table := AtanTable(n, workDigits)
	x := bcd.One()
	y := bcd.Zero()
	z := targetRad
	for i := 0; i < n; i++ {
		xShift := bcd.Ror(x, i, workDigits)
		yShift := bcd.Ror(y, i, workDigits)
		if !z.Sign || bcd.IsZero(z) {
			x, y = bcd.Sub(x, yShift), bcd.Add(y, xShift)
			z = bcd.Sub(z, table[i])
		} else {
			x, y = bcd.Add(x, yShift), bcd.Sub(y, xShift)
			z = bcd.Add(z, table[i])
		}
	}
	gain := CircularGain(workDigits)
	return bcd.Mul(x, gain, workDigits), bcd.Mul(y, gain, workDigits)
}
