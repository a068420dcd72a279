// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// Exp returns e^x. The argument is reduced to a remainder within half
// of ln(2) of zero by subtracting off the nearest integer multiple of
// ln(2), the hyperbolic CORDIC rotation loop in hyperbolicRotate
// produces cosh and sinh of that remainder, and exp(x) = cosh+sinh
// scaled back up by 2^k restores the power of two the reduction
// divided out.
func Exp(x bcd.Value, n, workDigits int) bcd.Value {
	wd := workDigits + 8
	ln2 := Ln2(wd)
	quotient, _ := bcd.Div(x, ln2, wd)
	k := toInt(bcd.Round(quotient, 0))
	remainder := bcd.Sub(x, bcd.Mul(bcd.FromInt(k), ln2, wd))

	cosh, sinh := hyperbolicRotate(remainder, n, wd)
	expRemainder := bcd.Add(cosh, sinh)

	var scaled bcd.Value
	if k >= 0 {
		scaled = bcd.Rol(expRemainder, k, wd)
	} else {
		scaled = bcd.Ror(expRemainder, -k, wd)
	}
	return bcd.Round(scaled, workDigits)
}

// hyperbolicRotate runs the rotation-mode hyperbolic CORDIC loop:
// starting from (1, 0), each step rotates (x, y) by artanh(2^-i) in
// the direction that drives the remaining target z toward zero,
// landing on the scaled (cosh, sinh) pair once the table (with its
// required repeats) is exhausted.
func hyperbolicRotate(z0 bcd.Value, n, workDigits int) (cosh, sinh bcd.Value) {
	table := ArtanhTable(n, workDigits)
	repeats := HyperbolicRepeats(n)
	x := bcd.One()
	y := bcd.Zero()
	z := z0
	for i, alreadyRepeated := 1, false; i <= n; {
		xShift := bcd.Ror(x, i, workDigits)
		yShift := bcd.Ror(y, i, workDigits)
		idx := i - 1
		if !z.Sign || bcd.IsZero(z) {
			x, y = bcd.Add(x, yShift), bcd.Add(y, xShift)
			z = bcd.Sub(z, table[idx])
		} else {
			x, y = bcd.Sub(x, yShift), bcd.Sub(y, xShift)
			z = bcd.Add(z, table[idx])
		}
		if repeats[i] && !alreadyRepeated {
			alreadyRepeated = true
			continue
		}
		alreadyRepeated = false
		i++
	}
	gain := HyperbolicGain(workDigits)
	return bcd.Mul(x, gain, workDigits), bcd.Mul(y, gain, workDigits)
}

// toInt reads off a Value already rounded to zero fractional digits
// as a machine int; used only for the small loop-count-scale exponent
// k in Exp's argument reduction, never for a user-facing result.
func toInt(v bcd.Value) int {
	n := 0
	for _, d := range v.Digits {
		n = n*10 + int(d)
	}
	if v.Sign {
		n = -n
	}
	return n
}
