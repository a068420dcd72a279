// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// AtanTable returns atan(2^-i), in radians, for i = 0..n-1 — the
// table the circular rotation in trig.go and the vectoring loop in
// inv.go step through one entry per iteration. Entry 0, atan(1), is
// pi/4 exactly and is taken directly from Pi rather than summed;
// every other entry comes from the alternating arctangent series
// atan(x) = x - x^3/3 + x^5/5 - ..., which converges quickly once
// x = 2^-i has dropped below one half.
func AtanTable(n, workDigits int) []bcd.Value {
	table := make([]bcd.Value, n)
	if n == 0 {
		return table
	}
	wd := workDigits + 8
	quarterPi, _ := bcd.Div(Pi(wd), bcd.FromInt(4), wd)
	table[0] = bcd.Round(quarterPi, workDigits)
	for i := 1; i < n; i++ {
		x := bcd.Ror(bcd.One(), i, wd)
		table[i] = bcd.Round(atanSeries(x, wd), workDigits)
	}
	return table
}

func atanSeries(x bcd.Value, workDigits int) bcd.Value {
	x2 := bcd.Mul(x, x, workDigits)
	term := x
	acc := bcd.Zero()
	neg := false
	for k := 0; k < 400; k++ {
		contribution, _ := bcd.Div(term, bcd.FromInt(2*k+1), workDigits)
		if neg {
			acc = bcd.Sub(acc, contribution)
		} else {
			acc = bcd.Add(acc, contribution)
		}
		if bcd.IsZero(bcd.Round(contribution, workDigits-2)) {
			break
		}
		term = bcd.Mul(term, x2, workDigits)
		neg = !neg
	}
	return acc
}

// ArtanhTable returns the hyperbolic arctangent of 2^-(i+1) for
// i = 0..n-1 — the table the hyperbolic CORDIC loops in ln.go and
// exp.go step through, indexed from 2^-1 because the series at 2^0
// diverges and the standard hyperbolic CORDIC schedule starts at 1
// for exactly that reason.
func ArtanhTable(n, workDigits int) []bcd.Value {
	table := make([]bcd.Value, n)
	wd := workDigits + 8
	for i := 0; i < n; i++ {
		x := bcd.Ror(bcd.One(), i+1, wd)
		table[i] = bcd.Round(artanhSeries(x, wd), workDigits)
	}
	return table
}

func artanhSeries(x bcd.Value, workDigits int) bcd.Value {
	x2 := bcd.Mul(x, x, workDigits)
	term := x
	acc := bcd.Zero()
	for k := 0; k < 400; k++ {
		contribution, _ := bcd.Div(term, bcd.FromInt(2*k+1), workDigits)
		acc = bcd.Add(acc, contribution)
		if bcd.IsZero(bcd.Round(contribution, workDigits-2)) {
			break
		}
		term = bcd.Mul(term, x2, workDigits)
	}
	return acc
}

// HyperbolicRepeats reports the set of 1-based iteration indices a
// hyperbolic CORDIC loop must process twice to converge: 4, 13, 40,
// 121, ..., each three times the last plus one. Without repeating
// these steps the hyperbolic iteration (unlike the circular one)
// does not converge for every input in its domain.
func HyperbolicRepeats(max int) map[int]bool {
	repeats := map[int]bool{}
	for k := 4; k <= max; k = 3*k + 1 {
		repeats[k] = true
	}
	return repeats
}
