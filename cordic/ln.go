// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// Ln returns the natural logarithm of x, or ErrDomain if x is not
// strictly positive. The argument is first reduced to a mantissa in
// [1, 2) by repeated halving or doubling — the decimal analogue of
// the firmware's LnBCD, which searched for the same normalization
// range via a doubling bit-search against RorBCD/SubBCD — then the
// hyperbolic CORDIC vectoring loop in lnMantissa produces ln of the
// mantissa, and m*ln(2) restores the power of two that was divided
// out.
func Ln(x bcd.Value, n, workDigits int) (bcd.Value, error) {
	if x.Sign || bcd.IsZero(x) {
		return bcd.Value{}, ErrDomain
	}
	wd := workDigits + 8
	mantissa, m := reduceToUnitRange(x, wd)
	lnMant := lnMantissa(mantissa, n, wd)
	result := bcd.Add(lnMant, bcd.Mul(bcd.FromInt(m), Ln2(wd), wd))
	return bcd.Round(result, workDigits), nil
}

// reduceToUnitRange finds the mantissa in [1, 2) and integer exponent
// m such that x == mantissa * 2^m.
func reduceToUnitRange(x bcd.Value, workDigits int) (bcd.Value, int) {
	m := 0
	v := x
	two := bcd.FromInt(2)
	one := bcd.One()
	for bcd.Compare(v, two) != bcd.LT {
		v = bcd.Ror(v, 1, workDigits)
		m++
	}
	for bcd.Compare(v, one) == bcd.LT {
		v = bcd.Rol(v, 1, workDigits)
		m--
	}
	return v, m
}

// lnMantissa runs the hyperbolic CORDIC vectoring loop that produces
// ln(w) for w already reduced to [1, 2): starting from
// (w+1, w-1, 0), each step rotates (x, y) by artanh(2^-i) in the
// direction that drives y toward zero, and 2*z converges to ln(w)
// once every table entry (with the required repeats) has been
// consumed.
func lnMantissa(w bcd.Value, n, workDigits int) bcd.Value {
	table := ArtanhTable(n, workDigits)
	repeats := HyperbolicRepeats(n)
	x := bcd.Add(w, bcd.One())
	y := bcd.Sub(w, bcd.One())
	z := bcd.Zero()
	for i, alreadyRepeated := 1, false; i <= n; {
		xShift := bcd.Ror(x, i, workDigits)
		yShift := bcd.Ror(y, i, workDigits)
		idx := i - 1
		if !y.Sign && !bcd.IsZero(y) {
			x, y = bcd.Sub(x, yShift), bcd.Sub(y, xShift)
			z = bcd.Add(z, table[idx])
		} else {
			x, y = bcd.Add(x, yShift), bcd.Add(y, xShift)
			z = bcd.Sub(z, table[idx])
		}
		if repeats[i] && !alreadyRepeated {
			alreadyRepeated = true
			continue
		}
		alreadyRepeated = false
		i++
	}
	return bcd.Mul(z, bcd.FromInt(2), workDigits)
}
