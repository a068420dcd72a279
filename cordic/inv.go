// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// Atan returns the arctangent of x, in degrees, over the whole real
// line. It runs the vectoring-mode circular CORDIC loop: starting
// from (1, x, 0), each step rotates (x, y) by atan(2^-i) in the
// direction that drives y toward zero, and the accumulated z
// converges to atan(x) in radians once the table is exhausted.
func Atan(x bcd.Value, n, workDigits int) bcd.Value {
	wd := workDigits + 8
	table := AtanTable(n, wd)
	cx := bcd.One()
	cy := x
	z := bcd.Zero()
	for i := 0; i < n; i++ {
		xShift := bcd.Ror(cx, i, wd)
		yShift := bcd.Ror(cy, i, wd)
		if !cy.Sign && !bcd.IsZero(cy) {
			cx, cy = bcd.Add(cx, yShift), bcd.Sub(cy, xShift)
			z = bcd.Add(z, table[i])
		} else {
			cx, cy = bcd.Sub(cx, yShift), bcd.Add(cy, xShift)
			z = bcd.Sub(z, table[i])
		}
	}
	deg := bcd.Mul(z, DegPerRad(wd), wd)
	return bcd.Round(deg, workDigits)
}

// Asin returns the arcsine of x, in degrees, for |x| <= 1, via the
// identity asin(x) = atan(x / sqrt(1-x^2)). The two exact boundary
// cases, x = 1 and x = -1, are returned directly as 90 and -90
// instead of being pushed through the square root, matching the
// evaluator's exact-value fast-path convention for the edges of a
// domain that CORDIC residual error would otherwise blur.
func Asin(x bcd.Value, n, workDigits int) (bcd.Value, error) {
	wd := workDigits + 8
	magnitude := x
	magnitude.Sign = false
	if bcd.Compare(magnitude, bcd.One()) == bcd.GT {
		return bcd.Value{}, ErrDomain
	}
	if bcd.Compare(magnitude, bcd.One()) == bcd.EQ {
		result := bcd.FromInt(90)
		result.Sign = x.Sign
		return result, nil
	}
	oneMinusX2 := bcd.Sub(bcd.One(), bcd.Mul(x, x, wd))
	cosX, err := bcd.Sqrt(oneMinusX2, wd)
	if err != nil {
		return bcd.Value{}, err
	}
	ratio, err := bcd.Div(x, cosX, wd)
	if err != nil {
		return bcd.Value{}, err
	}
	return Atan(ratio, n, workDigits), nil
}

// Acos returns the arccosine of x, in degrees, for |x| <= 1, via the
// complementary-angle identity acos(x) = 90 - asin(x).
func Acos(x bcd.Value, n, workDigits int) (bcd.Value, error) {
	asinX, err := Asin(x, n, workDigits)
	if err != nil {
		return bcd.Value{}, err
	}
	return bcd.Sub(bcd.FromInt(90), asinX), nil
}
