// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// Pow returns a^b as exp(b * ln(a)), the standard reduction of
// general exponentiation to the two kernels this package already
// builds via CORDIC. A negative base is only defined here for an
// integer exponent (the magnitude is raised via ln/exp and the sign
// is restored by the exponent's parity); a non-integer exponent on a
// negative base has no real result and reports ErrDomain.
func Pow(a, b bcd.Value, n, workDigits int) (bcd.Value, error) {
	wd := workDigits + 8
	if bcd.IsZero(b) {
		return bcd.One(), nil
	}
	if bcd.IsZero(a) {
		if b.Sign {
			return bcd.Value{}, bcd.ErrDivideByZero
		}
		return bcd.Zero(), nil
	}

	negativeBase := a.Sign
	if negativeBase && bcd.Compare(bcd.Round(b, 0), b) != bcd.EQ {
		return bcd.Value{}, ErrDomain
	}

	magnitude := a
	magnitude.Sign = false
	lnA, err := Ln(magnitude, n, wd)
	if err != nil {
		return bcd.Value{}, err
	}
	exponent := bcd.Mul(b, lnA, wd)
	result := Exp(exponent, n, wd)

	if negativeBase && toInt(bcd.Round(b, 0))%2 != 0 {
		result = negate(result)
	}
	return bcd.Round(result, workDigits), nil
}
