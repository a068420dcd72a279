// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

import "errors"

// ErrDomain is returned by operations, like Sqrt, that are only
// defined over a subset of the reals this package represents.
var ErrDomain = errors.New("bcd: argument out of domain")

// Sqrt computes the non-negative square root of v by Newton-Raphson
// iteration, g(n+1) = (g(n) + v/g(n)) / 2. It needs nothing beyond
// Add, Div and Ror, and converges quadratically: each pass roughly
// doubles the number of correct digits, so a seed good to one digit
// reaches full working precision in a handful of passes. The CORDIC
// kernels use it for the sqrt(1-x^2) term in Asin/Acos.
func Sqrt(v Value, workDigits int) (Value, error) {
	if v.Sign {
		return Value{}, ErrDomain
	}
	if IsZero(v) {
		return Zero(), nil
	}
	wd := workDigits + 8
	guess := seedSqrt(v)
	for i := 0; i < 100; i++ {
		quotient, err := Div(v, guess, wd)
		if err != nil {
			return Value{}, err
		}
		next := Ror(Add(guess, quotient), 1, wd)
		if Compare(Round(next, workDigits), Round(guess, workDigits)) == EQ {
			guess = next
			break
		}
		guess = next
	}
	return Round(guess, workDigits), nil
}

// seedSqrt produces a rough initial Newton estimate by halving the
// decimal exponent of v: an all-ones guess with about half as many
// integer digits as v lands within an order of magnitude of the true
// root, which is all quadratic convergence needs to start from.
func seedSqrt(v Value) Value {
	exp := v.Point - 1
	half := exp / 2
	if half < 0 {
		half = 0
	}
	digits := make([]byte, half+1)
	for i := range digits {
		digits[i] = 1
	}
	return Value{Digits: digits, Point: half + 1}
}
