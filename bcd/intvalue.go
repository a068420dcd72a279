// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

// FromInt builds a Value from a plain machine integer. It exists
// alongside Parse so callers that already hold a small integer — loop
// counters, table indices, fixed constants like 360 or 4 — never have
// to round-trip one through a decimal string first.
func FromInt(n int) Value {
	sign := n < 0
	if sign {
		n = -n
	}
	if n == 0 {
		return Zero()
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte(n % 10)}, digits...)
		n /= 10
	}
	return Value{Sign: sign, Point: len(digits), Digits: digits}
}
