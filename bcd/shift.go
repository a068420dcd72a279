// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

// Rol doubles v amount times, the decimal equivalent of a binary left
// shift, used throughout the CORDIC kernels to build the powers-of-two
// step sizes the log/trig tables are indexed by. It is grounded on the
// firmware's RolBCD, which doubled each BCD nibble as a binary value
// and corrected back into range by adding 6 whenever the doubled
// nibble exceeded 9; expressed directly in decimal, that correction
// and the carry it produces collapse to ordinary digit-by-digit
// doubling with carry, which is what this does. workDigits bounds the
// fractional digits kept in the final result.
func Rol(v Value, amount, workDigits int) Value {
	result := v.Clone()
	for step := 0; step < amount; step++ {
		digits := result.Digits
		carry := 0
		for i := len(digits) - 1; i >= 0; i-- {
			d := int(digits[i])*2 + carry
			if d > 9 {
				d -= 10
				carry = 1
			} else {
				carry = 0
			}
			digits[i] = byte(d)
		}
		if carry == 1 {
			digits = append([]byte{1}, digits...)
			result.Point++
		}
		result.Digits = digits
	}
	result = Round(result, workDigits)
	return FullShrink(result)
}

// Ror halves v amount times, the decimal equivalent of a binary right
// shift. The firmware's RorBCD divided four bits at a time via a
// precomputed sixteenths table, with a single-halving path for any
// remaining amount below four — a speed trade worth making on an
// 8-bit microcontroller doing this in a busy-loop, but not one that
// buys anything here, so Ror always takes the single-halving path: one
// digit at a time from the most significant end, carrying the
// remainder into the next digit as a leading 10, and appending a
// trailing 5 if a final remainder of 1 falls off the least significant
// digit (halving an odd digit always leaves exactly that remainder).
func Ror(v Value, amount, workDigits int) Value {
	result := v.Clone()
	for step := 0; step < amount; step++ {
		digits := make([]byte, len(result.Digits))
		carry := 0
		for i, d := range result.Digits {
			cur := carry*10 + int(d)
			digits[i] = byte(cur / 2)
			carry = cur % 2
		}
		if carry != 0 {
			digits = append(digits, 5)
		}
		result.Digits = digits
	}
	result = Round(result, workDigits)
	return FullShrink(result)
}
