// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

// Mul multiplies a by b and rounds the result to at most decPlaces
// fractional digits. It is grounded on the firmware's MultBCD: every
// pair of single digits is multiplied school-book style and the
// two-digit partial product is added into a running accumulator at
// the decimal column the pair of digits occupies. MultBCD alternated
// between two fixed buffers because its AddBCD wrote through its
// destination argument; Add here always returns a fresh Value, so the
// accumulator is just a single variable threaded through the loop.
func Mul(a, b Value, decPlaces int) Value {
	if IsZero(a) || IsZero(b) {
		return Zero()
	}
	sign := a.Sign != b.Sign
	acc := Zero()
	for i, da := range a.Digits {
		if da == 0 {
			continue
		}
		ea := a.Point - 1 - i
		for j, db := range b.Digits {
			if db == 0 {
				continue
			}
			eb := b.Point - 1 - j
			acc = Add(acc, partialProduct(int(da)*int(db), ea+eb))
		}
	}
	acc.Sign = sign
	acc = Round(acc, decPlaces)
	acc = FullShrink(acc)
	if IsZero(acc) {
		acc.Sign = false
	}
	return acc
}

// partialProduct builds the Value for a two-digit digit product
// (0-81) positioned so its ones digit sits at decimal exponent e.
func partialProduct(product, e int) Value {
	tens := byte(product / 10)
	ones := byte(product % 10)
	if tens == 0 {
		return Value{Digits: []byte{ones}, Point: e + 1}
	}
	return Value{Digits: []byte{tens, ones}, Point: e + 2}
}
