// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "rpncalc.dev/kernel/bcd"

// These are the fixed mathematical constants every kernel in this
// package is built from, carried to enough digits that rounding them
// down to any realistic working precision never costs a bit of
// accuracy. Pi and DegPerRad/RadPerDeg are needed before a single
// CORDIC table entry can even be built (the tables are walked in
// radians; the evaluator's operators are all in degrees); Ln2 is the
// per-power-of-two correction term Ln/Exp's argument reduction adds
// back in, and Ln10 turns a natural log into a base-10 one for the
// evaluator's log10; the two gain constants
// undo the length distortion every CORDIC pseudo-rotation introduces.
const (
	piDigits        = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	ln2Digits       = "0.69314718055994530941723212145817656807550013436025525412068000949339362196969471560586332699641868"
	ln10Digits      = "2.30258509299404568401799145468436420760110148862877297603332790096757260967735248023599720508959829"
	degPerRadDigits = "57.2957795130823208767981548141051703324054724665643215491602438612028471483215526324409689958511109"
	radPerDegDigits = "0.01745329251994329576923690768488612713442871888541725456097191440171009114603449443682241569634509"

	// circularGainDigits and hyperbolicGainDigits are the reciprocals
	// of the classic CORDIC scale factors (the infinite products of
	// 1/cos(atan(2^-i)) and 1/cosh(artanh(2^-i)), the latter over the
	// repeated-iteration schedule HyperbolicRepeats uses).
	circularGainDigits   = "0.60725293500888125616944675250492826311239085215008977245697601311014788120842490690622742590803840"
	hyperbolicGainDigits = "1.20749706776307212887772101131091583681278322176981342217985398178183649752737698376665020184579232"
)

func mustConst(s string) bcd.Value {
	v, err := bcd.Parse(s)
	if err != nil {
		panic("cordic: invalid constant literal " + s)
	}
	return v
}

// Pi returns the constant pi, rounded to at most decPlaces fractional digits.
func Pi(decPlaces int) bcd.Value { return bcd.Round(mustConst(piDigits), decPlaces) }

// Ln2 returns the natural logarithm of 2.
func Ln2(decPlaces int) bcd.Value { return bcd.Round(mustConst(ln2Digits), decPlaces) }

// Ln10 returns the natural logarithm of 10.
func Ln10(decPlaces int) bcd.Value { return bcd.Round(mustConst(ln10Digits), decPlaces) }

// DegPerRad converts radians to degrees by multiplication.
func DegPerRad(decPlaces int) bcd.Value { return bcd.Round(mustConst(degPerRadDigits), decPlaces) }

// RadPerDeg converts degrees to radians by multiplication.
func RadPerDeg(decPlaces int) bcd.Value { return bcd.Round(mustConst(radPerDegDigits), decPlaces) }

// CircularGain is applied after a circular CORDIC rotation to recover
// a correctly scaled cosine/sine pair.
func CircularGain(decPlaces int) bcd.Value { return bcd.Round(mustConst(circularGainDigits), decPlaces) }

// HyperbolicGain is applied after a hyperbolic CORDIC rotation to
// recover a correctly scaled cosh/sinh pair.
func HyperbolicGain(decPlaces int) bcd.Value {
	return bcd.Round(mustConst(hyperbolicGainDigits), decPlaces)
}
