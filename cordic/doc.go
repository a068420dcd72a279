// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cordic implements the transcendental functions — natural
// log, exp, power, and the trig family — entirely over package bcd's
// arbitrary-precision decimal values, using the shift-and-add CORDIC
// technique the original calculator firmware used: every logarithm,
// exponential, sine, cosine, and arctangent is produced by walking a
// precomputed table of arctangent and hyperbolic-arctangent constants
// and steering an (x, y, z) triple toward the answer one shift at a
// time, never invoking a binary floating-point transcendental.
package cordic
