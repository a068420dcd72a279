// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import "errors"

// ErrDomain is returned when an argument falls outside the domain of
// the requested transcendental — ln of a non-positive number, asin or
// acos of a magnitude greater than one, tan at an odd multiple of 90
// degrees, and so on.
var ErrDomain = errors.New("cordic: argument out of domain")
