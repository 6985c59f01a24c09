/*
Copyright 2026 The Decfloat Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package extfloat implements the extended-precision floating-point values
// ("DiyFp") the shortest-conversion algorithms run on: a full 64-bit
// significand paired with a binary exponent, plus the precomputed
// powers-of-ten tables used to scale values into the ranges the digit
// generator and the parser need.
package extfloat

import "math/bits"

// Fp is an extended floating-point value F * 2^E with a 64-bit significand.
// Operations do not normalize their results and intentionally ignore the
// sign; callers track it separately.
type Fp struct {
	F uint64
	E int
}

// Subtract returns x - y.
// Requires x.E == y.E and x.F >= y.F.
func Subtract(x, y Fp) Fp {
	return Fp{F: x.F - y.F, E: x.E}
}

// Multiply returns x * y, rounded to 64 significand bits.
//
// The exact product has up to 128 significand bits. The low 64 bits are
// discarded and the high half is rounded half-up: the error is at most
// 1/2 ulp of the result.
func Multiply(x, y Fp) Fp {
	hi, lo := bits.Mul64(x.F, y.F)
	return Fp{F: hi + lo>>63, E: x.E + y.E + 64}
}

// Normalize shifts x left until the most significant bit of F is set.
// Requires x.F != 0.
func Normalize(x Fp) Fp {
	s := bits.LeadingZeros64(x.F)
	return Fp{F: x.F << s, E: x.E - s}
}

// NormalizeTo shifts x left so its exponent becomes e.
// Requires e <= x.E and that the shifted significand does not overflow.
func NormalizeTo(x Fp, e int) Fp {
	return Fp{F: x.F << (x.E - e), E: e}
}
