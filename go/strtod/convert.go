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

package strtod

import (
	"math"
	"math/bits"

	"github.com/decfloat/decfloat/go/extfloat"
	"github.com/decfloat/decfloat/go/ieee"
)

// Errors are tracked in halves of an ulp so the analysis never needs
// fractions.
const ulpDenominator = 2

// convert turns digits * 10^exp into the bit pattern of the nearest value
// of format d. digits holds significant digits only (no leading or
// trailing zeros, first digit non-zero); nonzeroTail means further
// non-zero digits were dropped after the buffer filled up.
func convert(d ieee.Desc, digits []byte, exp int, nonzeroTail bool) uint64 {
	// Magnitude cutoffs: the value's decimal order is len(digits)+exp.
	// At or above 10^MaxDecimalPower everything rounds to infinity, at or
	// below 10^MinDecimalPower everything rounds to zero, no matter what
	// the digits are.
	if len(digits)+exp > d.MaxDecimalPower {
		return d.Inf()
	}
	if len(digits)+exp <= d.MinDecimalPower {
		return 0
	}

	guess, exact := approx(d, digits, exp)
	if exact || guess == d.Inf() {
		return guess
	}

	// guess is either correct or the value just below the correct one.
	// Compare the input exactly against guess's upper boundary
	// m+ = (2*mant + 1) * 2^(e-1): above it (or on it with an odd
	// significand) the next value up wins.
	mant, e := d.Decompose(guess)
	switch cmp := compareDecimal(digits, exp, nonzeroTail, 2*mant+1, e-1); {
	case cmp > 0, cmp == 0 && !d.SignificandIsEven(guess):
		return d.Next(guess)
	default:
		return guess
	}
}

// approx computes digits * 10^exp with extended-precision arithmetic,
// tracking the accumulated error. If the error band does not straddle the
// rounding midpoint, the result is provably correct and exact is true.
// Otherwise the result rounds down and is either correct or one step too
// low.
func approx(d ieee.Desc, digits []byte, exp int) (guess uint64, exact bool) {
	// 2^64 > 10^19, so 19 digits always fit.
	readDigits := min(len(digits), 19)
	f := readUint64(digits[:readDigits])

	if d.TotalBits == 64 && len(digits) <= maxExactDoubleDigits {
		if v, ok := fastPath(f, len(digits), exp); ok {
			return math.Float64bits(v), true
		}
	}

	var errHalves uint64
	if readDigits < len(digits) {
		// Round the truncated significand; the error is <= 1/2 ulp.
		if digits[readDigits] >= '5' {
			f++
		}
		errHalves = 1
	}

	x := extfloat.Fp{F: f, E: 0}
	x, errHalves = normalize(x, errHalves)
	exp += len(digits) - readDigits

	// Scale by 10^exp in at most two steps: an exact adjustment power
	// bridges the gap to the nearest cached entry (step 16), then the
	// cached power itself.
	cached := extfloat.PowForDecimalExponent(exp)
	if cached.K != exp {
		adj := exp - cached.K
		x = extfloat.Multiply(x, extfloat.AdjustmentPow(adj))
		if len(digits)+adj > 19 {
			// The product no longer fits 64 bits exactly; Multiply
			// rounded and added up to 1/2 ulp.
			errHalves++
		}
		x, errHalves = normalize(x, errHalves)
	}

	x = extfloat.Multiply(x, cached.Fp())
	// 1/2 ulp from the rounded multiplication, plus 1/2 ulp for the
	// cached significand unless it is an exact power of ten.
	errHalves++
	if exp < 0 || exp > 27 {
		errHalves++
	}
	x, errHalves = normalize(x, errHalves)

	// x now approximates the input with q = 64 significand bits; the
	// target keeps prec of them. Split off the excess bits and decide the
	// rounding against the half-way point, widened by the error.
	prec := effectiveSignificandSize(d, 64+x.E)
	excess := uint(64 - prec)

	var p2, half uint64
	if excess < 64 {
		p2 = x.F & (1<<excess - 1)
		half = 1 << (excess - 1)
		x.F >>= excess
	} else {
		p2 = x.F
		half = 1 << 63
		x.F = 0
	}
	x.E += int(excess)

	errHi := errHalves / ulpDenominator
	switch {
	case p2 > half+errHi:
		// Round up. This can carry out of the significand; the carry
		// moves into the exponent.
		x.F++
		if x.F > d.HiddenBit|d.SignificandMask {
			x.F >>= 1
			x.E++
		}
		exact = true
	case half > p2+errHi:
		exact = true
	default:
		exact = false
	}

	return d.Assemble(x.F, x.E), exact
}

// effectiveSignificandSize returns how many significand bits a value of
// the given binary order of magnitude keeps in format d: the full
// precision for normals, fewer for denormals, zero below the format.
func effectiveSignificandSize(d ieee.Desc, order int) int {
	p := int(d.SignificandBits) + 1
	switch s := order - d.MinExp; {
	case s > p:
		return p
	case s < 0:
		return 0
	default:
		return s
	}
}

func normalize(x extfloat.Fp, errHalves uint64) (extfloat.Fp, uint64) {
	s := uint(bits.LeadingZeros64(x.F))
	return extfloat.Fp{F: x.F << s, E: x.E - int(s)}, errHalves << s
}

func readUint64(digits []byte) uint64 {
	var v uint64
	for _, c := range digits {
		v = v*10 + uint64(c-'0')
	}
	return v
}

// 2^53 = 9007199254740992: any integer with at most 15 decimal digits is
// exactly representable as a double.
const maxExactDoubleDigits = 15

// Powers of ten exactly representable as a double.
var exactPow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// fastPath computes mant * 10^exp with double arithmetic when both
// operands are exactly representable: a single IEEE multiplication or
// division is then correctly rounded by definition.
func fastPath(mant uint64, numDigits, exp int) (float64, bool) {
	const maxExactPow10 = 22

	// If exp is a little too large, part of it can be folded into the
	// significand while it still has digits to spare:
	// 123 * 10^25 = (123 * 10^3) * 10^22.
	spare := maxExactDoubleDigits - numDigits
	if exp < -maxExactPow10 || exp > spare+maxExactPow10 {
		return 0, false
	}

	v := float64(mant)
	switch {
	case exp < 0:
		v /= exactPow10[-exp]
	case exp <= maxExactPow10:
		v *= exactPow10[exp]
	default:
		v *= exactPow10[spare]
		v *= exactPow10[exp-spare]
	}
	return v, true
}
