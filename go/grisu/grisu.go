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

// Package grisu generates the shortest decimal digit sequence that reads
// back to a given binary floating-point value.
//
// The fast path scales the value and its rounding boundaries by a cached
// power of ten so the shared binary exponent lands in
// [extfloat.Alpha, extfloat.Gamma], then emits the digits of the upper
// boundary from the most significant end, stopping as soon as the emitted
// prefix falls inside the rounding interval, and finally weeds the last
// digit towards the scaled input. Because the scaled values carry up to
// one unit of error each, the weed also certifies that the result is
// provably the shortest and the closest despite that error; when it
// cannot, the conversion is redone with exact big-integer arithmetic.
// The fast path succeeds for more than 99% of all inputs.
package grisu

import (
	"math/bits"

	"github.com/decfloat/decfloat/go/extfloat"
	"github.com/decfloat/decfloat/go/ieee"
)

// Boundaries computes v and the midpoints m-, m+ between v and its
// neighboring representable values, for a decomposed value
// v = mant * 2^exp of format d (as returned by d.Decompose; mant != 0).
// Every real number strictly between lower and upper rounds to v under
// round-to-nearest, regardless of the tie-breaking rule.
//
// All three results share one binary exponent: upper is normalized and
// v and lower are shifted to upper's exponent. The lower boundary is
// closer to v than the upper one exactly when v is the smallest normal
// value of its binade (the significand field is zero and the binade is
// not the lowest).
func Boundaries(mant uint64, exp int, d ieee.Desc) (v, lower, upper extfloat.Fp) {
	// Work on 4*mant so both midpoints are exact integers:
	//   m- = (4*mant - 2 + closer) * 2^(exp-2)
	//   m+ = (4*mant + 2) * 2^(exp-2)
	fm := 4*mant - 2
	if mant == d.HiddenBit && exp > d.MinExp {
		fm++
	}
	fv := 4 * mant
	fp := 4*mant + 2

	// fp < 2^(64-s) - 2 for s = clz(fv), so the shared shift cannot
	// overflow fp.
	s := uint(bits.LeadingZeros64(fv))
	e := exp - 2 - int(s)

	v = extfloat.Fp{F: fv << s, E: e}
	lower = extfloat.Fp{F: fm << s, E: e}
	upper = extfloat.Fp{F: fp << s, E: e}
	return v, lower, upper
}

// ShortestDigits writes into buf the shortest decimal digit sequence
// (bytes '0'..'9', no leading or trailing zeros) such that the value
// digits * 10^decExp reads back to mant * 2^exp under round-to-nearest,
// and among the shortest candidates the one closest to the input.
//
// The input is a decomposed finite positive value of format d (mant != 0).
// buf must have room for at least 17 bytes.
func ShortestDigits(buf []byte, mant uint64, exp int, d ieee.Desc) (n int, decExp int) {
	v, lower, upper := Boundaries(mant, exp, d)

	cached := extfloat.PowForBinaryExponent(upper.E)
	c := cached.Fp()

	wMinus := extfloat.Multiply(lower, c)
	w := extfloat.Multiply(v, c)
	wPlus := extfloat.Multiply(upper, c)

	// The products are rounded and the cached power is itself rounded, so
	// each scaled value is off by less than 1 ulp. Widening the interval
	// by 1 ulp on each side keeps every decimal that reads back to v
	// inside [l, h]; the round-weed then proves the result also lies in
	// the narrowed interval, where reading back to v is certain.
	l := extfloat.Fp{F: wMinus.F - 1, E: wMinus.E}
	h := extfloat.Fp{F: wPlus.F + 1, E: wPlus.E}

	n, e10, ok := digitGen(buf, l, w, h)
	if !ok {
		return dragon4(buf, mant, exp, d)
	}

	// The weed may land on a multiple of ten; canonical digits carry no
	// trailing zeros.
	for n > 1 && buf[n-1] == '0' {
		n--
		e10++
	}

	return n, e10 - cached.K
}

// digitGen emits the decimal digits of h = l + delta (all three scaled
// values share a binary exponent in [Alpha, Gamma], so -e is in [32, 60])
// from the most significant end, stopping as soon as the remainder fits
// under delta, then hands off to roundWeed to move the last digit towards
// w and certify the result. unit tracks the magnitude of one scaling
// error in the current remainder's units.
func digitGen(buf []byte, l, w, h extfloat.Fp) (n int, e10 int, ok bool) {
	dist := extfloat.Subtract(h, w).F
	delta := extfloat.Subtract(h, l).F

	// Split h at 2^-e: h = p1 * 2^-e + p2, with p1 the integral part.
	// Since -e >= 32 and h < 2^64, p1 fits into 32 bits.
	oneF := uint64(1) << uint(-h.E)
	p1 := uint32(h.F >> uint(-h.E))
	p2 := h.F & (oneF - 1)

	n = writeUint32(buf, p1)

	unit := uint64(1)
	var rest, tenKappa uint64
	if p2 >= delta {
		// The integral digits alone do not pin down the interval yet.
		// Generate fractional digits one at a time: each step multiplies
		// the remainder by ten and emits the new integral digit, scaling
		// delta, dist and unit by ten to keep the units in sync.
		for {
			p2 *= 10
			buf[n] = '0' + byte(p2>>uint(-h.E))
			n++
			p2 &= oneF - 1
			e10--
			delta *= 10
			dist *= 10
			unit *= 10
			if p2 < delta {
				rest = p2
				tenKappa = oneF
				break
			}
		}
	} else {
		// The integral part already over-determines the value: drop
		// trailing integral digits while the dropped remainder still
		// fits under delta. Terminates because the full remainder is h,
		// and h >= delta.
		rest = p2
		tenKappa = oneF
		for {
			next := tenKappa*uint64(buf[n-1]-'0') + rest
			if next >= delta {
				break
			}
			n--
			e10++
			rest = next
			tenKappa *= 10
		}
	}

	return n, e10, roundWeed(buf, n, dist, delta, rest, tenKappa, unit)
}

// roundWeed moves the last generated digit towards w and reports whether
// the result is provably correct. The digits so far name the largest
// decimal in [l, h]; the true scaled boundaries lie within unit of the
// computed ones, so the weed steers against the conservative estimate of
// dist and then re-checks against the liberal one: if a different digit
// could be the right answer under the opposite estimate, the 64-bit
// arithmetic cannot decide and the weed fails. Finally the value must sit
// inside the interval narrowed by the scaling error on both ends, which
// guarantees it reads back to v.
func roundWeed(buf []byte, n int, dist, delta, rest, tenKappa, unit uint64) bool {
	distHi := dist - unit
	distLo := dist + unit

	// Decrement the last digit while (1) the current value is still above
	// w, (2) decrementing stays >= l, and (3) decrementing moves closer
	// to w (or at least not farther). Ordered to avoid unsigned overflow.
	for rest <= distHi &&
		delta-rest > tenKappa &&
		(rest+tenKappa <= distHi || rest+tenKappa-distHi < distHi-rest) {
		buf[n-1]--
		rest += tenKappa
	}

	// Under the liberal estimate another decrement would still be viable:
	// two candidate digits remain and the scaled values are too imprecise
	// to pick one.
	if rest < distLo &&
		delta-rest >= tenKappa &&
		(rest+tenKappa <= distLo || rest+tenKappa-distLo < distLo-rest) {
		return false
	}

	// 2*unit keeps the value below the true h, and delta-4*unit keeps it
	// above the true l even after both ends absorb their scaling error.
	return 2*unit <= rest && rest <= delta-4*unit
}

// writeUint32 writes the decimal digits of v (v >= 1) into buf and
// returns the digit count.
func writeUint32(buf []byte, v uint32) int {
	n := decimalLength(v)
	for i := n - 1; i >= 0; i-- {
		buf[i] = '0' + byte(v%10)
		v /= 10
	}
	return n
}

func decimalLength(v uint32) int {
	switch {
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	default:
		return 1
	}
}
