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

package grisu

import (
	"math/big"
	"math/bits"

	"github.com/decfloat/decfloat/go/extfloat"
	"github.com/decfloat/decfloat/go/ieee"
)

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// dragon4 is the exact slow path behind ShortestDigits, taken when the
// scaled 64-bit arithmetic cannot certify its result. It generates the
// shortest digit sequence with arbitrary-precision integers: the value
// and the margins to the neighboring values' midpoints are kept as exact
// fractions over a common denominator, and a digit is emitted per
// iteration until the remaining fraction is within a margin of either
// boundary.
func dragon4(buf []byte, mant uint64, exp int, d ieee.Desc) (n int, decExp int) {
	// When the significand is even, the value itself wins ties against
	// both midpoints, so they count as inside the interval.
	acceptBounds := mant&1 == 0
	lowerCloser := mant == d.HiddenBit && exp > d.MinExp

	// margin is the distance to the upper midpoint; the distance to the
	// lower one is half that when the lower boundary is closer, which the
	// extra shift keeps integral.
	shift := uint(1)
	if lowerCloser {
		shift = 2
	}

	prec := 64 - bits.LeadingZeros64(mant)
	k := extfloat.CeilLog10Pow2(exp + prec - 1)

	// r/s = v * 10^-k, margin/s = (m+ - v) * 10^-k (halved if closer).
	r := new(big.Int).Lsh(new(big.Int).SetUint64(mant), shift)
	s := new(big.Int)
	margin := new(big.Int)
	switch {
	case exp >= 0:
		r.Lsh(r, uint(exp))
		s.Lsh(bigPow10(k), shift)
		margin.Lsh(bigOne, uint(exp))
	case k < 0:
		r.Mul(r, bigPow10(-k))
		s.Lsh(bigOne, shift+uint(-exp))
		margin.Set(bigPow10(-k))
	default:
		s.Lsh(bigPow10(k), shift+uint(-exp))
		margin.SetInt64(1)
	}

	scratch := new(big.Int)

	// The estimate k may be one too low: if v's upper boundary reaches
	// 10^k, the first digit would not fit.
	if c := scratch.Add(r, margin).Cmp(s); c > 0 || (acceptBounds && c == 0) {
		s.Mul(s, bigTen)
		k++
	}

	r.Mul(r, bigTen)
	margin.Mul(margin, bigTen)

	q := new(big.Int)
	rem := new(big.Int)
	for {
		q.QuoRem(r, s, rem)
		r, rem = rem, r
		digit := byte(q.Int64())

		// low: dropping all further digits still reads back to v.
		// high: rounding the current digit up does.
		cmpLow := r.Cmp(margin)
		if lowerCloser {
			margin.Lsh(margin, 1)
		}
		cmpHigh := scratch.Add(r, margin).Cmp(s)

		low := cmpLow < 0 || (acceptBounds && cmpLow == 0)
		high := cmpHigh > 0 || (acceptBounds && cmpHigh == 0)

		switch {
		case low && high:
			// Both round-offs read back: pick the one closer to the
			// value, ties to the even digit.
			if c := scratch.Lsh(r, 1).Cmp(s); c > 0 || (c == 0 && digit%2 != 0) {
				digit++
			}
		case high:
			digit++
		}

		buf[n] = '0' + digit
		n++
		k--

		if low || high {
			return n, k
		}

		r.Mul(r, bigTen)
		if lowerCloser {
			// margin is currently doubled; x5 restores the x10 pace.
			margin.Mul(margin, bigFive)
		} else {
			margin.Mul(margin, bigTen)
		}
	}
}

// bigPow10 returns 10^k as a fresh big integer. Requires k >= 0.
func bigPow10(k int) *big.Int {
	p := new(big.Int).SetUint64(10)
	return p.Exp(p, big.NewInt(int64(k)), nil)
}
