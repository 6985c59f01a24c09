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

package extfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtract(t *testing.T) {
	x := Fp{F: 100, E: -10}
	y := Fp{F: 42, E: -10}
	assert.Equal(t, Fp{F: 58, E: -10}, Subtract(x, y))
}

func TestMultiply(t *testing.T) {
	// 2^63 * 2^63 = 2^126: high word 2^62, no rounding.
	x := Fp{F: 1 << 63, E: 0}
	got := Multiply(x, x)
	assert.Equal(t, Fp{F: 1 << 62, E: 64}, got)

	// All-ones times all-ones: low half is 1, which rounds down.
	y := Fp{F: ^uint64(0), E: -64}
	got = Multiply(y, y)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFE), got.F)
	assert.Equal(t, -64, got.E)

	// Rounding ties up: (2^63 + 1) * 2^63 has exactly the top bit of the
	// low half set.
	got = Multiply(Fp{F: 1<<63 + 1, E: 0}, Fp{F: 1 << 63, E: 0})
	assert.Equal(t, uint64(1<<62+1), got.F)
}

func TestNormalize(t *testing.T) {
	got := Normalize(Fp{F: 1, E: 0})
	assert.Equal(t, Fp{F: 1 << 63, E: -63}, got)

	got = Normalize(Fp{F: 1 << 63, E: 5})
	assert.Equal(t, Fp{F: 1 << 63, E: 5}, got)

	got = NormalizeTo(Fp{F: 1 << 60, E: -10}, -13)
	assert.Equal(t, Fp{F: 1 << 63, E: -13}, got)
}

// Every binary exponent a normalized double (or single) can carry must map
// to a cached power that scales it into [Alpha, Gamma].
func TestPowForBinaryExponentRange(t *testing.T) {
	for e := -1137; e <= 960; e++ {
		cached := PowForBinaryExponent(e)
		scaled := cached.E + e + 64
		require.GreaterOrEqual(t, scaled, Alpha, "e=%d k=%d", e, cached.K)
		require.LessOrEqual(t, scaled, Gamma, "e=%d k=%d", e, cached.K)
		require.NotZero(t, cached.F&(1<<63), "cached power not normalized, e=%d", e)
	}
}

func TestPowForBinaryExponentKnown(t *testing.T) {
	// 1.0 normalizes to 2^63 * 2^-63; the selected cached power is 10^4
	// and scales it to 2^-49.
	cached := PowForBinaryExponent(-63)
	assert.Equal(t, 4, cached.K)
	assert.Equal(t, uint64(0x9C40000000000000), cached.F)
	assert.Equal(t, -50, cached.E)

	// The smallest double exponents select the top of the table.
	cached = PowForBinaryExponent(-1060)
	assert.Equal(t, 308, cached.K)
	assert.Equal(t, 960, cached.E)
}

func TestPowForDecimalExponent(t *testing.T) {
	for e := -348; e < 340; e++ {
		cached := PowForDecimalExponent(e)
		require.LessOrEqual(t, cached.K, e)
		require.Less(t, e, cached.K+16)
		require.NotZero(t, cached.F&(1<<63))
	}

	// 10^4 and 10^20 are exact table entries.
	cached := PowForDecimalExponent(4)
	assert.Equal(t, 4, cached.K)
	assert.Equal(t, uint64(0x9C40000000000000), cached.F)
	assert.Equal(t, -50, cached.E)

	cached = PowForDecimalExponent(20)
	assert.Equal(t, 20, cached.K)
	assert.Equal(t, uint64(0xAD78EBC5AC620000), cached.F)
	assert.Equal(t, 3, cached.E)
}

func TestAdjustmentPow(t *testing.T) {
	// The adjustment powers are exact: 10^k = F * 2^E must hold as
	// integers for small k.
	for k := 1; k <= 15; k++ {
		p := AdjustmentPow(k)
		require.NotZero(t, p.F&(1<<63), "k=%d", k)

		want := uint64(1)
		for i := 0; i < k; i++ {
			want *= 10
		}
		// F * 2^E == 10^k, with E in [-63, -14].
		require.Equal(t, want, p.F>>uint(-p.E), "k=%d", k)
		require.Zero(t, p.F&(1<<uint(-p.E)-1), "k=%d has a fractional part", k)
	}
}
