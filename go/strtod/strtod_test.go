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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The expected values are Go literals: the compiler performs its own
// correctly rounded decimal-to-binary conversion, so every table entry
// pins the exact bit pattern the parser must produce.
func TestParse64(t *testing.T) {
	cases := []struct {
		in       string
		want     float64
		status   Status
		consumed int
	}{
		{"0", 0, StatusZero, 1},
		{"-0", math.Copysign(0, -1), StatusZero, 2},
		{"0e5", 0, StatusZero, 3},
		{"0.000", 0, StatusZero, 5},
		{"00000", 0, StatusZero, 5},

		{"1", 1, StatusOK, 1},
		{"+1", 1, StatusOK, 2},
		{"-1", -1, StatusOK, 2},
		{"1.5", 1.5, StatusOK, 3},
		{".5", 0.5, StatusOK, 2},
		{"0.1", 0.1, StatusOK, 3},
		{"00.100", 0.1, StatusOK, 6},
		{"123.456", 123.456, StatusOK, 7},
		{"1e10", 1e10, StatusOK, 4},
		{"1E10", 1e10, StatusOK, 4},
		{"1e+10", 1e10, StatusOK, 5},
		{"1e-10", 1e-10, StatusOK, 5},
		{"-1.2e6", -1.2e6, StatusOK, 6},
		{"0.000001", 0.000001, StatusOK, 8},

		// Extremes of the format.
		{"1.7976931348623157e+308", math.MaxFloat64, StatusOK, 23},
		{"5e-324", 5e-324, StatusOK, 6},
		{"2.2250738585072009e-308", 2.2250738585072009e-308, StatusOK, 23},
		{"2.2250738585072014e-308", 2.2250738585072014e-308, StatusOK, 23},

		// Overflow and underflow of finite literals.
		{"1e309", math.Inf(1), StatusInf, 5},
		{"-1e309", math.Inf(-1), StatusInf, 6},
		{"1e999999999999", math.Inf(1), StatusInf, 14},
		{"1e-324", 0, StatusOK, 6},
		{"1e-999999999999", 0, StatusOK, 15},

		// Halfway cases resolved by the big-integer fallback. The first is
		// the exact midpoint between 1 and its successor and ties to even;
		// the second sits one part in 10^52 above it and must round up.
		{"1.00000000000000011102230246251565404236316680908203125", 1, StatusTooManyDigits, 55},
		{"1.000000000000000111022302462515654042363166809082031251", 1.0000000000000002, StatusTooManyDigits, 56},

		// 0.3 written out exactly: 52 significant digits, same double.
		{"0.299999999999999988897769753748434595763683319091796875", 0.3, StatusTooManyDigits, 56},

		// 18 significant digits for a double.
		{"1.00000000000000001", 1, StatusTooManyDigits, 19},

		// Trailing zeros do not count as significant.
		{"1.5000000000000000000000000000", 1.5, StatusOK, 30},

		// Prefix parsing stops at the first byte that cannot extend the
		// literal.
		{"1.5x", 1.5, StatusOK, 3},
		{"12 34", 12, StatusOK, 2},
		{"3.14foo", 3.14, StatusOK, 4},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, st, n := Parse64(tc.in)
			assert.Equal(t, tc.status, st)
			assert.Equal(t, tc.consumed, n)
			require.Equal(t, math.Float64bits(tc.want), math.Float64bits(got),
				"got %v, want %v", got, tc.want)
		})
	}
}

func TestParseSpecials(t *testing.T) {
	cases := []struct {
		in       string
		status   Status
		consumed int
		neg      bool
	}{
		{"inf", StatusInf, 3, false},
		{"Inf", StatusInf, 3, false},
		{"INF", StatusInf, 3, false},
		{"-inf", StatusInf, 4, true},
		{"infinity", StatusInf, 8, false},
		{"Infinity", StatusInf, 8, false},
		{"-INFINITY", StatusInf, 9, true},
		{"infinityandbeyond", StatusInf, 8, false},
		{"infin", StatusInf, 3, false}, // "inf" plus unrelated bytes
		{"nan", StatusNaN, 3, false},
		{"NaN", StatusNaN, 3, false},
		{"-nan", StatusNaN, 4, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, st, n := Parse64(tc.in)
			assert.Equal(t, tc.status, st)
			assert.Equal(t, tc.consumed, n)
			switch tc.status {
			case StatusInf:
				assert.True(t, math.IsInf(got, map[bool]int{false: 1, true: -1}[tc.neg]))
			case StatusNaN:
				assert.True(t, math.IsNaN(got))
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", ".", "+", "-", "+.", "e5", "x", " 1", "1e", "1e+", "1e-", "1ex", "i", "in", "na", "+e5"} {
		t.Run(in, func(t *testing.T) {
			got, st, n := Parse64(in)
			assert.Equal(t, StatusInvalid, st)
			assert.Equal(t, 0, n)
			assert.Zero(t, got)
		})
	}
}

func TestParseSignedZero(t *testing.T) {
	got, st, _ := Parse64("-0")
	assert.Equal(t, StatusZero, st)
	assert.True(t, math.Signbit(got))

	got, st, _ = Parse64("-0.000e10")
	assert.Equal(t, StatusZero, st)
	assert.True(t, math.Signbit(got))

	got32, st, _ := Parse32("-0")
	assert.Equal(t, StatusZero, st)
	assert.True(t, math.Signbit(float64(got32)))
}

func TestParse32(t *testing.T) {
	cases := []struct {
		in     string
		want   float32
		status Status
	}{
		{"1", 1, StatusOK},
		{"0.1", 0.1, StatusOK},
		{"3.4028235e+38", math.MaxFloat32, StatusOK},
		{"1e-45", 1e-45, StatusOK},
		{"1.1754942e-38", 1.1754942e-38, StatusOK},
		{"1.1754944e-38", 1.1754944e-38, StatusOK},

		// 2^24 + 1 is the exact midpoint of two singles; ties to even.
		{"16777217", 16777216, StatusOK},

		// Rounding the decimal to a double first and then to a single
		// gives the wrong answer here; the parser must round once.
		{"7.038531e-26", 7.038531e-26, StatusOK},

		// Ten significant digits for a single.
		{"1.000000001", 1, StatusTooManyDigits},

		// Single-precision overflow/underflow happens well inside the
		// double range.
		{"3.5e38", float32(math.Inf(1)), StatusInf},
		{"-3.5e38", float32(math.Inf(-1)), StatusInf},
		{"1e-46", 0, StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, st, _ := Parse32(tc.in)
			assert.Equal(t, tc.status, st)
			require.Equal(t, math.Float32bits(tc.want), math.Float32bits(got),
				"got %v, want %v", got, tc.want)
		})
	}
}

func TestParseLongLiterals(t *testing.T) {
	// 770 nines after the point: more digits than the scanner buffers, so
	// the non-zero tail is folded into the big-integer comparison. The
	// value is within half an ulp of 1.
	in := "0." + strings.Repeat("9", 770)
	got, st, n := Parse64(in)
	assert.Equal(t, StatusTooManyDigits, st)
	assert.Equal(t, len(in), n)
	assert.Equal(t, 1.0, got)

	// A huge integer written with a long zero tail still converts
	// correctly; the zeros only shift the exponent.
	in = "1" + strings.Repeat("0", 1000)
	got, st, _ = Parse64(in)
	assert.Equal(t, StatusInf, st)
	assert.True(t, math.IsInf(got, 1))

	// Same shape within range.
	in = "1" + strings.Repeat("0", 300)
	got, st, _ = Parse64(in)
	assert.Equal(t, StatusOK, st)
	assert.Equal(t, 1e300, got)
}

func TestParseExact(t *testing.T) {
	in := "1.00000000000000001"

	_, st, _ := Parse64(in)
	assert.Equal(t, StatusTooManyDigits, st)

	v, st, n := ParseExact64(in)
	assert.Equal(t, StatusOK, st)
	assert.Equal(t, len(in), n)
	assert.Equal(t, 1.0, v)

	v32, st, _ := ParseExact32("1.000000001")
	assert.Equal(t, StatusOK, st)
	assert.Equal(t, float32(1), v32)
}

func TestFloat64(t *testing.T) {
	v, err := Float64("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	for _, in := range []string{"", "2.5x", "x2.5", "1e", "1 "} {
		_, err := Float64(in)
		require.ErrorIs(t, err, ErrSyntax, "input %q", in)
	}

	v32, err := Float32("-0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(-0.5), v32)

	_, err = Float32("0.5.5")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "TooManyDigits", StatusTooManyDigits.String())
	assert.Equal(t, "Status(42)", Status(42).String())
}

func BenchmarkParse64Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse64("123.456")
	}
}

func BenchmarkParse64Hard(b *testing.B) {
	// Forces the big-integer fallback.
	for i := 0; i < b.N; i++ {
		Parse64("1.00000000000000011102230246251565404236316680908203125")
	}
}
