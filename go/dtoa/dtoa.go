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

// Package dtoa formats floating-point values as the shortest decimal
// string that reads back to the same value.
//
// Placement of the decimal point follows ECMAScript's Number#toString:
// values whose decimal point falls in (-6, 21] print in fixed notation,
// everything else in scientific notation with a signed, minimum-width
// exponent. Special values print as "NaN", "Infinity" and "-Infinity";
// zero prints as "0" or "-0" depending on its sign bit.
package dtoa

import (
	"math"

	"github.com/decfloat/decfloat/go/grisu"
	"github.com/decfloat/decfloat/go/hack"
	"github.com/decfloat/decfloat/go/ieee"
)

// MaxLen is the maximum number of bytes a single formatted value appends.
const MaxLen = 25

// Fixed notation is used when the position of the decimal point relative
// to the first digit lies in (minFixedPoint, maxFixedPoint]. These are
// the cutoffs ECMAScript mandates for Number#toString.
const (
	minFixedPoint = -6
	maxFixedPoint = 21
)

// AppendFloat64 appends the shortest decimal representation of f to dst
// and returns the extended buffer.
func AppendFloat64(dst []byte, f float64) []byte {
	return appendFloat(dst, math.Float64bits(f), ieee.Double, false)
}

// AppendFloat32 appends the shortest decimal representation of f to dst,
// treating f as a single-precision value: the output has at most 9
// significant digits and reads back to f exactly.
func AppendFloat32(dst []byte, f float32) []byte {
	return appendFloat(dst, uint64(math.Float32bits(f)), ieee.Single, false)
}

// AppendFloat64Decimal is AppendFloat64, but integral fixed-notation
// results keep a trailing ".0" ("10.0" instead of "10", "0.0" for zero)
// so the output always reads back as a floating-point literal.
func AppendFloat64Decimal(dst []byte, f float64) []byte {
	return appendFloat(dst, math.Float64bits(f), ieee.Double, true)
}

// AppendFloat32Decimal is the single-precision variant of
// AppendFloat64Decimal.
func AppendFloat32Decimal(dst []byte, f float32) []byte {
	return appendFloat(dst, uint64(math.Float32bits(f)), ieee.Single, true)
}

// FormatFloat64 returns the shortest decimal representation of f.
func FormatFloat64(f float64) string {
	buf := make([]byte, 0, MaxLen)
	return hack.String(AppendFloat64(buf, f))
}

// FormatFloat32 returns the shortest decimal representation of f as a
// single-precision value.
func FormatFloat32(f float32) string {
	buf := make([]byte, 0, MaxLen)
	return hack.String(AppendFloat32(buf, f))
}

func appendFloat(dst []byte, bits uint64, d ieee.Desc, trailingZero bool) []byte {
	if !d.IsFinite(bits) {
		if d.IsNaN(bits) {
			return append(dst, "NaN"...)
		}
		if d.IsNeg(bits) {
			return append(dst, "-Infinity"...)
		}
		return append(dst, "Infinity"...)
	}

	if d.IsNeg(bits) {
		dst = append(dst, '-')
		bits = d.Abs(bits)
	}

	if d.IsZero(bits) {
		dst = append(dst, '0')
		if trailingZero {
			dst = append(dst, '.', '0')
		}
		return dst
	}

	mant, exp := d.Decompose(bits)

	var digits [24]byte
	n, decExp := grisu.ShortestDigits(digits[:], mant, exp, d)
	return appendDigits(dst, digits[:n], decExp, trailingZero)
}

// appendDigits renders digits * 10^decExp. digits holds ASCII digits with
// no leading or trailing zeros.
func appendDigits(dst []byte, digits []byte, decExp int, trailingZero bool) []byte {
	// point is the position of the decimal point relative to the first
	// digit: digits * 10^decExp == 0.digits * 10^point.
	point := len(digits) + decExp

	if minFixedPoint < point && point <= maxFixedPoint {
		switch {
		case point <= 0:
			// 0.[000]digits
			dst = append(dst, '0', '.')
			for i := 0; i < -point; i++ {
				dst = append(dst, '0')
			}
			return append(dst, digits...)

		case point < len(digits):
			// dig.its
			dst = append(dst, digits[:point]...)
			dst = append(dst, '.')
			return append(dst, digits[point:]...)

		default:
			// digits[000]
			dst = append(dst, digits...)
			for i := len(digits); i < point; i++ {
				dst = append(dst, '0')
			}
			if trailingZero {
				dst = append(dst, '.', '0')
			}
			return dst
		}
	}

	// d[.igits]e±xx
	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	} else if trailingZero {
		dst = append(dst, '.', '0')
	}
	return appendExponent(dst, point-1)
}

func appendExponent(dst []byte, e int) []byte {
	dst = append(dst, 'e')
	if e < 0 {
		dst = append(dst, '-')
		e = -e
	} else {
		dst = append(dst, '+')
	}
	switch {
	case e >= 100:
		return append(dst, byte('0'+e/100), byte('0'+e/10%10), byte('0'+e%10))
	case e >= 10:
		return append(dst, byte('0'+e/10), byte('0'+e%10))
	default:
		return append(dst, byte('0'+e))
	}
}
