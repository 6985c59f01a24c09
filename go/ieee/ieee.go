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

// Package ieee provides bit-level access to IEEE-754 single- and
// double-precision values. All operations work on raw bit patterns held in
// a uint64 (float32 patterns are widened with math.Float32bits first), so
// the same code serves both precisions through a Desc.
package ieee

// Desc describes one IEEE-754 binary interchange format.
type Desc struct {
	// TotalBits is the width of the format (32 or 64).
	TotalBits uint
	// SignificandBits is the width of the stored significand field,
	// excluding the hidden bit (23 or 52).
	SignificandBits uint
	// ExponentBits is the width of the biased exponent field (8 or 11).
	ExponentBits uint

	// Bias is the exponent bias including the significand shift, so that a
	// normal value decomposes as (F | HiddenBit) * 2^(E - Bias).
	Bias int
	// MinExp is the binary exponent of denormals after decomposition
	// (1 - Bias).
	MinExp int
	// MaxExp is the largest binary exponent a decomposed normal value can
	// carry.
	MaxExp int

	// MaxDigits is the number of decimal digits sufficient to distinguish
	// all finite values of the format (Matula's bound: 9 or 17).
	MaxDigits int
	// MaxDecimalPower: every decimal value >= 10^MaxDecimalPower converts
	// to +Inf.
	MaxDecimalPower int
	// MinDecimalPower: every decimal value <= 10^MinDecimalPower converts
	// to +0.
	MinDecimalPower int

	HiddenBit       uint64
	SignificandMask uint64
	ExponentMask    uint64
	SignMask        uint64
}

// Single describes IEEE-754 binary32.
var Single = Desc{
	TotalBits:       32,
	SignificandBits: 23,
	ExponentBits:    8,
	Bias:            150,
	MinExp:          -149,
	MaxExp:          104,
	MaxDigits:       9,
	MaxDecimalPower: 39,
	MinDecimalPower: -46,
	HiddenBit:       1 << 23,
	SignificandMask: 1<<23 - 1,
	ExponentMask:    0xFF << 23,
	SignMask:        1 << 31,
}

// Double describes IEEE-754 binary64.
var Double = Desc{
	TotalBits:       64,
	SignificandBits: 52,
	ExponentBits:    11,
	Bias:            1075,
	MinExp:          -1074,
	MaxExp:          971,
	MaxDigits:       17,
	MaxDecimalPower: 309,
	MinDecimalPower: -324,
	HiddenBit:       1 << 52,
	SignificandMask: 1<<52 - 1,
	ExponentMask:    0x7FF << 52,
	SignMask:        1 << 63,
}

// Significand returns the stored significand field of bits.
func (d Desc) Significand(bits uint64) uint64 {
	return bits & d.SignificandMask
}

// Exponent returns the biased exponent field of bits.
func (d Desc) Exponent(bits uint64) uint64 {
	return (bits & d.ExponentMask) >> d.SignificandBits
}

// IsNeg reports whether the sign bit of bits is set.
func (d Desc) IsNeg(bits uint64) bool {
	return bits&d.SignMask != 0
}

// IsZero reports whether bits is +0 or -0.
func (d Desc) IsZero(bits uint64) bool {
	return bits&^d.SignMask == 0
}

// IsFinite reports whether bits is neither an infinity nor a NaN.
func (d Desc) IsFinite(bits uint64) bool {
	return bits&d.ExponentMask != d.ExponentMask
}

// IsInf reports whether bits is an infinity of either sign.
func (d Desc) IsInf(bits uint64) bool {
	return bits&d.ExponentMask == d.ExponentMask && bits&d.SignificandMask == 0
}

// IsNaN reports whether bits is a NaN.
func (d Desc) IsNaN(bits uint64) bool {
	return bits&d.ExponentMask == d.ExponentMask && bits&d.SignificandMask != 0
}

// IsDenormal reports whether bits is a non-zero value with a zero biased
// exponent.
func (d Desc) IsDenormal(bits uint64) bool {
	return bits&d.ExponentMask == 0 && bits&d.SignificandMask != 0
}

// Abs clears the sign bit of bits.
func (d Desc) Abs(bits uint64) uint64 {
	return bits &^ d.SignMask
}

// Inf returns the bit pattern of +Inf.
func (d Desc) Inf() uint64 {
	return d.ExponentMask
}

// Decompose splits a finite, non-negative bit pattern into an integral
// significand and a binary exponent, so that the value equals
// mant * 2^exp. Denormals decompose with exp = MinExp and no hidden bit;
// normals carry the hidden bit. The result is not normalized.
func (d Desc) Decompose(bits uint64) (mant uint64, exp int) {
	f := d.Significand(bits)
	e := d.Exponent(bits)
	if e == 0 {
		return f, d.MinExp
	}
	return f | d.HiddenBit, int(e) - d.Bias
}

// Assemble is the inverse of Decompose: it builds the bit pattern of
// mant * 2^exp, where mant carries at most SignificandBits+1 bits and the
// hidden bit is set unless exp == MinExp. Exponents above MaxExp yield
// +Inf; exponents below MinExp yield +0.
func (d Desc) Assemble(mant uint64, exp int) uint64 {
	if exp > d.MaxExp {
		return d.Inf()
	}
	if exp < d.MinExp {
		return 0
	}
	var biased uint64
	if exp != d.MinExp || mant&d.HiddenBit != 0 {
		biased = uint64(exp + d.Bias)
	}
	return biased<<d.SignificandBits | mant&d.SignificandMask
}

// Next returns the bit pattern of the next representable value above a
// non-negative, non-Inf pattern.
func (d Desc) Next(bits uint64) uint64 {
	return bits + 1
}

// SignificandIsEven reports whether the stored significand field is even,
// the tie-break used when a decimal input lands exactly on a rounding
// boundary.
func (d Desc) SignificandIsEven(bits uint64) bool {
	return bits&1 == 0
}
