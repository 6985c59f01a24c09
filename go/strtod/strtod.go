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

// Package strtod parses decimal floating-point literals into correctly
// rounded IEEE-754 values.
//
// The accepted syntax is an optional sign, digits with an optional
// fractional part, and an optional e/E exponent, plus the case-insensitive
// spellings "inf", "infinity" and "nan". Parsing is best-effort over a
// prefix of the input: the functions report how many bytes they consumed
// along with a Status describing what was found.
//
// The conversion itself runs an extended-precision approximation with
// explicit error tracking; whenever the approximation cannot prove which
// of two neighboring values is correct, an exact big-integer comparison
// against the rounding boundary settles it. The result is therefore always
// the nearest representable value, with ties broken towards the even
// significand.
package strtod

import (
	"errors"
	"fmt"
	"math"

	"github.com/decfloat/decfloat/go/ieee"
)

// Status describes the outcome of a parse.
type Status int

const (
	// StatusOK: a finite non-zero value, correctly rounded.
	StatusOK Status = iota
	// StatusZero: the significand consists of zero digits only. The sign
	// of the input is preserved in the result.
	StatusZero
	// StatusInf: an "inf" or "infinity" spelling, or a finite literal too
	// large for the format.
	StatusInf
	// StatusNaN: a "nan" spelling.
	StatusNaN
	// StatusInvalid: no parsable value at the start of the input. The
	// returned value is zero and no bytes are consumed.
	StatusInvalid
	// StatusTooManyDigits: the literal carries more significant digits
	// than the format can ever need (17 for float64, 9 for float32). The
	// returned value is still correctly rounded; the status flags that
	// the input was not produced by a shortest-form formatter.
	StatusTooManyDigits
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusZero:
		return "Zero"
	case StatusInf:
		return "Inf"
	case StatusNaN:
		return "NaN"
	case StatusInvalid:
		return "Invalid"
	case StatusTooManyDigits:
		return "TooManyDigits"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrSyntax is returned by Float64 and Float32 when the input is not a
// single complete floating-point literal.
var ErrSyntax = errors.New("invalid floating-point syntax")

// The longest decimal expansion of a double is (2^53 - 1) * 5^1074 /
// 10^1074 with 767 digits. A literal equal to a midpoint between two
// adjacent doubles can have 768; digits beyond that can only matter as
// "there is a non-zero tail", which is tracked separately.
const maxSignificantDigits = 768

// Exponents are saturated at this magnitude during scanning. Anything
// this large already over- or underflows every supported format.
const maxDecimalExponent = 1 << 28

// Parse64 parses a prefix of s as a float64. It returns the correctly
// rounded value, a Status, and the number of bytes consumed.
func Parse64(s string) (float64, Status, int) {
	bits, st, n := parse(s, ieee.Double)
	return math.Float64frombits(bits), st, n
}

// Parse32 parses a prefix of s as a float32, rounding once to single
// precision (not through an intermediate float64).
func Parse32(s string) (float32, Status, int) {
	bits, st, n := parse(s, ieee.Single)
	return math.Float32frombits(uint32(bits)), st, n
}

// ParseExact64 is Parse64 for callers that supply literals of arbitrary
// length on purpose: StatusTooManyDigits is reported as StatusOK. The
// value is identical to what Parse64 returns.
func ParseExact64(s string) (float64, Status, int) {
	v, st, n := Parse64(s)
	if st == StatusTooManyDigits {
		st = StatusOK
	}
	return v, st, n
}

// ParseExact32 is the single-precision variant of ParseExact64.
func ParseExact32(s string) (float32, Status, int) {
	v, st, n := Parse32(s)
	if st == StatusTooManyDigits {
		st = StatusOK
	}
	return v, st, n
}

// Float64 parses s in its entirety and returns an error wrapping
// ErrSyntax if s is not exactly one floating-point literal.
func Float64(s string) (float64, error) {
	v, st, n := Parse64(s)
	if st == StatusInvalid || n != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return v, nil
}

// Float32 is the single-precision variant of Float64.
func Float32(s string) (float32, error) {
	v, st, n := Parse32(s)
	if st == StatusInvalid || n != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return v, nil
}

// decimal is the scanned form of a literal: digits * 10^exp, negated if
// neg. digits holds significant digits only (no leading zeros; trailing
// zeros are stripped by the caller). nonzeroTail records that non-zero
// digits beyond the buffer capacity were dropped.
type decimal struct {
	digits      [maxSignificantDigits]byte
	nd          int
	exp         int
	neg         bool
	nonzeroTail bool
}

func parse(s string, d ieee.Desc) (bits uint64, st Status, n int) {
	var dec decimal
	n, st = scanDecimal(s, &dec)
	switch st {
	case StatusInvalid:
		return 0, StatusInvalid, 0
	case StatusNaN:
		return d.ExponentMask | d.HiddenBit>>1, StatusNaN, n
	case StatusInf:
		bits = d.Inf()
		if dec.neg {
			bits |= d.SignMask
		}
		return bits, StatusInf, n
	}

	// Move trailing zeros into the exponent. The first digit is non-zero,
	// so at least one digit survives.
	for dec.nd > 0 && dec.digits[dec.nd-1] == '0' {
		dec.nd--
		dec.exp++
	}

	if dec.nd == 0 {
		if dec.neg {
			bits = d.SignMask
		}
		return bits, StatusZero, n
	}

	st = StatusOK
	if dec.nonzeroTail || dec.nd > d.MaxDigits {
		st = StatusTooManyDigits
	}

	bits = convert(d, dec.digits[:dec.nd], dec.exp, dec.nonzeroTail)
	if bits == d.Inf() {
		// A finite literal too large for the format.
		st = StatusInf
	}
	if dec.neg {
		bits |= d.SignMask
	}
	return bits, st, n
}

// scanDecimal scans a literal from the start of s into dec. It returns
// the number of bytes consumed and StatusOK for a digit sequence (zero
// or not, the caller decides), StatusNaN/StatusInf for the special
// spellings, or StatusInvalid.
func scanDecimal(s string, dec *decimal) (int, Status) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		dec.neg = s[i] == '-'
		i++
	}

	if i < len(s) {
		switch s[i] {
		case 'i', 'I':
			if hasPrefixFold(s[i:], "infinity") {
				return i + len("infinity"), StatusInf
			}
			if hasPrefixFold(s[i:], "inf") {
				return i + len("inf"), StatusInf
			}
			return 0, StatusInvalid
		case 'n', 'N':
			if hasPrefixFold(s[i:], "nan") {
				return i + len("nan"), StatusNaN
			}
			return 0, StatusInvalid
		}
	}

	sawDigits := false

	for i < len(s) && isDigit(s[i]) {
		sawDigits = true
		switch c := s[i]; {
		case c == '0' && dec.nd == 0:
			// Leading zero before the first significant digit.
		case dec.nd < maxSignificantDigits:
			dec.digits[dec.nd] = c
			dec.nd++
		default:
			dec.exp++
			if c != '0' {
				dec.nonzeroTail = true
			}
		}
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			sawDigits = true
			switch c := s[i]; {
			case c == '0' && dec.nd == 0:
				// Zero between the point and the first significant
				// digit: shifts the value down.
				dec.exp--
			case dec.nd < maxSignificantDigits:
				dec.digits[dec.nd] = c
				dec.nd++
				dec.exp--
			default:
				if c != '0' {
					dec.nonzeroTail = true
				}
			}
			i++
		}
	}

	if !sawDigits {
		return 0, StatusInvalid
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return 0, StatusInvalid
		}
		num := 0
		for i < len(s) && isDigit(s[i]) {
			if num < maxDecimalExponent {
				num = num*10 + int(s[i]-'0')
			}
			i++
		}
		if expNeg {
			num = -num
		}
		dec.exp += num
	}

	return i, StatusOK
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// hasPrefixFold reports whether s starts with the lower-case ASCII word
// prefix, compared case-insensitively.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for j := 0; j < len(prefix); j++ {
		if s[j]|0x20 != prefix[j] {
			return false
		}
	}
	return true
}
