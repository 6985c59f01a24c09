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
	"math/big"

	"github.com/decfloat/decfloat/go/hack"
)

// compareDecimal exactly compares digits * 10^exp against f * 2^e and
// returns -1, 0 or +1. A non-zero dropped tail makes the decimal side
// strictly larger than its digits, which is encoded by appending a
// phantom 1 one decimal place down: that can never flip an inequality
// and turns an exact tie into "greater".
func compareDecimal(digits []byte, exp int, nonzeroTail bool, f uint64, e int) int {
	lhs, _ := new(big.Int).SetString(hack.String(digits), 10)
	if nonzeroTail {
		lhs.Mul(lhs, bigTen)
		lhs.Add(lhs, bigOne)
		exp--
	}
	rhs := new(big.Int).SetUint64(f)

	// Scale both sides to a common denominator: powers of ten go to
	// whichever side keeps them positive, same for the powers of two.
	if exp >= 0 {
		lhs.Mul(lhs, pow10Big(exp))
	} else {
		rhs.Mul(rhs, pow10Big(-exp))
	}
	if e >= 0 {
		rhs.Lsh(rhs, uint(e))
	} else {
		lhs.Lsh(lhs, uint(-e))
	}

	return lhs.Cmp(rhs)
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
