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

// Pow is a precomputed power of ten: F * 2^E ~= 10^K. The significand is
// normalized (bit 63 set) and correctly rounded to 64 bits, so the
// representation error is at most 1/2 ulp.
type Pow struct {
	F uint64
	E int
	K int
}

// Fp returns the power as a bare extended float.
func (p Pow) Fp() Fp {
	return Fp{F: p.F, E: p.E}
}

// Scaled exponent range for the digit generator. After multiplying a
// normalized input by the selected cached power, the result's binary
// exponent lies in [Alpha, Gamma]. With this choice the integral part of
// the scaled value fits into 32 bits and multiplying the fractional part
// by 10 cannot overflow.
const (
	Alpha = -60
	Gamma = -32
)

const (
	minDecExpStep8 = -300
	decExpStep8    = 8

	minDecExpStep16 = -348
	maxDecExpStep16 = 324
	decExpStep16    = 16
)

// CeilLog10Pow2 returns ceil(e * log_10(2)) for |e| <= 1500.
//
// log_10(2) ~= 78913/2^18 ~= 315653/2^20.
func CeilLog10Pow2(e int) int {
	return (e*315653 + (1<<20 - 1)) >> 20
}

// floorLog2Pow10 returns floor(k * log_2(10)) for |k| <= 1233.
//
// log_2(10) ~= 1741647/2^19.
func floorLog2Pow10(k int) int {
	return (k * 1741647) >> 19
}

// binExpStep16 returns the binary exponent of the normalized 64-bit
// significand of 10^k, for |k| <= 400.
//
// log_2(10) ~= 108853/2^15.
func binExpStep16(k int) int {
	return (k*108853 - 63*(1<<15)) >> 15
}

// PowForBinaryExponent returns a cached power of ten c ~= 10^k chosen so
// that for a normalized x with binary exponent e, Multiply(x, c.Fp()) has
// a binary exponent in [Alpha, Gamma].
//
// Requires -1137 <= e <= 960, which covers all normalized finite doubles.
func PowForBinaryExponent(e int) Pow {
	// Find the smallest k with Alpha <= e + e_c + 64 once c is applied:
	// k = ceil((Alpha - e - 1) * log_10(2)).
	k := CeilLog10Pow2(Alpha - e - 1)
	index := (-minDecExpStep8 + k + (decExpStep8 - 1)) / decExpStep8

	kCached := minDecExpStep8 + index*decExpStep8
	eCached := floorLog2Pow10(kCached) + 1 - 64

	return Pow{F: pow10Step8[index], E: eCached, K: kCached}
}

// PowForDecimalExponent returns a cached power of ten c = F * 2^E ~= 10^k
// with k <= e < k + 16. The parser multiplies by the exact adjustment
// power 10^(e-k) to reach the requested decimal exponent.
//
// Requires -348 <= e < 340.
func PowForDecimalExponent(e int) Pow {
	index := (e - minDecExpStep16) / decExpStep16
	k := minDecExpStep16 + index*decExpStep16
	return Pow{F: pow10Step16[index], E: binExpStep16(k), K: k}
}

// AdjustmentPow returns 10^k as an exact normalized extended float.
// Requires 1 <= k <= 15.
func AdjustmentPow(k int) Fp {
	return Fp{F: pow10Adjust[k], E: binExpStep16(k)}
}

// Normalized significands of 10^k for k = -300..+324 in steps of 8, used
// by the digit generator.
var pow10Step8 = [79]uint64{
	0xAB70FE17C79AC6CA, // e = -1060, k = -300
	0xFF77B1FCBEBCDC4F, // e = -1034, k = -292
	0xBE5691EF416BD60C, // e = -1007, k = -284
	0x8DD01FAD907FFC3C, // e =  -980, k = -276
	0xD3515C2831559A83, // e =  -954, k = -268
	0x9D71AC8FADA6C9B5, // e =  -927, k = -260
	0xEA9C227723EE8BCB, // e =  -901, k = -252
	0xAECC49914078536D, // e =  -874, k = -244
	0x823C12795DB6CE57, // e =  -847, k = -236
	0xC21094364DFB5637, // e =  -821, k = -228
	0x9096EA6F3848984F, // e =  -794, k = -220
	0xD77485CB25823AC7, // e =  -768, k = -212
	0xA086CFCD97BF97F4, // e =  -741, k = -204
	0xEF340A98172AACE5, // e =  -715, k = -196
	0xB23867FB2A35B28E, // e =  -688, k = -188
	0x84C8D4DFD2C63F3B, // e =  -661, k = -180
	0xC5DD44271AD3CDBA, // e =  -635, k = -172
	0x936B9FCEBB25C996, // e =  -608, k = -164
	0xDBAC6C247D62A584, // e =  -582, k = -156
	0xA3AB66580D5FDAF6, // e =  -555, k = -148
	0xF3E2F893DEC3F126, // e =  -529, k = -140
	0xB5B5ADA8AAFF80B8, // e =  -502, k = -132
	0x87625F056C7C4A8B, // e =  -475, k = -124
	0xC9BCFF6034C13053, // e =  -449, k = -116
	0x964E858C91BA2655, // e =  -422, k = -108
	0xDFF9772470297EBD, // e =  -396, k = -100
	0xA6DFBD9FB8E5B88F, // e =  -369, k =  -92
	0xF8A95FCF88747D94, // e =  -343, k =  -84
	0xB94470938FA89BCF, // e =  -316, k =  -76
	0x8A08F0F8BF0F156B, // e =  -289, k =  -68
	0xCDB02555653131B6, // e =  -263, k =  -60
	0x993FE2C6D07B7FAC, // e =  -236, k =  -52
	0xE45C10C42A2B3B06, // e =  -210, k =  -44
	0xAA242499697392D3, // e =  -183, k =  -36
	0xFD87B5F28300CA0E, // e =  -157, k =  -28
	0xBCE5086492111AEB, // e =  -130, k =  -20
	0x8CBCCC096F5088CC, // e =  -103, k =  -12
	0xD1B71758E219652C, // e =   -77, k =   -4
	0x9C40000000000000, // e =   -50, k =    4
	0xE8D4A51000000000, // e =   -24, k =   12
	0xAD78EBC5AC620000, // e =     3, k =   20
	0x813F3978F8940984, // e =    30, k =   28
	0xC097CE7BC90715B3, // e =    56, k =   36
	0x8F7E32CE7BEA5C70, // e =    83, k =   44
	0xD5D238A4ABE98068, // e =   109, k =   52
	0x9F4F2726179A2245, // e =   136, k =   60
	0xED63A231D4C4FB27, // e =   162, k =   68
	0xB0DE65388CC8ADA8, // e =   189, k =   76
	0x83C7088E1AAB65DB, // e =   216, k =   84
	0xC45D1DF942711D9A, // e =   242, k =   92
	0x924D692CA61BE758, // e =   269, k =  100
	0xDA01EE641A708DEA, // e =   295, k =  108
	0xA26DA3999AEF774A, // e =   322, k =  116
	0xF209787BB47D6B85, // e =   348, k =  124
	0xB454E4A179DD1877, // e =   375, k =  132
	0x865B86925B9BC5C2, // e =   402, k =  140
	0xC83553C5C8965D3D, // e =   428, k =  148
	0x952AB45CFA97A0B3, // e =   455, k =  156
	0xDE469FBD99A05FE3, // e =   481, k =  164
	0xA59BC234DB398C25, // e =   508, k =  172
	0xF6C69A72A3989F5C, // e =   534, k =  180
	0xB7DCBF5354E9BECE, // e =   561, k =  188
	0x88FCF317F22241E2, // e =   588, k =  196
	0xCC20CE9BD35C78A5, // e =   614, k =  204
	0x98165AF37B2153DF, // e =   641, k =  212
	0xE2A0B5DC971F303A, // e =   667, k =  220
	0xA8D9D1535CE3B396, // e =   694, k =  228
	0xFB9B7CD9A4A7443C, // e =   720, k =  236
	0xBB764C4CA7A44410, // e =   747, k =  244
	0x8BAB8EEFB6409C1A, // e =   774, k =  252
	0xD01FEF10A657842C, // e =   800, k =  260
	0x9B10A4E5E9913129, // e =   827, k =  268
	0xE7109BFBA19C0C9D, // e =   853, k =  276
	0xAC2820D9623BF429, // e =   880, k =  284
	0x80444B5E7AA7CF85, // e =   907, k =  292
	0xBF21E44003ACDD2D, // e =   933, k =  300
	0x8E679C2F5E44FF8F, // e =   960, k =  308
	0xD433179D9C8CB841, // e =   986, k =  316
	0x9E19DB92B4E31BA9, // e =  1013, k =  324
}

// Normalized significands of 10^k for k = -348..+324 in steps of 16, used
// by the parser.
var pow10Step16 = [43]uint64{
	0xFA8FD5A0081C0288, // * 2^-1220 <  10^-348
	0x8B16FB203055AC76, // * 2^-1166 <  10^-332
	0x9A6BB0AA55653B2D, // * 2^-1113 <  10^-316
	0xAB70FE17C79AC6CA, // * 2^-1060 <  10^-300
	0xBE5691EF416BD60C, // * 2^-1007 <  10^-284
	0xD3515C2831559A83, // * 2^-954  <  10^-268
	0xEA9C227723EE8BCB, // * 2^-901  <  10^-252
	0x823C12795DB6CE57, // * 2^-847  <  10^-236
	0x9096EA6F3848984F, // * 2^-794  <  10^-220
	0xA086CFCD97BF97F4, // * 2^-741  >  10^-204
	0xB23867FB2A35B28E, // * 2^-688  >  10^-188
	0xC5DD44271AD3CDBA, // * 2^-635  <  10^-172
	0xDBAC6C247D62A584, // * 2^-582  >  10^-156
	0xF3E2F893DEC3F126, // * 2^-529  <  10^-140
	0x87625F056C7C4A8B, // * 2^-475  <  10^-124
	0x964E858C91BA2655, // * 2^-422  <  10^-108
	0xA6DFBD9FB8E5B88F, // * 2^-369  >  10^-92
	0xB94470938FA89BCF, // * 2^-316  >  10^-76
	0xCDB02555653131B6, // * 2^-263  <  10^-60
	0xE45C10C42A2B3B06, // * 2^-210  >  10^-44
	0xFD87B5F28300CA0E, // * 2^-157  >  10^-28
	0x8CBCCC096F5088CC, // * 2^-103  >  10^-12
	0x9C40000000000000, // * 2^-50   == 10^4
	0xAD78EBC5AC620000, // * 2^3     == 10^20
	0xC097CE7BC90715B3, // * 2^56    <  10^36
	0xD5D238A4ABE98068, // * 2^109   <  10^52
	0xED63A231D4C4FB27, // * 2^162   <  10^68
	0x83C7088E1AAB65DB, // * 2^216   <  10^84
	0x924D692CA61BE758, // * 2^269   <  10^100
	0xA26DA3999AEF774A, // * 2^322   >  10^116
	0xB454E4A179DD1877, // * 2^375   <  10^132
	0xC83553C5C8965D3D, // * 2^428   <  10^148
	0xDE469FBD99A05FE3, // * 2^481   <  10^164
	0xF6C69A72A3989F5C, // * 2^534   >  10^180
	0x88FCF317F22241E2, // * 2^588   <  10^196
	0x98165AF37B2153DF, // * 2^641   >  10^212
	0xA8D9D1535CE3B396, // * 2^694   <  10^228
	0xBB764C4CA7A44410, // * 2^747   >  10^244
	0xD01FEF10A657842C, // * 2^800   <  10^260
	0xE7109BFBA19C0C9D, // * 2^853   <  10^276
	0x80444B5E7AA7CF85, // * 2^907   <  10^292
	0x8E679C2F5E44FF8F, // * 2^960   <  10^308
	0x9E19DB92B4E31BA9, // * 2^1013  <  10^324
}

// Exact normalized significands of 10^k for k = 0..15.
var pow10Adjust = [16]uint64{
	0x8000000000000000, // * 2^-63   == 10^0 (unused)
	0xA000000000000000, // * 2^-60   == 10^1
	0xC800000000000000, // * 2^-57   == 10^2
	0xFA00000000000000, // * 2^-54   == 10^3
	0x9C40000000000000, // * 2^-50   == 10^4
	0xC350000000000000, // * 2^-47   == 10^5
	0xF424000000000000, // * 2^-44   == 10^6
	0x9896800000000000, // * 2^-40   == 10^7
	0xBEBC200000000000, // * 2^-37   == 10^8
	0xEE6B280000000000, // * 2^-34   == 10^9
	0x9502F90000000000, // * 2^-30   == 10^10
	0xBA43B74000000000, // * 2^-27   == 10^11
	0xE8D4A51000000000, // * 2^-24   == 10^12
	0x9184E72A00000000, // * 2^-20   == 10^13
	0xB5E620F480000000, // * 2^-17   == 10^14
	0xE35FA931A0000000, // * 2^-14   == 10^15
}
