package crmath

import (
	"math"

	"github.com/ajroetker/go-crmath/dd"
)

// =============================================================================
// Constants for the correctly rounded functions
// =============================================================================
//
// Every function keeps its own thresholds and coefficients. They are stored
// as bit patterns so the values are reproducible exactly; the error analysis
// that produced each set is independent of the others.

// Float64 constants for Exp2
const (
	exp2AbsHuge   = 0x8120000000000000 // |x| >= 1024, in ix<<1 form
	exp2AbsInf    = 0xffe0000000000000 // ±Inf, in ix<<1 form
	exp2AbsTiny   = 0x792e2a8eca5705fc // |x| <= 0x1.71547652b82fdp-54, in ix<<1 form
	exp2Underflow = 0xc090cc0000000000 // x <= -1075
	exp2Subnormal = 0xc08ff00000000000 // x < -1022 takes the subnormal path
)

var (
	exp2C0_f64 = math.Float64frombits(0x3f262e42fefa39ef)
	exp2C1_f64 = math.Float64frombits(0x3e4ebfbdff82c58f)
	exp2C2_f64 = math.Float64frombits(0x3d6c6b08d73b3e01)
	exp2C3_f64 = math.Float64frombits(0x3c83b2ab6fdda001)

	exp2Eps_f64 = math.Float64frombits(0x3c0833beace2b6fe)
)

// exp2PolyDD approximates (2^(z/4096) - 1)/z for |z| <= 1/2 in double-double.
var exp2PolyDD = [][2]uint64{
	{0x3f262e42fefa39ef, 0x3bbabc9e3b39873e},
	{0x3e4ebfbdff82c58f, 0xbae5e43a53e44950},
	{0x3d6c6b08d704a0c0, 0xba0d3a15710d3d83},
	{0x3c83b2ab6fba4e77, 0x3914dd5d2a5e025a},
	{0x3b95d87fe7a66459, 0xb83dc47e47beb9dd},
	{0x3aa430912f9fb79d, 0xb744fcd51fcb7640},
}

// Float64 constants for Exp10
const (
	exp10AbsHuge    = 0x40734413509f79fe // |x| > 308.2547155599167
	exp10AbsInf     = 0x7ff0000000000000
	exp10Underflow  = 0x407439b746e36b52 // |x| > 323.60766 for negative x
	exp10AbsTiny    = 0x3c7bcb7b1526e50e // |x| <= 2.41082e-17
	exp10Subnormal  = 0xc0733a7146f72a42 // x <= -307.6526555685888
	exp10MaxIntPow  = 0x4040000000000000 // |x| < 32
	exp10PowTrailer = 16                 // cheap filter for small integers
)

var (
	exp10InvL_f64 = math.Float64frombits(0x40ca934f0979a371) // 4096/log10(2)
	exp10L0_f64   = math.Float64frombits(0x3f13441350800000) // log10(2)/4096, top 29 bits
	exp10L1_f64   = math.Float64frombits(0x3d1f79fef311f12b)
	exp10L2_f64   = math.Float64frombits(0x39aac0b7c917826b)

	exp10C0_f64 = math.Float64frombits(0x40026bb1bbb55516)
	exp10C1_f64 = math.Float64frombits(0x40053524c73cea69)
	exp10C2_f64 = math.Float64frombits(0x4000470591fd74e1)
	exp10C3_f64 = math.Float64frombits(0x3ff2bd760a1f32a5)

	exp10Eps_f64 = math.Float64frombits(0x3c20000000000000) // 2^-61

	exp10Ln10Hi_f64 = math.Float64frombits(0x40026bb1bbb55516)
)

// exp10Powers holds 10^n rounded to nearest. Entries past 1e22 are the
// only ones that round; 1e23 is a tie.
var exp10Powers = [32]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22, 1e23,
	1e24, 1e25, 1e26, 1e27, 1e28, 1e29, 1e30, 1e31,
}

// exp10PolyDD holds ln(10)^k/k! for k = 1..7 in double-double, so that
// z*P(z) approximates 10^z - 1.
var exp10PolyDD = [][2]uint64{
	{0x40026bb1bbb55516, 0xbcaf48ad494ea3e9},
	{0x40053524c73cea69, 0xbcae2bfab318d695},
	{0x4000470591de2ca4, 0x3ca823527cec106a},
	{0x3ff2bd7609fd98c4, 0x3c931ea51f65ed9f},
	{0x3fe1429ffd1d4d76, 0x3c71171950896416},
	{0x3fca7ed70847c8b6, 0xbc54260c232c8c25},
	{0x3fb16e4dfc333a87, 0xbc533e9f4455ab4e},
}

// Float32 constants for Exp10f
const (
	exp10fAbsHuge   = 0x421a209b // |x| >= 38.53184
	exp10fUnderflow = 0xc2349e35 // x < -45.15449
	exp10fAbsTiny   = 0x32800000 // 2^-26
)

var (
	exp10fLog2B_f64 = math.Float64frombits(0x400a934f0979a371) * 32 // 32*log2(10)
	exp10fHi_f64    = math.Float64frombits(0xbfd34413509f8000) / 32 // -log10(2)/32, high part
	exp10fLo_f64    = math.Float64frombits(0x3d380433b83b532a) / 32

	exp10fC0_f64 = math.Float64frombits(0x40026bb1bbb55515)
	exp10fC1_f64 = math.Float64frombits(0x40053524c73bd3ea)
	exp10fC2_f64 = math.Float64frombits(0x4000470591dff149)
	exp10fC3_f64 = math.Float64frombits(0x3ff2bd7c0a9fbc4d)
	exp10fC4_f64 = math.Float64frombits(0x3fe1429e74a98f43)
)

// Float32 constants for Exp2f
const (
	exp2fAbsHuge   = 0x43000000 // |x| >= 128
	exp2fUnderflow = 0xc3160000 // x <= -150
	exp2fAbsTiny   = 0x33000000 // 2^-25

	// Inputs whose results lie within 2^-53 relative of a rounding
	// boundary, closer than the float64 evaluation resolves.
	exp2fHard0 = 0x3b429d37
	exp2fHard1 = 0xbcf3a937
)

var (
	exp2fHard0Result = dd.Pair32{Hi: math.Float32frombits(0x3f804385), Lo: math.Float32frombits(0xb3000000)}
	exp2fHard1Result = dd.Pair32{Hi: math.Float32frombits(0x3f7ac6b1), Lo: math.Float32frombits(0xb2800000)}
)

// ln(2)^k/k! for k = 1..6.
var (
	exp2fC1_f64 = math.Float64frombits(0x3fe62e42fefa39ef)
	exp2fC2_f64 = math.Float64frombits(0x3fcebfbdff82c58f)
	exp2fC3_f64 = math.Float64frombits(0x3fac6b08d704a0c0)
	exp2fC4_f64 = math.Float64frombits(0x3f83b2ab6fba4e77)
	exp2fC5_f64 = math.Float64frombits(0x3f55d87fe78a6731)
	exp2fC6_f64 = math.Float64frombits(0x3f2430912f86c787)
)

// Float32 constants for Atanhf
const (
	atanhfAbsOne   = 0x3f800000
	atanhfAbsInf   = 0x7f800000
	atanhfAbsSmall = 0x3dcc0000 // 0.099609375
	atanhfAbsTiny  = 0x32800000 // 2^-26
)

// Taylor coefficients 1/3, 1/5, ..., 1/15 of atanh(x)/x - 1 in x^2.
var (
	atanhfC3_f64  = math.Float64frombits(0x3fd5555555555555)
	atanhfC5_f64  = math.Float64frombits(0x3fc999999999999a)
	atanhfC7_f64  = math.Float64frombits(0x3fc2492492492492)
	atanhfC9_f64  = math.Float64frombits(0x3fbc71c71c71c71c)
	atanhfC11_f64 = math.Float64frombits(0x3fb745d1745d1746)
	atanhfC13_f64 = math.Float64frombits(0x3fb3b13b13b13b14)
	atanhfC15_f64 = math.Float64frombits(0x3fb1111111111111)
)

// Float32 constants for Cotf, keyed on the biased exponent e.
const (
	cotfExpTiny   = 102      // |x| < 2^-25: 1/x
	cotfExpSmall  = 115      // |x| < 2^-12: 1/x - x/3
	cotfExpTaylor = 117      // |x| < 2^-10
	cotfExpSeries = 119      // |x| < 2^-8
	cotfExpBig    = 127 + 28 // |x| >= 2^28 uses Payne-Hanek
)

var (
	cotfT1_f64 = math.Float64frombits(0xbfd5555555555555) // -1/3
	cotfT3_f64 = math.Float64frombits(0xbf96c16c16c16c17) // -1/45
	cotfT5_f64 = math.Float64frombits(0xbf61566abc011567) // -2/945
	cotfT7_f64 = math.Float64frombits(0xbf2bbd779334ef0b) // -1/4725
	cotfT9_f64 = math.Float64frombits(0xbef66a8f2bf70ebe) // -2/93555

	// 2/pi = cotfInvPiHi + cotfInvPiLo to about 84 bits; the high part has
	// 29 bits so its product with a float32 is exact.
	cotfInvPiHi_f64 = math.Float64frombits(0x3fe45f306e000000)
	cotfInvPiLo_f64 = math.Float64frombits(0xbdfb1bbead603d8b)

	// tan(z*pi/2) ~ z*N(z^2)/D(z^2) on |z| <= 1/2.
	cotfN0_f64 = math.Float64frombits(0x3ff921fb54442d18)
	cotfN1_f64 = math.Float64frombits(0xbfdfd226e573289f)
	cotfN2_f64 = math.Float64frombits(0x3f9b7a60c8dac9f6)
	cotfN3_f64 = math.Float64frombits(0xbf2725beb40f33e5)
	cotfD0_f64 = math.Float64frombits(0x3ff0000000000000)
	cotfD1_f64 = math.Float64frombits(0xbff2395347fb829d)
	cotfD2_f64 = math.Float64frombits(0x3fc2313660f29c36)
	cotfD3_f64 = math.Float64frombits(0xbf69a707ab98d1c1)
)

// cotfInvPi holds 256 bits of 2/pi, least significant word first.
var cotfInvPi = [4]uint64{0xfe5163abdebbc562, 0xdb6295993c439041, 0xfc2757d1f534ddc0, 0xa2f9836e4e441529}

// Float32 constants shared by Tanpif and Cotpif
const (
	tanpifExpHuge = 150 << 23 // |x| >= 2^24 is an even integer
	tanpifExpNaN  = 0xff << 23

	// Inputs where the rational approximation lands too close to a rounding
	// boundary; their correctly rounded results are hi + tiny.
	tanpifHard0 = 0x3e933802
	tanpifHard1 = 0x38f26685

	// The same for Cotpif; both results sit just above a midpoint.
	cotpifHard0 = 0x3240a608
	cotpifHard1 = 0x3bf38c7c
)

var (
	// tan(pi*z) ~ z*(1-z^2)*N(z^2) / (D(z^2)*(1/4-z^2)) on |z| <= 1/2.
	tanpifN0_f64 = math.Float64frombits(0x3fe921fb54442d19)
	tanpifN1_f64 = math.Float64frombits(0xbfd1f458b3e1f8d6)
	tanpifN2_f64 = math.Float64frombits(0x3f968a34bd0b8f6a)
	tanpifN3_f64 = math.Float64frombits(0xbf2e4866f7a25f99)
	tanpifD0_f64 = math.Float64frombits(0x3ff0000000000000)
	tanpifD1_f64 = math.Float64frombits(0xbfe4b4b98d2df3a7)
	tanpifD2_f64 = math.Float64frombits(0x3fb8e9926d2bb901)
	tanpifD3_f64 = math.Float64frombits(0xbf6a6f77fd847ee0)

	tanpifHard0Result = dd.Pair32{Hi: math.Float32frombits(0x3fa267dd), Lo: math.Float32frombits(0x33000000)}
	tanpifHard1Result = dd.Pair32{Hi: math.Float32frombits(0x39be6182), Lo: math.Float32frombits(0x2d000000)}
	cotpifHard0Result = dd.Pair32{Hi: math.Float32frombits(0x4bd89169), Lo: math.Float32frombits(0xbf000000)}
	cotpifHard1Result = dd.Pair32{Hi: math.Float32frombits(0x422b4686), Lo: math.Float32frombits(0xb5800000)}
)
