// Package mathutil holds the IEEE-754 binary64 layout shared by the kernel:
// field extraction, exponent rewriting and power-of-two construction.
package mathutil

import (
	"math"
	"unsafe"
)

const (
	bitsInFloat = unsafe.Sizeof(float64(0)) * 8

	// MantBits is the width of the binary64 mantissa field.
	MantBits = 52

	// ExpBits is the width of the binary64 exponent field.
	ExpBits = int(bitsInFloat) - MantBits - 1

	ExpMask  = 1<<ExpBits - 1
	MantMask = 1<<MantBits - 1
	SignMask = 1 << (bitsInFloat - 1)

	// Bias is the exponent bias, 1023 for binary64.
	Bias = 1<<(ExpBits-1) - 1

	// MinExp and MaxExp bound the unbiased exponent of normal numbers.
	MinExp = 1 - Bias
	MaxExp = Bias

	// maxExact is the magnitude from which every float64 is an integer.
	maxExact = 1 << MantBits
)

// Fields splits a binary64 bit pattern into its sign, biased exponent and mantissa fields.
//
//	63 62        52 51                                                0
//	s  eeeeeeeeeee  mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
func Fields(bits uint64) (sign, exp, mant uint64) {
	return bits >> (bitsInFloat - 1), bits >> MantBits & ExpMask, bits & MantMask
}

// FromFields assembles a binary64 bit pattern. Fields are masked to their widths.
func FromFields(sign, exp, mant uint64) uint64 {
	return (sign&1)<<(bitsInFloat-1) | (exp&ExpMask)<<MantBits | mant&MantMask
}

// Exponent returns the unbiased exponent field of f.
func Exponent(f float64) int {
	_, e, _ := Fields(math.Float64bits(f))
	return int(e) - Bias
}

// WithExponent keeps the sign and mantissa of f and rewrites its exponent field to e+Bias.
func WithExponent(f float64, e int) float64 {
	s, _, m := Fields(math.Float64bits(f))
	return math.Float64frombits(FromFields(s, uint64(e+Bias), m))
}

// Pow2 builds 2^n by writing n+Bias into an otherwise empty exponent field.
// n must be within [MinExp, MaxExp].
func Pow2(n int) float64 {
	return math.Float64frombits(uint64(n+Bias) << MantBits)
}

// Floor rounds x toward negative infinity using integer truncation.
// Values which are already integral (including ±Inf) are returned unchanged.
func Floor(x float64) float64 {
	if x >= maxExact || x <= -maxExact || x != x {
		return x
	}
	n := float64(int64(x))
	if x < 0 && x != n {
		return n - 1
	}
	return n
}

// FloorMod returns x - floor(x/y)*y, which lies in [0, y) for a positive y.
// When x/y is too large to be floored exactly, the result is still in [0, y),
// but carries no precision.
func FloorMod(x, y float64) float64 {
	if x != x {
		return x
	}
	r := x - Floor(x/y)*y
	if r < 0 || r >= y {
		r -= Floor(r/y) * y
	}
	if r >= 0 && r < y {
		return r
	}
	return 0
}

// Horner evaluates c[0] + x*(c[1] + x*(c[2] + ... + x*c[n])).
func Horner(x float64, c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	result := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

// AbsInt64 returns |val|. AbsInt64(math.MinInt64) is math.MinInt64.
func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}
