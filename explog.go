// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"math"

	mu "github.com/avdva/scalar/internal/mathutil"
)

var (
	// Taylor coefficients of e^r, 1/k! for k = 0..9.
	expCoeffs = []float64{
		1.0,
		1.0,
		0.5,
		0.166666666666666851703837,
		0.041666666666666666446627,
		0.008333333333333332974823,
		0.001388888888888893316143,
		0.000198412698412696162806,
		0.000024801587301587297458,
		0.000002755731922398589065,
	}

	// coefficients of 2*(1 + y²/3 + y⁴/5 + ... + y¹⁴/15) in powers of y².
	logCoeffs = []float64{
		2.0,
		2.0 / 3.0,
		2.0 / 5.0,
		2.0 / 7.0,
		2.0 / 9.0,
		2.0 / 11.0,
		2.0 / 13.0,
		2.0 / 15.0,
	}
)

const (
	smallestNormal = 2.2250738585072014e-308 // 2^-1022
	subnormalScale = 1 << mu.MantBits
)

// Exp returns e^x.
//
// x is split into n*ln2 + r with n = floor(x/ln2), so that r is in [0, ln2).
// e^r is evaluated by a degree 9 polynomial and scaled by 2^n, which is built
// directly in the exponent field.
//
// Special cases are:
//	Exp(NaN) = NaN
//	Exp(x > 709.78...) = ExpMax
//	Exp(x < -745.13...) = 0
func Exp(x float64) float64 {
	switch {
	case x != x:
		return x
	case x > expOverflow:
		return ExpMax
	case x < expUnderflow:
		return 0
	}

	fn := mu.Floor(x * invLn2)
	r := x - fn*Ln2
	result := mu.Horner(r, expCoeffs)

	n := int(fn)
	switch {
	case n < mu.MinExp:
		// 2^n is subnormal: scale in two steps, so that
		// each factor has a valid exponent field.
		result *= mu.Pow2(n - mu.MinExp)
		result *= mu.Pow2(mu.MinExp)
	case n > mu.MaxExp:
		result *= mu.Pow2(n - mu.MaxExp)
		result *= mu.Pow2(mu.MaxExp)
	default:
		result *= mu.Pow2(n)
	}
	return result
}

// Log returns the natural logarithm of x.
//
// The exponent E is read from the exponent field, and the field is rewritten to
// bring x into [1, 2) as m. Then ln(m) = 2*(y + y³/3 + ... + y¹⁵/15), where
// y = (m-1)/(m+1), and Log returns ln(m) + E*ln2.
//
// Special cases are:
//	Log(x <= 0) = -Inf
//	Log(NaN) = NaN
//	Log(1) = 0
//	Log(+Inf) = +Inf
func Log(x float64) float64 {
	switch {
	case x <= 0:
		return math.Inf(-1)
	case x != x:
		return x
	case x == 1:
		return 0
	case x > math.MaxFloat64:
		return x
	}

	var e int
	if x < smallestNormal {
		x *= subnormalScale
		e = -mu.MantBits
	}
	e += mu.Exponent(x)
	m := mu.WithExponent(x, 0)
	if m > 2.0 {
		m *= 0.5
		e++
	}

	y := (m - 1) / (m + 1)
	return y*mu.Horner(y*y, logCoeffs) + float64(e)*Ln2
}

// LogBase returns the logarithm of value in the given base, Log(value)/Log(base).
// Note the argument order: the base comes first.
func LogBase(base, value float64) float64 {
	return Log(value) / Log(base)
}

// Log2 returns the binary logarithm of x.
func Log2(x float64) float64 {
	return LogBase(2, x)
}

// Log10 returns the decimal logarithm of x.
func Log10(x float64) float64 {
	return LogBase(10, x)
}
