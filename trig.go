// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"math"

	mu "github.com/avdva/scalar/internal/mathutil"
)

// reciprocal factorials for the sine and cosine series.
const (
	invFact2  = 0.5
	invFact3  = 0.166666666666666666666
	invFact4  = 0.041666666666666666666
	invFact5  = 0.0083333333333333333333
	invFact6  = 0.0013888888888888888888
	invFact7  = 0.00019841269841269841269
	invFact8  = 0.0000248015873015873015
	invFact9  = 2.755731922398589065e-6
	invFact10 = 2.7557319223985890652557e-7
	invFact11 = 2.505210838544171877505e-8
)

// Sin returns the sine of the radian argument x.
//
// x is reduced into [0, 2π), then into [0, π) carrying the sign, then reflected
// into [0, π/2]. Above π/4 the cosine series is evaluated on π/2-x, so the series
// argument never exceeds π/4.
//
// Special cases are:
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	if x != x || x > math.MaxFloat64 || x < -math.MaxFloat64 {
		return math.NaN()
	}
	x = mu.FloorMod(x, twoPi)
	sign := 1.0
	if x > Pi {
		sign = -1
		x -= Pi
	}
	if x > halfPi {
		x = Pi - x
	}
	if x > quarterPi {
		return sign * cosTaylor(halfPi-x)
	}
	return sign * sinTaylor(x)
}

// Cos returns the cosine of the radian argument x, computed as Sin(π/2 - x)
// with x reduced into [0, 2π) first.
//
// Special cases are:
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	if x != x || x > math.MaxFloat64 || x < -math.MaxFloat64 {
		return math.NaN()
	}
	return Sin(halfPi - mu.FloorMod(x, twoPi))
}

// Tan returns the tangent of the radian argument x as Sin(x)/Cos(x).
// Near odd multiples of π/2 the result is large, possibly ±Inf.
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}

// sinTaylor evaluates x - x³/3! + ... - x¹¹/11!.
func sinTaylor(x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	x5 := x3 * x2
	x7 := x5 * x2
	x9 := x7 * x2
	x11 := x9 * x2
	return x - invFact3*x3 + invFact5*x5 - invFact7*x7 + invFact9*x9 - invFact11*x11
}

// cosTaylor evaluates 1 - x²/2! + ... - x¹⁰/10!.
func cosTaylor(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	x6 := x4 * x2
	x8 := x4 * x4
	x10 := x8 * x2
	return 1 - invFact2*x2 + invFact4*x4 - invFact6*x6 + invFact8*x8 - invFact10*x10
}
