// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"math"

	mu "github.com/avdva/scalar/internal/mathutil"
)

// Pow returns x**y for a real exponent, computed as Exp(y*Log(x)).
// Negative bases are not supported.
//
// Special cases are:
//	Pow(0, y > 0) = 0
//	Pow(0, 0) = 1
//	Pow(0, y < 0) = NaN
//	Pow(x < 0, y) = NaN
func Pow(x, y float64) float64 {
	switch {
	case x > 0:
		return Exp(y * Log(x))
	case x == 0:
		switch {
		case y > 0:
			return 0
		case y == 0:
			return 1
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}

// PowInt returns x**n for an integer exponent by square-and-multiply,
// using O(log|n|) multiplications.
//
// Special cases are:
//	PowInt(x, 0) = 1 for any x, including 0 and NaN
//	PowInt(0, n < 0) = +Inf
//	PowInt(0, n > 0) = 0
func PowInt(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	if x == 0 {
		if n < 0 {
			return math.Inf(1)
		}
		return 0
	}
	// uint64 keeps |MinInt64| representable.
	e := uint64(mu.AbsInt64(int64(n)))
	if n < 0 {
		x = 1 / x
	}
	result := 1.0
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= x
		}
		x *= x
	}
	return result
}
