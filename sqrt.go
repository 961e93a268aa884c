// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import "math"

// Sqrt returns the square root of x.
// It runs Newton's iteration y = (y + x/y)/2 starting at x/2 (x itself when x/2
// rounds to zero) and stops once a step
// is smaller than 1e-4 in absolute value. The tolerance is absolute, so the
// relative precision drops for very small x.
//
// Special cases are:
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = 0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	switch {
	case x < 0 || x != x:
		return math.NaN()
	case x == 0:
		return 0
	case x > math.MaxFloat64:
		return x
	}
	y := x / 2
	if y == 0 {
		// x/2 underflows for the smallest subnormal.
		y = x
	}
	for i := 0; ; i++ {
		next := 0.5 * (y + x/y)
		step := next - y
		if step < sqrtTolerance && step > -sqrtTolerance {
			return next
		}
		// after the first step the iterates approach the root from above.
		// once they stop decreasing, float64 has no closer value to offer.
		if i > 0 && next >= y {
			return y
		}
		y = next
	}
}
