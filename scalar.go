// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package scalar implements elementary functions on float64 without calling
// into the math package for the results: square root by Newton iteration,
// sine and cosine by range reduction and truncated Taylor series, exponential
// and logarithm by splitting the IEEE-754 exponent from the mantissa.
// It also provides a memoized factorial.
//
// Domain errors of the float64 functions are reported with IEEE-754
// sentinels (NaN, ±Inf). Results are approximations: the square root stops
// at a fixed absolute step of 1e-4, and the series are truncated after a fixed
// number of terms.
package scalar

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = 3.14159265358979323846

	twoPi     = 2 * Pi
	halfPi    = Pi / 2
	quarterPi = Pi / 4

	// Ln2 is the natural logarithm of 2.
	Ln2    = 0.693147180559945309417232121458176568
	invLn2 = 1.4426950408889634073599246810018921

	// sqrtTolerance is the absolute step at which Sqrt stops iterating.
	sqrtTolerance = 1e-4

	// expOverflow and expUnderflow bound the arguments of Exp for which
	// the result is a finite non-zero float64.
	expOverflow  = 709.782712893384
	expUnderflow = -745.133219101941

	// ExpMax is returned by Exp for arguments above the overflow threshold.
	ExpMax = 1e308
)
