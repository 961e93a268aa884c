// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"errors"
	"fmt"
)

func Example() {
	fmt.Printf("sqrt(2) = %.4f\n", Sqrt(2))
	fmt.Printf("sin(pi/6) = %.6f, cos(pi/3) = %.6f\n", Sin(Pi/6), Cos(Pi/3))
	fmt.Printf("exp(1) = %.6f, log(10) = %.6f\n", Exp(1), Log(10))
	fmt.Printf("log_2(32) = %.6f\n", LogBase(2, 32))
	fmt.Printf("3^0.5 = %.6f, 2^10 = %v, 0^0 = %v\n", Pow(3, 0.5), PowInt(2, 10), PowInt(0, 0))

	// Output:
	// sqrt(2) = 1.4142
	// sin(pi/6) = 0.500000, cos(pi/3) = 0.500000
	// exp(1) = 2.718282, log(10) = 2.302585
	// log_2(32) = 5.000000
	// 3^0.5 = 1.732051, 2^10 = 1024, 0^0 = 1
}

func ExampleFactorial() {
	for _, n := range []int{0, 5, 20, -1} {
		v, err := Factorial(n)
		if errors.Is(err, ErrNegativeFactorial) {
			fmt.Printf("%d! is undefined\n", n)
			continue
		}
		fmt.Printf("%d! = %d\n", n, v)
	}

	// Output:
	// 0! = 1
	// 5! = 120
	// 20! = 2432902008176640000
	// -1! is undefined
}
