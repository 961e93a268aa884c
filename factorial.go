// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNegativeFactorial is returned for a factorial of a negative number.
	ErrNegativeFactorial = errors.New("factorial of a negative number")

	factorials FactorialCache
)

// FactorialCache memoizes n! in an append-only table, where entry i holds i!.
// The table only grows: a request beyond its end extends it by repeated
// multiplication from the last entry.
// Results are computed in uint64 and silently wrap around for n > 20.
//
// The zero value is ready to use. A FactorialCache is safe for concurrent use.
type FactorialCache struct {
	mu    sync.Mutex
	table []uint64
}

// NewFactorialCache returns an empty cache, independent from the one used by Factorial.
func NewFactorialCache() *FactorialCache {
	return &FactorialCache{}
}

// Factorial returns n!, modulo 2^64.
func (c *FactorialCache) Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.table) == 0 {
		c.table = append(c.table, 1)
	}
	for i := len(c.table); i <= n; i++ {
		c.table = append(c.table, c.table[i-1]*uint64(i))
	}
	return c.table[n], nil
}

// Len returns the number of cached entries.
func (c *FactorialCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.table)
}

// Factorial returns n! modulo 2^64 using the process-wide cache.
// It returns ErrNegativeFactorial for n < 0.
func Factorial(n int) (uint64, error) {
	return factorials.Factorial(n)
}

// MustFactorial is like Factorial, but panics on error.
func MustFactorial(n int) uint64 {
	v, err := Factorial(n)
	if err != nil {
		panic(err)
	}
	return v
}
