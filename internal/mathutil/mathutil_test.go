package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f               float64
		sign, exp, mant uint64
	}{
		{1, 0, Bias, 0},
		{-1, 1, Bias, 0},
		{2, 0, Bias + 1, 0},
		{1.5, 0, Bias, 1 << (MantBits - 1)},
		{0, 0, 0, 0},
		{math.Inf(1), 0, ExpMask, 0},
		{math.SmallestNonzeroFloat64, 0, 0, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits := math.Float64bits(test.f)
			s, e, m := Fields(bits)
			a.Equal(test.sign, s)
			a.Equal(test.exp, e)
			a.Equal(test.mant, m)
			a.Equal(bits, FromFields(s, e, m))
		})
	}
}

func TestExponent(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f float64
		e int
	}{
		{1, 0},
		{1.999, 0},
		{2, 1},
		{0.75, -1},
		{1024, 10},
		{-8, 3},
		{math.MaxFloat64, MaxExp},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.e, Exponent(test.f))
		})
	}
}

func TestWithExponent(t *testing.T) {
	a := assert.New(t)
	a.Equal(1.5, WithExponent(6, 0))
	a.Equal(-1.25, WithExponent(-10, 0))
	a.Equal(3.0, WithExponent(0.75, 1))
	a.Equal(1.0, WithExponent(math.Ldexp(1, 700), 0))
}

func TestPow2(t *testing.T) {
	a := assert.New(t)
	for n := MinExp; n <= MaxExp; n++ {
		if !a.Equal(math.Ldexp(1, n), Pow2(n), "2^%d", n) {
			return
		}
	}
}

func TestFloor(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, res float64
	}{
		{0, 0},
		{1.5, 1},
		{-1.5, -2},
		{-2, -2},
		{2, 2},
		{-0.25, -1},
		{1e300, 1e300},
		{-1e300, -1e300},
		{math.Inf(-1), math.Inf(-1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Floor(test.x))
		})
	}
	a.True(math.IsNaN(Floor(math.NaN())))
}

func TestFloorMod(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res float64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{-6, 3, 0},
		{6, 3, 0},
		{0.5, 3, 0.5},
		{-0.5, 4, 3.5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FloorMod(test.x, test.y))
		})
	}
	for _, x := range []float64{1e17, 1e18, -1e18, 3.3e25, 1e300, -1e300, math.MaxFloat64, -math.MaxFloat64, -1e-17} {
		r := FloorMod(x, 2*math.Pi)
		a.True(r >= 0 && r < 2*math.Pi, "FloorMod(%v) = %v", x, r)
	}
	a.True(math.IsNaN(FloorMod(math.NaN(), 3)))
}

func TestHorner(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.0, Horner(3, nil))
	a.Equal(5.0, Horner(3, []float64{5}))
	// 1 + 2x + 3x^2 at x = 2
	a.Equal(17.0, Horner(2, []float64{1, 2, 3}))
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(0), AbsInt64(0))
	a.Equal(int64(5), AbsInt64(-5))
	a.Equal(int64(5), AbsInt64(5))
	a.Equal(int64(math.MaxInt64), AbsInt64(-math.MaxInt64))
}

func BenchmarkFloor(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += Floor(float64(i)*0.37 - 1e3)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}

func BenchmarkMathFloor(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += math.Floor(float64(i)*0.37 - 1e3)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}
