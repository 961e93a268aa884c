// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitcodec converts fixed-width integers and IEEE-754 floats into
// strings of '0' and '1', most significant bit first, and back.
//
// Floats are never converted numerically: their bit pattern is reinterpreted
// as an unsigned integer of the same width, which is then dumped.
package bitcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"

	mu "github.com/avdva/scalar/internal/mathutil"
)

const (
	// float32 field widths.
	mantBits32 = 23
	expBits32  = 8
)

var (
	// ErrWidth is returned for a bit width other than 32 or 64.
	ErrWidth = errors.New("width must be 32 or 64")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Dump returns the bits of v, most significant first.
// The result has exactly as many characters as v has bits.
func Dump[T constraints.Unsigned](v T) string {
	width := int(unsafe.Sizeof(v) * 8)
	var builder strings.Builder
	builder.Grow(width)
	mask := T(1) << (width - 1)
	for i := 0; i < width; i++ {
		if v&mask != 0 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
		mask >>= 1
	}
	return builder.String()
}

// Uint32Bits returns the 32 bits of v.
func Uint32Bits(v uint32) string {
	return Dump(v)
}

// Uint64Bits returns the 64 bits of v.
func Uint64Bits(v uint64) string {
	return Dump(v)
}

// Float32Bits returns the 32 bits of f's IEEE-754 single precision representation.
func Float32Bits(f float32) string {
	return Dump(math.Float32bits(f))
}

// Float64Bits returns the 64 bits of f's IEEE-754 double precision representation.
func Float64Bits(f float64) string {
	return Dump(math.Float64bits(f))
}

// IntegerToBits returns the lowest 'width' bits of value.
// Width must be 32 or 64.
func IntegerToBits(value uint64, width int) (string, error) {
	switch width {
	case 32:
		return Uint32Bits(uint32(value)), nil
	case 64:
		return Uint64Bits(value), nil
	default:
		return "", fmt.Errorf("%w, got %d", ErrWidth, width)
	}
}

// FloatToBits returns the bit pattern of value as a float of given width.
// For 32, value is first rounded to float32.
func FloatToBits(value float64, width int) (string, error) {
	switch width {
	case 32:
		return Float32Bits(float32(value)), nil
	case 64:
		return Float64Bits(value), nil
	default:
		return "", fmt.Errorf("%w, got %d", ErrWidth, width)
	}
}

// BitsToInteger parses a string of 32 or 64 '0' and '1' characters, most significant first.
func BitsToInteger(s string) (uint64, error) {
	if len(s) != 32 && len(s) != 64 {
		return 0, fmt.Errorf("%w, got %d", ErrWidth, len(s))
	}
	var v uint64
	for i, r := range s {
		switch r {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			// +1 to start indices from 1.
			return 0, fmt.Errorf("parsing failed: %w", newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1))
		}
	}
	return v, nil
}

// BitsToFloat reinterprets a string of 32 or 64 bits as a float32 or float64 bit pattern.
func BitsToFloat(s string) (float64, error) {
	v, err := BitsToInteger(s)
	if err != nil {
		return 0, err
	}
	if len(s) == 32 {
		return float64(math.Float32frombits(uint32(v))), nil
	}
	return math.Float64frombits(v), nil
}

// FloatFields splits the bit pattern of value as a float of given width into
// its sign, exponent and mantissa fields.
func FloatFields(value float64, width int) (sign, exp, mant string, err error) {
	s, err := FloatToBits(value, width)
	if err != nil {
		return "", "", "", err
	}
	expBits := expBits32
	if width == 64 {
		expBits = mu.ExpBits
	}
	return s[:1], s[1 : 1+expBits], s[1+expBits:], nil
}

// Float64Fields returns the numeric sign, biased exponent and mantissa fields of f.
func Float64Fields(f float64) (sign, exp, mant uint64) {
	return mu.Fields(math.Float64bits(f))
}

// Float32Fields returns the numeric sign, biased exponent and mantissa fields of f.
func Float32Fields(f float32) (sign, exp, mant uint32) {
	bits := math.Float32bits(f)
	return bits >> 31, bits >> mantBits32 & (1<<expBits32 - 1), bits & (1<<mantBits32 - 1)
}

// NativeBytes returns the bytes of f as they are laid out in memory on this host.
func NativeBytes(f float64) [8]byte {
	var b [8]byte
	hostOrder().PutUint64(b[:], math.Float64bits(f))
	return b
}

// NativeBytes32 returns the bytes of f as they are laid out in memory on this host.
func NativeBytes32(f float32) [4]byte {
	var b [4]byte
	hostOrder().PutUint32(b[:], math.Float32bits(f))
	return b
}

func hostOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
