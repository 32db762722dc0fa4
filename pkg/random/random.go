// Package random turns hex digests into reproducible outcomes, so anyone who
// knows the seed hash can recompute a draw.
package random

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Rand returns a number between 0..n-1 derived from hex.
func Rand(hex string, n int) (int, error) {
	v, err := RandLong(hex, int64(n))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// RandLong returns a number between 0..n-1 derived from the first 15 chars of hex.
func RandLong(hex string, n int64) (int64, error) {
	if err := ValidateHexLength(hex, n); err != nil {
		return 0, err
	}

	if len(hex) > MaxHexLength {
		hex = hex[:MaxHexLength]
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return int64(scale(v, uint64(n), uint(len(hex))*4)), nil
}

// RandInRange returns a number from a to b-1.
func RandInRange(hex string, a, b int64) (int64, error) {
	if b <= a {
		return 0, fmt.Errorf("%w: empty range [%d, %d)", ErrInvalidBound, a, b)
	}

	span := uint64(b) - uint64(a)
	if span > uint64(MaxBound) {
		return 0, fmt.Errorf("%w: %d", ErrBoundOverflow, span)
	}

	v, err := RandLong(hex, int64(span))
	if err != nil {
		return 0, err
	}

	return a + v, nil
}

// scale is floor(v * n / 2^shift) for v < 2^shift and shift in [4, 60].
func scale(v, n uint64, shift uint) uint64 {
	hi, lo := bits.Mul64(v, n)
	return hi<<(64-shift) | lo>>shift
}
