package random

import (
	"errors"
	"fmt"
)

const (
	// MaxHexLength is how many hex chars of a digest are ever consumed (60 bits).
	MaxHexLength = 15

	MaxBound int64 = 1 << (MaxHexLength * 4)
)

var (
	ErrInvalidBound        = errors.New("bound must be greater than 1")
	ErrBoundOverflow       = errors.New("bound is greater than 2^60")
	ErrInsufficientEntropy = errors.New("hex length is not enough to make symmetrical randomization spread")
	ErrInvalidHex          = errors.New("invalid hex")
)

// MinHexLength returns the smallest k such that 16^k >= n.
func MinHexLength(n int64) (int, error) {
	if n <= 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBound, n)
	}

	if n > MaxBound {
		return 0, fmt.Errorf("%w: %d", ErrBoundOverflow, n)
	}

	k := 1
	for threshold := int64(16); threshold < n; threshold <<= 4 {
		k++
	}

	return k, nil
}

func ValidateHexLength(hex string, n int64) error {
	minLength, err := MinHexLength(n)
	if err != nil {
		return err
	}

	if len(hex) < minLength {
		return fmt.Errorf("%w for %d outcomes: need %d chars, got %d", ErrInsufficientEntropy, n, minLength, len(hex))
	}

	return nil
}
