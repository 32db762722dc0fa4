package random

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// SeedHexLength is how many leading hex chars of a hash seed a shuffle.
const SeedHexLength = 8

// Seed parses the first 8 hex chars of hash as an unsigned 32-bit seed.
func Seed(hash string) (uint32, error) {
	if len(hash) < SeedHexLength {
		return 0, fmt.Errorf("%w: shuffle seed needs %d chars, got %d", ErrInsufficientEntropy, SeedHexLength, len(hash))
	}

	seed, err := strconv.ParseUint(hash[:SeedHexLength], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, hash[:SeedHexLength])
	}

	return uint32(seed), nil
}

// Shuffle returns a shuffled copy of items, items itself is left untouched.
//
// The order is fixed by the seed alone: a PCG generator from math/rand/v2
// seeded with (seed, 0) drives a backward Fisher-Yates pass, swapping every
// index i from len-1 down to 1 with j = IntN(i+1).
func Shuffle[T any](items []T, hash string) ([]T, error) {
	seed, err := Seed(hash)
	if err != nil {
		return nil, err
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled, nil
}
