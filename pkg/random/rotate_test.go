package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateHash(t *testing.T) {
	assert.Equal(t, "f48be6107a1e55a2d8e17e0d8b0ca79c92437e39", RotateHash("abc", 0))
	assert.Equal(t, "65048c599cac01c1b88cbb28030ecbb82eaf30c3", RotateHash("abc", 1))
	assert.Equal(t, RotateHash("abc", 7), RotateHash("abc", 7))
}

func TestRotateHash_DistinctNonces(t *testing.T) {
	root := RotateHash("root", 0)
	seen := make(map[string]int)
	for nonce := -100; nonce < 1000; nonce++ {
		h := RotateHash(root, nonce)
		assert.Len(t, h, 40)
		prev, ok := seen[h]
		require.False(t, ok, "nonce %d collides with %d", nonce, prev)
		seen[h] = nonce
	}
}

func TestChain(t *testing.T) {
	chain := NewChain("abc")
	assert.Equal(t, "abc", chain.Root())

	for i := 0; i < 5; i++ {
		digest, nonce := chain.Next()
		assert.Equal(t, i, nonce)
		assert.Equal(t, RotateHash("abc", i), digest)
	}
	assert.Equal(t, 5, chain.Nonce())
}

func TestChain_DrawsConsumeNonceOnlyOnSuccess(t *testing.T) {
	chain := NewChainFrom("abc", 3)

	_, err := chain.Int(1)
	assert.ErrorIs(t, err, ErrInvalidBound)
	assert.Equal(t, 3, chain.Nonce())

	got, err := chain.Int(6)
	require.NoError(t, err)
	want, err := Rand(RotateHash("abc", 3), 6)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 4, chain.Nonce())

	long, err := chain.Long(MaxBound)
	require.NoError(t, err)
	wantLong, err := RandLong(RotateHash("abc", 4), MaxBound)
	require.NoError(t, err)
	assert.Equal(t, wantLong, long)
	assert.Equal(t, 5, chain.Nonce())

	_, err = chain.Long(MaxBound + 1)
	assert.ErrorIs(t, err, ErrBoundOverflow)
	assert.Equal(t, 5, chain.Nonce())
}
