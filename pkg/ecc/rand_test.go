package ecc

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRandBits(t *testing.T) {
	rng := SystemRand()
	limit := new(big.Int).Lsh(big.NewInt(1), 129)

	for i := 0; i < 32; i++ {
		v, err := rng.Bits(129)
		require.NoError(t, err)
		assert.True(t, v.Sign() >= 0)
		assert.True(t, v.Cmp(limit) < 0, "value %s exceeds 2^129", v)
	}
}

func TestSystemRandRange(t *testing.T) {
	rng := SystemRand()
	lo := big.NewInt(10)
	hi := big.NewInt(13)

	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		v, err := rng.Range(lo, hi)
		require.NoError(t, err)
		assert.True(t, v.Cmp(lo) >= 0 && v.Cmp(hi) < 0, "value %s out of [10, 13)", v)
		seen[v.Int64()] = true
	}
	assert.Len(t, seen, 3)
}

func TestRandInvalidInputs(t *testing.T) {
	rng := SystemRand()

	_, err := rng.Bits(0)
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = rng.Range(big.NewInt(5), big.NewInt(5))
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = rng.Range(nil, big.NewInt(5))
	assert.True(t, errors.Is(err, ErrInvalidParameters))
}

func TestNewRandDeterministicReader(t *testing.T) {
	// Same bytes in, same integers out.
	src := bytes.Repeat([]byte{0x5a}, 64)
	a, err := NewRand(bytes.NewReader(src)).Bits(64)
	require.NoError(t, err)
	b, err := NewRand(bytes.NewReader(src)).Bits(64)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))

	_, err = NewRand(bytes.NewReader(nil)).Bits(64)
	assert.Error(t, err)
}
