package ecc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Rand is the source of randomness consumed by key generation and signing.
// The library never seeds, persists or reuses it. Implementations must be safe
// for concurrent use if signing is invoked from multiple goroutines.
type Rand interface {
	// Bits returns a uniformly random integer in [0, 2^bits).
	Bits(bits int) (*big.Int, error)

	// Range returns a uniformly random integer in [lo, hi).
	Range(lo, hi *big.Int) (*big.Int, error)
}

// readerRand adapts an io.Reader of uniform bytes to Rand.
type readerRand struct {
	r io.Reader
}

// NewRand returns a Rand drawing bytes from r.
func NewRand(r io.Reader) Rand {
	return &readerRand{r: r}
}

// SystemRand returns a Rand backed by crypto/rand.Reader.
func SystemRand() Rand {
	return &readerRand{r: rand.Reader}
}

func (rr *readerRand) Bits(bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("rand: bit width must be positive, got %d: %w", bits, ErrInvalidParameters)
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return rand.Int(rr.r, max)
}

func (rr *readerRand) Range(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || lo.Cmp(hi) >= 0 {
		return nil, fmt.Errorf("rand: empty range: %w", ErrInvalidParameters)
	}
	width := new(big.Int).Sub(hi, lo)
	v, err := rand.Int(rr.r, width)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}
