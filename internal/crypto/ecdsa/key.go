// Package ecdsa implements ECDSA over secp256k1 on top of the package's own
// field and point arithmetic.
package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// PrivateKey is a secret scalar in [1, N) together with its public point.
type PrivateKey struct {
	secret *big.Int
	pub    curves.Point
}

// NewPrivateKey derives the public key secret*G. The secret must lie in [1, N).
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(secp256k1.N()) >= 0 {
		return nil, ecc.NewError(ecc.ErrInvalidScalar, "ecdsa: secret must be in [1, N)")
	}
	pub, err := secp256k1.ScalarBaseMult(secret)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: deriving public key: %w", err)
	}
	return &PrivateKey{
		secret: new(big.Int).Set(secret),
		pub:    pub,
	}, nil
}

// GenerateKey draws a secret uniformly from [1, N).
func GenerateKey(rng ecc.Rand) (*PrivateKey, error) {
	if rng == nil {
		rng = ecc.SystemRand()
	}
	secret, err := rng.Range(big.NewInt(1), secp256k1.N())
	if err != nil {
		return nil, fmt.Errorf("ecdsa: generating secret: %w", err)
	}
	return NewPrivateKey(secret)
}

// PublicKey returns secret*G.
func (k *PrivateKey) PublicKey() curves.Point {
	return k.pub
}

// Secret returns a copy of the secret scalar.
func (k *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(k.secret)
}

// String never prints the secret.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(pub=%s)", k.pub)
}
