package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Group defines the affine big-integer interface shared by secp256k1
// backends. The identity is reported as (nil, nil).
type Group interface {
	// Params returns the curve parameters (P, N, B, Gx, Gy).
	Params() *elliptic.CurveParams

	// NewScalar draws a random scalar in [1, N) from rng.
	NewScalar(rng ecc.Rand) (*big.Int, error)

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P.
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points.
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// Decred is a Group backed by github.com/decred/dcrd/dcrec/secp256k1. It is
// the reference the library's own arithmetic is checked against.
type Decred struct{}

func (c *Decred) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Decred) NewScalar(rng ecc.Rand) (*big.Int, error) {
	return rng.Range(big.NewInt(1), c.Params().N)
}

func (c *Decred) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return infinityAsNil(secp256k1.S256().ScalarBaseMult(reduced(k, c.Params().N)))
}

func (c *Decred) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	if Px == nil || Py == nil {
		return nil, nil
	}
	return infinityAsNil(secp256k1.S256().ScalarMult(Px, Py, reduced(k, c.Params().N)))
}

func (c *Decred) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	switch {
	case x1 == nil || y1 == nil:
		return x2, y2
	case x2 == nil || y2 == nil:
		return x1, y1
	}
	return infinityAsNil(secp256k1.S256().Add(x1, y1, x2, y2))
}

// NewDecred returns the decred-backed reference Group.
func NewDecred() Group {
	return &Decred{}
}

// reduced returns k mod n as big-endian bytes.
func reduced(k, n *big.Int) []byte {
	return new(big.Int).Mod(k, n).Bytes()
}

// The elliptic.Curve convention encodes the identity as (0, 0).
func infinityAsNil(x, y *big.Int) (*big.Int, *big.Int) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil
	}
	return x, y
}
