package schnorr

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/sec"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Point // Commitment R = k * G
	S *big.Int     // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret of key, whose public key is
// X = x*G.
func Prove(rng ecc.Rand, key *ecdsa.PrivateKey) (*Proof, error) {
	if key == nil {
		return nil, errors.New("schnorr: key cannot be nil")
	}
	if rng == nil {
		rng = ecc.SystemRand()
	}

	n := secp256k1.N()

	// 1. Generate random nonce k
	k, err := rng.Range(big.NewInt(1), n)
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R, err := secp256k1.ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}

	// 3. Compute challenge e = H(X, R)
	e, err := challenge(key.PublicKey(), R)
	if err != nil {
		return nil, err
	}

	// 4. Compute s = k + e * x mod n
	s := new(big.Int).Mul(e, key.Secret())
	s.Add(s, k)
	s.Mod(s, n)

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(X curves.Point) bool {
	if p == nil || p.S == nil || X.IsInfinity() || p.R.IsInfinity() {
		return false
	}

	// Check if s is in [0, n-1]
	if p.S.Sign() < 0 || p.S.Cmp(secp256k1.N()) >= 0 {
		return false
	}

	// 1. Compute challenge e = H(X, R)
	e, err := challenge(X, p.R)
	if err != nil {
		return false
	}

	// 2. Check s*G = R + e*X
	lhs, err := secp256k1.ScalarBaseMult(p.S)
	if err != nil {
		return false
	}
	eX, err := secp256k1.ScalarMult(X, e)
	if err != nil {
		return false
	}
	rhs, err := p.R.Add(eX)
	if err != nil {
		return false
	}

	return lhs.Equal(rhs)
}

// challenge computes H(SEC(X) || SEC(R)) mod n over compressed encodings.
func challenge(X, R curves.Point) (*big.Int, error) {
	xb, err := sec.EncodeCompressed(X)
	if err != nil {
		return nil, err
	}
	rb, err := sec.EncodeCompressed(R)
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write(xb)
	h.Write(rb)

	e := new(big.Int).SetBytes(h.Sum(nil))
	return secp256k1.ModN(e), nil
}
