package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Sign signs the message digest z. The nonce is drawn from opts.Rand; if it
// yields the point at infinity the call fails with ecc.ErrNoSignature and the
// caller may try again. The returned s is always <= N/2.
func (k *PrivateKey) Sign(z *big.Int, opts *Options) (*Signature, error) {
	if z == nil {
		return nil, fmt.Errorf("ecdsa: nil digest: %w", ecc.ErrInvalidParameters)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	nonce, err := o.Rand.Bits(o.NonceBits)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: drawing nonce: %w", err)
	}

	// R = k*G. k = 0 mod N lands here too.
	R, err := secp256k1.ScalarBaseMult(nonce)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: nonce point: %w", err)
	}
	if R.IsInfinity() {
		return nil, ecc.NewError(ecc.ErrNoSignature, "ecdsa: nonce produced the point at infinity")
	}

	rx, _ := secp256k1.Coordinates(R)
	r := secp256k1.ModN(rx)

	// s = (z + r*d) * k^(N-2) mod N
	s := new(big.Int).Mul(r, k.secret)
	s.Add(s, z)
	s.Mul(s, secp256k1.InverseN(nonce))
	s = secp256k1.ModN(s)

	if s.Cmp(secp256k1.HalfN()) > 0 {
		s.Sub(secp256k1.N(), s)
	}

	return &Signature{R: r, S: s}, nil
}

// SignHash signs a big-endian digest.
func (k *PrivateKey) SignHash(hash []byte, opts *Options) (*Signature, error) {
	return k.Sign(new(big.Int).SetBytes(hash), opts)
}

// Verify reports whether sig is a valid signature of z under pub. Components
// outside [1, N) and public keys that are not finite points on secp256k1
// never verify.
func Verify(pub curves.Point, z *big.Int, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil || z == nil {
		return false
	}
	n := secp256k1.N()
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}
	if pub.IsInfinity() || !secp256k1.OnCurve(pub) {
		return false
	}

	sInv := secp256k1.InverseN(sig.S)
	u := secp256k1.ModN(new(big.Int).Mul(z, sInv))
	v := secp256k1.ModN(new(big.Int).Mul(sig.R, sInv))

	uG, err := secp256k1.ScalarBaseMult(u)
	if err != nil {
		return false
	}
	vP, err := secp256k1.ScalarMult(pub, v)
	if err != nil {
		return false
	}
	total, err := uG.Add(vP)
	if err != nil || total.IsInfinity() {
		return false
	}

	x, _ := secp256k1.Coordinates(total)
	return x.Cmp(sig.R) == 0
}

// VerifyHash verifies a signature over a big-endian digest.
func VerifyHash(pub curves.Point, hash []byte, sig *Signature) bool {
	return Verify(pub, new(big.Int).SetBytes(hash), sig)
}
