package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	secp "github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// SignatureSize is the length of the fixed r || s encoding.
const SignatureSize = 64

// Signature is an (r, s) pair. Nothing about it is validated on construction;
// Verify checks the ranges.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Bytes returns the 64-byte big-endian encoding r || s. Components are
// reduced mod N first.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	secp.ModN(sig.R).FillBytes(out[:32])
	secp.ModN(sig.S).FillBytes(out[32:])
	return out
}

// ParseSignature decodes the 64-byte r || s encoding.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, ecc.Errorf(ecc.ErrDecode, "ecdsa: signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	return &Signature{
		R: new(big.Int).SetBytes(b[:32]),
		S: new(big.Int).SetBytes(b[32:]),
	}, nil
}

// IsLowS reports whether s <= N/2.
func (sig *Signature) IsLowS() bool {
	return sig.S != nil && sig.S.Cmp(secp.HalfN()) <= 0
}

// Equal reports whether both signatures have the same components.
func (sig *Signature) Equal(o *Signature) bool {
	if sig == nil || o == nil {
		return sig == o
	}
	return cmpNil(sig.R, o.R) && cmpNil(sig.S, o.S)
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(r=%x, s=%x)", sig.R, sig.S)
}

// ToDecred converts the signature for use with the decred ecdsa package.
// Components must lie in [1, N).
func (sig *Signature) ToDecred() (*decredecdsa.Signature, error) {
	r, err := toModN(sig.R)
	if err != nil {
		return nil, err
	}
	s, err := toModN(sig.S)
	if err != nil {
		return nil, err
	}
	return decredecdsa.NewSignature(r, s), nil
}

// SignatureFromDecred converts a decred signature.
func SignatureFromDecred(sig *decredecdsa.Signature) *Signature {
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()
	return &Signature{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	}
}

func toModN(v *big.Int) (*secp256k1.ModNScalar, error) {
	if v == nil || v.Sign() <= 0 || v.Cmp(secp.N()) >= 0 {
		return nil, ecc.NewError(ecc.ErrInvalidScalar, "ecdsa: signature component out of range")
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	var out secp256k1.ModNScalar
	out.SetBytes(&buf)
	return &out, nil
}

func cmpNil(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
