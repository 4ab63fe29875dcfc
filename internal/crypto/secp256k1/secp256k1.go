// Package secp256k1 fixes the secp256k1 parameters on top of the generic
// curve arithmetic. Coordinates live in GF(P); scalars are reduced modulo the
// group order N.
package secp256k1

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

const (
	hexN  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	hexGx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	hexGy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

	coeffA = 0
	coeffB = 7
)

// Package-level parameters, computed once at init and never written again.
var (
	p     = primeP()
	n     = fromHex(hexN)
	halfN = new(big.Int).Rsh(n, 1)
	a     = mustElement(big.NewInt(coeffA))
	b     = mustElement(big.NewInt(coeffB))
	curve = mustCurve()
	g     = mustPoint(fromHex(hexGx), fromHex(hexGy))
)

// P = 2^256 - 2^32 - 977
func primeP() *big.Int {
	v := new(big.Int).Lsh(big.NewInt(1), 256)
	v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 32))
	return v.Sub(v, big.NewInt(977))
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return v
}

func mustElement(v *big.Int) field.Element {
	e, err := field.New(v, p)
	if err != nil {
		panic(err)
	}
	return e
}

func mustCurve() curves.Curve {
	c, err := curves.NewCurve(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

func mustPoint(x, y *big.Int) curves.Point {
	pt, err := NewPoint(x, y)
	if err != nil {
		panic(fmt.Sprintf("secp256k1: generator: %v", err))
	}
	return pt
}

// P returns the field prime.
func P() *big.Int { return new(big.Int).Set(p) }

// N returns the group order.
func N() *big.Int { return new(big.Int).Set(n) }

// HalfN returns N/2 rounded down, the bound for low-s signatures.
func HalfN() *big.Int { return new(big.Int).Set(halfN) }

// A returns the curve coefficient a = 0.
func A() *big.Int { return big.NewInt(coeffA) }

// B returns the curve coefficient b = 7.
func B() *big.Int { return big.NewInt(coeffB) }

// Gx returns the x coordinate of the generator.
func Gx() *big.Int { return fromHex(hexGx) }

// Gy returns the y coordinate of the generator.
func Gy() *big.Int { return fromHex(hexGy) }

// G returns the generator point.
func G() curves.Point { return g }

// Curve returns y^2 = x^3 + 7 over GF(P).
func Curve() curves.Curve { return curve }

// Infinity returns the identity of the secp256k1 group.
func Infinity() curves.Point { return curves.Infinity(curve) }

// NewFieldElement reduces v into GF(P).
func NewFieldElement(v *big.Int) (field.Element, error) {
	if v == nil {
		return field.Element{}, ecc.NewError(ecc.ErrInvalidScalar, "secp256k1: nil field value")
	}
	return field.New(v, p)
}

// NewPoint validates (x, y) against the secp256k1 equation.
func NewPoint(x, y *big.Int) (curves.Point, error) {
	fx, err := NewFieldElement(x)
	if err != nil {
		return curves.Point{}, err
	}
	fy, err := NewFieldElement(y)
	if err != nil {
		return curves.Point{}, err
	}
	return curves.NewPoint(fx, fy, curve)
}

// OnCurve reports whether pt lies on secp256k1 (and is not some other curve's point).
func OnCurve(pt curves.Point) bool {
	return pt.Curve().Equal(curve)
}

// ModN returns v mod N in [0, N).
func ModN(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, n)
}

// InverseN returns k^(N-2) mod N. The result is zero when k = 0 mod N.
func InverseN(k *big.Int) *big.Int {
	return new(big.Int).Exp(ModN(k), new(big.Int).Sub(n, big.NewInt(2)), n)
}

// ScalarMult returns (k mod N) * pt.
func ScalarMult(pt curves.Point, k *big.Int) (curves.Point, error) {
	if !OnCurve(pt) {
		return curves.Point{}, ecc.NewError(ecc.ErrCurveMismatch, "secp256k1: point is not on secp256k1")
	}
	return pt.ScalarMult(ModN(k))
}

// ScalarBaseMult returns (k mod N) * G.
func ScalarBaseMult(k *big.Int) (curves.Point, error) {
	return g.ScalarMult(ModN(k))
}

// Coordinates returns the affine coordinates of pt, or nil, nil for the identity.
func Coordinates(pt curves.Point) (*big.Int, *big.Int) {
	x, ok := pt.X()
	if !ok {
		return nil, nil
	}
	y, _ := pt.Y()
	return x.Num(), y.Num()
}

// Params returns the parameters in crypto/elliptic form.
func Params() *elliptic.CurveParams {
	return &elliptic.CurveParams{
		P:       P(),
		N:       N(),
		B:       B(),
		Gx:      Gx(),
		Gy:      Gy(),
		BitSize: 256,
		Name:    "secp256k1",
	}
}
