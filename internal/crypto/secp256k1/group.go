package secp256k1

import (
	"crypto/elliptic"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Group implements curves.Group with this package's arithmetic. Inputs that
// are not on the curve produce the identity (nil, nil).
type Group struct{}

var _ curves.Group = (*Group)(nil)

// NewGroup returns the Group backed by the field and point arithmetic.
func NewGroup() curves.Group {
	return &Group{}
}

func (c *Group) Params() *elliptic.CurveParams {
	return Params()
}

func (c *Group) NewScalar(rng ecc.Rand) (*big.Int, error) {
	return rng.Range(big.NewInt(1), n)
}

func (c *Group) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	pt, err := ScalarBaseMult(k)
	if err != nil {
		return nil, nil
	}
	return Coordinates(pt)
}

func (c *Group) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	pt, ok := toPoint(Px, Py)
	if !ok {
		return nil, nil
	}
	res, err := ScalarMult(pt, k)
	if err != nil {
		return nil, nil
	}
	return Coordinates(res)
}

func (c *Group) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1, ok := toPoint(x1, y1)
	if !ok {
		return nil, nil
	}
	p2, ok := toPoint(x2, y2)
	if !ok {
		return nil, nil
	}
	sum, err := p1.Add(p2)
	if err != nil {
		return nil, nil
	}
	return Coordinates(sum)
}

// toPoint maps (nil, nil) to the identity. ok is false when the coordinates
// do not describe a point on the curve.
func toPoint(x, y *big.Int) (curves.Point, bool) {
	if x == nil || y == nil {
		return Infinity(), true
	}
	pt, err := NewPoint(x, y)
	if err != nil {
		return curves.Point{}, false
	}
	return pt, true
}
