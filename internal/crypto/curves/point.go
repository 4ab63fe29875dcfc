package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Curve holds the coefficients of y^2 = x^3 + a*x + b over a prime field.
type Curve struct {
	a, b field.Element
}

// NewCurve returns the curve y^2 = x^3 + a*x + b. Both coefficients must
// belong to the same field.
func NewCurve(a, b field.Element) (Curve, error) {
	if !a.SameField(b) {
		return Curve{}, ecc.NewError(ecc.ErrMismatchedField, "curves: coefficients in different fields")
	}
	return Curve{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (c Curve) A() field.Element { return c.a }

// B returns the constant coefficient.
func (c Curve) B() field.Element { return c.b }

// Prime returns the modulus of the underlying field.
func (c Curve) Prime() *big.Int { return c.a.Prime() }

// Equal reports whether both curves have the same coefficients over the same field.
func (c Curve) Equal(o Curve) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c Curve) Contains(x, y field.Element) (bool, error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	x3, err := x.PowInt(3)
	if err != nil {
		return false, err
	}
	ax, err := c.a.Mul(x)
	if err != nil {
		return false, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return false, err
	}
	if rhs, err = rhs.Add(c.b); err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve(y^2 = x^3 + %sx + %s mod %s)", c.a.Num(), c.b.Num(), c.Prime())
}

// Point is an affine point on a Curve, or the point at infinity. Points are
// values; no operation mutates its receiver.
type Point struct {
	x, y     field.Element
	infinity bool
	curve    Curve
}

// NewPoint validates (x, y) against the curve and returns the point.
func NewPoint(x, y field.Element, curve Curve) (Point, error) {
	if !x.SameField(curve.a) || !y.SameField(curve.a) {
		return Point{}, ecc.NewError(ecc.ErrMismatchedField, "curves: coordinates and curve in different fields")
	}
	ok, err := curve.Contains(x, y)
	if err != nil {
		return Point{}, err
	}
	if !ok {
		return Point{}, ecc.Errorf(ecc.ErrPointNotOnCurve, "curves: (%s, %s) is not on the curve", x.Num(), y.Num())
	}
	return Point{x: x, y: y, curve: curve}, nil
}

// Infinity returns the identity element of the group on curve.
func Infinity(curve Curve) Point {
	return Point{infinity: true, curve: curve}
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Curve returns the curve p belongs to.
func (p Point) Curve() Curve {
	return p.curve
}

// X returns the x coordinate. ok is false for the point at infinity.
func (p Point) X() (x field.Element, ok bool) {
	return p.x, !p.infinity
}

// Y returns the y coordinate. ok is false for the point at infinity.
func (p Point) Y() (y field.Element, ok bool) {
	return p.y, !p.infinity
}

// Equal reports whether p and q lie on the same curve and have the same
// coordinates, or are both the identity.
func (p Point) Equal(q Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x.Num().Text(16), p.y.Num().Text(16))
}

// Neg returns the inverse of p, (x, -y).
func (p Point) Neg() Point {
	if p.infinity {
		return p
	}
	return Point{x: p.x, y: p.y.Neg(), curve: p.curve}
}

// Add returns p + q. The cases are checked in order and each later case
// assumes the earlier ones did not match.
func (p Point) Add(q Point) (Point, error) {
	// Identity.
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}

	if !p.curve.Equal(q.curve) {
		return Point{}, ecc.NewError(ecc.ErrCurveMismatch, "curves: points on different curves")
	}

	x1, y1, x2, y2 := p.x, p.y, q.x, q.y

	// Vertical line through p and its inverse.
	if x1.Equal(x2) && !y1.Equal(y2) {
		return Infinity(p.curve), nil
	}

	same := x1.Equal(x2) && y1.Equal(y2)

	// Vertical tangent.
	if same && y1.IsZero() {
		return Infinity(p.curve), nil
	}

	var s field.Element
	var err error
	if same {
		// s = (3*x1^2 + a) / (2*y1)
		sq, err := x1.Mul(x1)
		if err != nil {
			return Point{}, err
		}
		num, err := sq.MulInt(3).Add(p.curve.a)
		if err != nil {
			return Point{}, err
		}
		if s, err = num.Div(y1.MulInt(2)); err != nil {
			return Point{}, err
		}
	} else {
		// s = (y2 - y1) / (x2 - x1)
		num, err := y2.Sub(y1)
		if err != nil {
			return Point{}, err
		}
		den, err := x2.Sub(x1)
		if err != nil {
			return Point{}, err
		}
		if s, err = num.Div(den); err != nil {
			return Point{}, err
		}
	}

	// x3 = s^2 - x1 - x2, which is s^2 - 2*x1 when doubling.
	x3, err := s.Mul(s)
	if err != nil {
		return Point{}, err
	}
	if x3, err = x3.Sub(x1); err != nil {
		return Point{}, err
	}
	if x3, err = x3.Sub(x2); err != nil {
		return Point{}, err
	}

	// y3 = s*(x1 - x3) - y1
	dx, err := x1.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	if y3, err = y3.Sub(y1); err != nil {
		return Point{}, err
	}

	return Point{x: x3, y: y3, curve: p.curve}, nil
}

// Double returns p + p.
func (p Point) Double() (Point, error) {
	return p.Add(p)
}

// ScalarMult returns k*p for k >= 0 using double-and-add, scanning the bits
// of k from least to most significant.
func (p Point) ScalarMult(k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, ecc.NewError(ecc.ErrInvalidScalar, "curves: scalar must be non-negative")
	}
	result := Infinity(p.curve)
	if k.Sign() == 0 {
		return result, nil
	}

	current := p
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(current); err != nil {
				return Point{}, err
			}
		}
		if current, err = current.Double(); err != nil {
			return Point{}, err
		}
	}
	return result, nil
}
