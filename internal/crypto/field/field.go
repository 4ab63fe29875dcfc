// Package field implements arithmetic on residues modulo a prime.
// Elements are immutable: every operation returns a new Element and both
// operands of a binary operation must belong to the same prime field.
package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Element is an integer in [0, prime) together with its prime modulus.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New reduces num into [0, prime) and returns the resulting element.
// Negative values are reduced to their non-negative representative.
func New(num, prime *big.Int) (Element, error) {
	if num == nil || prime == nil {
		return Element{}, ecc.NewError(ecc.ErrInvalidModulus, "field: nil operand")
	}
	if prime.Cmp(two) < 0 {
		return Element{}, ecc.Errorf(ecc.ErrInvalidModulus, "field: prime should be at least 2, got %s", prime)
	}
	p := new(big.Int).Set(prime)
	v := new(big.Int).Mod(num, p)
	if v.Sign() < 0 || v.Cmp(p) >= 0 {
		return Element{}, ecc.Errorf(ecc.ErrInvalidModulus, "field: prime should be gt value, got num: %s, prime: %s", v, p)
	}
	return Element{num: v, prime: p}, nil
}

// NewInt64 is New for small fields.
func NewInt64(num, prime int64) (Element, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// Num returns a copy of the element's value.
func (e Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the element's modulus.
func (e Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.num.Sign() == 0
}

// IsOdd reports whether the integer value of e is odd.
func (e Element) IsOdd() bool {
	return e.num.Bit(0) == 1
}

// SameField reports whether e and o share a modulus.
func (e Element) SameField(o Element) bool {
	return e.prime.Cmp(o.prime) == 0
}

// Equal reports whether e and o have the same value in the same field.
func (e Element) Equal(o Element) bool {
	if e.num == nil || o.num == nil {
		return e.num == nil && o.num == nil
	}
	return e.SameField(o) && e.num.Cmp(o.num) == 0
}

func (e Element) String() string {
	if e.num == nil {
		return "FieldElement(<nil>)"
	}
	return fmt.Sprintf("FieldElement_%s(%s)", e.prime, e.num)
}

func (e Element) check(o Element, op string) error {
	if !e.SameField(o) {
		return ecc.Errorf(ecc.ErrMismatchedField, "field: cannot %s two numbers in different fields", op)
	}
	return nil
}

func (e Element) with(v *big.Int) Element {
	return Element{num: v.Mod(v, e.prime), prime: e.prime}
}

// Add returns e + o mod p.
func (e Element) Add(o Element) (Element, error) {
	if err := e.check(o, "add"); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Add(e.num, o.num)), nil
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.check(o, "subtract"); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Sub(e.num, o.num)), nil
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.check(o, "multiply"); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Mul(e.num, o.num)), nil
}

// MulInt returns k * e mod p for a plain integer k.
func (e Element) MulInt(k int64) Element {
	return e.with(new(big.Int).Mul(e.num, big.NewInt(k)))
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return e.with(new(big.Int).Neg(e.num))
}

// Div returns e * o^(p-2) mod p. Dividing by zero fails with
// ErrDivisionByZero since zero has no inverse.
func (e Element) Div(o Element) (Element, error) {
	if err := e.check(o, "divide"); err != nil {
		return Element{}, err
	}
	if o.IsZero() {
		return Element{}, ecc.NewError(ecc.ErrDivisionByZero, "field: division by zero")
	}
	exp := new(big.Int).Sub(e.prime, two)
	inv := new(big.Int).Exp(o.num, exp, e.prime)
	return e.with(inv.Mul(inv, e.num)), nil
}

// Pow returns e^exp mod p. A negative exponent is moved into range by adding
// p-1 until it is non-negative, which is sound because a^(p-1) = 1.
func (e Element) Pow(exp *big.Int) (Element, error) {
	x := new(big.Int).Set(exp)
	if x.Sign() < 0 {
		if e.IsZero() {
			return Element{}, ecc.NewError(ecc.ErrDivisionByZero, "field: negative power of zero")
		}
		// Equivalent to repeatedly adding p-1.
		x.Mod(x, new(big.Int).Sub(e.prime, one))
	}
	return Element{num: new(big.Int).Exp(e.num, x, e.prime), prime: e.prime}, nil
}

// PowInt is Pow for small exponents.
func (e Element) PowInt(exp int64) (Element, error) {
	return e.Pow(big.NewInt(exp))
}

// Inverse returns e^-1 mod p.
func (e Element) Inverse() (Element, error) {
	return e.PowInt(-1)
}

// Sqrt returns the candidate square root e^((p+1)/4). The result is only a
// root when e is a quadratic residue; callers must check it. The modulus must
// satisfy p = 3 mod 4.
func (e Element) Sqrt() (Element, error) {
	if new(big.Int).Mod(e.prime, four).Cmp(three) != 0 {
		return Element{}, ecc.NewError(ecc.ErrInvalidModulus, "field: sqrt requires p = 3 mod 4")
	}
	exp := new(big.Int).Add(e.prime, one)
	exp.Rsh(exp, 2)
	return e.Pow(exp)
}
