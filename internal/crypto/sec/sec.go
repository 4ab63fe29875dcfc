// Package sec encodes secp256k1 points in the SEC 1 compressed and
// uncompressed binary formats.
package sec

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	secp "github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

const (
	// CompressedLen is the size of 0x02/0x03 || x.
	CompressedLen = 33

	// UncompressedLen is the size of 0x04 || x || y.
	UncompressedLen = 65

	formatEven         = 0x02
	formatOdd          = 0x03
	formatUncompressed = 0x04

	coordLen = 32
)

// EncodeUncompressed returns 0x04 || x || y with 32-byte big-endian coordinates.
func EncodeUncompressed(p curves.Point) ([]byte, error) {
	x, y, err := affine(p)
	if err != nil {
		return nil, err
	}
	out := make([]byte, UncompressedLen)
	out[0] = formatUncompressed
	x.FillBytes(out[1 : 1+coordLen])
	y.FillBytes(out[1+coordLen:])
	return out, nil
}

// EncodeCompressed returns 0x02 || x when y is even and 0x03 || x when y is odd.
func EncodeCompressed(p curves.Point) ([]byte, error) {
	x, y, err := affine(p)
	if err != nil {
		return nil, err
	}
	out := make([]byte, CompressedLen)
	out[0] = formatEven
	if y.Bit(0) == 1 {
		out[0] = formatOdd
	}
	x.FillBytes(out[1:])
	return out, nil
}

func affine(p curves.Point) (*big.Int, *big.Int, error) {
	if p.IsInfinity() {
		return nil, nil, ecc.NewError(ecc.ErrIdentityEncoding, "sec: the point at infinity has no encoding")
	}
	if !secp.OnCurve(p) {
		return nil, nil, ecc.NewError(ecc.ErrCurveMismatch, "sec: point is not on secp256k1")
	}
	x, y := secp.Coordinates(p)
	return x, y, nil
}

// Decode parses a SEC encoded point. Input past the length implied by the
// format byte is ignored. Non-canonical coordinates (>= P) are rejected with
// ecc.ErrDecode rather than reduced.
func Decode(b []byte) (curves.Point, error) {
	if len(b) == 0 {
		return curves.Point{}, ecc.NewError(ecc.ErrDecode, "sec: empty input")
	}

	switch b[0] {
	case formatUncompressed:
		if len(b) < UncompressedLen {
			return curves.Point{}, ecc.Errorf(ecc.ErrDecode, "sec: uncompressed point needs %d bytes, got %d", UncompressedLen, len(b))
		}
		x, err := coordinate(b[1 : 1+coordLen])
		if err != nil {
			return curves.Point{}, err
		}
		y, err := coordinate(b[1+coordLen : UncompressedLen])
		if err != nil {
			return curves.Point{}, err
		}
		return secp.NewPoint(x, y)

	case formatEven, formatOdd:
		if len(b) < CompressedLen {
			return curves.Point{}, ecc.Errorf(ecc.ErrDecode, "sec: compressed point needs %d bytes, got %d", CompressedLen, len(b))
		}
		x, err := coordinate(b[1:CompressedLen])
		if err != nil {
			return curves.Point{}, err
		}
		return decompress(x, b[0] == formatOdd)

	default:
		return curves.Point{}, ecc.Errorf(ecc.ErrDecode, "sec: unknown format byte 0x%02x", b[0])
	}
}

func coordinate(b []byte) (*big.Int, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(secp.P()) >= 0 {
		return nil, ecc.NewError(ecc.ErrDecode, "sec: coordinate not below the field prime")
	}
	return v, nil
}

// decompress solves y^2 = x^3 + 7 and picks the root with the requested parity.
func decompress(x *big.Int, odd bool) (curves.Point, error) {
	fx, err := secp.NewFieldElement(x)
	if err != nil {
		return curves.Point{}, err
	}
	fb, err := secp.NewFieldElement(secp.B())
	if err != nil {
		return curves.Point{}, err
	}
	x3, err := fx.PowInt(3)
	if err != nil {
		return curves.Point{}, err
	}
	alpha, err := x3.Add(fb)
	if err != nil {
		return curves.Point{}, err
	}
	beta, err := alpha.Sqrt()
	if err != nil {
		return curves.Point{}, err
	}
	if beta.IsOdd() != odd {
		beta = beta.Neg()
	}
	// A non-residue alpha yields a beta that fails the curve check here.
	return secp.NewPoint(x, beta.Num())
}

// ToDecred converts p to a decred public key.
func ToDecred(p curves.Point) (*secp256k1.PublicKey, error) {
	b, err := EncodeUncompressed(p)
	if err != nil {
		return nil, err
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("sec: decred rejected point: %w", err)
	}
	return pk, nil
}

// FromDecred converts a decred public key.
func FromDecred(pk *secp256k1.PublicKey) (curves.Point, error) {
	if pk == nil {
		return curves.Point{}, ecc.NewError(ecc.ErrDecode, "sec: nil public key")
	}
	return Decode(pk.SerializeUncompressed())
}
