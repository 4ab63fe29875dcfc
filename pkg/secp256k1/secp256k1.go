// Package secp256k1 is the public entry point of the library: secp256k1
// parameters, key pairs, ECDSA signatures and SEC point encoding. The generic
// prime field and curve types are exported too, for arithmetic on small
// curves.
package secp256k1

import (
	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/internal/crypto/sec"
	group "github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
)

type (
	// FieldElement is an element of a prime field.
	FieldElement = field.Element

	// Curve is y^2 = x^3 + ax + b over a prime field.
	Curve = curves.Curve

	// Point is an affine point or the point at infinity.
	Point = curves.Point

	// Group is scalar arithmetic on secp256k1 over big integer coordinates.
	Group = curves.Group

	// PrivateKey is a secret scalar and its public point.
	PrivateKey = ecdsa.PrivateKey

	// Signature is an ECDSA (r, s) pair.
	Signature = ecdsa.Signature

	// Options configures signing.
	Options = ecdsa.Options

	// BatchItem is one entry of VerifyBatch.
	BatchItem = ecdsa.BatchItem

	// Proof is a Schnorr proof of knowledge of a private key.
	Proof = schnorr.Proof
)

// Generic field and curve arithmetic.
var (
	NewElement      = field.New
	NewElementInt64 = field.NewInt64
	NewCurve        = curves.NewCurve
	NewCurvePoint   = curves.NewPoint
	CurveInfinity   = curves.Infinity
)

// Curve parameters.
var (
	P               = group.P
	N               = group.N
	HalfN           = group.HalfN
	A               = group.A
	B               = group.B
	Gx              = group.Gx
	Gy              = group.Gy
	G               = group.G
	S256            = group.Curve
	Infinity        = group.Infinity
	NewFieldElement = group.NewFieldElement
	NewPoint        = group.NewPoint

	ScalarBaseMult = group.ScalarBaseMult
	ScalarMult     = group.ScalarMult
)

// Group backends.
var (
	NewGroup       = group.NewGroup
	NewDecredGroup = curves.NewDecred
)

// Keys and signatures.
var (
	NewPrivateKey       = ecdsa.NewPrivateKey
	GenerateKey         = ecdsa.GenerateKey
	Verify              = ecdsa.Verify
	VerifyHash          = ecdsa.VerifyHash
	SignBatch           = ecdsa.SignBatch
	VerifyBatch         = ecdsa.VerifyBatch
	ParseSignature      = ecdsa.ParseSignature
	SignatureFromDecred = ecdsa.SignatureFromDecred
	ProveKey            = schnorr.Prove
)

// SEC encoding.
var (
	EncodeCompressed   = sec.EncodeCompressed
	EncodeUncompressed = sec.EncodeUncompressed
	DecodePoint        = sec.Decode
	ToDecred           = sec.ToDecred
	FromDecred         = sec.FromDecred
)
