package sec

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	secp "github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGeneratorEncoding(t *testing.T) {
	b, err := EncodeCompressed(secp.G())
	require.NoError(t, err)
	assert.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", hex.EncodeToString(b))

	b, err = EncodeUncompressed(secp.G())
	require.NoError(t, err)
	assert.Equal(t, "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"+
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", hex.EncodeToString(b))
}

func TestVectors(t *testing.T) {
	tests := []struct {
		secret       *big.Int
		uncompressed string
		compressed   string
	}{
		{
			secret:       big.NewInt(5000),
			uncompressed: "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10",
			compressed:   "02ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c",
		},
		{
			secret:       new(big.Int).Exp(big.NewInt(2018), big.NewInt(5), nil),
			uncompressed: "04027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13cc9dff87647fd023c13b4a4994f17691895806e1b40b57f4fd22581a4f46851f3b06",
			compressed:   "02027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13cc9d",
		},
		{
			secret:       big.NewInt(0xdeadbeef12345),
			uncompressed: "04d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f842efa762fd59961d0e99803c61edba8b3e3f7dc3a341836f97733aebf987121",
			compressed:   "03d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f",
		},
	}
	for _, tc := range tests {
		t.Run(tc.secret.String(), func(t *testing.T) {
			p, err := secp.ScalarBaseMult(tc.secret)
			require.NoError(t, err)

			u, err := EncodeUncompressed(p)
			require.NoError(t, err)
			assert.Equal(t, tc.uncompressed, hex.EncodeToString(u))

			c, err := EncodeCompressed(p)
			require.NoError(t, err)
			assert.Equal(t, tc.compressed, hex.EncodeToString(c))

			// Decompression lands on the same point as the full encoding.
			fromU, err := Decode(mustHex(t, tc.uncompressed))
			require.NoError(t, err)
			fromC, err := Decode(mustHex(t, tc.compressed))
			require.NoError(t, err)
			assert.True(t, fromU.Equal(p))
			assert.True(t, fromC.Equal(fromU), "got %s want %s", fromC, fromU)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := ecc.SystemRand()
	for i := 0; i < 8; i++ {
		k, err := rng.Range(big.NewInt(1), secp.N())
		require.NoError(t, err)
		p, err := secp.ScalarBaseMult(k)
		require.NoError(t, err)

		c, err := EncodeCompressed(p)
		require.NoError(t, err)
		require.Len(t, c, CompressedLen)
		got, err := Decode(c)
		require.NoError(t, err)
		assert.True(t, got.Equal(p))

		u, err := EncodeUncompressed(p)
		require.NoError(t, err)
		require.Len(t, u, UncompressedLen)
		got, err = Decode(u)
		require.NoError(t, err)
		assert.True(t, got.Equal(p))

		// Both parities come back out of decompression.
		neg, err := EncodeCompressed(p.Neg())
		require.NoError(t, err)
		assert.NotEqual(t, c[0], neg[0])
		got, err = Decode(neg)
		require.NoError(t, err)
		assert.True(t, got.Equal(p.Neg()))
	}
}

// x = 1 keeps 31 leading zero bytes in both encodings.
func TestSmallCoordinatePadding(t *testing.T) {
	c := make([]byte, CompressedLen)
	c[0] = 0x02
	c[CompressedLen-1] = 1

	p, err := Decode(c)
	require.NoError(t, err)

	again, err := EncodeCompressed(p)
	require.NoError(t, err)
	assert.Equal(t, c, again)

	u, err := EncodeUncompressed(p)
	require.NoError(t, err)
	assert.Equal(t, byte(1), u[32])
	for _, v := range u[1:32] {
		assert.Zero(t, v)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	c, err := EncodeCompressed(secp.G())
	require.NoError(t, err)
	p, err := Decode(append(c, 0xff, 0xee))
	require.NoError(t, err)
	assert.True(t, p.Equal(secp.G()))

	u, err := EncodeUncompressed(secp.G())
	require.NoError(t, err)
	p, err = Decode(append(u, 0x00))
	require.NoError(t, err)
	assert.True(t, p.Equal(secp.G()))
}

func TestDecodeErrors(t *testing.T) {
	u, err := EncodeUncompressed(secp.G())
	require.NoError(t, err)
	c, err := EncodeCompressed(secp.G())
	require.NoError(t, err)

	offCurve := append([]byte(nil), u...)
	offCurve[UncompressedLen-1] ^= 1

	bigX := make([]byte, CompressedLen)
	bigX[0] = 0x02
	secp.P().FillBytes(bigX[1:])

	bigY := append([]byte(nil), u...)
	secp.P().FillBytes(bigY[1+coordLen:])

	// x = 5 has no square root of x^3 + 7.
	nonResidue := make([]byte, CompressedLen)
	nonResidue[0] = 0x03
	nonResidue[CompressedLen-1] = 5

	hybrid := append([]byte(nil), u...)
	hybrid[0] = 0x06

	tests := []struct {
		name string
		in   []byte
		kind ecc.ErrorKind
	}{
		{"empty", nil, ecc.ErrDecode},
		{"short uncompressed", u[:64], ecc.ErrDecode},
		{"short compressed", c[:32], ecc.ErrDecode},
		{"format byte only", []byte{0x02}, ecc.ErrDecode},
		{"unknown format", hybrid, ecc.ErrDecode},
		{"zero format", make([]byte, 65), ecc.ErrDecode},
		{"x not below P", bigX, ecc.ErrDecode},
		{"y not below P", bigY, ecc.ErrDecode},
		{"off curve", offCurve, ecc.ErrPointNotOnCurve},
		{"non-residue", nonResidue, ecc.ErrPointNotOnCurve},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := EncodeCompressed(secp.Infinity())
	assert.True(t, errors.Is(err, ecc.ErrIdentityEncoding))
	_, err = EncodeUncompressed(secp.Infinity())
	assert.True(t, errors.Is(err, ecc.ErrIdentityEncoding))

	a, err := field.NewInt64(0, 223)
	require.NoError(t, err)
	b, err := field.NewInt64(7, 223)
	require.NoError(t, err)
	toy, err := curves.NewCurve(a, b)
	require.NoError(t, err)
	x, err := field.NewInt64(47, 223)
	require.NoError(t, err)
	y, err := field.NewInt64(71, 223)
	require.NoError(t, err)
	p, err := curves.NewPoint(x, y, toy)
	require.NoError(t, err)

	_, err = EncodeCompressed(p)
	assert.True(t, errors.Is(err, ecc.ErrCurveMismatch))
}

func TestDecredConversion(t *testing.T) {
	k, err := ecc.SystemRand().Range(big.NewInt(1), secp.N())
	require.NoError(t, err)
	p, err := secp.ScalarBaseMult(k)
	require.NoError(t, err)

	pk, err := ToDecred(p)
	require.NoError(t, err)
	want := secp256k1.PrivKeyFromBytes(k.Bytes()).PubKey()
	assert.True(t, pk.IsEqual(want))

	c, err := EncodeCompressed(p)
	require.NoError(t, err)
	assert.Equal(t, want.SerializeCompressed(), c)

	back, err := FromDecred(want)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))

	_, err = FromDecred(nil)
	assert.True(t, errors.Is(err, ecc.ErrDecode))

	_, err = ToDecred(secp.Infinity())
	assert.True(t, errors.Is(err, ecc.ErrIdentityEncoding))
}
