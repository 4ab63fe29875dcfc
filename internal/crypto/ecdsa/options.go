package ecdsa

import (
	"fmt"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

const (
	// DefaultNonceBits is the width of the ephemeral nonce when Options leaves
	// it unset.
	DefaultNonceBits = 256

	// MinNonceBits is the smallest accepted nonce width.
	MinNonceBits = 129
)

// Options configures signing. The zero value uses crypto/rand and 256-bit
// nonces.
type Options struct {
	// Rand supplies nonces. Nil means ecc.SystemRand().
	Rand ecc.Rand

	// NonceBits is the bit width of the nonce drawn from Rand. Zero means
	// DefaultNonceBits.
	NonceBits int
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Rand == nil {
		o.Rand = ecc.SystemRand()
	}
	if o.NonceBits == 0 {
		o.NonceBits = DefaultNonceBits
	}
	if o.NonceBits < MinNonceBits {
		return fmt.Errorf("ecdsa: nonce width %d below %d bits: %w", o.NonceBits, MinNonceBits, ecc.ErrInvalidParameters)
	}
	return nil
}

// resolve returns a validated copy of opts so the caller's struct is never
// written.
func resolve(opts *Options) (Options, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
