package ecdsa

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// BatchItem is one signature to check in VerifyBatch.
type BatchItem struct {
	PublicKey curves.Point
	Hash      []byte
	Signature *Signature
}

// SignBatch signs every digest with key concurrently. Results keep the order
// of digests. The first failure is returned as *ecc.BatchError.
func SignBatch(ctx context.Context, key *PrivateKey, digests [][]byte, opts *Options) ([]*Signature, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	sigs := make([]*Signature, len(digests))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, digest := range digests {
		i, digest := i, digest
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := key.SignHash(digest, &o)
			if err != nil {
				return ecc.NewBatchError(i, err)
			}
			sigs[i] = sig
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sigs, nil
}

// VerifyBatch checks every item concurrently. It returns nil when all verify,
// otherwise an *ecc.BatchError naming a failing item, or the context error.
func VerifyBatch(ctx context.Context, items []BatchItem) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !VerifyHash(item.PublicKey, item.Hash, item.Signature) {
				return ecc.NewBatchError(i, nil)
			}
			return nil
		})
	}
	return eg.Wait()
}
