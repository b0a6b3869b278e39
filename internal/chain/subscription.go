package chain

import (
	"context"
	"sync"

	chainrpc "github.com/centrifuge/go-substrate-rpc-client/v4/rpc/chain"
)

// HeightSubscription is a cancellable stream of newly finalized heights.
// Heights arrive in increasing order but are best-effort: the node may skip
// heights across a reconnect, and consumers must detect such gaps.
type HeightSubscription struct {
	heights chan uint64
	errs    chan error

	once sync.Once
	stop chan struct{}
	sub  *chainrpc.FinalizedHeadsSubscription
}

// Heights returns the stream of finalized heights.
func (s *HeightSubscription) Heights() <-chan uint64 {
	return s.heights
}

// Err streams subscription-level failures (decode errors, dropped
// transport). The stream itself stays up; only Unsubscribe ends it.
func (s *HeightSubscription) Err() <-chan error {
	return s.errs
}

// Unsubscribe cancels the stream synchronously. Safe to call twice.
func (s *HeightSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.sub.Unsubscribe()
		close(s.stop)
	})
}

// SubscribeFinalizedHeights opens a finalized-head subscription on the
// current connection.
func (c *Client) SubscribeFinalizedHeights(ctx context.Context) (*HeightSubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub, err := c.currentAPI().RPC.Chain.SubscribeFinalizedHeads()
	if err != nil {
		return nil, connErr("subscribe finalized heads", err)
	}

	s := &HeightSubscription{
		heights: make(chan uint64, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		sub:     sub,
	}

	go func() {
		defer close(s.heights)
		for {
			select {
			case <-s.stop:
				return
			case header, ok := <-sub.Chan():
				if !ok {
					return
				}
				select {
				case s.heights <- uint64(header.Number):
				case <-s.stop:
					return
				}
			case err := <-sub.Err():
				select {
				case s.errs <- connErr("finalized heads stream", err):
				default:
				}
			}
		}
	}()

	return s, nil
}
