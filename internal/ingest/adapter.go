package ingest

import (
	"context"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
)

type chainAdapter struct {
	*chain.Client
}

// AdaptChain exposes a chain client through the pipeline's interface.
func AdaptChain(c *chain.Client) ChainClient {
	return chainAdapter{Client: c}
}

func (a chainAdapter) SubscribeFinalizedHeights(ctx context.Context) (HeadSubscription, error) {
	return a.Client.SubscribeFinalizedHeights(ctx)
}
