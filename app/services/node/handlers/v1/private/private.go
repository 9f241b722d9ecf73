// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// ChainLength returns the versioned length of the local chain.
func (h Handlers) ChainLength(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, peer.NewChainLength(h.State.RetrieveChainLength()), http.StatusOK)
}

// Chain returns the versioned copy of the local chain.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, peer.NewChain(h.State.RetrieveChain()), http.StatusOK)
}
