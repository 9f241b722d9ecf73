// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.Evts == nil {
		return errs.NewTrusted(errors.New("event stream not enabled"), http.StatusNotFound)
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	id, ch := h.Evts.Acquire()
	defer h.Evts.Release(id)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Info returns the identity of the node and a summary of its ledger.
func (h Handlers) Info(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	info := nodeInfo{
		Host:          h.State.RetrieveHost(),
		RewardAddress: h.State.RetrieveRewardAddress(),
		ChainLength:   h.State.RetrieveChainLength(),
		Pending:       len(h.State.RetrieveMempool()),
		Peers:         len(h.State.RetrieveKnownPeers()),
	}
	if h.Evts != nil {
		info.Subscribers = h.Evts.Count()
	}

	return web.Respond(ctx, w, info, http.StatusOK)
}

// Mine mines a new block and returns it. The call blocks until the proof
// of work is found.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	block := h.State.MineNewBlock()

	resp := minedBlock{
		Message: "congratulations, you just mined a block",
		Block:   block,
		Hash:    block.Hash(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SignalMining asks the background worker to mine a block and returns
// right away.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.State.Worker == nil {
		return errs.NewTrusted(errors.New("background worker not running"), http.StatusServiceUnavailable)
	}

	h.State.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signaled",
	}

	return web.Respond(ctx, w, resp, http.StatusAccepted)
}

// Chain returns the full chain.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	resp := chainInfo{
		Length: len(chain),
		Chain:  chain,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// ChainLength returns the number of blocks in the chain.
func (h Handlers) ChainLength(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Length int `json:"length"`
	}{
		Length: h.State.RetrieveChainLength(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// IsValid reports whether the local chain validates.
func (h Handlers) IsValid(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, validity{Valid: h.State.IsChainValid()}, http.StatusOK)
}

// Reconcile replaces the local chain with the longest valid chain held by
// the known peers, if one is longer.
func (h Handlers) Reconcile(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	isReplaced := h.State.Reconcile(ctx)

	resp := replaced{
		IsReplaced: isReplaced,
		Chain:      h.State.RetrieveChain(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitTransaction adds a transaction to the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var tx NewTx
	if err := web.Decode(r, &tx); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("add tran", "traceid", web.GetTraceID(ctx), "sender", tx.Sender, "receiver", tx.Receiver, "amount", tx.Amount)
	index := h.State.SubmitTransaction(tx.Sender, tx.Receiver, tx.Amount)

	resp := submitted{
		Message: fmt.Sprintf("this transaction will be added to block %d", index),
		Index:   index,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Mempool returns the set of pending transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveMempool(), http.StatusOK)
}

// RegisterPeers adds the submitted nodes to the known peers. Nothing is
// registered if any address is malformed.
func (h Handlers) RegisterPeers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var np NewPeers
	if err := web.Decode(r, &np); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(np); err != nil {
		return err
	}

	h.Log.Infow("register peers", "traceid", web.GetTraceID(ctx), "nodes", np.Nodes)
	if err := h.State.RegisterPeers(np.Nodes); err != nil {
		if errors.Is(err, peer.ErrInvalidAddress) {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		return err
	}

	resp := peerList{
		Message: "all the nodes are now connected",
		Nodes:   addresses(h.State.RetrieveKnownPeers()),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Peers returns the known peers in the order they were registered.
func (h Handlers) Peers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := peerList{
		Message: "known peers",
		Nodes:   addresses(h.State.RetrieveKnownPeers()),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

func addresses(peers []peer.Peer) []string {
	nodes := make([]string, len(peers))
	for i, pr := range peers {
		nodes[i] = pr.Address
	}
	return nodes
}
