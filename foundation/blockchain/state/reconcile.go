package state

import (
	"context"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Reconcile asks every known peer, in the order they were registered, for
// its chain and adopts the longest valid chain that is longer than the local
// one. A peer that can't be reached or returns an invalid chain is skipped.
// Among chains of equal length the first one seen wins. It reports whether
// the local chain was replaced.
//
// Peers are queried one at a time while holding the ledger lock.
func (s *State) Reconcile(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: Reconcile: started")
	defer s.evHandler("state: Reconcile: completed")

	bestLen := len(s.chain)
	originalLen := bestLen

	for _, pr := range s.knownPeers.Copy(s.host) {
		length, err := s.peerClient.ChainLength(ctx, pr)
		if err != nil {
			s.evHandler("state: Reconcile: ChainLength: %s: ERROR: %s", pr, err)
			continue
		}

		if length <= bestLen {
			s.evHandler("state: Reconcile: %s: length[%d]: not longer than [%d]", pr, length, bestLen)
			continue
		}

		blocks, err := s.peerClient.Chain(ctx, pr)
		if err != nil {
			s.evHandler("state: Reconcile: Chain: %s: ERROR: %s", pr, err)
			continue
		}

		// The peer may have reported one length and sent another.
		if len(blocks) <= bestLen {
			s.evHandler("state: Reconcile: %s: reported length[%d]: sent blocks[%d]: not longer than [%d]", pr, length, len(blocks), bestLen)
			continue
		}

		if err := database.ValidateChain(blocks); err != nil {
			s.evHandler("state: Reconcile: %s: invalid chain: %s", pr, err)
			continue
		}

		s.chain = make([]database.Block, len(blocks))
		copy(s.chain, blocks)
		bestLen = len(blocks)

		s.evHandler("viewer: chain: replaced: peer[%s]: blocks[%d]", pr, bestLen)
	}

	return bestLen > originalLen
}
