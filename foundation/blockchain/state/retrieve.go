package state

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// RetrieveHost returns the normalized address of this node.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveRewardAddress returns the identifier mining fees are paid from.
func (s *State) RetrieveRewardAddress() string {
	return s.rewardAddress
}

// RetrieveChain returns a copy of the chain.
func (s *State) RetrieveChain() []database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := make([]database.Block, len(s.chain))
	copy(chain, s.chain)

	return chain
}

// RetrieveChainLength returns the number of blocks in the chain.
func (s *State) RetrieveChainLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.chain)
}

// RetrieveLatestBlock returns a copy the current latest block.
func (s *State) RetrieveLatestBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latestBlock()
}

// RetrieveMempool returns a copy of the mempool.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}

// IsChainValid validates the local chain.
func (s *State) IsChainValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return database.IsChainValid(s.chain)
}
