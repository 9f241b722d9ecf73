// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// =============================================================================

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// PeerClient represents the behavior required to query the chain held by
// another node. Implementations decide on their own timeouts.
type PeerClient interface {
	ChainLength(ctx context.Context, pr peer.Peer) (int, error)
	Chain(ctx context.Context, pr peer.Peer) ([]database.Block, error)
}

// Worker interface represents the behavior required to be implemented by any
// package providing support for background mining and reconciliation.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalReconcile()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	RewardAddress string
	OperatorName  string
	MiningFee     uint64
	Host          string
	KnownPeers    *peer.PeerSet
	PeerClient    PeerClient
	EvHandler     EventHandler
}

// State manages the chain, the pending pool, and the peers of this node.
// Every operation that changes the ledger holds mu for its full duration,
// so a mining operation blocks every other operation until the proof of
// work is found.
type State struct {
	rewardAddress string
	operatorName  string
	miningFee     uint64
	host          string
	evHandler     EventHandler
	mu            sync.Mutex

	chain      []database.Block
	mempool    *mempool.Mempool
	knownPeers *peer.PeerSet
	peerClient PeerClient

	Worker Worker
}

// New constructs a new ledger holding only the genesis block.
func New(cfg Config) (*State, error) {
	if cfg.PeerClient == nil {
		return nil, errors.New("peer client is required")
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	// The host is only used to keep this node out of its own peer list.
	var host string
	if cfg.Host != "" {
		pr, err := peer.New(cfg.Host)
		if err != nil {
			return nil, err
		}
		host = pr.Address
	}

	state := State{
		rewardAddress: cfg.RewardAddress,
		operatorName:  cfg.OperatorName,
		miningFee:     cfg.MiningFee,
		host:          host,
		evHandler:     ev,

		chain:      []database.Block{database.NewGenesis()},
		mempool:    mempool.New(),
		knownPeers: knownPeers,
		peerClient: cfg.PeerClient,
	}

	ev("state: New: genesis: blk[%s]", state.chain[0].Hash())

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	// Stop all background ledger activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// =============================================================================

// appendBlock adds a new block to the end of the chain. No validation is
// performed; callers supply a consistent proof and previous hash. The caller
// must hold mu.
func (s *State) appendBlock(proof int64, previousHash string, trans []database.Tx) database.Block {
	block := database.NewBlock(uint64(len(s.chain)), proof, previousHash, trans)
	s.chain = append(s.chain, block)

	return block
}

// latestBlock returns the last block of the chain. The caller must hold mu.
func (s *State) latestBlock() database.Block {
	if len(s.chain) == 0 {
		panic(database.ErrEmptyChain)
	}

	return s.chain[len(s.chain)-1]
}
