package state

import (
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// MineNewBlock credits the mining fee to the operator, takes every pending
// transaction, solves the proof of work, and appends the new block. The
// reward is paid on every block, even one with no other transactions.
//
// The proof of work search runs while holding the ledger lock.
func (s *State) MineNewBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: MineNewBlock: MINING: started")
	defer s.evHandler("state: MineNewBlock: MINING: completed")

	lastBlock := s.latestBlock()

	// The reward goes in after every pending transaction.
	reward := database.NewTx(s.rewardAddress, s.operatorName, s.miningFee)
	trans := append(s.mempool.Drain(), reward)
	for _, tx := range trans {
		s.evHandler("state: MineNewBlock: MINING: tx[%s]", tx)
	}

	s.evHandler("state: MineNewBlock: MINING: perform POW: previous proof[%d]", lastBlock.Proof)

	t := time.Now()
	proof := pow.Solve(lastBlock.Proof)

	s.evHandler("state: MineNewBlock: MINING: SOLVED: proof[%d]: duration[%v]", proof, time.Since(t))

	block := s.appendBlock(proof, lastBlock.Hash(), trans)

	s.evHandler("viewer: block: mined: blk[%d]: hash[%s]", block.Index, block.Hash())

	return block
}
