package state

import "github.com/ardanlabs/ledger/foundation/blockchain/database"

// SubmitTransaction adds a new transaction to the pending pool. It returns
// the index of the block the transaction is expected to land in, which is
// informational only. Transactions are not validated in any way.
func (s *State) SubmitTransaction(sender string, receiver string, amount uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := database.NewTx(sender, receiver, amount)
	n := s.mempool.Add(tx)

	s.evHandler("state: SubmitTransaction: tx[%s]: pending[%d]", tx, n)

	return s.latestBlock().Index + 1
}
