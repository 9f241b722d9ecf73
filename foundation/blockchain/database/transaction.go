package database

import "fmt"

// Tx is the transactional information between two parties. Nothing about a
// Tx is validated: there are no signatures, balances, or double spend checks.
type Tx struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

// NewTx constructs a new transaction.
func NewTx(sender string, receiver string, amount uint64) Tx {
	return Tx{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
	}
}

// String implements the Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s:%d", tx.Sender, tx.Receiver, tx.Amount)
}
