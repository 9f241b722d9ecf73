package database

import (
	"bytes"
	"encoding/json"
)

// The canonical encoding is the only byte representation that is ever hashed.
// Every node must agree on it byte for byte or chain links can't be verified
// across nodes. It is compact JSON with this fixed field order:
//
//	block:       index, previous_hash, proof, time, transactions
//	transaction: sender, amount, receiver
//
// An empty transaction list is encoded as [] and never as null. Strings are
// not HTML escaped. Bytes that are not valid UTF-8 are encoded as U+FFFD, so
// strings that differ only in invalid bytes hash the same. Strings decoded
// from JSON have already been through that replacement.

type canonicalTx struct {
	Sender   string `json:"sender"`
	Amount   uint64 `json:"amount"`
	Receiver string `json:"receiver"`
}

type canonicalBlock struct {
	Index        uint64        `json:"index"`
	PreviousHash string        `json:"previous_hash"`
	Proof        int64         `json:"proof"`
	Time         int64         `json:"time"`
	Transactions []canonicalTx `json:"transactions"`
}

// Canonical returns the canonical encoding of the block.
func (b Block) Canonical() []byte {
	trans := make([]canonicalTx, len(b.Transactions))
	for i, tx := range b.Transactions {
		trans[i] = canonicalTx{
			Sender:   tx.Sender,
			Amount:   tx.Amount,
			Receiver: tx.Receiver,
		}
	}

	cb := canonicalBlock{
		Index:        b.Index,
		PreviousHash: b.PreviousHash,
		Proof:        b.Proof,
		Time:         b.Time,
		Transactions: trans,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encoding can't fail for a struct of strings and integers.
	enc.Encode(cb)

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
