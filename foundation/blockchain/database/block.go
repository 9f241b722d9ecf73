package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Genesis values every ledger starts with.
const (
	GenesisPreviousHash = "0"
	GenesisProof        = int64(1)
)

// ErrEmptyChain is returned when a chain with no blocks is presented. Every
// ledger holds at least the genesis block.
var ErrEmptyChain = errors.New("chain has no blocks")

// =============================================================================

// Block represents a group of transactions batched together. The json tags
// define the wire encoding used by the API and between peers. The encoding
// used for hashing is defined by Canonical and is independent of these tags.
type Block struct {
	Index        uint64 `json:"index"`
	Time         int64  `json:"time"`
	Proof        int64  `json:"proof"`
	PreviousHash string `json:"previous_hash"`
	Transactions []Tx   `json:"transactions"`
}

// NewBlock constructs a block for the specified position in the chain using
// the current time.
func NewBlock(index uint64, proof int64, previousHash string, trans []Tx) Block {
	return Block{
		Index:        index,
		Time:         time.Now().UTC().Unix(),
		Proof:        proof,
		PreviousHash: previousHash,
		Transactions: trans,
	}
}

// NewGenesis constructs the first block of a chain.
func NewGenesis() Block {
	return NewBlock(0, GenesisProof, GenesisPreviousHash, []Tx{})
}

// Hash returns the unique hash for the Block, taken over its canonical
// encoding.
func (b Block) Hash() string {
	return digest.Hash(b.Canonical())
}

// ValidateNext checks the block can follow the previous block in a chain.
func (b Block) ValidateNext(previous Block) error {
	if hash := previous.Hash(); b.PreviousHash != hash {
		return fmt.Errorf("block[%d]: previous hash doesn't match, got %s, exp %s", b.Index, b.PreviousHash, hash)
	}

	if !pow.IsSolved(b.Proof, previous.Proof) {
		return fmt.Errorf("block[%d]: proof %d doesn't solve the puzzle for proof %d", b.Index, b.Proof, previous.Proof)
	}

	return nil
}

// =============================================================================

// ValidateChain checks every link and every proof in the chain. The genesis
// block is exempt from both checks. It works on any candidate chain, not
// just the local one.
func ValidateChain(blocks []Block) error {
	if len(blocks) == 0 {
		return ErrEmptyChain
	}

	for i := 1; i < len(blocks); i++ {
		if err := blocks[i].ValidateNext(blocks[i-1]); err != nil {
			return err
		}
	}

	return nil
}

// IsChainValid is the boolean form of ValidateChain.
func IsChainValid(blocks []Block) bool {
	return ValidateChain(blocks) == nil
}
