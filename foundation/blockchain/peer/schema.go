package peer

import (
	"errors"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// SchemaVersion is the version of the payloads exchanged between peers.
const SchemaVersion = "v1"

// ErrSchemaVersion is returned when a peer responds with a payload version
// this node doesn't speak.
var ErrSchemaVersion = errors.New("unsupported peer schema version")

// ChainLength is the payload a node returns for its chain length.
type ChainLength struct {
	Version string `json:"version" validate:"required"`
	Length  int    `json:"length" validate:"gte=1"`
}

// Chain is the payload a node returns for its full chain.
type Chain struct {
	Version string           `json:"version" validate:"required"`
	Blocks  []database.Block `json:"blocks" validate:"required,min=1"`
}

// NewChainLength constructs the chain length payload.
func NewChainLength(length int) ChainLength {
	return ChainLength{
		Version: SchemaVersion,
		Length:  length,
	}
}

// NewChain constructs the chain payload.
func NewChain(blocks []database.Block) Chain {
	return Chain{
		Version: SchemaVersion,
		Blocks:  blocks,
	}
}
