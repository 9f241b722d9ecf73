package public

import "github.com/ardanlabs/ledger/foundation/blockchain/database"

// NewTx is what a client submits to add a transaction to the pending pool.
// Nothing about it is validated, empty identifiers included.
type NewTx struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

// NewPeers is what a client submits to register peers.
type NewPeers struct {
	Nodes []string `json:"nodes" validate:"required,min=1"`
}

type chainInfo struct {
	Length int              `json:"length"`
	Chain  []database.Block `json:"chain"`
}

type minedBlock struct {
	Message string         `json:"message"`
	Block   database.Block `json:"block"`
	Hash    string         `json:"hash"`
}

type validity struct {
	Valid bool `json:"valid"`
}

type submitted struct {
	Message string `json:"message"`
	Index   uint64 `json:"index"`
}

type replaced struct {
	IsReplaced bool             `json:"is_replaced"`
	Chain      []database.Block `json:"chain"`
}

type peerList struct {
	Message string   `json:"message"`
	Nodes   []string `json:"nodes"`
}

type nodeInfo struct {
	Host          string `json:"host"`
	RewardAddress string `json:"reward_address"`
	ChainLength   int    `json:"chain_length"`
	Pending       int    `json:"pending"`
	Peers         int    `json:"peers"`
	Subscribers   int    `json:"subscribers"`
}
