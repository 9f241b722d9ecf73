package database_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Canonical(t *testing.T) {
	type table struct {
		name  string
		block database.Block
		exp   string
	}

	tt := []table{
		{
			name: "genesis",
			block: database.Block{
				Index:        0,
				Time:         1600000000,
				Proof:        1,
				PreviousHash: "0",
				Transactions: []database.Tx{},
			},
			exp: `{"index":0,"previous_hash":"0","proof":1,"time":1600000000,"transactions":[]}`,
		},
		{
			name: "nil-transactions",
			block: database.Block{
				Index:        0,
				Time:         1600000000,
				Proof:        1,
				PreviousHash: "0",
			},
			exp: `{"index":0,"previous_hash":"0","proof":1,"time":1600000000,"transactions":[]}`,
		},
		{
			name: "transactions",
			block: database.Block{
				Index:        3,
				Time:         1600000100,
				Proof:        -42,
				PreviousHash: "abc",
				Transactions: []database.Tx{
					database.NewTx("a", "b", 5),
					database.NewTx("<node>", "bill & ed", 1),
				},
			},
			exp: `{"index":3,"previous_hash":"abc","proof":-42,"time":1600000100,"transactions":[{"sender":"a","amount":5,"receiver":"b"},{"sender":"<node>","amount":1,"receiver":"bill & ed"}]}`,
		},
		{
			name: "utf8",
			block: database.Block{
				Index:        1,
				Time:         1600000200,
				Proof:        7,
				PreviousHash: "abc",
				Transactions: []database.Tx{database.NewTx("josé", "zoë", 2)},
			},
			exp: `{"index":1,"previous_hash":"abc","proof":7,"time":1600000200,"transactions":[{"sender":"josé","amount":2,"receiver":"zoë"}]}`,
		},
		{
			name: "invalid-utf8",
			block: database.Block{
				Index:        1,
				Time:         1600000200,
				Proof:        7,
				PreviousHash: "abc",
				Transactions: []database.Tx{database.NewTx("a", "\xff", 2)},
			},
			exp: `{"index":1,"previous_hash":"abc","proof":7,"time":1600000200,"transactions":[{"sender":"a","amount":2,"receiver":"\ufffd"}]}`,
		},
	}

	t.Log("Given the need to encode blocks canonically for hashing.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				got := string(tst.block.Canonical())
				if got != tst.exp {
					t.Logf("\t\tTest %d:\tgot: %s", testID, got)
					t.Logf("\t\tTest %d:\texp: %s", testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get back the canonical encoding.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get back the canonical encoding.", success, testID)

				if tst.block.Hash() != digest.HashString(tst.exp) {
					t.Fatalf("\t%s\tTest %d:\tShould hash the canonical encoding.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould hash the canonical encoding.", success, testID)

				if tst.block.Hash() != tst.block.Hash() {
					t.Fatalf("\t%s\tTest %d:\tShould get the same hash twice.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the same hash twice.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_WireEncoding(t *testing.T) {
	t.Log("Given the need to keep the wire encoding separate from the canonical one.")
	{
		block := database.Block{
			Index:        1,
			Time:         7,
			Proof:        9,
			PreviousHash: "ph",
			Transactions: []database.Tx{database.NewTx("a", "b", 5)},
		}

		data, err := json.Marshal(block)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to marshal the block: %v", failed, err)
		}

		exp := `{"index":1,"time":7,"proof":9,"previous_hash":"ph","transactions":[{"sender":"a","receiver":"b","amount":5}]}`
		if string(data) != exp {
			t.Logf("\t\tgot: %s", data)
			t.Logf("\t\texp: %s", exp)
			t.Fatalf("\t%s\tShould get back the wire encoding.", failed)
		}
		t.Logf("\t%s\tShould get back the wire encoding.", success)

		if string(data) == string(block.Canonical()) {
			t.Fatalf("\t%s\tShould not share the canonical field order.", failed)
		}
		t.Logf("\t%s\tShould not share the canonical field order.", success)
	}
}

// =============================================================================

func Test_ValidateChain(t *testing.T) {
	genesis := database.NewGenesis()

	next := func(prev database.Block, trans ...database.Tx) database.Block {
		return database.NewBlock(prev.Index+1, pow.Solve(prev.Proof), prev.Hash(), trans)
	}

	b1 := next(genesis, database.NewTx("a", "b", 5))
	b2 := next(b1)

	brokenLink := b2
	brokenLink.PreviousHash = genesis.Hash()

	badProof := b2
	badProof.Proof = b2.Proof + 1
	for pow.IsSolved(badProof.Proof, b1.Proof) {
		badProof.Proof++
	}

	tampered := b1
	tampered.Transactions = []database.Tx{database.NewTx("a", "b", 500)}

	type table struct {
		name  string
		chain []database.Block
		valid bool
	}

	tt := []table{
		{name: "genesis-only", chain: []database.Block{genesis}, valid: true},
		{name: "well-formed", chain: []database.Block{genesis, b1, b2}, valid: true},
		{name: "broken-link", chain: []database.Block{genesis, b1, brokenLink}, valid: false},
		{name: "failed-puzzle", chain: []database.Block{genesis, b1, badProof}, valid: false},
		{name: "tampered-transactions", chain: []database.Block{genesis, tampered, b2}, valid: false},
		{name: "duplicated-genesis", chain: []database.Block{genesis, genesis}, valid: false},
	}

	t.Log("Given the need to validate candidate chains.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				err := database.ValidateChain(tst.chain)
				if tst.valid && err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be a valid chain: %v", failed, testID, err)
				}
				if !tst.valid && err == nil {
					t.Fatalf("\t%s\tTest %d:\tShould be an invalid chain.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get valid=%v.", success, testID, tst.valid)

				if database.IsChainValid(tst.chain) != tst.valid {
					t.Fatalf("\t%s\tTest %d:\tShould agree with ValidateChain.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould agree with ValidateChain.", success, testID)
			}

			t.Run(tst.name, f)
		}

		if err := database.ValidateChain(nil); !errors.Is(err, database.ErrEmptyChain) {
			t.Fatalf("\t%s\tShould fail an empty chain with ErrEmptyChain, got %v.", failed, err)
		}
		t.Logf("\t%s\tShould fail an empty chain with ErrEmptyChain.", success)
	}
}

func Test_Genesis(t *testing.T) {
	t.Log("Given the need to start every chain from a genesis block.")
	{
		g := database.NewGenesis()

		if g.Index != 0 || g.Proof != database.GenesisProof || g.PreviousHash != database.GenesisPreviousHash {
			t.Fatalf("\t%s\tShould have the genesis values: %+v", failed, g)
		}
		t.Logf("\t%s\tShould have the genesis values.", success)

		if g.Transactions == nil || len(g.Transactions) != 0 {
			t.Fatalf("\t%s\tShould have an empty transaction list.", failed)
		}
		t.Logf("\t%s\tShould have an empty transaction list.", success)
	}
}
