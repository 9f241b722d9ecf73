package mempool_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCRUD(t *testing.T) {
	type table struct {
		name string
		txs  []database.Tx
	}

	tt := []table{
		{
			name: "basic",
			txs: []database.Tx{
				database.NewTx("bill", "ed", 10),
				database.NewTx("ed", "bill", 5),
				database.NewTx("bill", "ed", 10),
				database.NewTx("pavel", "ceasar", 0),
			},
		},
		{
			name: "empty",
		},
	}

	t.Log("Given the need to validate the mempool.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				mp := mempool.New()

				for i, tx := range tst.txs {
					if n := mp.Add(tx); n != i+1 {
						t.Fatalf("\t%s\tTest %d:\tShould get back the pool size %d, got %d.", failed, testID, i+1, n)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould be able to add transactions.", success, testID)

				cpy := mp.Copy()
				if len(cpy) != len(tst.txs) {
					t.Fatalf("\t%s\tTest %d:\tShould get back all transactions.", failed, testID)
				}
				for i := range cpy {
					if cpy[i] != tst.txs[i] {
						t.Logf("\t\tTest %d:\tgot: %v", testID, cpy[i])
						t.Logf("\t\tTest %d:\texp: %v", testID, tst.txs[i])
						t.Fatalf("\t%s\tTest %d:\tShould keep the insertion order.", failed, testID)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould keep the insertion order.", success, testID)

				drained := mp.Drain()
				if len(drained) != len(tst.txs) || drained == nil {
					t.Fatalf("\t%s\tTest %d:\tShould drain all transactions.", failed, testID)
				}
				if len(mp.Copy()) != 0 {
					t.Fatalf("\t%s\tTest %d:\tShould leave an empty pool after a drain.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould drain the pool.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}
