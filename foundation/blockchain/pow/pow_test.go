package pow_test

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Solve(t *testing.T) {
	previousProofs := []int64{1, 2, 533, 45293}

	t.Log("Given the need to find proofs that solve the puzzle.")
	{
		for testID, previous := range previousProofs {
			f := func(t *testing.T) {
				proof := pow.Solve(previous)

				if !pow.IsSolved(proof, previous) {
					t.Fatalf("\t%s\tTest %d:\tShould find a proof that solves the puzzle for %d.", failed, testID, previous)
				}
				t.Logf("\t%s\tTest %d:\tShould find a proof that solves the puzzle for %d.", success, testID, previous)

				d := proof*proof - previous*previous
				hash := digest.HashString(fmt.Sprintf("%d", d))
				if !strings.HasPrefix(hash, "0000") {
					t.Logf("\t\tTest %d:\tgot: %s", testID, hash)
					t.Fatalf("\t%s\tTest %d:\tShould have a hash of the difference starting with 0000.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould have a hash of the difference starting with 0000.", success, testID)

				for candidate := int64(1); candidate < proof; candidate++ {
					if pow.IsSolved(candidate, previous) {
						t.Fatalf("\t%s\tTest %d:\tShould return the first solving proof, %d also solves.", failed, testID, candidate)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould return the first solving proof.", success, testID)
			}

			t.Run(fmt.Sprintf("previous-%d", previous), f)
		}
	}
}

func Test_PuzzleHash(t *testing.T) {
	t.Log("Given the need to hash negative and overflowing differences.")
	{
		got := pow.PuzzleHash(1, 3)
		exp := digest.HashString("-8")
		if got != exp {
			t.Fatalf("\t%s\tShould hash the signed difference: got %s, exp %s", failed, got, exp)
		}
		t.Logf("\t%s\tShould hash the signed difference.", success)

		big1 := int64(1) << 40
		d := new(big.Int).Mul(big.NewInt(big1), big.NewInt(big1))
		d.Sub(d, big.NewInt(4))
		got = pow.PuzzleHash(big1, 2)
		exp = digest.HashString(d.String())
		if got != exp {
			t.Fatalf("\t%s\tShould hash the exact difference for large proofs: got %s, exp %s", failed, got, exp)
		}
		t.Logf("\t%s\tShould hash the exact difference for large proofs.", success)
	}
}
