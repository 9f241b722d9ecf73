package digest_test

import (
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Hash(t *testing.T) {
	type table struct {
		name  string
		value string
		exp   string
	}

	tt := []table{
		{
			name:  "hello",
			value: "hello",
			exp:   "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
		{
			name:  "empty",
			value: "",
			exp:   "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
	}

	t.Log("Given the need to hash values deterministically.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				got := digest.HashString(tst.value)
				if got != tst.exp {
					t.Logf("\t\tTest %d:\tgot: %s", testID, got)
					t.Logf("\t\tTest %d:\texp: %s", testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get back the expected hash.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get back the expected hash.", success, testID)

				if again := digest.Hash([]byte(tst.value)); again != got {
					t.Fatalf("\t%s\tTest %d:\tShould get the same hash twice.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the same hash twice.", success, testID)

				if len(got) != digest.Size {
					t.Fatalf("\t%s\tTest %d:\tShould get a hash of %d characters, got %d.", failed, testID, digest.Size, len(got))
				}
				t.Logf("\t%s\tTest %d:\tShould get a hash of %d characters.", success, testID, digest.Size)

				if got != strings.ToLower(got) {
					t.Fatalf("\t%s\tTest %d:\tShould get a lowercase hash.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get a lowercase hash.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}
