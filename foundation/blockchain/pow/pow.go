// Package pow implements the proof of work puzzle that gates the creation of
// new blocks.
package pow

import (
	"math/big"
	"strings"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Target is the prefix the puzzle hash must start with. The difficulty is
// fixed and not configurable.
const Target = "0000"

// IsSolved reports if the candidate proof solves the puzzle relative to the
// previous proof. The puzzle hashes the decimal form of
// candidate² - previous², which is allowed to be negative.
func IsSolved(candidate int64, previous int64) bool {
	return strings.HasPrefix(PuzzleHash(candidate, previous), Target)
}

// PuzzleHash returns the hash that IsSolved checks against the target.
func PuzzleHash(candidate int64, previous int64) string {
	c := big.NewInt(candidate)
	p := big.NewInt(previous)

	// Use arbitrary precision so proofs supplied by peers can't overflow.
	d := new(big.Int).Mul(c, c)
	d.Sub(d, new(big.Int).Mul(p, p))

	return digest.HashString(d.String())
}

// Solve performs the brute force search for the first proof starting at 1
// that solves the puzzle for the previous proof. There is no upper bound on
// the number of attempts.
func Solve(previous int64) int64 {
	candidate := int64(1)
	for !IsSolved(candidate, previous) {
		candidate++
	}

	return candidate
}
