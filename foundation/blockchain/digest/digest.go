// Package digest provides the one-way hash used for chaining blocks and for
// the proof of work puzzle.
package digest

import (
	"crypto/sha512"
	"encoding/hex"
)

// Size is the length of every string produced by Hash.
const Size = sha512.Size * 2

// Hash returns the lowercase hex encoded SHA-512 digest of the data.
func Hash(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// HashString is a convenience for hashing the bytes of a string.
func HashString(s string) string {
	return Hash([]byte(s))
}
