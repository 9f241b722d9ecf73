// Package identity manages the key a node is known by. The address of the
// key is what mining fees are paid from.
package identity

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
)

// Generate creates a new key and saves it to the path, creating any missing
// directories. An existing file is never overwritten.
func Generate(path string) (*ecdsa.PrivateKey, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("key file %q already exists", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating key directory: %w", err)
		}
	}

	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	if err := crypto.SaveECDSA(path, privateKey); err != nil {
		return nil, fmt.Errorf("saving key: %w", err)
	}

	return privateKey, nil
}

// Load reads the key stored at the path.
func Load(path string) (*ecdsa.PrivateKey, error) {
	privateKey, err := crypto.LoadECDSA(path)
	if err != nil {
		return nil, fmt.Errorf("loading key: %w", err)
	}

	return privateKey, nil
}

// LoadOrGenerate reads the key stored at the path, generating and saving a
// new one when the file doesn't exist. It reports whether the key is new.
func LoadOrGenerate(path string) (*ecdsa.PrivateKey, bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		privateKey, err := Load(path)
		return privateKey, false, err

	case errors.Is(err, fs.ErrNotExist):
		privateKey, err := Generate(path)
		return privateKey, true, err

	default:
		return nil, false, err
	}
}

// Address returns the checksummed hex address for the key.
func Address(privateKey *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(privateKey.PublicKey).Hex()
}
