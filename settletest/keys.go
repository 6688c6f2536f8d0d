package settletest

import (
	"crypto/sha256"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
)

// NewKey returns a fresh ed25519 key. The test fails if the system random
// source is not available.
func NewKey(t testing.TB) *crypto.PrivateKey {
	t.Helper()
	key, err := crypto.GenPrivateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return key
}

// SeedKey returns a key derived from given label, so that tests can rely
// on a stable ordering of public keys.
func SeedKey(label string) *crypto.PrivateKey {
	seed := sha256.Sum256([]byte(label))
	key, err := crypto.PrivateKeyFromSeed(seed[:])
	if err != nil {
		panic(err)
	}
	return key
}

// NewAccount returns a fresh key together with its account address.
func NewAccount(t testing.TB) (*crypto.PrivateKey, settle.Address) {
	t.Helper()
	key := NewKey(t)
	return key, settle.AccountAddress(key.PublicKey())
}

// NewContract returns a contract address derived from given label.
func NewContract(label string) settle.Address {
	return settle.ContractAddress([]byte(label))
}
