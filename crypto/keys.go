/*
Package crypto holds the ed25519 keys and signatures used to authorize
invocations.
*/
package crypto

import (
	"bytes"
	"crypto/rand"

	"github.com/iov-one/settle/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	// PublicKeySize is the length of an ed25519 public key.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the length of an ed25519 signature.
	SignatureSize = ed25519.SignatureSize
)

// PublicKey is an ed25519 public key.
type PublicKey [PublicKeySize]byte

// Less orders public keys by their bytes.
func (p PublicKey) Less(o PublicKey) bool {
	return bytes.Compare(p[:], o[:]) < 0
}

// Verify returns true if sig is a valid signature of message by this key.
func (p PublicKey) Verify(message []byte, sig [SignatureSize]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(p[:]), message, sig[:])
}

// Signature is a single signer's approval: the signer public key together
// with its signature.
type Signature struct {
	PublicKey PublicKey          `json:"public_key"`
	Signature [SignatureSize]byte `json:"signature"`
}

// Verify returns true if this signature is valid for the given message.
func (s Signature) Verify(message []byte) bool {
	return s.PublicKey.Verify(message, s.Signature)
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivateKey returns a random new private key.
func GenPrivateKey() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return &PrivateKey{key: priv}, nil
}

// PrivateKeyFromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.ErrInput.Newf("seed must be %d bytes", ed25519.SeedSize)
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Seed returns the private key seed, which is enough to restore the key.
func (p *PrivateKey) Seed() []byte {
	return p.key.Seed()
}

// PublicKey returns the corresponding public key.
func (p *PrivateKey) PublicKey() PublicKey {
	var pub PublicKey
	copy(pub[:], p.key.Public().(ed25519.PublicKey))
	return pub
}

// Sign returns a signature of the message bundled with the public key.
func (p *PrivateKey) Sign(message []byte) Signature {
	sig := Signature{PublicKey: p.PublicKey()}
	copy(sig.Signature[:], ed25519.Sign(p.key, message))
	return sig
}
