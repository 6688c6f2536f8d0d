package settle

import (
	"crypto/sha256"

	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/crypto/bech32"
	"github.com/iov-one/settle/errors"
	"github.com/stellar/go/strkey"
)

const (
	// ContractPrefix is the human readable part of bech32 encoded contract
	// addresses.
	ContractPrefix = "settle"

	// ContractAddressLength is the length of the raw contract address.
	ContractAddressLength = 20
)

// Address identifies either an account or a contract.
//
// Accounts are controlled by a single ed25519 key and use the strkey
// account encoding (G...). Contracts are derived from their deployment
// data and use a bech32 encoding with the ContractPrefix.
type Address string

// AccountAddress returns the address of an account controlled by given key.
func AccountAddress(pub crypto.PublicKey) Address {
	return Address(strkey.MustEncode(strkey.VersionByteAccountID, pub[:]))
}

// ContractAddress hashes and truncates data into a contract address. The
// same data always produces the same address.
func ContractAddress(data []byte) Address {
	h := sha256.Sum256(data)
	raw, err := bech32.Encode(ContractPrefix, h[:ContractAddressLength])
	if err != nil {
		// Only a broken prefix constant can cause this.
		panic(err)
	}
	return Address(raw)
}

// ContractAddressFromRaw encodes the raw payload of a contract address, as
// returned by Raw.
func ContractAddressFromRaw(raw []byte) (Address, error) {
	if len(raw) != ContractAddressLength {
		return "", errors.Wrapf(errors.ErrInput, "contract address must be %d bytes, got %d", ContractAddressLength, len(raw))
	}
	enc, err := bech32.Encode(ContractPrefix, raw)
	if err != nil {
		return "", err
	}
	return Address(enc), nil
}

// IsAccount returns true if this is a valid account address.
func (a Address) IsAccount() bool {
	_, err := strkey.Decode(strkey.VersionByteAccountID, string(a))
	return err == nil
}

// IsContract returns true if this is a valid contract address.
func (a Address) IsContract() bool {
	raw, err := bech32.DecodeExpect(ContractPrefix, string(a))
	return err == nil && len(raw) == ContractAddressLength
}

// PublicKey returns the key controlling an account address.
func (a Address) PublicKey() (crypto.PublicKey, error) {
	var pub crypto.PublicKey
	raw, err := strkey.Decode(strkey.VersionByteAccountID, string(a))
	if err != nil {
		return pub, errors.Wrapf(errors.ErrInput, "not an account address %q", string(a))
	}
	copy(pub[:], raw)
	return pub, nil
}

// Raw returns the binary payload of the address: the 32 byte key of an
// account or the 20 byte hash of a contract.
func (a Address) Raw() ([]byte, error) {
	if raw, err := strkey.Decode(strkey.VersionByteAccountID, string(a)); err == nil {
		return raw, nil
	}
	raw, err := bech32.DecodeExpect(ContractPrefix, string(a))
	if err != nil {
		return nil, errors.Wrapf(err, "address %q", string(a))
	}
	return raw, nil
}

// Validate returns an error if this is neither an account nor a contract
// address.
func (a Address) Validate() error {
	if a == "" {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	if !a.IsAccount() && !a.IsContract() {
		return errors.Wrapf(errors.ErrInput, "invalid address %q", string(a))
	}
	return nil
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return a == b
}

// String returns the encoded address.
func (a Address) String() string {
	if a == "" {
		return "(nil)"
	}
	return string(a)
}
