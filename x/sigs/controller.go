package sigs

import (
	"sort"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
)

// CustomAccount authorizes invocations on behalf of a contract address.
type CustomAccount interface {
	CheckAuth(ctx settle.Context, db settle.ReadOnlyKVStore, payload [32]byte, sigs []crypto.Signature, contexts []settle.AuthContext) error
}

// nonceBucket is where the per address nonces are kept.
const nonceBucket = "nonce"

func nonceSequence(addr settle.Address) orm.Sequence {
	return orm.NewSequence(nonceBucket, string(addr))
}

// NextNonce returns the nonce that the next authorization of given
// address must use. Nonce counting starts with zero.
func NextNonce(db settle.ReadOnlyKVStore, addr settle.Address) (int64, error) {
	seq := nonceSequence(addr)
	n, err := seq.Current(db)
	if err != nil {
		return 0, errors.Wrap(err, "nonce")
	}
	return n, nil
}

// VerifyAuthorization checks a single authorization entry and increments
// the nonce of its address.
//
// Account addresses must be signed by their own key. Contract addresses
// are only accepted for the contract that is executing and are checked by
// its custom account. A nil account rejects every contract address.
func VerifyAuthorization(ctx settle.Context, db settle.KVStore, chainID string, a *Authorization, account CustomAccount) error {
	if err := a.Validate(); err != nil {
		return err
	}

	seq := nonceSequence(a.Address)
	want, err := seq.Current(db)
	if err != nil {
		return errors.Wrap(err, "nonce")
	}
	if a.Nonce != want {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", want, a.Nonce)
	}

	payload, err := BuildPayload(chainID, a.Address, a.Nonce, a.Contexts)
	if err != nil {
		return err
	}

	switch {
	case a.Address.IsAccount():
		sig := a.Signatures[0]
		if settle.AccountAddress(sig.PublicKey) != a.Address {
			return errors.Wrap(errors.ErrUnauthorized, "signature of another key")
		}
		if !sig.Verify(payload[:]) {
			return errors.Wrap(errors.ErrUnauthorized, "invalid signature")
		}
	case account == nil:
		return errors.Wrapf(errors.ErrUnauthorized, "no custom account for %s", a.Address)
	case a.Address != settle.GetContract(ctx):
		return errors.Wrapf(errors.ErrUnauthorized, "unknown custom account %s", a.Address)
	default:
		if err := account.CheckAuth(ctx, db, payload, a.Signatures, a.Contexts); err != nil {
			return err
		}
	}

	if _, err := seq.NextInt(db); err != nil {
		return errors.Wrap(err, "increment nonce")
	}
	return nil
}

// Sign returns an authorization of given contexts by the account of key.
func Sign(key *crypto.PrivateKey, chainID string, nonce int64, contexts []settle.AuthContext) (*Authorization, error) {
	addr := settle.AccountAddress(key.PublicKey())
	payload, err := BuildPayload(chainID, addr, nonce, contexts)
	if err != nil {
		return nil, err
	}
	return &Authorization{
		Address:    addr,
		Nonce:      nonce,
		Contexts:   contexts,
		Signatures: []crypto.Signature{key.Sign(payload[:])},
	}, nil
}

// SignContract returns an authorization of given contexts by a contract
// address, signed by all keys. Signatures are ordered by public key.
func SignContract(keys []*crypto.PrivateKey, contract settle.Address, chainID string, nonce int64, contexts []settle.AuthContext) (*Authorization, error) {
	payload, err := BuildPayload(chainID, contract, nonce, contexts)
	if err != nil {
		return nil, err
	}
	sigs := make([]crypto.Signature, 0, len(keys))
	for _, k := range keys {
		sigs = append(sigs, k.Sign(payload[:]))
	}
	sort.Slice(sigs, func(i, j int) bool {
		return sigs[i].PublicKey.Less(sigs[j].PublicKey)
	})
	return &Authorization{
		Address:    contract,
		Nonce:      nonce,
		Contexts:   contexts,
		Signatures: sigs,
	}, nil
}
