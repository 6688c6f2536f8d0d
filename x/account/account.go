/*
Package account lets the settlement contract act as a signable account.

The host calls CheckAuth whenever an invocation needs the authorization of
the contract address. Signatures are checked against the payload and every
authorized context must pass the function policy. The check reads the admin
from the store and never asks for the contract's own authorization, so it
cannot recurse.
*/
package account

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/admin"
)

// PayloadSize is the length of the signed payload hash.
const PayloadSize = 32

// policy decides if the signatures can authorize a call of one function.
type policy func(db settle.ReadOnlyKVStore, sigs []crypto.Signature) error

// policies is the allow-list of functions the contract account can
// authorize.
var policies = map[string]policy{
	admin.FnSetAdmin: requireAdminSigner,
}

// Account is the custom account of the settlement contract.
type Account struct{}

// CheckAuth calls the package level CheckAuth.
func (Account) CheckAuth(ctx settle.Context, db settle.ReadOnlyKVStore, payload [PayloadSize]byte, sigs []crypto.Signature, contexts []settle.AuthContext) error {
	return CheckAuth(ctx, db, payload, sigs, contexts)
}

// CheckAuth returns nil only if sigs are valid signatures of payload in
// strictly increasing public key order and each of the contexts is allowed
// by the function policy.
func CheckAuth(ctx settle.Context, db settle.ReadOnlyKVStore, payload [PayloadSize]byte, sigs []crypto.Signature, contexts []settle.AuthContext) error {
	for i, sig := range sigs {
		if i > 0 && !sigs[i-1].PublicKey.Less(sig.PublicKey) {
			return errors.Wrapf(errors.ErrBadSignatureOrder, "signature %d", i)
		}
		if !sig.Verify(payload[:]) {
			return errors.Wrapf(errors.ErrUnauthorized, "invalid signature %d", i)
		}
	}

	for i, c := range contexts {
		if c.Kind != settle.ContractCall {
			return errors.Wrapf(errors.ErrInvalidContext, "context %d", i)
		}
		check, ok := policies[c.FnName]
		if !ok {
			return errors.Wrapf(errors.ErrBadArgs, "function %q cannot be authorized", c.FnName)
		}
		if err := check(db, sigs); err != nil {
			return errors.Wrapf(err, "context %d", i)
		}
	}

	settle.GetLogger(ctx).Debug("contract account authorized",
		"signatures", len(sigs), "contexts", len(contexts))
	return nil
}

// requireAdminSigner allows a single signature made by the stored admin.
func requireAdminSigner(db settle.ReadOnlyKVStore, sigs []crypto.Signature) error {
	if len(sigs) != 1 {
		return errors.Wrapf(errors.ErrNotEnoughSigners, "want 1 signature, got %d", len(sigs))
	}
	want, err := admin.Admin(db)
	if err != nil {
		return err
	}
	if got := settle.AccountAddress(sigs[0].PublicKey); got != want {
		return errors.Wrapf(errors.ErrUnknownSigner, "signer %s", got)
	}
	return nil
}
