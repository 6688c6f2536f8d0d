/*
Package sigs provides basic authentication
middleware to verify the authorization entries of the transaction,
and maintain nonces for replay protection.
*/
package sigs

import (
	"crypto/sha256"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

//----------------- Decorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// Decorator verifies the authorizations and adds the authorized addresses
// to the context.
type Decorator struct {
	account          CustomAccount
	allowMissingSigs bool
}

var _ settle.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator, which requires
// at least one authorization to be present. Contract addresses are checked
// with account.
func NewDecorator(account CustomAccount) Decorator {
	return Decorator{
		account:          account,
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no authorizations
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies authorizations before calling down the stack.
func (d Decorator) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Checker) (*settle.CheckResult, error) {
	atx, ok := tx.(AuthorizedTx)
	if !ok {
		return next.Check(ctx, store, tx)
	}
	ctx, err := d.authenticate(ctx, store, atx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies authorizations before calling down the stack.
func (d Decorator) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Deliverer) (*settle.DeliverResult, error) {
	atx, ok := tx.(AuthorizedTx)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}
	ctx, err := d.authenticate(ctx, store, atx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

// authenticate verifies every authorization of the transaction. Each of
// them must cover the invocation the transaction makes.
func (d Decorator) authenticate(ctx settle.Context, store settle.KVStore, tx AuthorizedTx) (settle.Context, error) {
	inv, err := Invocation(ctx, tx)
	if err != nil {
		return nil, err
	}
	ctx = settle.WithInvocation(ctx, inv)

	auths := tx.GetAuthorizations()
	if len(auths) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing authorization")
	}

	chainID := settle.GetChainID(ctx)
	signers := make([]settle.Address, 0, len(auths))
	for i, a := range auths {
		if !a.Covers(inv) {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "authorization %d does not cover %s", i, inv.FnName)
		}
		if err := VerifyAuthorization(ctx, store, chainID, a, d.account); err != nil {
			return nil, errors.Wrapf(err, "authorization %d", i)
		}
		signers = append(signers, a.Address)
	}
	return withSigners(ctx, signers), nil
}

// Invocation returns the contract call made by the transaction: the
// executing contract, the function name taken from the message path and
// the hash of the message bytes.
func Invocation(ctx settle.Context, tx AuthorizedTx) (settle.AuthContext, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return settle.AuthContext{}, errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return settle.AuthContext{}, errors.Wrap(errors.ErrMsg, "missing message")
	}
	raw, err := tx.GetSignBytes()
	if err != nil {
		return settle.AuthContext{}, errors.Wrap(err, "sign bytes")
	}
	hash := sha256.Sum256(raw)
	return settle.AuthContext{
		Kind:     settle.ContractCall,
		Contract: settle.GetContract(ctx),
		FnName:   settle.FunctionName(msg.Path()),
		ArgsHash: hash[:],
	}, nil
}
