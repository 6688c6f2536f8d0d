package sigs

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
)

// AuthorizedTx represents a transaction carrying authorization entries,
// which can be verified by the Decorator.
type AuthorizedTx interface {
	settle.Tx

	// GetSignBytes returns the canonical byte representation of the Msg.
	// Its hash is the argument hash of the invocation.
	GetSignBytes() ([]byte, error)

	// GetAuthorizations returns all authorization entries of the
	// transaction.
	GetAuthorizations() []*Authorization
}

// Authorization is the approval of a list of invocations by a single
// address.
//
// An account address is approved by a single signature of its own key. A
// contract address is approved by its custom account, which can accept any
// number of signatures.
type Authorization struct {
	Address    settle.Address       `json:"address"`
	Nonce      int64                `json:"nonce"`
	Contexts   []settle.AuthContext `json:"contexts"`
	Signatures []crypto.Signature   `json:"signatures"`
}

// Validate ensures the Authorization meets basic standards.
func (a *Authorization) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Address", a.Address.Validate())
	if a.Nonce < 0 {
		errs = errors.AppendField(errs, "Nonce", errors.Wrap(ErrInvalidSequence, "negative"))
	}
	if len(a.Contexts) == 0 {
		errs = errors.AppendField(errs, "Contexts", errors.ErrEmpty)
	}
	for _, c := range a.Contexts {
		errs = errors.AppendField(errs, "Contexts", c.Validate())
	}
	if a.Address.IsAccount() && len(a.Signatures) != 1 {
		errs = errors.AppendField(errs, "Signatures",
			errors.ErrUnauthorized.Newf("account needs exactly one signature, got %d", len(a.Signatures)))
	}
	return errs
}

// Covers returns true if any of the authorized contexts covers the
// invocation.
func (a *Authorization) Covers(inv settle.AuthContext) bool {
	for _, c := range a.Contexts {
		if c.Covers(inv) {
			return true
		}
	}
	return false
}
