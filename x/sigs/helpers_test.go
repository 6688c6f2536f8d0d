package sigs

import (
	"crypto/sha256"

	"github.com/iov-one/settle"
)

// authTx is a transaction carrying raw message bytes and authorizations.
type authTx struct {
	msg   settle.Msg
	bytes []byte
	auths []*Authorization
}

var _ AuthorizedTx = (*authTx)(nil)

func (tx *authTx) GetMsg() (settle.Msg, error) {
	return tx.msg, nil
}

func (tx *authTx) GetSignBytes() ([]byte, error) {
	return tx.bytes, nil
}

func (tx *authTx) GetAuthorizations() []*Authorization {
	return tx.auths
}

// invocation returns the context that the transaction invokes on
// contract.
func (tx *authTx) invocation(contract settle.Address) settle.AuthContext {
	hash := sha256.Sum256(tx.bytes)
	return settle.AuthContext{
		Kind:     settle.ContractCall,
		Contract: contract,
		FnName:   settle.FunctionName(tx.msg.Path()),
		ArgsHash: hash[:],
	}
}

// signersHandler records the addresses authenticated for the last call.
type signersHandler struct {
	Signers []settle.Address
}

var _ settle.Handler = (*signersHandler)(nil)

func (s *signersHandler) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	s.Signers = Authenticate{}.GetAddresses(ctx)
	return &settle.CheckResult{}, nil
}

func (s *signersHandler) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	s.Signers = Authenticate{}.GetAddresses(ctx)
	return &settle.DeliverResult{}, nil
}
