package app

import (
	"crypto/sha256"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/orders"
	"github.com/iov-one/settle/x/payers"
	"github.com/iov-one/settle/x/settlement"
	"github.com/iov-one/settle/x/sigs"
	amino "github.com/tendermint/go-amino"
)

var cdc = newCodec()

func newCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*settle.Msg)(nil), nil)

	c.RegisterConcrete(&settlement.InitMsg{}, "settle/settlement/InitMsg", nil)
	c.RegisterConcrete(&admin.SetAdminMsg{}, "settle/admin/SetAdminMsg", nil)
	c.RegisterConcrete(&payers.AddPayerMsg{}, "settle/payers/AddPayerMsg", nil)
	c.RegisterConcrete(&payers.RemovePayerMsg{}, "settle/payers/RemovePayerMsg", nil)
	c.RegisterConcrete(&commission.SetCommissionAccountMsg{}, "settle/commission/SetCommissionAccountMsg", nil)
	c.RegisterConcrete(&orders.DeployMsg{}, "settle/orders/DeployMsg", nil)

	c.RegisterConcrete(&ledger.MintMsg{}, "settle/ledger/MintMsg", nil)
	c.RegisterConcrete(&ledger.TransferMsg{}, "settle/ledger/TransferMsg", nil)
	c.RegisterConcrete(&ledger.ApproveTransferMsg{}, "settle/ledger/ApproveTransferMsg", nil)
	c.RegisterConcrete(&ledger.RejectTransferMsg{}, "settle/ledger/RejectTransferMsg", nil)
	c.RegisterConcrete(&ledger.BurnMsg{}, "settle/ledger/BurnMsg", nil)
	c.RegisterConcrete(&ledger.ApproveBurnMsg{}, "settle/ledger/ApproveBurnMsg", nil)
	c.RegisterConcrete(&ledger.RejectBurnMsg{}, "settle/ledger/RejectBurnMsg", nil)

	c.RegisterConcrete(&asset.TransferMsg{}, "settle/asset/TransferMsg", nil)
	c.RegisterConcrete(&asset.SetAuthorizedMsg{}, "settle/asset/SetAuthorizedMsg", nil)
	c.RegisterConcrete(&asset.SetAssetAdminMsg{}, "settle/asset/SetAssetAdminMsg", nil)
	return c
}

// Tx is an invocation of a single contract function together with the
// authorization entries that approve it.
type Tx struct {
	Msg            settle.Msg
	Authorizations []sigs.Authorization
}

var _ sigs.AuthorizedTx = (*Tx)(nil)

// NewTx returns an unsigned invocation of msg.
func NewTx(msg settle.Msg) *Tx {
	return &Tx{Msg: msg}
}

// GetMsg returns the invoked message.
func (tx *Tx) GetMsg() (settle.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "missing message")
	}
	return tx.Msg, nil
}

// GetSignBytes returns the encoded message. Authorizations are excluded so
// that every signer approves the same bytes.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "missing message")
	}
	raw, err := cdc.MarshalBinaryBare(tx.Msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "encode %T: %s", tx.Msg, err)
	}
	return raw, nil
}

// GetAuthorizations returns all authorization entries.
func (tx *Tx) GetAuthorizations() []*sigs.Authorization {
	auths := make([]*sigs.Authorization, len(tx.Authorizations))
	for i := range tx.Authorizations {
		auths[i] = &tx.Authorizations[i]
	}
	return auths
}

// Authorize appends an authorization entry.
func (tx *Tx) Authorize(a sigs.Authorization) {
	tx.Authorizations = append(tx.Authorizations, a)
}

// Sign authorizes the invocation of contract on chainID by the account of
// key. The nonce must be the next nonce of that account.
func (tx *Tx) Sign(key *crypto.PrivateKey, chainID string, contract settle.Address, nonce int64) error {
	inv, err := tx.invocation(contract)
	if err != nil {
		return err
	}
	a, err := sigs.Sign(key, chainID, nonce, []settle.AuthContext{inv})
	if err != nil {
		return err
	}
	tx.Authorize(*a)
	return nil
}

// invocation returns the contract call context that a signer approves.
func (tx *Tx) invocation(contract settle.Address) (settle.AuthContext, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return settle.AuthContext{}, err
	}
	hash := sha256.Sum256(raw)
	return settle.AuthContext{
		Kind:     settle.ContractCall,
		Contract: contract,
		FnName:   settle.FunctionName(tx.Msg.Path()),
		ArgsHash: hash[:],
	}, nil
}

// Marshal encodes the invocation.
func (tx *Tx) Marshal() ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode tx: %s", err)
	}
	return raw, nil
}

// DecodeTx is the settle.TxDecoder of invocations encoded with Marshal.
func DecodeTx(raw []byte) (settle.Tx, error) {
	var tx Tx
	if err := cdc.UnmarshalBinaryBare(raw, &tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode tx: %s", err)
	}
	return &tx, nil
}

var _ settle.TxDecoder = DecodeTx
