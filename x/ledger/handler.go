package ledger

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/admin"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator, l *Ledger) {
	h := Handler{auth: auth, ledger: l}
	for _, path := range []string{
		pathMint,
		pathTransfer,
		pathApproveTransfer,
		pathRejectTransfer,
		pathBurn,
		pathApproveBurn,
		pathRejectBurn,
	} {
		r.Handle(path, h)
	}
}

// RegisterQuery will register payments as "/payments", pending transfers
// as "/transfers", payouts as "/payouts", pending withdrawals as
// "/withdrawals" and the burn log as "/burns".
func RegisterQuery(qr settle.QueryRouter) {
	NewPaymentBucket().Bucket().Register("payments", qr)
	NewTransferBucket().Bucket().Register("transfers", qr)
	NewPayoutBucket().Bucket().Register("payouts", qr)
	NewWithdrawBucket().Bucket().Register("withdrawals", qr)
	NewBurnBucket().Bucket().Register("burns", qr)
}

// Handler executes all ledger messages on behalf of the admin.
//
// Messages are validated before the admin is loaded, so that invalid
// amounts are rejected without reading the store.
type Handler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ settle.Handler = Handler{}

func (h Handler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h Handler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	switch m := msg.(type) {
	case *MintMsg:
		err = h.ledger.Mint(ctx, db, m)
	case *TransferMsg:
		err = h.ledger.Transfer(ctx, db, m)
	case *ApproveTransferMsg:
		err = h.ledger.ApproveTransfer(ctx, db, m)
	case *RejectTransferMsg:
		err = h.ledger.RejectTransfer(ctx, db, m)
	case *BurnMsg:
		err = h.ledger.Burn(ctx, db, m)
	case *ApproveBurnMsg:
		err = h.ledger.ApproveBurn(ctx, db, m)
	case *RejectBurnMsg:
		err = h.ledger.RejectBurn(ctx, db, m)
	}
	if err != nil {
		return nil, err
	}
	return &settle.DeliverResult{}, nil
}

func (h Handler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (settle.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch msg.(type) {
	case *MintMsg, *TransferMsg, *ApproveTransferMsg, *RejectTransferMsg,
		*BurnMsg, *ApproveBurnMsg, *RejectBurnMsg:
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %T", msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	if err := admin.RequireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return msg, nil
}
