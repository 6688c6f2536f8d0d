package ledger

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/orders"
	"github.com/iov-one/settle/x/payers"
)

// Ledger executes the payment, transfer and withdrawal state machine.
//
// Every function either completes or fails without any guarantee about
// the state it leaves behind. Callers must run it inside a cache wrap and
// discard it on failure.
type Ledger struct {
	registry *orders.Registry
	ctrl     asset.Controller
	payers   payers.Directory
	fees     commission.Collector

	payments    orm.ModelBucket
	transfers   orm.ModelBucket
	payouts     orm.ModelBucket
	withdrawals orm.ModelBucket
	burns       orm.ModelBucket
	burnSeq     orm.Sequence
}

// NewLedger returns a ledger issuing assets with ctrl and resolving payers
// with dir.
func NewLedger(registry *orders.Registry, ctrl asset.Controller, dir payers.Directory) *Ledger {
	return &Ledger{
		registry:    registry,
		ctrl:        ctrl,
		payers:      dir,
		fees:        commission.NewCollector(ctrl),
		payments:    NewPaymentBucket(),
		transfers:   NewTransferBucket(),
		payouts:     NewPayoutBucket(),
		withdrawals: NewWithdrawBucket(),
		burns:       NewBurnBucket(),
		burnSeq:     NewBurnSequence(),
	}
}

// InitBurnLog resets the burn counter to zero.
func (l *Ledger) InitBurnLog(db settle.KVStore) error {
	return l.burnSeq.Init(db, 0)
}

// Mint records a payment and issues the net amount to the payer.
func (l *Ledger) Mint(ctx settle.Context, db settle.KVStore, msg *MintMsg) error {
	now, err := settle.Now(ctx)
	if err != nil {
		return err
	}
	o, err := l.registry.Order(db, msg.OrderID)
	if errors.ErrNotFound.Is(err) {
		issuer, aerr := admin.Admin(db)
		if aerr != nil {
			return aerr
		}
		o, err = l.registry.Deploy(ctx, db, msg.OrderID, issuer, "")
	}
	if err != nil {
		return err
	}

	key, err := logKey(db, paymentBucket, o)
	if err != nil {
		return err
	}
	p := Payment{
		PayerID:    msg.PayerID,
		PaymentRef: msg.PaymentRef,
		Amount:     msg.Amount,
		Fee:        msg.Fee,
		Timestamp:  now,
	}
	if err := l.payments.Put(db, key, &p); err != nil {
		return errors.Wrap(err, "save payment")
	}
	if err := l.registry.SetPayer(db, o, msg.PayerID); err != nil {
		return err
	}

	to, err := l.payers.Payer(db, msg.PayerID)
	if err != nil {
		return err
	}
	if err := l.ctrl.Mint(db, o.AssetAddress, to, msg.Amount-msg.Fee); err != nil {
		return errors.Wrap(err, "mint order asset")
	}
	return l.fees.Pay(ctx, db, msg.Fee)
}

// Transfer claws the amount back from the payer and keeps the request
// pending.
func (l *Ledger) Transfer(ctx settle.Context, db settle.KVStore, msg *TransferMsg) error {
	now, err := settle.Now(ctx)
	if err != nil {
		return err
	}
	o, err := l.registry.Order(db, msg.OrderID)
	if err != nil {
		return err
	}
	key := pendingKey(o, msg.TransferRef)
	switch ok, err := l.transfers.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrAlreadyInitialized, "transfer %q is pending", msg.TransferRef)
	}

	t := Transfer{
		TransferRef:   msg.TransferRef,
		PayerID:       msg.PayerID,
		BeneficiaryID: msg.BeneficiaryID,
		Amount:        msg.Amount,
		Fee:           msg.Fee,
		Timestamp:     now,
	}
	if err := l.transfers.Put(db, key, &t); err != nil {
		return errors.Wrap(err, "save transfer")
	}

	from, err := l.payers.Payer(db, msg.PayerID)
	if err != nil {
		return err
	}
	if err := l.ctrl.Clawback(db, o.AssetAddress, from, msg.Amount); err != nil {
		return errors.Wrap(err, "clawback order asset")
	}
	return nil
}

// ApproveTransfer pays a pending transfer out in the payout asset.
func (l *Ledger) ApproveTransfer(ctx settle.Context, db settle.KVStore, msg *ApproveTransferMsg) error {
	now, err := settle.Now(ctx)
	if err != nil {
		return err
	}
	o, t, err := l.takeTransfer(db, msg.OrderID, msg.TransferRef)
	if err != nil {
		return err
	}

	t.Timestamp = now
	key, err := logKey(db, payoutBucket, o)
	if err != nil {
		return err
	}
	if err := l.payouts.Put(db, key, t); err != nil {
		return errors.Wrap(err, "save payout")
	}

	to, err := l.payers.Payer(db, t.BeneficiaryID)
	if err != nil {
		return err
	}
	payout, err := orders.PayoutAsset(db)
	if err != nil {
		return err
	}
	if err := l.ctrl.Mint(db, payout.Asset, to, t.Amount-t.Fee); err != nil {
		return errors.Wrap(err, "mint payout asset")
	}
	return l.fees.Pay(ctx, db, t.Fee)
}

// RejectTransfer returns the full amount of a pending transfer to the
// payer. No fee is charged.
func (l *Ledger) RejectTransfer(ctx settle.Context, db settle.KVStore, msg *RejectTransferMsg) error {
	o, t, err := l.takeTransfer(db, msg.OrderID, msg.TransferRef)
	if err != nil {
		return err
	}
	to, err := l.payers.Payer(db, t.PayerID)
	if err != nil {
		return err
	}
	if err := l.ctrl.Mint(db, o.AssetAddress, to, t.Amount); err != nil {
		return errors.Wrap(err, "mint order asset")
	}
	return nil
}

// takeTransfer removes a pending transfer and returns it.
func (l *Ledger) takeTransfer(db settle.KVStore, orderID, ref string) (*orders.Order, *Transfer, error) {
	o, err := l.registry.Order(db, orderID)
	if err != nil {
		return nil, nil, err
	}
	key := pendingKey(o, ref)
	var t Transfer
	switch err := l.transfers.One(db, key, &t); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(errors.ErrIncorrectTransfer, "transfer %q is not pending", ref)
	case err != nil:
		return nil, nil, err
	}
	if err := l.transfers.Delete(db, key); err != nil {
		return nil, nil, err
	}
	return o, &t, nil
}

// Burn claws the amount of payout asset back from the payer and keeps the
// withdrawal pending.
func (l *Ledger) Burn(ctx settle.Context, db settle.KVStore, msg *BurnMsg) error {
	now, err := settle.Now(ctx)
	if err != nil {
		return err
	}
	key := []byte(msg.TransferRef)
	switch ok, err := l.withdrawals.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrAlreadyInitialized, "withdrawal %q is pending", msg.TransferRef)
	}

	w := Transfer{
		TransferRef:   msg.TransferRef,
		PayerID:       msg.PayerID,
		BeneficiaryID: msg.PayerID,
		Amount:        msg.Amount,
		Fee:           msg.Fee,
		Timestamp:     now,
	}
	if err := l.withdrawals.Put(db, key, &w); err != nil {
		return errors.Wrap(err, "save withdrawal")
	}

	payout, err := orders.PayoutAsset(db)
	if err != nil {
		return err
	}
	from, err := l.payers.Payer(db, msg.PayerID)
	if err != nil {
		return err
	}
	if err := l.ctrl.Clawback(db, payout.Asset, from, msg.Amount); err != nil {
		return errors.Wrap(err, "clawback payout asset")
	}
	return nil
}

// ApproveBurn pays the fee and moves a pending withdrawal to the burn log.
// The clawed back amount stays out of circulation.
func (l *Ledger) ApproveBurn(ctx settle.Context, db settle.KVStore, msg *ApproveBurnMsg) error {
	now, err := settle.Now(ctx)
	if err != nil {
		return err
	}
	w, err := l.takeWithdrawal(db, msg.TransferRef)
	if err != nil {
		return err
	}
	if err := l.fees.Pay(ctx, db, w.Fee); err != nil {
		return err
	}
	w.Timestamp = now
	key, err := l.burnSeq.NextVal(db)
	if err != nil {
		return errors.Wrap(err, "burn counter")
	}
	if err := l.burns.Put(db, key, w); err != nil {
		return errors.Wrap(err, "save burn")
	}
	return nil
}

// RejectBurn returns the full amount of a pending withdrawal to the payer.
func (l *Ledger) RejectBurn(ctx settle.Context, db settle.KVStore, msg *RejectBurnMsg) error {
	w, err := l.takeWithdrawal(db, msg.TransferRef)
	if err != nil {
		return err
	}
	payout, err := orders.PayoutAsset(db)
	if err != nil {
		return err
	}
	to, err := l.payers.Payer(db, w.PayerID)
	if err != nil {
		return err
	}
	if err := l.ctrl.Mint(db, payout.Asset, to, w.Amount); err != nil {
		return errors.Wrap(err, "mint payout asset")
	}
	return nil
}

// takeWithdrawal removes a pending withdrawal and returns it.
func (l *Ledger) takeWithdrawal(db settle.KVStore, ref string) (*Transfer, error) {
	key := []byte(ref)
	var w Transfer
	switch err := l.withdrawals.One(db, key, &w); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrIncorrectTransfer, "withdrawal %q is not pending", ref)
	case err != nil:
		return nil, err
	}
	if err := l.withdrawals.Delete(db, key); err != nil {
		return nil, err
	}
	return &w, nil
}

// Payments returns all payments of an order, oldest first.
func (l *Ledger) Payments(db settle.ReadOnlyKVStore, orderID string) ([]Payment, error) {
	o, err := l.registry.Order(db, orderID)
	if err != nil {
		return nil, err
	}
	var res []Payment
	err = l.payments.ByPrefix(db, o.AssetKey(), &res)
	return res, err
}

// PendingTransfers returns all pending transfers of an order.
func (l *Ledger) PendingTransfers(db settle.ReadOnlyKVStore, orderID string) ([]Transfer, error) {
	o, err := l.registry.Order(db, orderID)
	if err != nil {
		return nil, err
	}
	var res []Transfer
	err = l.transfers.ByPrefix(db, o.AssetKey(), &res)
	return res, err
}

// Payouts returns all approved transfers of an order, oldest first.
func (l *Ledger) Payouts(db settle.ReadOnlyKVStore, orderID string) ([]Transfer, error) {
	o, err := l.registry.Order(db, orderID)
	if err != nil {
		return nil, err
	}
	var res []Transfer
	err = l.payouts.ByPrefix(db, o.AssetKey(), &res)
	return res, err
}

// Withdrawal returns a pending withdrawal or ErrNotFound.
func (l *Ledger) Withdrawal(db settle.ReadOnlyKVStore, ref string) (*Transfer, error) {
	var w Transfer
	if err := l.withdrawals.One(db, []byte(ref), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// BurnRecord returns the n-th entry of the burn log or ErrNotFound.
func (l *Ledger) BurnRecord(db settle.ReadOnlyKVStore, n int64) (*Transfer, error) {
	var w Transfer
	if err := l.burns.One(db, orm.EncodeSequence(n), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func pendingKey(o *orders.Order, ref string) []byte {
	return orm.CompositeKey(o.AssetCode, string(o.Issuer), ref)
}
