package ledger

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/orders"
)

// ValidateAmounts checks that the amount minus the fee leaves a positive
// net amount.
func ValidateAmounts(amount, fee int64) error {
	if amount <= 0 || fee < 0 || amount-fee <= 0 {
		return errors.Wrapf(errors.ErrNegativeAmount, "amount %d, fee %d", amount, fee)
	}
	return nil
}

// Payment is a single payment of an order. Payments are never modified.
type Payment struct {
	PayerID    string
	PaymentRef string
	Amount     int64
	Fee        int64
	Timestamp  settle.UnixTime
}

var _ orm.Model = (*Payment)(nil)

// Validate ensures the payment is well formed.
func (p *Payment) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "PayerID", x.ValidateReference(p.PayerID))
	errs = errors.AppendField(errs, "PaymentRef", x.ValidateReference(p.PaymentRef))
	errs = errors.AppendField(errs, "Amount", ValidateAmounts(p.Amount, p.Fee))
	errs = errors.AppendField(errs, "Timestamp", p.Timestamp.Validate())
	return errs
}

// Transfer is a request to move value from the payer to the beneficiary.
//
// Withdrawals use the same record with the beneficiary set to the payer.
type Transfer struct {
	TransferRef   string
	PayerID       string
	BeneficiaryID string
	Amount        int64
	Fee           int64
	// Timestamp is the creation time of a pending record and the
	// resolution time of an approved one.
	Timestamp settle.UnixTime
}

var _ orm.Model = (*Transfer)(nil)

// Validate ensures the transfer is well formed.
func (t *Transfer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TransferRef", x.ValidateReference(t.TransferRef))
	errs = errors.AppendField(errs, "PayerID", x.ValidateReference(t.PayerID))
	errs = errors.AppendField(errs, "BeneficiaryID", x.ValidateReference(t.BeneficiaryID))
	errs = errors.AppendField(errs, "Amount", ValidateAmounts(t.Amount, t.Fee))
	errs = errors.AppendField(errs, "Timestamp", t.Timestamp.Validate())
	return errs
}

const (
	paymentBucket  = "payment"
	transferBucket = "transfer"
	payoutBucket   = "payout"
	withdrawBucket = "withdraw"
	burnBucket     = "burn"
)

// NewPaymentBucket returns the payment log, keyed by asset code, issuer and
// sequence.
func NewPaymentBucket() orm.ModelBucket {
	return orm.NewModelBucket(paymentBucket)
}

// NewTransferBucket returns pending transfers, keyed by asset code, issuer
// and transfer reference.
func NewTransferBucket() orm.ModelBucket {
	return orm.NewModelBucket(transferBucket)
}

// NewPayoutBucket returns approved transfers, keyed by asset code, issuer
// and sequence.
func NewPayoutBucket() orm.ModelBucket {
	return orm.NewModelBucket(payoutBucket)
}

// NewWithdrawBucket returns pending withdrawals, keyed by reference.
func NewWithdrawBucket() orm.ModelBucket {
	return orm.NewModelBucket(withdrawBucket)
}

// NewBurnBucket returns the burn log, keyed by the burn counter.
func NewBurnBucket() orm.ModelBucket {
	return orm.NewModelBucket(burnBucket)
}

// NewBurnSequence returns the burn counter.
func NewBurnSequence() orm.Sequence {
	return orm.NewSequence(burnBucket, "log")
}

// logKey returns the key of the next entry of a per asset log.
func logKey(db settle.KVStore, bucket string, o *orders.Order) ([]byte, error) {
	seq := orm.NewSequence(bucket, o.AssetCode+":"+string(o.Issuer))
	val, err := seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "sequence")
	}
	return orm.CompositeKey(o.AssetCode, string(o.Issuer), string(val)), nil
}
