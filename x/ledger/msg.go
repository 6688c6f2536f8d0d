package ledger

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
)

const (
	pathMint            = "ledger/mint"
	pathTransfer        = "ledger/transfer"
	pathApproveTransfer = "ledger/approve_transfer"
	pathRejectTransfer  = "ledger/reject_transfer"
	pathBurn            = "ledger/burn"
	pathApproveBurn     = "ledger/approve_burn"
	pathRejectBurn      = "ledger/reject_burn"
)

var (
	_ settle.Msg = (*MintMsg)(nil)
	_ settle.Msg = (*TransferMsg)(nil)
	_ settle.Msg = (*ApproveTransferMsg)(nil)
	_ settle.Msg = (*RejectTransferMsg)(nil)
	_ settle.Msg = (*BurnMsg)(nil)
	_ settle.Msg = (*ApproveBurnMsg)(nil)
	_ settle.Msg = (*RejectBurnMsg)(nil)
)

// MintMsg records a payment of an order and issues the paid amount, minus
// the fee, to the payer. An unknown order is deployed first.
type MintMsg struct {
	OrderID    string
	PaymentRef string
	PayerID    string
	Amount     int64
	Fee        int64
}

// Path returns the routing path for this message.
func (MintMsg) Path() string {
	return pathMint
}

// Validate makes sure that this is sensible.
func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OrderID", x.ValidateReference(m.OrderID))
	errs = errors.AppendField(errs, "PaymentRef", x.ValidateReference(m.PaymentRef))
	errs = errors.AppendField(errs, "PayerID", x.ValidateReference(m.PayerID))
	errs = errors.AppendField(errs, "Amount", ValidateAmounts(m.Amount, m.Fee))
	return errs
}

// TransferMsg requests a payout of order assets to a beneficiary.
type TransferMsg struct {
	OrderID       string
	TransferRef   string
	PayerID       string
	BeneficiaryID string
	Amount        int64
	Fee           int64
}

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return pathTransfer
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OrderID", x.ValidateReference(m.OrderID))
	errs = errors.AppendField(errs, "TransferRef", x.ValidateReference(m.TransferRef))
	errs = errors.AppendField(errs, "PayerID", x.ValidateReference(m.PayerID))
	errs = errors.AppendField(errs, "BeneficiaryID", x.ValidateReference(m.BeneficiaryID))
	errs = errors.AppendField(errs, "Amount", ValidateAmounts(m.Amount, m.Fee))
	return errs
}

// ApproveTransferMsg pays a pending transfer out.
type ApproveTransferMsg struct {
	OrderID     string
	TransferRef string
}

// Path returns the routing path for this message.
func (ApproveTransferMsg) Path() string {
	return pathApproveTransfer
}

// Validate makes sure that this is sensible.
func (m *ApproveTransferMsg) Validate() error {
	return validateResolution(m.OrderID, m.TransferRef)
}

// RejectTransferMsg returns a pending transfer to the payer.
type RejectTransferMsg struct {
	OrderID     string
	TransferRef string
}

// Path returns the routing path for this message.
func (RejectTransferMsg) Path() string {
	return pathRejectTransfer
}

// Validate makes sure that this is sensible.
func (m *RejectTransferMsg) Validate() error {
	return validateResolution(m.OrderID, m.TransferRef)
}

func validateResolution(orderID, ref string) error {
	var errs error
	errs = errors.AppendField(errs, "OrderID", x.ValidateReference(orderID))
	errs = errors.AppendField(errs, "TransferRef", x.ValidateReference(ref))
	return errs
}

// BurnMsg requests a withdrawal of payout assets held by the payer.
type BurnMsg struct {
	PayerID     string
	TransferRef string
	Amount      int64
	Fee         int64
}

// Path returns the routing path for this message.
func (BurnMsg) Path() string {
	return pathBurn
}

// Validate makes sure that this is sensible.
func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "PayerID", x.ValidateReference(m.PayerID))
	errs = errors.AppendField(errs, "TransferRef", x.ValidateReference(m.TransferRef))
	errs = errors.AppendField(errs, "Amount", ValidateAmounts(m.Amount, m.Fee))
	return errs
}

// ApproveBurnMsg writes a pending withdrawal to the burn log.
type ApproveBurnMsg struct {
	TransferRef string
}

// Path returns the routing path for this message.
func (ApproveBurnMsg) Path() string {
	return pathApproveBurn
}

// Validate makes sure that this is sensible.
func (m *ApproveBurnMsg) Validate() error {
	return errors.AppendField(nil, "TransferRef", x.ValidateReference(m.TransferRef))
}

// RejectBurnMsg returns a pending withdrawal to the payer.
type RejectBurnMsg struct {
	TransferRef string
}

// Path returns the routing path for this message.
func (RejectBurnMsg) Path() string {
	return pathRejectBurn
}

// Validate makes sure that this is sensible.
func (m *RejectBurnMsg) Validate() error {
	return errors.AppendField(nil, "TransferRef", x.ValidateReference(m.TransferRef))
}
