package asset

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

const (
	pathTransfer      = "asset/transfer"
	pathSetAuthorized = "asset/set_authorized"
	pathSetAdmin      = "asset/set_admin"
)

var (
	_ settle.Msg = (*TransferMsg)(nil)
	_ settle.Msg = (*SetAuthorizedMsg)(nil)
	_ settle.Msg = (*SetAssetAdminMsg)(nil)
)

// TransferMsg moves a balance between two holders. It must be authorized
// by the source holder.
type TransferMsg struct {
	Asset  settle.Address
	From   settle.Address
	To     settle.Address
	Amount int64
}

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return pathTransfer
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Asset", m.Asset.Validate())
	errs = errors.AppendField(errs, "From", m.From.Validate())
	errs = errors.AppendField(errs, "To", m.To.Validate())
	if m.Amount <= 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// SetAuthorizedMsg freezes or unfreezes a holder. It must be authorized
// by the asset admin.
type SetAuthorizedMsg struct {
	Asset      settle.Address
	Holder     settle.Address
	Authorized bool
}

// Path returns the routing path for this message.
func (SetAuthorizedMsg) Path() string {
	return pathSetAuthorized
}

// Validate makes sure that this is sensible.
func (m *SetAuthorizedMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Asset", m.Asset.Validate())
	errs = errors.AppendField(errs, "Holder", m.Holder.Validate())
	return errs
}

// SetAssetAdminMsg hands an asset over to a new admin. It must be
// authorized by the current asset admin.
type SetAssetAdminMsg struct {
	Asset    settle.Address
	NewAdmin settle.Address
}

// Path returns the routing path for this message.
func (SetAssetAdminMsg) Path() string {
	return pathSetAdmin
}

// Validate makes sure that this is sensible.
func (m *SetAssetAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Asset", m.Asset.Validate())
	errs = errors.AppendField(errs, "NewAdmin", m.NewAdmin.Validate())
	return errs
}
