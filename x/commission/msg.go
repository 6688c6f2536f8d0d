package commission

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

var _ settle.Msg = (*SetCommissionAccountMsg)(nil)

// SetCommissionAccountMsg sets the account fees are paid to.
type SetCommissionAccountMsg struct {
	Account settle.Address
}

// Path returns the routing path for this message.
func (SetCommissionAccountMsg) Path() string {
	return "commission/set_commission_account"
}

// Validate makes sure that this is sensible.
func (m *SetCommissionAccountMsg) Validate() error {
	return errors.AppendField(nil, "Account", m.Account.Validate())
}
