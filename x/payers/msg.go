package payers

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

var (
	_ settle.Msg = (*AddPayerMsg)(nil)
	_ settle.Msg = (*RemovePayerMsg)(nil)
)

// AddPayerMsg maps a payer identifier to an account.
type AddPayerMsg struct {
	ID      string
	Address settle.Address
}

// Path returns the routing path for this message.
func (AddPayerMsg) Path() string {
	return "payers/add_payer"
}

// Validate makes sure that this is sensible.
func (m *AddPayerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ID", ValidateID(m.ID))
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	return errs
}

// RemovePayerMsg deletes a payer mapping.
type RemovePayerMsg struct {
	ID string
}

// Path returns the routing path for this message.
func (RemovePayerMsg) Path() string {
	return "payers/remove_payer"
}

// Validate makes sure that this is sensible.
func (m *RemovePayerMsg) Validate() error {
	return errors.AppendField(nil, "ID", ValidateID(m.ID))
}
