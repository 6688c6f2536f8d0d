package admin

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// FnSetAdmin is the function name of the admin reassignment. The settlement
// account authorization policy refers to it.
const FnSetAdmin = "set_admin"

var _ settle.Msg = (*SetAdminMsg)(nil)

// SetAdminMsg replaces the admin.
type SetAdminMsg struct {
	NewAdmin settle.Address
}

// Path returns the routing path for this message.
func (SetAdminMsg) Path() string {
	return "admin/" + FnSetAdmin
}

// Validate makes sure that this is sensible.
func (m *SetAdminMsg) Validate() error {
	return errors.AppendField(nil, "NewAdmin", m.NewAdmin.Validate())
}
