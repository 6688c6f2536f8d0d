package settlement

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

var _ settle.Msg = (*InitMsg)(nil)

// InitMsg constructs the ledger.
type InitMsg struct {
	Admin    settle.Address
	PayAsset string
}

// Path returns the routing path for this message.
func (InitMsg) Path() string {
	return "settlement/init"
}

// Validate makes sure that this is sensible.
func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	errs = errors.AppendField(errs, "PayAsset", validatePayAsset(m.PayAsset))
	return errs
}
