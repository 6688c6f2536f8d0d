package orders

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/asset"
)

var _ settle.Msg = (*DeployMsg)(nil)

// DeployMsg issues the asset of an order.
type DeployMsg struct {
	OrderID string
	Issuer  settle.Address
	// Prefix is prepended to the allocated code. It can be empty.
	Prefix string
}

// Path returns the routing path for this message.
func (DeployMsg) Path() string {
	return "orders/deploy"
}

// Validate makes sure that this is sensible.
func (m *DeployMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OrderID", x.ValidateReference(m.OrderID))
	errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	if m.Prefix != "" {
		if len(m.Prefix) >= asset.MaxCodeLength {
			errs = errors.AppendField(errs, "Prefix", errors.ErrInput)
		} else {
			errs = errors.AppendField(errs, "Prefix", asset.ValidateCode(m.Prefix))
		}
	}
	return errs
}
