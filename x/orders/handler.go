package orders

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/admin"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator, reg *Registry) {
	r.Handle(DeployMsg{}.Path(), &DeployHandler{auth: auth, reg: reg})
}

// DeployHandler deploys the asset of an order on behalf of the admin. The
// serialized Order is returned as the result data.
type DeployHandler struct {
	auth x.Authenticator
	reg  *Registry
}

var _ settle.Handler = (*DeployHandler)(nil)

func (h *DeployHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *DeployHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	o, err := h.reg.Deploy(ctx, db, msg.OrderID, msg.Issuer, msg.Prefix)
	if err != nil {
		return nil, err
	}
	raw, err := orm.Marshal(o)
	if err != nil {
		return nil, err
	}
	return &settle.DeliverResult{Data: raw, Log: o.AssetCode}, nil
}

func (h *DeployHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*DeployMsg, error) {
	var msg DeployMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := admin.RequireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}
