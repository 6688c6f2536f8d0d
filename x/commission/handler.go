package commission

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/admin"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator) {
	r.Handle(SetCommissionAccountMsg{}.Path(), SetAccountHandler{auth: auth})
}

// SetAccountHandler sets the commission account on behalf of the admin.
type SetAccountHandler struct {
	auth x.Authenticator
}

var _ settle.Handler = SetAccountHandler{}

func (h SetAccountHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h SetAccountHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := SetAccount(db, msg.Account); err != nil {
		return nil, errors.Wrap(err, "save commission account")
	}
	return &settle.DeliverResult{}, nil
}

func (h SetAccountHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*SetCommissionAccountMsg, error) {
	var msg SetCommissionAccountMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := admin.RequireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}
