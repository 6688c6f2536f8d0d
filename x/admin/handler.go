package admin

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator) {
	r.Handle(SetAdminMsg{}.Path(), NewSetAdminHandler(auth))
}

// SetAdminHandler replaces the admin. While no admin is stored anybody can
// set it, afterwards only the current admin can.
type SetAdminHandler struct {
	auth x.Authenticator
}

var _ settle.Handler = SetAdminHandler{}

// NewSetAdminHandler returns a handler for SetAdminMsg.
func NewSetAdminHandler(auth x.Authenticator) SetAdminHandler {
	return SetAdminHandler{auth: auth}
}

func (h SetAdminHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h SetAdminHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := Set(db, msg.NewAdmin); err != nil {
		return nil, errors.Wrap(err, "save admin")
	}
	settle.GetLogger(ctx).Info("admin changed", "admin", msg.NewAdmin.String())
	return &settle.DeliverResult{}, nil
}

func (h SetAdminHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*SetAdminMsg, error) {
	var msg SetAdminMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch ok, err := Exists(db); {
	case err != nil:
		return nil, err
	case ok:
		if err := RequireAdmin(ctx, db, h.auth); err != nil {
			return nil, err
		}
	}
	return &msg, nil
}
