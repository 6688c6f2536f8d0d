package payers

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/admin"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator, s Store) {
	r.Handle(AddPayerMsg{}.Path(), &AddPayerHandler{auth: auth, store: s})
	r.Handle(RemovePayerMsg{}.Path(), &RemovePayerHandler{auth: auth, store: s})
}

// AddPayerHandler stores a payer mapping on behalf of the admin.
type AddPayerHandler struct {
	auth  x.Authenticator
	store Store
}

var _ settle.Handler = (*AddPayerHandler)(nil)

func (h *AddPayerHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *AddPayerHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.store.Add(db, msg.ID, msg.Address); err != nil {
		return nil, errors.Wrap(err, "add payer")
	}
	return &settle.DeliverResult{}, nil
}

func (h *AddPayerHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*AddPayerMsg, error) {
	var msg AddPayerMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := admin.RequireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RemovePayerHandler deletes a payer mapping on behalf of the admin.
type RemovePayerHandler struct {
	auth  x.Authenticator
	store Store
}

var _ settle.Handler = (*RemovePayerHandler)(nil)

func (h *RemovePayerHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *RemovePayerHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.store.Remove(db, msg.ID); err != nil {
		return nil, errors.Wrap(err, "remove payer")
	}
	return &settle.DeliverResult{}, nil
}

func (h *RemovePayerHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*RemovePayerMsg, error) {
	var msg RemovePayerMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := admin.RequireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}
