package asset

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, auth x.Authenticator, svc *Service) {
	r.Handle(pathTransfer, &TransferHandler{auth: auth, svc: svc})
	r.Handle(pathSetAuthorized, &SetAuthorizedHandler{auth: auth, svc: svc})
	r.Handle(pathSetAdmin, &SetAdminHandler{auth: auth, svc: svc})
}

// RegisterQuery will register the token bucket as "/assets" and the
// holding bucket as "/balances".
func RegisterQuery(qr settle.QueryRouter) {
	NewTokenBucket().Bucket().Register("assets", qr)
	NewHoldingBucket().Bucket().Register("balances", qr)
}

// TransferHandler moves a balance on behalf of its holder.
type TransferHandler struct {
	auth x.Authenticator
	svc  *Service
}

var _ settle.Handler = (*TransferHandler)(nil)

func (h *TransferHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *TransferHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Transfer(db, msg.Asset, msg.From, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &settle.DeliverResult{}, nil
}

func (h *TransferHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.From) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "holder signature missing")
	}
	return &msg, nil
}

// SetAuthorizedHandler lets the asset admin freeze a holder.
type SetAuthorizedHandler struct {
	auth x.Authenticator
	svc  *Service
}

var _ settle.Handler = (*SetAuthorizedHandler)(nil)

func (h *SetAuthorizedHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *SetAuthorizedHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.SetAuthorized(db, msg.Asset, msg.Holder, msg.Authorized); err != nil {
		return nil, err
	}
	return &settle.DeliverResult{}, nil
}

func (h *SetAuthorizedHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*SetAuthorizedMsg, error) {
	var msg SetAuthorizedMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAssetAdmin(ctx, db, h.auth, h.svc, msg.Asset); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetAdminHandler lets the asset admin hand the asset over.
type SetAdminHandler struct {
	auth x.Authenticator
	svc  *Service
}

var _ settle.Handler = (*SetAdminHandler)(nil)

func (h *SetAdminHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &settle.CheckResult{}, nil
}

func (h *SetAdminHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.SetAdmin(db, msg.Asset, msg.NewAdmin); err != nil {
		return nil, err
	}
	return &settle.DeliverResult{}, nil
}

func (h *SetAdminHandler) validate(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*SetAssetAdminMsg, error) {
	var msg SetAssetAdminMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAssetAdmin(ctx, db, h.auth, h.svc, msg.Asset); err != nil {
		return nil, err
	}
	return &msg, nil
}

func requireAssetAdmin(ctx settle.Context, db settle.ReadOnlyKVStore, auth x.Authenticator, svc *Service, asset settle.Address) error {
	t, err := svc.Token(db, asset)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, t.Admin) {
		return errors.Wrap(errors.ErrUnauthorized, "asset admin signature missing")
	}
	return nil
}
