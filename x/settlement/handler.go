package settlement

import (
	"encoding/json"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/admin"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r settle.Registry, c Constructor) {
	r.Handle(InitMsg{}.Path(), InitHandler{c: c})
}

// InitHandler constructs the ledger. Anybody can construct a ledger that
// has no admin yet.
type InitHandler struct {
	c Constructor
}

var _ settle.Handler = InitHandler{}

func (h InitHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	var msg InitMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch ok, err := admin.Exists(db); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrap(errors.ErrAlreadyInitialized, "admin")
	}
	return &settle.CheckResult{}, nil
}

func (h InitHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	var msg InitMsg
	if err := settle.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.c.Construct(ctx, db, msg.Admin, msg.PayAsset); err != nil {
		return nil, err
	}
	return &settle.DeliverResult{}, nil
}

// VersionInfo is returned by the version query.
type VersionInfo struct {
	Version      int    `json:"version"`
	VersionBuild string `json:"version_build"`
}

// VersionQuery answers with the ledger version.
type VersionQuery struct{}

var _ settle.QueryHandler = VersionQuery{}

func (VersionQuery) Query(db settle.ReadOnlyKVStore, mod string, data []byte) ([]settle.Model, error) {
	raw, err := json.Marshal(VersionInfo{Version: Version, VersionBuild: VersionBuild})
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return []settle.Model{{Key: []byte("version"), Value: raw}}, nil
}

// RegisterQuery will register the version as "/version".
func RegisterQuery(qr settle.QueryRouter) {
	qr.Register("/version", VersionQuery{})
}
