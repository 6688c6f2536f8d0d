package gconf

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// QueryHandler returns the singleton of a single package. Query data is
// ignored.
type QueryHandler struct {
	pkg string
}

var _ settle.QueryHandler = QueryHandler{}

// NewQueryHandler returns a handler exposing the singleton of given
// package.
func NewQueryHandler(pkg string) QueryHandler {
	return QueryHandler{pkg: pkg}
}

// Register registers the handler as "/<pkg>".
func (h QueryHandler) Register(qr settle.QueryRouter) {
	qr.Register("/"+h.pkg, h)
}

func (h QueryHandler) Query(db settle.ReadOnlyKVStore, mod string, data []byte) ([]settle.Model, error) {
	if mod != settle.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	key := Key(h.pkg)
	raw, err := db.Get(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	return []settle.Model{{Key: key, Value: raw}}, nil
}
