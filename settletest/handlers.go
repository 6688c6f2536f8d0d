package settletest

import "github.com/iov-one/settle"

// Handler is a mock implementation of the settle.Handler interface.
//
// Each method call is counted and returns the preset result and error.
type Handler struct {
	checkCall   int
	CheckResult settle.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult settle.DeliverResult
	DeliverErr    error
}

var _ settle.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes Key and Value to the store on every call and returns
// Err afterwards. Use it to test that writes are discarded on failure.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ settle.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &settle.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx settle.Context, db settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &settle.DeliverResult{}, nil
}

// PanicHandler panics on every call with Msg.
type PanicHandler struct {
	Msg string
}

var _ settle.Handler = PanicHandler{}

func (h PanicHandler) Check(settle.Context, settle.KVStore, settle.Tx) (*settle.CheckResult, error) {
	panic(h.Msg)
}

func (h PanicHandler) Deliver(settle.Context, settle.KVStore, settle.Tx) (*settle.DeliverResult, error) {
	panic(h.Msg)
}
