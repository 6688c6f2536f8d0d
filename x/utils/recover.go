package utils

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// Recovery is a decorator to recover from panics in invocations,
// so we can log them as errors. A panic is returned as ErrPanic.
type Recovery struct{}

var _ settle.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Checker) (_ *settle.CheckResult, err error) {
	defer logPanic(ctx, &err)
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Deliverer) (_ *settle.DeliverResult, err error) {
	defer logPanic(ctx, &err)
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}

// logPanic logs err if it was created from a recovered panic.
func logPanic(ctx settle.Context, err *error) {
	if *err != nil && errors.ErrPanic.Is(*err) {
		settle.GetLogger(ctx).Error("invocation panicked", "err", *err)
	}
}
