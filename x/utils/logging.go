package utils

import (
	"time"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// Logging is a decorator to log messages as they pass through
type Logging struct {
	debug bool
}

var _ settle.Decorator = Logging{}

// NewLogging creates a Logging decorator. Errors that are not registered
// are logged as internal errors unless debug is set.
func NewLogging(debug bool) Logging {
	return Logging{debug: debug}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Checker) (*settle.CheckResult, error) {
	start := time.Now()
	ctx = settle.WithLogInfo(ctx, "path", settle.GetPath(tx))
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	r.logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Deliverer) (*settle.DeliverResult, error) {
	start := time.Now()
	ctx = settle.WithLogInfo(ctx, "path", settle.GetPath(tx))
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	r.logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func (r Logging) logDuration(ctx settle.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := settle.GetLogger(ctx).With("duration", delta/time.Microsecond)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.

	if err != nil {
		code, log := errors.Info(err, r.debug)
		logger.Error(msg, "code", code, "err", log)
		return
	}
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
