package settle

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain.
type Context = context.Context

type contextKey int // local to the settle module

const (
	contextKeyChainID contextKey = iota
	contextKeyTime
	contextKeyLogger
	contextKeyContract
	contextKeyInvocation
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithChainID sets the chain id for the Context.
// panics if called with chain id already set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set in Context")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("Invalid chain ID: %q", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id.
// panics if chain id not already set (should never happen).
func GetChainID(ctx Context) string {
	if x := ctx.Value(contextKeyChainID); x == nil {
		panic("Chain ID could not be retrieved from context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithBlockTime sets the time of the current invocation. All records
// created by the invocation are timestamped with it.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the time of the current invocation. Returns false if
// the time was never set.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyTime).(time.Time)
	return t, ok
}

// IsExpired returns true if given time is in the past as compared to the
// invocation time. Expiration is inclusive.
func IsExpired(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("block time is not present")
	}
	return t <= AsUnixTime(now)
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set.
func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}

// WithContract sets the address of the contract that is executing.
// panics if called with a contract already set.
func WithContract(ctx Context, addr Address) Context {
	if ctx.Value(contextKeyContract) != nil {
		panic("Contract already set in Context")
	}
	return context.WithValue(ctx, contextKeyContract, addr)
}

// GetContract returns the address of the contract that is executing.
// panics if not set (should never happen).
func GetContract(ctx Context) Address {
	addr, ok := ctx.Value(contextKeyContract).(Address)
	if !ok {
		panic("Contract could not be retrieved from context")
	}
	return addr
}

// WithInvocation sets the root invocation being executed, as it must be
// covered by the signed authorization contexts.
func WithInvocation(ctx Context, inv AuthContext) Context {
	return context.WithValue(ctx, contextKeyInvocation, inv)
}

// GetInvocation returns the root invocation, if set.
func GetInvocation(ctx Context) (AuthContext, bool) {
	inv, ok := ctx.Value(contextKeyInvocation).(AuthContext)
	return inv, ok
}
