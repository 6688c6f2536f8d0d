package sigs

import (
	"context"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx settle.Context, signers []settle.Address) settle.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate gives access to the addresses authenticated by the
// Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetAddresses returns who authorized the current invocation.
// May be empty
func (a Authenticate) GetAddresses(ctx settle.Context) []settle.Address {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]settle.Address)
	return val
}

// HasAddress returns true if addr authorized the current invocation.
func (a Authenticate) HasAddress(ctx settle.Context, addr settle.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
