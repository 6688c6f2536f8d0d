/*
Package settletest provides mocks and helpers to test extensions without
running the whole application.
*/
package settletest

import (
	"context"
	"fmt"

	"github.com/iov-one/settle"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses.
// You can use either Signer or Signers (or both) attributes to reference
// addresses.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer settle.Address

	// Signers represents an authentication of multiple signers.
	Signers []settle.Address
}

func (a *Auth) GetAddresses(settle.Context) []settle.Address {
	if a.Signer != "" {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx settle.Context, addr settle.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve addresses.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetAddresses(ctx settle.Context, addrs ...settle.Address) settle.Context {
	return context.WithValue(ctx, a.Key, addrs)
}

func (a *CtxAuth) GetAddresses(ctx settle.Context) []settle.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]settle.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []settle.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx settle.Context, addr settle.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
