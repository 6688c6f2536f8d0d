/*
Package x contains the helpers shared by all extensions of the ledger.
*/
package x

import (
	"github.com/iov-one/settle"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetAddresses reveals all addresses that authorized the current
	// invocation.
	GetAddresses(settle.Context) []settle.Address
	// HasAddress checks if this address authorized the current
	// invocation.
	HasAddress(settle.Context, settle.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetAddresses combines all addresses from all Authenticators, without
// duplicates.
func (m MultiAuth) GetAddresses(ctx settle.Context) []settle.Address {
	var res []settle.Address
	seen := make(map[settle.Address]struct{})
	for _, impl := range m.impls {
		for _, a := range impl.GetAddresses(ctx) {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			res = append(res, a)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this.
func (m MultiAuth) HasAddress(ctx settle.Context, addr settle.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first authenticated address if any, otherwise an
// empty address.
func MainSigner(ctx settle.Context, auth Authenticator) settle.Address {
	signers := auth.GetAddresses(ctx)
	if len(signers) == 0 {
		return ""
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx settle.Context, auth Authenticator, required []settle.Address) bool {
	return HasNAddresses(ctx, auth, required, len(required))
}

// HasNAddresses returns true if at least n elements in requested are
// also in context.
func HasNAddresses(ctx settle.Context, auth Authenticator, required []settle.Address, n int) bool {
	if n <= 0 {
		return true
	}
	for _, r := range required {
		if auth.HasAddress(ctx, r) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}
