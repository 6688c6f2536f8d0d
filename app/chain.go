package app

import (
	"reflect"

	"github.com/iov-one/settle"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []settle.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    utils.NewLogging(debug),
    utils.NewRecovery(),
    sigs.NewDecorator(account.Account{}),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...settle.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...settle.Decorator) Decorators {
	chain = cutoffNil(chain)
	// Copy so that two chains extended from the same base never share
	// their backing array.
	newChain := make([]settle.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	newChain = append(newChain, chain...)
	return Decorators{newChain}
}

// cutoffNil removes all nil values from given slice in place.
func cutoffNil(ds []settle.Decorator) []settle.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h settle.Handler) settle.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

//------------------ internal types to build chain ---------------

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
//
// Heavily inspired by negroni's design
type step struct {
	d    settle.Decorator
	next settle.Handler
}

var _ settle.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx) (*settle.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx) (*settle.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
