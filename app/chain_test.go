package app

import (
	"context"
	"testing"

	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &settletest.Decorator{}
	c2 := &settletest.Decorator{}
	c3 := &settletest.Decorator{}
	h := &settletest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(false),
		nil,
		utils.NewRecovery(),
		c2,
		c3,
	).WithHandler(h)

	bg := context.Background()
	tx := &settletest.Tx{Msg: &settletest.Msg{RoutePath: "ledger/mint"}}

	_, err := stack.Check(bg, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(bg, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// A failing decorator stops the chain before the next one.
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(bg, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// Checks are not affected by the failing delivery.
	_, err = stack.Check(bg, nil, tx)
	assert.NoError(t, err)
	assert.Equal(t, 2, c3.CheckCallCount())
	assert.Equal(t, 1, c3.DeliverCallCount())
	assert.Equal(t, 2, c2.DeliverCallCount())
}

func TestChainRecoversPanics(t *testing.T) {
	c := &settletest.Decorator{}
	stack := ChainDecorators(utils.NewRecovery(), c).
		WithHandler(settletest.PanicHandler{Msg: "boom"})

	_, err := stack.Deliver(context.Background(), nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 1, c.CallCount())
}

func TestChainIsNotShared(t *testing.T) {
	base := ChainDecorators(&settletest.Decorator{})
	a := &settletest.Decorator{}
	b := &settletest.Decorator{}
	withA := base.Chain(a).WithHandler(&settletest.Handler{})
	_ = base.Chain(b)

	_, err := withA.Check(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, a.CallCount())
	assert.Equal(t, 0, b.CallCount())
}
