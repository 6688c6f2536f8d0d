package app

import (
	"context"
	"testing"

	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	good, bad := "ledger/mint", "ledger/burn"

	counter := &settletest.Handler{}
	r.Handle(good, counter)
	r.Handle(bad, &settletest.Handler{
		CheckErr:   errors.ErrAmount,
		DeliverErr: errors.ErrAmount,
	})

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle(good, counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })

	ctx := context.Background()
	db := store.MemStore()
	txFor := func(path string) *settletest.Tx {
		return &settletest.Tx{Msg: &settletest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, db, txFor(good))
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, txFor(good))
	require.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, db, txFor(bad))
	assert.True(t, errors.ErrAmount.Is(err))
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, db, txFor("ledger/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, db, txFor("ledger/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Check(ctx, db, &settletest.Tx{Err: errors.ErrMsg})
	assert.True(t, errors.ErrMsg.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
