package payers

import (
	"context"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/store"
	"github.com/iov-one/settle/x/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	db := store.MemStore()
	s := NewStore()
	_, alice := settletest.NewAccount(t)
	_, bob := settletest.NewAccount(t)

	_, err := s.Payer(db, "p1")
	require.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)

	require.NoError(t, s.Add(db, "p1", alice))
	got, err := s.Payer(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	require.NoError(t, s.Add(db, "p1", bob))
	got, err = s.Payer(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, bob, got)

	require.NoError(t, s.Remove(db, "p1"))
	_, err = s.Payer(db, "p1")
	require.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)

	// Removing an unknown payer is fine.
	require.NoError(t, s.Remove(db, "p1"))

	err = s.Add(db, "", alice)
	require.True(t, errors.ErrEmpty.Is(err), "unexpected error: %+v", err)
	err = s.Add(db, "p 2", alice)
	require.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
}

type registry map[string]settle.Handler

func (r registry) Handle(path string, h settle.Handler) {
	r[path] = h
}

func TestHandlers(t *testing.T) {
	_, adm := settletest.NewAccount(t)
	_, alice := settletest.NewAccount(t)
	_, mallory := settletest.NewAccount(t)

	cases := map[string]struct {
		signer       settle.Address
		msg          settle.Msg
		wantErr      *errors.Error
		want         settle.Address
		wantErrPayer *errors.Error
	}{
		"admin adds a payer": {
			signer: adm,
			msg:    &AddPayerMsg{ID: "p2", Address: alice},
			want:   alice,
		},
		"only admin adds a payer": {
			signer:       mallory,
			msg:          &AddPayerMsg{ID: "p2", Address: alice},
			wantErr:      errors.ErrUnauthorized,
			wantErrPayer: errors.ErrNotFound,
		},
		"payer address is validated": {
			signer:       adm,
			msg:          &AddPayerMsg{ID: "p2", Address: "nope"},
			wantErr:      errors.ErrInput,
			wantErrPayer: errors.ErrNotFound,
		},
		"admin removes a payer": {
			signer:       adm,
			msg:          &RemovePayerMsg{ID: "p1"},
			wantErrPayer: errors.ErrNotFound,
		},
		"only admin removes a payer": {
			signer:       mallory,
			msg:          &RemovePayerMsg{ID: "p1"},
			wantErr:      errors.ErrUnauthorized,
			wantErrPayer: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			require.NoError(t, admin.Set(db, adm))
			s := NewStore()
			require.NoError(t, s.Add(db, "p1", alice))

			r := make(registry)
			RegisterRoutes(r, &settletest.Auth{Signer: tc.signer}, s)
			h := r[tc.msg.Path()]
			require.NotNil(t, h)

			ctx := context.Background()
			tx := &settletest.Tx{Msg: tc.msg}
			_, err := h.Check(ctx, db, tx)
			require.True(t, tc.wantErr.Is(err), "unexpected check error: %+v", err)
			_, err = h.Deliver(ctx, db, tx)
			require.True(t, tc.wantErr.Is(err), "unexpected deliver error: %+v", err)

			got, err := s.Payer(db, "p2")
			require.True(t, tc.wantErrPayer.Is(err), "unexpected payer error: %+v", err)
			assert.Equal(t, tc.want, got)

			got, err = s.Payer(db, "p1")
			if _, ok := tc.msg.(*RemovePayerMsg); ok && tc.wantErr == nil {
				require.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, alice, got)
			}
		})
	}
}
